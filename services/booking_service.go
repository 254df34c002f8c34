// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// BookingService drives the booking state machine:
// PENDING -> CONFIRMED -> CHECKED_OUT, no other transitions. Every mutating
// operation runs in one transaction with the decided-on rows locked, so the
// check and the act cannot be interleaved by a concurrent caller.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	StudentID    uint
	BlockID      uint
	FloorID      uint
	RoomID       uint
	BedID        uint
	AcademicYear string
	Session      string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Amount       float64
	Notes        string
}

// Create inserts a PENDING booking for the given bed. The bed itself is not
// marked occupied until confirmation. Preconditions, in order: the student
// exists, the bed exists and is free, the hierarchy ids match the bed's
// ancestry, and the student has no other active booking for the year.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	var bookingID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, in.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("failed to look up student: %w", err)
		}

		var bed models.Bed
		if err := lockForUpdate(tx).First(&bed, in.BedID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBedNotAvailable
			}
			return fmt.Errorf("failed to look up bed: %w", err)
		}
		if bed.IsOccupied {
			return ErrBedNotAvailable
		}

		// The caller passes the whole chain; make sure it actually is the
		// bed's ancestry before storing the denormalized references.
		var room models.Room
		if err := tx.First(&room, bed.RoomID).Error; err != nil {
			return fmt.Errorf("failed to look up room: %w", err)
		}
		var floor models.Floor
		if err := tx.First(&floor, room.FloorID).Error; err != nil {
			return fmt.Errorf("failed to look up floor: %w", err)
		}
		if in.RoomID != bed.RoomID || in.FloorID != room.FloorID || in.BlockID != floor.BlockID {
			return ErrHierarchyMismatch
		}

		var active int64
		if err := tx.Model(&models.Booking{}).
			Where("student_id = ? AND academic_year = ? AND status IN ?",
				in.StudentID, in.AcademicYear,
				[]models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
			Count(&active).Error; err != nil {
			return fmt.Errorf("failed to check active bookings: %w", err)
		}
		if active > 0 {
			return ErrActiveBookingExists
		}

		booking := models.Booking{
			StudentID:    in.StudentID,
			BlockID:      in.BlockID,
			FloorID:      in.FloorID,
			RoomID:       in.RoomID,
			BedID:        in.BedID,
			AcademicYear: in.AcademicYear,
			Session:      in.Session,
			CheckInDate:  in.CheckInDate,
			CheckOutDate: in.CheckOutDate,
			Amount:       in.Amount,
			Notes:        in.Notes,
			Status:       models.BookingPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrActiveBookingExists
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}

		bookingID = booking.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(bookingID)
}

// Confirm moves a PENDING booking to CONFIRMED, marks its bed occupied and
// recomputes the room's occupancy fields, all in one transaction. The bed is
// re-checked under lock: if another booking confirmed onto it first, this
// call fails with ErrBedNotAvailable and the booking stays PENDING.
func (s *BookingService) Confirm(bookingID uint) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to look up booking: %w", err)
		}
		if booking.Status != models.BookingPending {
			return ErrBookingNotPending
		}

		var bed models.Bed
		if err := lockForUpdate(tx).First(&bed, booking.BedID).Error; err != nil {
			return fmt.Errorf("failed to look up bed: %w", err)
		}
		if bed.IsOccupied {
			return ErrBedNotAvailable
		}

		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", models.BookingConfirmed).Error; err != nil {
			return fmt.Errorf("failed to confirm booking: %w", err)
		}
		if err := tx.Model(&models.Bed{}).Where("id = ?", bed.ID).
			Update("is_occupied", true).Error; err != nil {
			return fmt.Errorf("failed to occupy bed: %w", err)
		}
		if _, err := RecomputeRoomOccupancy(tx, bed.RoomID); err != nil {
			return fmt.Errorf("failed to recompute room occupancy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(bookingID)
}

// CheckOut moves a CONFIRMED booking to CHECKED_OUT, frees its bed and
// recomputes the room's occupancy fields. CHECKED_OUT is terminal.
func (s *BookingService) CheckOut(bookingID uint) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to look up booking: %w", err)
		}
		if booking.Status != models.BookingConfirmed {
			return ErrBookingNotConfirmed
		}

		var bed models.Bed
		if err := lockForUpdate(tx).First(&bed, booking.BedID).Error; err != nil {
			return fmt.Errorf("failed to look up bed: %w", err)
		}

		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", models.BookingCheckedOut).Error; err != nil {
			return fmt.Errorf("failed to check out booking: %w", err)
		}
		if err := tx.Model(&models.Bed{}).Where("id = ?", bed.ID).
			Update("is_occupied", false).Error; err != nil {
			return fmt.Errorf("failed to free bed: %w", err)
		}
		if _, err := RecomputeRoomOccupancy(tx, bed.RoomID); err != nil {
			return fmt.Errorf("failed to recompute room occupancy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(bookingID)
}

// GetByID returns a booking with its student and full hierarchy joined.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.
		Preload("Student").
		Preload("Block").
		Preload("Floor").
		Preload("Room").
		Preload("Bed").
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

type BookingFilter struct {
	StudentID    *uint
	AcademicYear *string
	Status       *models.BookingStatus
	BlockID      *uint
	Page         int
	Limit        int
}

// List returns bookings matching the filter, newest first, with joins.
func (s *BookingService) List(f BookingFilter) ([]models.Booking, int64, error) {
	page, limit := normalizePage(f.Page, f.Limit, 10)

	base := func() *gorm.DB {
		q := s.DB.Model(&models.Booking{})
		if f.StudentID != nil {
			q = q.Where("student_id = ?", *f.StudentID)
		}
		if f.AcademicYear != nil {
			q = q.Where("academic_year = ?", *f.AcademicYear)
		}
		if f.Status != nil {
			q = q.Where("status = ?", *f.Status)
		}
		if f.BlockID != nil {
			q = q.Where("block_id = ?", *f.BlockID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []models.Booking
	if err := base().
		Preload("Student").
		Preload("Block").
		Preload("Floor").
		Preload("Room").
		Preload("Bed").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	return bookings, total, nil
}
