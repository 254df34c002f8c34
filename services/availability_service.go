// services/availability_service.go
package services

import (
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers read-only queries over the hierarchy. It never
// mutates anything; results are snapshots and the booking lifecycle re-checks
// bed availability before acting on them.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

type AvailableRoomFilter struct {
	Gender      *models.Gender
	BlockNumber *int
	FloorLevel  *models.FloorLevel
	Page        int
	Limit       int
}

// AvailableRooms lists rooms with free capacity matching the optional
// filters, each with its floor/block and its currently-unoccupied beds.
// Unmatched filters give an empty page, not an error.
func (s *AvailabilityService) AvailableRooms(f AvailableRoomFilter) ([]models.Room, int64, error) {
	page, limit := normalizePage(f.Page, f.Limit, 10)

	base := func() *gorm.DB {
		q := s.DB.Model(&models.Room{}).
			Joins("JOIN floors ON floors.id = rooms.floor_id").
			Joins("JOIN blocks ON blocks.id = floors.block_id").
			Where("rooms.status = ? AND rooms.is_available = ?", models.RoomAvailable, true)
		if f.Gender != nil {
			q = q.Where("blocks.gender = ?", *f.Gender)
		}
		if f.BlockNumber != nil {
			q = q.Where("blocks.block_number = ?", *f.BlockNumber)
		}
		if f.FloorLevel != nil {
			q = q.Where("floors.floor_level = ?", *f.FloorLevel)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count available rooms: %w", err)
	}

	var rooms []models.Room
	if err := base().
		Preload("Floor.Block").
		Preload("Beds", "is_occupied = ?", false).
		Order("rooms.created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rooms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve available rooms: %w", err)
	}

	return rooms, total, nil
}

// FloorRoomCount is the per-floor room tally attached to a block summary.
type FloorRoomCount struct {
	FloorLevel models.FloorLevel `json:"floorLevel"`
	Rooms      int64             `json:"rooms"`
}

type BlockSummary struct {
	models.Block
	ConfirmedBookings int64            `json:"confirmedBookings"`
	FloorRooms        []FloorRoomCount `json:"floorRooms"`
}

// Blocks lists active blocks ordered by block number, each annotated with
// its confirmed-booking count and per-floor room counts.
func (s *AvailabilityService) Blocks(gender *models.Gender, page, limit int) ([]BlockSummary, int64, error) {
	page, limit = normalizePage(page, limit, 10)

	base := func() *gorm.DB {
		q := s.DB.Model(&models.Block{}).Where("is_active = ?", true)
		if gender != nil {
			q = q.Where("gender = ?", *gender)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blocks: %w", err)
	}

	var blocks []models.Block
	if err := base().
		Order("block_number ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blocks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve blocks: %w", err)
	}

	summaries := make([]BlockSummary, 0, len(blocks))
	for _, block := range blocks {
		var confirmed int64
		if err := s.DB.Model(&models.Booking{}).
			Where("block_id = ? AND status = ?", block.ID, models.BookingConfirmed).
			Count(&confirmed).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to count bookings for block %d: %w", block.BlockNumber, err)
		}

		var floorRooms []FloorRoomCount
		if err := s.DB.Model(&models.Floor{}).
			Select("floors.floor_level AS floor_level, COUNT(rooms.id) AS rooms").
			Joins("LEFT JOIN rooms ON rooms.floor_id = floors.id AND rooms.deleted_at IS NULL").
			Where("floors.block_id = ?", block.ID).
			Group("floors.floor_level").
			Order("MIN(floors.floor_number)").
			Scan(&floorRooms).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to count rooms for block %d: %w", block.BlockNumber, err)
		}

		summaries = append(summaries, BlockSummary{
			Block:             block,
			ConfirmedBookings: confirmed,
			FloorRooms:        floorRooms,
		})
	}

	return summaries, total, nil
}

// RoomsByBlock lists a block's rooms ordered by room number, each with its
// beds and its CONFIRMED bookings.
func (s *AvailabilityService) RoomsByBlock(blockID uint, level *models.FloorLevel, page, limit int) ([]models.Room, int64, error) {
	page, limit = normalizePage(page, limit, 20)

	base := func() *gorm.DB {
		q := s.DB.Model(&models.Room{}).
			Joins("JOIN floors ON floors.id = rooms.floor_id").
			Where("floors.block_id = ?", blockID)
		if level != nil {
			q = q.Where("floors.floor_level = ?", *level)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	var rooms []models.Room
	if err := base().
		Preload("Floor").
		Preload("Beds").
		Preload("Bookings", "status = ?", models.BookingConfirmed).
		Preload("Bookings.Student").
		Order("rooms.room_number ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rooms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve rooms: %w", err)
	}

	return rooms, total, nil
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}
