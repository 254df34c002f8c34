// models/booking.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is a student's claim on one bed for an academic year/session.
// Status only ever moves forward: PENDING -> CONFIRMED -> CHECKED_OUT.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StudentID uint `gorm:"index;column:student_id" json:"studentId"`
	BlockID   uint `gorm:"column:block_id" json:"blockId"`
	FloorID   uint `gorm:"column:floor_id" json:"floorId"`
	RoomID    uint `gorm:"index;column:room_id" json:"roomId"`
	BedID     uint `gorm:"index;column:bed_id" json:"bedId"`

	AcademicYear string        `gorm:"index;column:academic_year;size:20" json:"academicYear"`
	Session      string        `gorm:"size:50" json:"session"`
	CheckInDate  *time.Time    `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time    `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`
	Amount       float64       `json:"amount"`
	Notes        string        `gorm:"type:text" json:"notes,omitempty"`
	Status       BookingStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	Student Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Block   Block   `gorm:"foreignKey:BlockID;references:ID" json:"block,omitempty"`
	Floor   Floor   `gorm:"foreignKey:FloorID;references:ID" json:"floor,omitempty"`
	Room    Room    `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Bed     Bed     `gorm:"foreignKey:BedID;references:ID" json:"bed,omitempty"`
}

// Active reports whether the booking counts against the one-active-booking
// rule for its (student, academicYear) pair.
func (b Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
