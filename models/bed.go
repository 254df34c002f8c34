package models

import (
	"gorm.io/gorm"
)

// Bed is the atomic allocatable unit. IsOccupied is true exactly while one
// CONFIRMED booking references the bed.
type Bed struct {
	gorm.Model

	RoomID     uint `json:"roomId" gorm:"column:room_id;index"`
	BedNumber  int  `json:"bedNumber" gorm:"column:bed_number"`
	IsOccupied bool `json:"isOccupied" gorm:"column:is_occupied;default:false"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
