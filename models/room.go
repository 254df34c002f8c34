package models

import (
	"gorm.io/gorm"
)

// Room is a fixed two-bed unit. CurrentOccupancy, IsAvailable and Status
// (outside MAINTENANCE/RESERVED) are derived from the beds and written only
// by the occupancy recompute in services; nothing else may set them.
type Room struct {
	gorm.Model

	FloorID    uint `json:"floorId" gorm:"column:floor_id;index"`
	RoomNumber int  `json:"roomNumber" gorm:"column:room_number"`
	Capacity   int  `json:"capacity" gorm:"default:2"`

	CurrentOccupancy int        `json:"currentOccupancy" gorm:"column:current_occupancy;default:0"`
	IsAvailable      bool       `json:"isAvailable" gorm:"column:is_available;default:true"`
	Status           RoomStatus `json:"status" gorm:"type:varchar(20);default:'AVAILABLE'"`

	Floor    Floor     `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	Beds     []Bed     `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}
