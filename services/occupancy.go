package services

import (
	"hostel-backend/models"

	"gorm.io/gorm"
)

// RoomOccupancy holds the three occupancy-derived Room fields. They are
// recomputed from the beds here and nowhere else; the booking lifecycle must
// never set them directly.
type RoomOccupancy struct {
	CurrentOccupancy int               `json:"currentOccupancy"`
	IsAvailable      bool              `json:"isAvailable"`
	Status           models.RoomStatus `json:"status"`
}

// OccupancyFromBeds derives a room's occupancy fields from its bed count.
func OccupancyFromBeds(capacity, occupiedBeds int) RoomOccupancy {
	status := models.RoomAvailable
	if occupiedBeds == capacity {
		status = models.RoomOccupied
	}
	return RoomOccupancy{
		CurrentOccupancy: occupiedBeds,
		IsAvailable:      occupiedBeds < capacity,
		Status:           status,
	}
}

// RecomputeRoomOccupancy counts the room's occupied beds and writes the
// derived fields back. MAINTENANCE and RESERVED are externally-set statuses
// and are preserved; the counters still update underneath them.
func RecomputeRoomOccupancy(tx *gorm.DB, roomID uint) (RoomOccupancy, error) {
	// Lock the room row so two transitions touching different beds of the
	// same room cannot interleave their counts.
	var room models.Room
	if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
		return RoomOccupancy{}, err
	}

	var occupied int64
	if err := tx.Model(&models.Bed{}).
		Where("room_id = ? AND is_occupied = ?", roomID, true).
		Count(&occupied).Error; err != nil {
		return RoomOccupancy{}, err
	}

	occ := OccupancyFromBeds(room.Capacity, int(occupied))
	if room.Status == models.RoomMaintenance || room.Status == models.RoomReserved {
		occ.Status = room.Status
	}

	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Updates(map[string]interface{}{
		"current_occupancy": occ.CurrentOccupancy,
		"is_available":      occ.IsAvailable,
		"status":            occ.Status,
	}).Error; err != nil {
		return RoomOccupancy{}, err
	}

	return occ, nil
}
