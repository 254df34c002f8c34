// services/structure_service.go
package services

import (
	"hostel-backend/models"

	"gorm.io/gorm"
)

// Fixed hostel layout: blocks 1-15 male, 16-30 female, three floors per
// block, thirty two-bed rooms per floor.
const (
	blockCount     = 30
	maleBlockCount = 15
	roomsPerFloor  = 30
	bedsPerRoom    = 2
)

var floorLevels = []models.FloorLevel{models.FloorGround, models.FloorFirst, models.FloorSecond}

type StructureService struct {
	DB *gorm.DB
}

func NewStructureService(db *gorm.DB) *StructureService {
	return &StructureService{DB: db}
}

// Initialize builds the whole block/floor/room/bed hierarchy in a single
// transaction. It runs at most once: any existing block fails the call with
// ErrStructureExists and nothing is written.
func (s *StructureService) Initialize() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Block{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrStructureExists
		}

		for n := 1; n <= blockCount; n++ {
			gender := models.GenderMale
			if n > maleBlockCount {
				gender = models.GenderFemale
			}

			block := models.Block{
				BlockNumber: n,
				Gender:      gender,
				IsActive:    true,
				Floors:      make([]models.Floor, 0, len(floorLevels)),
			}

			for _, level := range floorLevels {
				floor := models.Floor{
					FloorLevel:  level,
					FloorNumber: level.FloorNumber(),
					Rooms:       make([]models.Room, 0, roomsPerFloor),
				}

				for r := 1; r <= roomsPerFloor; r++ {
					room := models.Room{
						RoomNumber:  level.FloorNumber()*100 + r,
						Capacity:    bedsPerRoom,
						IsAvailable: true,
						Status:      models.RoomAvailable,
					}
					for b := 1; b <= bedsPerRoom; b++ {
						room.Beds = append(room.Beds, models.Bed{BedNumber: b})
					}
					floor.Rooms = append(floor.Rooms, room)
				}

				block.Floors = append(block.Floors, floor)
			}

			if err := tx.Create(&block).Error; err != nil {
				// unique index on block_number: a concurrent initializer got here first
				if isDuplicateKey(err) {
					return ErrStructureExists
				}
				return err
			}
		}

		return nil
	})
}

type StructureSummary struct {
	Blocks int64 `json:"blocks"`
	Floors int64 `json:"floors"`
	Rooms  int64 `json:"rooms"`
	Beds   int64 `json:"beds"`
}

func (s *StructureService) Summary() (StructureSummary, error) {
	var sum StructureSummary
	if err := s.DB.Model(&models.Block{}).Count(&sum.Blocks).Error; err != nil {
		return sum, err
	}
	if err := s.DB.Model(&models.Floor{}).Count(&sum.Floors).Error; err != nil {
		return sum, err
	}
	if err := s.DB.Model(&models.Room{}).Count(&sum.Rooms).Error; err != nil {
		return sum, err
	}
	if err := s.DB.Model(&models.Bed{}).Count(&sum.Beds).Error; err != nil {
		return sum, err
	}
	return sum, nil
}
