package services

import (
	"fmt"
	"strings"
	"testing"

	"hostel-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own named in-memory database. The shared
// cache keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.HostelSetting{},
		&models.Student{},
		&models.Block{},
		&models.Floor{},
		&models.Room{},
		&models.Bed{},
		&models.Booking{},
	))

	return db
}

type fixture struct {
	Block    models.Block
	Floor    models.Floor
	Room     models.Room
	Beds     []models.Bed
	Student  models.Student
	Student2 models.Student
}

// seedFixture creates a minimal hierarchy: one male block with one ground
// floor holding a single two-bed room, plus two students.
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	block := models.Block{
		BlockNumber: 1,
		Gender:      models.GenderMale,
		IsActive:    true,
		Floors: []models.Floor{{
			FloorLevel:  models.FloorGround,
			FloorNumber: 0,
			Rooms: []models.Room{{
				RoomNumber:  1,
				Capacity:    2,
				IsAvailable: true,
				Status:      models.RoomAvailable,
				Beds:        []models.Bed{{BedNumber: 1}, {BedNumber: 2}},
			}},
		}},
	}
	require.NoError(t, db.Create(&block).Error)

	student := models.Student{AdmissionNumber: "ADM-1001", FullName: "Alpha Student", Gender: models.GenderMale}
	student2 := models.Student{AdmissionNumber: "ADM-1002", FullName: "Beta Student", Gender: models.GenderMale}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&student2).Error)

	floor := block.Floors[0]
	room := floor.Rooms[0]
	return fixture{
		Block:    block,
		Floor:    floor,
		Room:     room,
		Beds:     room.Beds,
		Student:  student,
		Student2: student2,
	}
}

func (f fixture) createInput(studentID, bedID uint, year string) CreateBookingInput {
	return CreateBookingInput{
		StudentID:    studentID,
		BlockID:      f.Block.ID,
		FloorID:      f.Floor.ID,
		RoomID:       f.Room.ID,
		BedID:        bedID,
		AcademicYear: year,
		Session:      "Semester 1",
		Amount:       4500,
	}
}

// assertRoomInvariants re-derives the occupancy fields from the beds and
// checks the stored room matches.
func assertRoomInvariants(t *testing.T, db *gorm.DB, roomID uint) {
	t.Helper()

	var room models.Room
	require.NoError(t, db.First(&room, roomID).Error)

	var occupied int64
	require.NoError(t, db.Model(&models.Bed{}).
		Where("room_id = ? AND is_occupied = ?", roomID, true).
		Count(&occupied).Error)

	require.Equal(t, int(occupied), room.CurrentOccupancy, "currentOccupancy must equal occupied bed count")
	require.Equal(t, room.CurrentOccupancy < room.Capacity, room.IsAvailable)
	if room.Status == models.RoomOccupied || room.Status == models.RoomAvailable {
		require.Equal(t, room.CurrentOccupancy == room.Capacity, room.Status == models.RoomOccupied)
	}
}
