package models

// Closed enum types for every state-like column. Keeping these typed means an
// illegal value cannot make it past binding/parsing into the store.

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type FloorLevel string

const (
	FloorGround FloorLevel = "GROUND"
	FloorFirst  FloorLevel = "FIRST"
	FloorSecond FloorLevel = "SECOND"
)

func (l FloorLevel) Valid() bool {
	return l == FloorGround || l == FloorFirst || l == FloorSecond
}

// FloorNumber maps the level to its numeric floor (GROUND=0, FIRST=1, SECOND=2).
func (l FloorLevel) FloorNumber() int {
	switch l {
	case FloorFirst:
		return 1
	case FloorSecond:
		return 2
	default:
		return 0
	}
}

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomReserved    RoomStatus = "RESERVED"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedOut:
		return true
	}
	return false
}
