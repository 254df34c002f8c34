package services

import (
	"sync"
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingStartsPending(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	booking, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.True(t, booking.Active())
	assert.Equal(t, f.Student.ID, booking.Student.ID)
	assert.Equal(t, f.Beds[0].ID, booking.Bed.ID)
	assert.Equal(t, f.Block.ID, booking.Block.ID)

	// bed is only claimed at confirmation
	var bed models.Bed
	require.NoError(t, db.First(&bed, f.Beds[0].ID).Error)
	assert.False(t, bed.IsOccupied)
	assertRoomInvariants(t, db, f.Room.ID)
}

func TestCreateBookingRejectsSecondActiveBookingForYear(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)

	// any bed, same student and year
	_, err = svc.Create(f.createInput(f.Student.ID, f.Beds[1].ID, "2025"))
	require.ErrorIs(t, err, ErrActiveBookingExists)

	// a different year is fine
	_, err = svc.Create(f.createInput(f.Student.ID, f.Beds[1].ID, "2026"))
	require.NoError(t, err)
}

func TestCreateBookingPreconditions(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.Create(f.createInput(9999, f.Beds[0].ID, "2025"))
	require.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.Create(f.createInput(f.Student.ID, 9999, "2025"))
	require.ErrorIs(t, err, ErrBedNotAvailable)

	require.NoError(t, db.Model(&models.Bed{}).Where("id = ?", f.Beds[0].ID).
		Update("is_occupied", true).Error)
	_, err = svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.ErrorIs(t, err, ErrBedNotAvailable)

	in := f.createInput(f.Student.ID, f.Beds[1].ID, "2025")
	in.BlockID = f.Block.ID + 100
	_, err = svc.Create(in)
	require.ErrorIs(t, err, ErrHierarchyMismatch)
}

func TestConfirmBookingOccupiesBedAndFillsRoom(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	first, err := svc.Create(f.createInput(f.Student2.ID, f.Beds[1].ID, "2025"))
	require.NoError(t, err)
	_, err = svc.Confirm(first.ID)
	require.NoError(t, err)

	second, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)
	confirmed, err := svc.Confirm(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	var bed models.Bed
	require.NoError(t, db.First(&bed, f.Beds[0].ID).Error)
	assert.True(t, bed.IsOccupied)

	var room models.Room
	require.NoError(t, db.First(&room, f.Room.ID).Error)
	assert.Equal(t, 2, room.CurrentOccupancy)
	assert.False(t, room.IsAvailable)
	assert.Equal(t, models.RoomOccupied, room.Status)
	assertRoomInvariants(t, db, f.Room.ID)
}

func TestCheckOutFreesBedAndRecomputesRoom(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	first, err := svc.Create(f.createInput(f.Student2.ID, f.Beds[1].ID, "2025"))
	require.NoError(t, err)
	_, err = svc.Confirm(first.ID)
	require.NoError(t, err)

	second, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)
	_, err = svc.Confirm(second.ID)
	require.NoError(t, err)

	checkedOut, err := svc.CheckOut(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedOut, checkedOut.Status)

	var bed models.Bed
	require.NoError(t, db.First(&bed, f.Beds[0].ID).Error)
	assert.False(t, bed.IsOccupied)

	// recomputed from the remaining confirmed bed, not hardcoded empty
	var room models.Room
	require.NoError(t, db.First(&room, f.Room.ID).Error)
	assert.Equal(t, 1, room.CurrentOccupancy)
	assert.True(t, room.IsAvailable)
	assert.Equal(t, models.RoomAvailable, room.Status)
	assertRoomInvariants(t, db, f.Room.ID)
}

func TestBookingStateMachineRejectsWrongTransitions(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	_, err := svc.Confirm(9999)
	require.ErrorIs(t, err, ErrBookingNotFound)
	_, err = svc.CheckOut(9999)
	require.ErrorIs(t, err, ErrBookingNotFound)

	booking, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)

	// PENDING cannot be checked out
	_, err = svc.CheckOut(booking.ID)
	require.ErrorIs(t, err, ErrBookingNotConfirmed)

	_, err = svc.Confirm(booking.ID)
	require.NoError(t, err)

	// CONFIRMED cannot be confirmed again
	_, err = svc.Confirm(booking.ID)
	require.ErrorIs(t, err, ErrBookingNotPending)

	_, err = svc.CheckOut(booking.ID)
	require.NoError(t, err)

	// CHECKED_OUT is terminal
	_, err = svc.Confirm(booking.ID)
	require.ErrorIs(t, err, ErrBookingNotPending)
	_, err = svc.CheckOut(booking.ID)
	require.ErrorIs(t, err, ErrBookingNotConfirmed)
}

func TestConfirmRejectsBedTakenByAnotherBooking(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	winner, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)
	loser, err := svc.Create(f.createInput(f.Student2.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)

	_, err = svc.Confirm(winner.ID)
	require.NoError(t, err)

	_, err = svc.Confirm(loser.ID)
	require.ErrorIs(t, err, ErrBedNotAvailable)

	// the loser stays PENDING; exactly one confirmed booking holds the bed
	var statuses []models.BookingStatus
	require.NoError(t, db.Model(&models.Booking{}).
		Where("bed_id = ?", f.Beds[0].ID).Order("id").
		Pluck("status", &statuses).Error)
	assert.Equal(t, []models.BookingStatus{models.BookingConfirmed, models.BookingPending}, statuses)
	assertRoomInvariants(t, db, f.Room.ID)
}

func TestConcurrentConfirmsOnSameBedKeepExclusivity(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	a, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)
	b, err := svc.Create(f.createInput(f.Student2.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, id := range []uint{a.ID, b.ID} {
		wg.Add(1)
		go func(bookingID uint) {
			defer wg.Done()
			_, err := svc.Confirm(bookingID)
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		}
	}

	var confirmed int64
	require.NoError(t, db.Model(&models.Booking{}).
		Where("bed_id = ? AND status = ?", f.Beds[0].ID, models.BookingConfirmed).
		Count(&confirmed).Error)

	assert.LessOrEqual(t, confirmed, int64(1), "a bed can never be held by two confirmed bookings")
	assert.Equal(t, int64(successes), confirmed)

	var bed models.Bed
	require.NoError(t, db.First(&bed, f.Beds[0].ID).Error)
	assert.Equal(t, confirmed == 1, bed.IsOccupied)
	assertRoomInvariants(t, db, f.Room.ID)
}

func TestListBookingsFiltersAndOrders(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	svc := NewBookingService(db)

	b1, err := svc.Create(f.createInput(f.Student.ID, f.Beds[0].ID, "2025"))
	require.NoError(t, err)
	_, err = svc.Confirm(b1.ID)
	require.NoError(t, err)
	_, err = svc.Create(f.createInput(f.Student2.ID, f.Beds[1].ID, "2025"))
	require.NoError(t, err)

	all, total, err := svc.List(BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, all, 2)

	status := models.BookingConfirmed
	confirmedOnly, total, err := svc.List(BookingFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, confirmedOnly, 1)
	assert.Equal(t, f.Student.ID, confirmedOnly[0].StudentID)

	year := "1999"
	none, total, err := svc.List(BookingFilter{AcademicYear: &year})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}
