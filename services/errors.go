package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors surfaced to the controllers, which map them onto HTTP
// status codes. Anything not in this list is a storage failure.
var (
	ErrStudentNotFound     = errors.New("student_not_found")
	ErrBookingNotFound     = errors.New("booking_not_found")
	ErrBedNotAvailable     = errors.New("bed_not_available")
	ErrActiveBookingExists = errors.New("active_booking_exists")
	ErrBookingNotPending   = errors.New("only_pending_bookings_can_be_confirmed")
	ErrBookingNotConfirmed = errors.New("only_confirmed_bookings_can_be_checked_out")
	ErrStructureExists     = errors.New("structure_already_initialized")
	ErrHierarchyMismatch   = errors.New("bed_hierarchy_mismatch")
)

// lockForUpdate takes a row lock on dialects that support SELECT ... FOR
// UPDATE. SQLite serializes writers on its own and rejects the syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// sqlite (tests) reports unique violations as plain strings
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
