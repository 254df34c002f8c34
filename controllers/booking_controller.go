// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	StudentID    uint    `json:"studentId" binding:"required"`
	BlockID      uint    `json:"blockId" binding:"required"`
	FloorID      uint    `json:"floorId" binding:"required"`
	RoomID       uint    `json:"roomId" binding:"required"`
	BedID        uint    `json:"bedId" binding:"required"`
	AcademicYear string  `json:"academicYear" binding:"required"`
	Session      string  `json:"session"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Amount       float64 `json:"amount"`
	Notes        string  `json:"notes"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseDateField(c *gin.Context, name, value string) (*time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" format, expected YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

// CreateBooking (POST /api/bookings) inserts a PENDING booking for a bed.
// The acting student comes from the request, never from ambient state.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, ok := parseDateField(c, "checkInDate", req.CheckInDate)
	if !ok {
		return
	}
	checkOut, ok := parseDateField(c, "checkOutDate", req.CheckOutDate)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		StudentID:    req.StudentID,
		BlockID:      req.BlockID,
		FloorID:      req.FloorID,
		RoomID:       req.RoomID,
		BedID:        req.BedID,
		AcademicYear: req.AcademicYear,
		Session:      req.Session,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Amount:       req.Amount,
		Notes:        req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ConfirmBooking (POST /api/bookings/:id/confirm)
func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Confirm(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckOutBooking (POST /api/bookings/:id/checkout)
func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookingDetails (GET /api/bookings/:id)
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookings (GET /api/bookings) with optional filters.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	var filter services.BookingFilter

	if raw := strings.TrimSpace(c.Query("studentId")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid studentId")
			return
		}
		sid := uint(id)
		filter.StudentID = &sid
	}
	if raw := strings.TrimSpace(c.Query("academicYear")); raw != "" {
		filter.AcademicYear = &raw
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := models.BookingStatus(strings.ToUpper(raw))
		if !status.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("blockId")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid blockId")
			return
		}
		bid := uint(id)
		filter.BlockID = &bid
	}

	filter.Page, filter.Limit = parsePagination(c)

	bookings, total, err := ctrl.BookingSvc.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	utils.JSONPaginated(c, http.StatusOK, bookings, utils.NewPagination(total, filter.Page, limit))
}
