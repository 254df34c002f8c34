package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinels onto HTTP status codes. Unknown
// errors are storage failures: logged, and surfaced as a generic 500 so the
// envelope never leaks driver internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrBedNotAvailable),
		errors.Is(err, services.ErrActiveBookingExists),
		errors.Is(err, services.ErrBookingNotPending),
		errors.Is(err, services.ErrBookingNotConfirmed),
		errors.Is(err, services.ErrStructureExists):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrHierarchyMismatch):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error")
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if page < 1 {
		page = 1
	}
	return page, limit
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
