package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// parseGenderQuery returns (nil, true) when the param is absent, and
// (nil, false) after responding 400 when it is present but malformed.
func parseGenderQuery(c *gin.Context) (*models.Gender, bool) {
	raw := strings.TrimSpace(c.Query("gender"))
	if raw == "" {
		return nil, true
	}
	gender := models.Gender(strings.ToUpper(raw))
	if !gender.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid gender")
		return nil, false
	}
	return &gender, true
}

func parseFloorLevelQuery(c *gin.Context) (*models.FloorLevel, bool) {
	raw := strings.TrimSpace(c.Query("floorLevel"))
	if raw == "" {
		return nil, true
	}
	level := models.FloorLevel(strings.ToUpper(raw))
	if !level.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid floorLevel")
		return nil, false
	}
	return &level, true
}

// GetAvailableRooms (GET /api/rooms/available)
func (ctrl *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	gender, ok := parseGenderQuery(c)
	if !ok {
		return
	}
	level, ok := parseFloorLevelQuery(c)
	if !ok {
		return
	}

	var blockNumber *int
	if raw := strings.TrimSpace(c.Query("blockNumber")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid blockNumber")
			return
		}
		blockNumber = &n
	}

	page, limit := parsePagination(c)
	rooms, total, err := ctrl.AvailabilitySvc.AvailableRooms(services.AvailableRoomFilter{
		Gender:      gender,
		BlockNumber: blockNumber,
		FloorLevel:  level,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if limit <= 0 {
		limit = 10
	}
	utils.JSONPaginated(c, http.StatusOK, rooms, utils.NewPagination(total, page, limit))
}

// GetBlocks (GET /api/blocks)
func (ctrl *AvailabilityController) GetBlocks(c *gin.Context) {
	gender, ok := parseGenderQuery(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	blocks, total, err := ctrl.AvailabilitySvc.Blocks(gender, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if limit <= 0 {
		limit = 10
	}
	utils.JSONPaginated(c, http.StatusOK, blocks, utils.NewPagination(total, page, limit))
}

// GetRoomsByBlock (GET /api/blocks/:id/rooms)
func (ctrl *AvailabilityController) GetRoomsByBlock(c *gin.Context) {
	blockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	level, ok := parseFloorLevelQuery(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	rooms, total, err := ctrl.AvailabilitySvc.RoomsByBlock(blockID, level, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if limit <= 0 {
		limit = 20
	}
	utils.JSONPaginated(c, http.StatusOK, rooms, utils.NewPagination(total, page, limit))
}
