package controllers

import (
	"net/http"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type StructureController struct {
	StructureSvc *services.StructureService
}

func NewStructureController(svc *services.StructureService) *StructureController {
	return &StructureController{StructureSvc: svc}
}

// InitializeStructure builds the full block/floor/room/bed hierarchy.
// A second call conflicts and writes nothing.
func (ctrl *StructureController) InitializeStructure(c *gin.Context) {
	if err := ctrl.StructureSvc.Initialize(); err != nil {
		respondServiceError(c, err)
		return
	}

	summary, err := ctrl.StructureSvc.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, summary)
}

func (ctrl *StructureController) GetStructureSummary(c *gin.Context) {
	summary, err := ctrl.StructureSvc.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
