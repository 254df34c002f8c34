package controllers

import (
	"net/http"
	"strings"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentSvc *services.StudentService
}

func NewStudentController(svc *services.StudentService) *StudentController {
	return &StudentController{StudentSvc: svc}
}

type createStudentRequest struct {
	AdmissionNumber string `json:"admissionNumber" binding:"required"`
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Gender          string `json:"gender" binding:"required"`
}

func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	gender := models.Gender(strings.ToUpper(strings.TrimSpace(req.Gender)))
	if !gender.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid gender")
		return
	}

	student := models.Student{
		AdmissionNumber: strings.TrimSpace(req.AdmissionNumber),
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Gender:          gender,
	}
	if err := ctrl.StudentSvc.Create(&student); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, student)
}

func (ctrl *StudentController) GetStudentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := ctrl.StudentSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}

func (ctrl *StudentController) GetStudents(c *gin.Context) {
	page, limit := parsePagination(c)
	students, total, err := ctrl.StudentSvc.List(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if limit <= 0 {
		limit = 10
	}
	utils.JSONPaginated(c, http.StatusOK, students, utils.NewPagination(total, page, limit))
}
