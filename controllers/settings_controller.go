package controllers

import (
	"errors"
	"net/http"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type hostelSettingsPayload struct {
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Amenities datatypes.JSON `json:"amenities"`
}

func GetHostelSettings(c *gin.Context) {
	var hostel models.HostelSetting
	if err := config.DB.First(&hostel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONSuccess(c, http.StatusOK, models.HostelSetting{})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hostel)
}

func UpdateHostelSettings(c *gin.Context) {
	var payload hostelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var hostel models.HostelSetting
	err := config.DB.First(&hostel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hostel = models.HostelSetting{
				Name:      payload.Name,
				Address:   payload.Address,
				Phone:     payload.Phone,
				Email:     payload.Email,
				Amenities: payload.Amenities,
			}
			if err := config.DB.Create(&hostel).Error; err != nil {
				utils.JSONError(c, http.StatusInternalServerError, err.Error())
				return
			}
			utils.JSONSuccess(c, http.StatusOK, hostel)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	hostel.Name = payload.Name
	hostel.Address = payload.Address
	hostel.Phone = payload.Phone
	hostel.Email = payload.Email
	hostel.Amenities = payload.Amenities

	if err := config.DB.Save(&hostel).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hostel)
}
