package models

import (
	"gorm.io/gorm"
)

type Student struct {
	gorm.Model

	AdmissionNumber string `json:"admissionNumber" gorm:"column:admission_number;uniqueIndex;type:varchar(50)"`
	FullName        string `json:"fullName" gorm:"column:full_name"`
	Email           string `json:"email" gorm:"size:150"`
	Phone           string `json:"phone" gorm:"size:50"`
	Gender          Gender `json:"gender" gorm:"type:varchar(10)"`
}
