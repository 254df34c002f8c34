package models

import (
	"gorm.io/gorm"
)

// Block is one hostel building. Blocks 1-15 house male students, 16-30
// female; the split is fixed at initialization time.
type Block struct {
	gorm.Model

	BlockNumber int    `json:"blockNumber" gorm:"column:block_number;uniqueIndex"`
	Gender      Gender `json:"gender" gorm:"type:varchar(10)"`
	IsActive    bool   `json:"isActive" gorm:"column:is_active;default:true"`

	Floors []Floor `gorm:"foreignKey:BlockID" json:"floors,omitempty"`
}
