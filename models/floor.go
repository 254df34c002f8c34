package models

import (
	"gorm.io/gorm"
)

type Floor struct {
	gorm.Model

	BlockID     uint       `json:"blockId" gorm:"column:block_id;index"`
	FloorLevel  FloorLevel `json:"floorLevel" gorm:"column:floor_level;type:varchar(10)"`
	FloorNumber int        `json:"floorNumber" gorm:"column:floor_number"`

	Block Block  `gorm:"foreignKey:BlockID" json:"block,omitempty"`
	Rooms []Room `gorm:"foreignKey:FloorID" json:"rooms,omitempty"`
}
