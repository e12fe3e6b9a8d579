package model

import (
	"time"
)

type Vehicle struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Plate     string    `gorm:"type:varchar(32);not null" json:"plate"`
	Brand     *string   `gorm:"type:varchar(64)" json:"brand"`
	Model     *string   `gorm:"type:varchar(64)" json:"model"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
