package model

import (
	"time"
)

type PointType string

const (
	PointTypeStart PointType = "start"
	PointTypeEnd   PointType = "end"
)

func (p PointType) Valid() bool {
	return p == PointTypeStart || p == PointTypeEnd
}

// StartEndPoint is a route anchor. At most one row exists per PointType;
// the unique index on point_type is created by the schema migration.
type StartEndPoint struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PointType PointType `gorm:"type:varchar(16);not null" json:"point_type"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (StartEndPoint) TableName() string {
	return "start_end_points"
}
