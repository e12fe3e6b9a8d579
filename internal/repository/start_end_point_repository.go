package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"waste-service/internal/model"
)

type StartEndPointRepository struct {
	db *gorm.DB
}

func NewStartEndPointRepository(db *gorm.DB) *StartEndPointRepository {
	return &StartEndPointRepository{db: db}
}

// GetByType returns nil, nil when no anchor of that type is stored.
func (r *StartEndPointRepository) GetByType(ctx context.Context, pointType model.PointType) (*model.StartEndPoint, error) {
	var point model.StartEndPoint
	err := r.db.WithContext(ctx).
		Where("point_type = ?", pointType).
		First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

// Upsert writes the coordinates for pointType in one statement keyed on the
// unique point_type index, then reads the stored row back. created reports
// whether the row did not exist before the call.
func (r *StartEndPointRepository) Upsert(ctx context.Context, pointType model.PointType, latitude, longitude float64) (*model.StartEndPoint, bool, error) {
	var (
		stored  model.StartEndPoint
		created bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.StartEndPoint{}).
			Where("point_type = ?", pointType).
			Count(&existing).Error; err != nil {
			return err
		}
		created = existing == 0

		point := model.StartEndPoint{
			PointType: pointType,
			Latitude:  latitude,
			Longitude: longitude,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "point_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
		}).Create(&point).Error; err != nil {
			return err
		}

		return tx.Where("point_type = ?", pointType).First(&stored).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &stored, created, nil
}
