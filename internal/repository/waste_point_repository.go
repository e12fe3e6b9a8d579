package repository

import (
	"context"

	"gorm.io/gorm"

	"waste-service/internal/model"
)

type WastePointRepository struct {
	db *gorm.DB
}

func NewWastePointRepository(db *gorm.DB) *WastePointRepository {
	return &WastePointRepository{db: db}
}

func (r *WastePointRepository) Create(ctx context.Context, point *model.WastePoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *WastePointRepository) List(ctx context.Context) ([]model.WastePoint, error) {
	points := make([]model.WastePoint, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (r *WastePointRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &model.WastePoint{}, id)
}

func (r *WastePointRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WastePoint{}).Count(&count).Error
	return count, err
}
