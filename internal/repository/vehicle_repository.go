package repository

import (
	"context"

	"gorm.io/gorm"

	"waste-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles := make([]model.Vehicle, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Delete removes the vehicle and returns gorm.ErrRecordNotFound when no row
// matched.
func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &model.Vehicle{}, id)
}

func (r *VehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Vehicle{}).Count(&count).Error
	return count, err
}

func deleteByID(ctx context.Context, db *gorm.DB, value interface{}, id uint) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
