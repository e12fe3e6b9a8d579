package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"waste-service/internal/model"
	"waste-service/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
	}
}

type CreateVehicleInput struct {
	Plate string
	Brand *string
	Model *string
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (*model.Vehicle, error) {
	if strings.TrimSpace(input.Plate) == "" {
		return nil, fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}

	vehicle := &model.Vehicle{
		Plate: input.Plate,
		Brand: input.Brand,
		Model: input.Model,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("vehicle %w", ErrNotFound)
		}
		return err
	}
	return nil
}
