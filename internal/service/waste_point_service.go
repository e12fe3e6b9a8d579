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

type WastePointService struct {
	wastePointRepo *repository.WastePointRepository
}

func NewWastePointService(wastePointRepo *repository.WastePointRepository) *WastePointService {
	return &WastePointService{
		wastePointRepo: wastePointRepo,
	}
}

// Coordinates are pointers so that 0 stays a valid latitude and only a
// missing field is rejected.
type CreateWastePointInput struct {
	Name      string
	Latitude  *float64
	Longitude *float64
}

func (s *WastePointService) List(ctx context.Context) ([]model.WastePoint, error) {
	return s.wastePointRepo.List(ctx)
}

func (s *WastePointService) Create(ctx context.Context, input CreateWastePointInput) (*model.WastePoint, error) {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case input.Latitude == nil:
		return nil, fmt.Errorf("%w: latitude is required", ErrInvalidInput)
	case input.Longitude == nil:
		return nil, fmt.Errorf("%w: longitude is required", ErrInvalidInput)
	}

	point := &model.WastePoint{
		Name:      input.Name,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
	}

	if err := s.wastePointRepo.Create(ctx, point); err != nil {
		return nil, err
	}

	return point, nil
}

func (s *WastePointService) Delete(ctx context.Context, id uint) error {
	if err := s.wastePointRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("waste point %w", ErrNotFound)
		}
		return err
	}
	return nil
}
