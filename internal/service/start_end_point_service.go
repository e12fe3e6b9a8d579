package service

import (
	"context"
	"fmt"

	"waste-service/internal/model"
	"waste-service/internal/repository"
)

type StartEndPointService struct {
	pointRepo *repository.StartEndPointRepository
}

func NewStartEndPointService(pointRepo *repository.StartEndPointRepository) *StartEndPointService {
	return &StartEndPointService{
		pointRepo: pointRepo,
	}
}

type UpsertPointInput struct {
	Latitude  *float64
	Longitude *float64
}

type UpsertResult struct {
	Point   *model.StartEndPoint
	Created bool
}

// Get returns nil without error when the anchor has not been configured.
func (s *StartEndPointService) Get(ctx context.Context, pointType model.PointType) (*model.StartEndPoint, error) {
	if !pointType.Valid() {
		return nil, fmt.Errorf("%w: unknown point type %q", ErrInvalidInput, pointType)
	}
	return s.pointRepo.GetByType(ctx, pointType)
}

func (s *StartEndPointService) Upsert(ctx context.Context, pointType model.PointType, input UpsertPointInput) (*UpsertResult, error) {
	switch {
	case !pointType.Valid():
		return nil, fmt.Errorf("%w: unknown point type %q", ErrInvalidInput, pointType)
	case input.Latitude == nil:
		return nil, fmt.Errorf("%w: latitude is required", ErrInvalidInput)
	case input.Longitude == nil:
		return nil, fmt.Errorf("%w: longitude is required", ErrInvalidInput)
	}

	point, created, err := s.pointRepo.Upsert(ctx, pointType, *input.Latitude, *input.Longitude)
	if err != nil {
		return nil, err
	}

	return &UpsertResult{Point: point, Created: created}, nil
}
