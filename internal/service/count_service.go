package service

import (
	"context"

	"waste-service/internal/model"
	"waste-service/internal/repository"
)

type CountService struct {
	vehicleRepo    *repository.VehicleRepository
	wastePointRepo *repository.WastePointRepository
}

func NewCountService(vehicleRepo *repository.VehicleRepository, wastePointRepo *repository.WastePointRepository) *CountService {
	return &CountService{
		vehicleRepo:    vehicleRepo,
		wastePointRepo: wastePointRepo,
	}
}

func (s *CountService) Counts(ctx context.Context) (model.Counts, error) {
	vehicles, err := s.vehicleRepo.Count(ctx)
	if err != nil {
		return model.Counts{}, err
	}

	wastePoints, err := s.wastePointRepo.Count(ctx)
	if err != nil {
		return model.Counts{}, err
	}

	// no route table exists yet
	return model.Counts{
		Vehicles:    vehicles,
		WastePoints: wastePoints,
		Routes:      0,
	}, nil
}
