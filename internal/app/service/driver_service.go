package service

import (
	"context"
	"errors"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

type DriverService struct {
	Repo domain.DriverRepo
}

func NewDriverService(repo domain.DriverRepo) *DriverService {
	return &DriverService{Repo: repo}
}

func (s *DriverService) CreateOrUpdateDriver(ctx context.Context, d model.Driver) error {
	return s.Repo.CreateOrUpdateDriver(ctx, d)
}

func (s *DriverService) GetAllDrivers(ctx context.Context) ([]model.Driver, error) {
	return s.Repo.GetAllDrivers(ctx)
}

func (s *DriverService) GetDriverByID(ctx context.Context, id int64) (model.Driver, error) {
	return s.Repo.GetDriverByID(ctx, id)
}

// Ensure registers the driver on first contact and returns the stored row.
func (s *DriverService) Ensure(ctx context.Context, d model.Driver) (model.Driver, error) {
	existing, err := s.Repo.GetDriverByID(ctx, d.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return d, err
	}
	if err := s.Repo.CreateOrUpdateDriver(ctx, d); err != nil {
		return d, err
	}
	return d, nil
}
