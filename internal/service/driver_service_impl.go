package service

import (
	"context"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/google/uuid"
)

type driverService struct {
	drivers  repository.DriverRepo
	observer UseCaseObserver
}

func NewDriverService(drivers repository.DriverRepo, observers ...UseCaseObserver) DriverService {
	return &driverService{drivers: drivers, observer: useCaseObserverOrNoop(observers)}
}

func (s *driverService) Create(ctx context.Context, d *domain.Driver) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if err := d.Validate(); err != nil {
		return err
	}
	return s.drivers.Create(ctx, d)
}

func (s *driverService) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	return s.drivers.GetByID(ctx, id)
}

func (s *driverService) List(ctx context.Context) ([]domain.Driver, error) {
	return s.drivers.List(ctx)
}

func (s *driverService) Update(ctx context.Context, d *domain.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return s.drivers.Update(ctx, d)
}

// SetWeight changes how much a driver counts in alignment scoring. Rankings
// are derived on read, so nothing else needs updating.
func (s *driverService) SetWeight(ctx context.Context, id string, weight int) (err error) {
	done := track(ctx, s.observer, "set-driver-weight", map[string]any{"driver": id, "weight": weight})
	defer func() { done(err) }()

	if err = domain.ValidateWeight(weight); err != nil {
		return err
	}
	return s.drivers.UpdateWeight(ctx, id, weight)
}

func (s *driverService) Delete(ctx context.Context, id string) error {
	return s.drivers.Delete(ctx, id)
}
