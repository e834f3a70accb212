package service

import (
	"context"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/google/uuid"
)

type resourceService struct {
	resources repository.ResourceRepo
}

func NewResourceService(resources repository.ResourceRepo) ResourceService {
	return &resourceService{resources: resources}
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if err := r.Validate(); err != nil {
		return err
	}
	return s.resources.Create(ctx, r)
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return s.resources.GetByID(ctx, id)
}

func (s *resourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.resources.List(ctx)
}

func (s *resourceService) Update(ctx context.Context, r *domain.Resource) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.resources.Update(ctx, r)
}

// Delete removes the resource; its tasks become unassigned.
func (s *resourceService) Delete(ctx context.Context, id string) error {
	return s.resources.Delete(ctx, id)
}
