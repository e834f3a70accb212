package repository

import (
	"context"

	"github.com/alexanderramin/telos/internal/domain"
)

// Lookups return an error wrapping domain.ErrNotFound when the row is absent.
// List methods return rows in display order (first insertion first).

type DriverRepo interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	Update(ctx context.Context, d *domain.Driver) error
	UpdateWeight(ctx context.Context, id string, weight int) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// ProjectRepo persists projects together with their driver scores.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetScore(ctx context.Context, projectID, driverID string, score int) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	ListByResource(ctx context.Context, resourceID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// ScenarioRepo persists the scenario working copy as per-project overrides.
// Projects without a row are unadjusted.
type ScenarioRepo interface {
	Upsert(ctx context.Context, a domain.ScenarioAdjustment) error
	Get(ctx context.Context, projectID string) (*domain.ScenarioAdjustment, error)
	List(ctx context.Context) ([]domain.ScenarioAdjustment, error)
	Delete(ctx context.Context, projectID string) error
	DeleteAll(ctx context.Context) error
}
