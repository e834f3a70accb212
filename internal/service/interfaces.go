package service

import (
	"context"
	"io"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/importer"
)

type DriverService interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	Update(ctx context.Context, d *domain.Driver) error
	SetWeight(ctx context.Context, id string, weight int) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetScore(ctx context.Context, projectID, driverID string, score int) error
	Delete(ctx context.Context, id string) error
}

type ResourceService interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	ListByResource(ctx context.Context, resourceID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type AlignmentService interface {
	app.AlignmentUseCase
}

type LevelingService interface {
	app.LevelingUseCase
}

type ScenarioService interface {
	app.ScenarioUseCase
}

type ExportService interface {
	app.ExportUseCase
	// ExportSchema writes the portfolio as an import file in the given format.
	ExportSchema(ctx context.Context, w io.Writer, format importer.Format) error
	Snapshot(ctx context.Context) (*domain.Portfolio, error)
}

type ImportService interface {
	app.ImportPortfolioUseCase
}

type SeedService interface {
	app.SeedUseCase
	// Reseed replaces the whole portfolio with the sample data.
	Reseed(ctx context.Context) (*app.SeedResult, error)
}
