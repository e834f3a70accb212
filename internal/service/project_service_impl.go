package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	drivers  repository.DriverRepo
	uow      db.UnitOfWork
}

func NewProjectService(projects repository.ProjectRepo, drivers repository.DriverRepo, uow db.UnitOfWork) ProjectService {
	return &projectService{projects: projects, drivers: drivers, uow: uow}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := checkScoreDrivers(ctx, repository.NewSQLiteDriverRepo(tx), p); err != nil {
			return err
		}
		return repository.NewSQLiteProjectRepo(tx).Create(ctx, p)
	})
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Update replaces the project's fields and its full score list.
func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := checkScoreDrivers(ctx, repository.NewSQLiteDriverRepo(tx), p); err != nil {
			return err
		}
		return repository.NewSQLiteProjectRepo(tx).Update(ctx, p)
	})
}

func (s *projectService) SetScore(ctx context.Context, projectID, driverID string, score int) error {
	if score < domain.MinScore || score > domain.MaxScore {
		return domain.ValidationError{
			Field:   "project.score",
			Value:   score,
			Message: fmt.Sprintf("must be between %d and %d", domain.MinScore, domain.MaxScore),
		}
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.drivers.GetByID(ctx, driverID); err != nil {
		return reference("project.scores.driver_id", "driver", driverID, err)
	}
	return s.projects.SetScore(ctx, projectID, driverID, score)
}

// Delete removes the project with its tasks, scores and scenario adjustment.
func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func checkScoreDrivers(ctx context.Context, drivers repository.DriverRepo, p *domain.Project) error {
	for i, sc := range p.Scores {
		if _, err := drivers.GetByID(ctx, sc.DriverID); err != nil {
			return reference(fmt.Sprintf("project.scores[%d].driver_id", i), "driver", sc.DriverID, err)
		}
	}
	return nil
}
