package service

import (
	"context"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks     repository.TaskRepo
	projects  repository.ProjectRepo
	resources repository.ResourceRepo
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo, resources repository.ResourceRepo) TaskService {
	return &taskService{tasks: tasks, projects: projects, resources: resources}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if err := s.validate(ctx, t); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) ListByResource(ctx context.Context, resourceID string) ([]domain.Task, error) {
	return s.tasks.ListByResource(ctx, resourceID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := s.validate(ctx, t); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// validate checks the task's fields and that its project and resource exist.
func (s *taskService) validate(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		return reference("task.project_id", "project", t.ProjectID, err)
	}
	if t.IsAssigned() {
		if _, err := s.resources.GetByID(ctx, t.ResourceID); err != nil {
			return reference("task.resource_id", "resource", t.ResourceID, err)
		}
	}
	return nil
}
