package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/alexanderramin/telos/internal/scheduler"
)

type levelingService struct {
	projects  repository.ProjectRepo
	resources repository.ResourceRepo
	tasks     repository.TaskRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewLevelingService(
	projects repository.ProjectRepo,
	resources repository.ResourceRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) LevelingService {
	return &levelingService{
		projects:  projects,
		resources: resources,
		tasks:     tasks,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Grid builds the resource x week allocation grid over weeks 1..TotalWeeks.
func (s *levelingService) Grid(ctx context.Context) (grid *app.LevelingGrid, err error) {
	done := track(ctx, s.observer, "leveling-grid", nil)
	defer func() { done(err) }()

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	resources, tasks, err := loadAllocation(ctx, s.resources, s.tasks)
	if err != nil {
		return nil, err
	}

	weeks := scheduler.TotalWeeks(projects, tasks)
	matrix := scheduler.BuildMatrix(resources, tasks)

	grid = &app.LevelingGrid{Weeks: weeks, Rows: make([]app.ResourceRow, 0, len(resources))}
	for _, r := range resources {
		row := app.ResourceRow{
			ResourceID: r.ID,
			Name:       r.Name,
			Capacity:   r.Capacity,
			Cells:      make([]app.GridCell, 0, weeks),
		}
		for week := 1; week <= weeks; week++ {
			cell := app.GridCell{Week: week}
			if c := matrix.Cell(r.ID, week); c != nil {
				cell.Hours = c.TotalHours
				for _, t := range c.Tasks {
					cell.TaskIDs = append(cell.TaskIDs, t.ID)
				}
			}
			cell.Load = scheduler.Classify(cell.Hours, r.Capacity)
			cell.Empty = scheduler.IsEmpty(cell.Hours)
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid, nil
}

// Suggest lists corrective actions for one cell. Cells that are not over
// capacity get an empty list.
func (s *levelingService) Suggest(ctx context.Context, req app.SuggestionsRequest) (resp *app.SuggestionsResponse, err error) {
	done := track(ctx, s.observer, "suggest-leveling", map[string]any{
		"resource": req.ResourceID,
		"week":     req.Week,
	})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	resources, tasks, err := loadAllocation(ctx, s.resources, s.tasks)
	if err != nil {
		return nil, err
	}
	return suggestFor(resources, tasks, req)
}

// Apply recomputes the suggestions for the cell and applies the one at
// req.Index. Only the target task is written.
func (s *levelingService) Apply(ctx context.Context, req app.ApplySuggestionRequest) (resp *app.ApplySuggestionResponse, err error) {
	done := track(ctx, s.observer, "apply-suggestion", map[string]any{
		"resource": req.ResourceID,
		"week":     req.Week,
		"index":    req.Index,
	})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		resources, tasks, err := loadAllocation(ctx, repository.NewSQLiteResourceRepo(tx), txTasks)
		if err != nil {
			return err
		}

		current, err := suggestFor(resources, tasks, app.SuggestionsRequest{ResourceID: req.ResourceID, Week: req.Week})
		if err != nil {
			return err
		}
		if req.Index >= len(current.Suggestions) {
			return &app.LevelingError{
				Code:    app.LevelingErrUnknownSuggestion,
				Message: fmt.Sprintf("%s week %d has %d suggestions, index %d", req.ResourceID, req.Week, len(current.Suggestions), req.Index),
			}
		}
		view := current.Suggestions[req.Index]

		task := domain.FindTask(tasks, view.TaskID)
		if task == nil {
			return fmt.Errorf("task %q: %w", view.TaskID, domain.ErrNotFound)
		}
		suggestion := scheduler.Suggestion{
			Kind:             view.Kind,
			TaskID:           view.TaskID,
			TargetResourceID: view.TargetResourceID,
		}
		suggestion.ApplyTo(task)
		if err := txTasks.Update(ctx, task); err != nil {
			return fmt.Errorf("updating task %q: %w", task.Name, err)
		}

		resp = &app.ApplySuggestionResponse{Applied: view, Task: *task}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func loadAllocation(ctx context.Context, resourceRepo repository.ResourceRepo, taskRepo repository.TaskRepo) ([]domain.Resource, []domain.Task, error) {
	resources, err := resourceRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing resources: %w", err)
	}
	tasks, err := taskRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing tasks: %w", err)
	}
	return resources, tasks, nil
}

func suggestFor(resources []domain.Resource, tasks []domain.Task, req app.SuggestionsRequest) (*app.SuggestionsResponse, error) {
	resource := domain.FindResource(resources, req.ResourceID)
	if resource == nil {
		return nil, &app.LevelingError{
			Code:    app.LevelingErrInvalidCell,
			Message: fmt.Sprintf("%s week %d: unknown resource", req.ResourceID, req.Week),
		}
	}

	matrix := scheduler.BuildMatrix(resources, tasks)
	suggestions := scheduler.Suggest(resources, matrix, req.ResourceID, req.Week)

	resp := &app.SuggestionsResponse{
		ResourceID:  req.ResourceID,
		Week:        req.Week,
		Hours:       matrix.Hours(req.ResourceID, req.Week),
		Capacity:    resource.Capacity,
		Suggestions: make([]app.SuggestionView, 0, len(suggestions)),
	}
	for i, sg := range suggestions {
		resp.Suggestions = append(resp.Suggestions, app.SuggestionView{
			Index:              i,
			Kind:               sg.Kind,
			TaskID:             sg.TaskID,
			TaskName:           sg.TaskName,
			TargetResourceID:   sg.TargetResourceID,
			TargetResourceName: sg.TargetResourceName,
			Message:            sg.Message,
		})
	}
	return resp, nil
}
