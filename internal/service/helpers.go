package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
)

// portfolioRepos groups the four collection repositories bound to one
// connection or transaction.
type portfolioRepos struct {
	drivers   repository.DriverRepo
	projects  repository.ProjectRepo
	resources repository.ResourceRepo
	tasks     repository.TaskRepo
	scenarios repository.ScenarioRepo
}

func txRepos(tx db.DBTX) portfolioRepos {
	return portfolioRepos{
		drivers:   repository.NewSQLiteDriverRepo(tx),
		projects:  repository.NewSQLiteProjectRepo(tx),
		resources: repository.NewSQLiteResourceRepo(tx),
		tasks:     repository.NewSQLiteTaskRepo(tx),
		scenarios: repository.NewSQLiteScenarioRepo(tx),
	}
}

// load reads every collection in display order.
func (r portfolioRepos) load(ctx context.Context) (*domain.Portfolio, error) {
	drivers, err := r.drivers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing drivers: %w", err)
	}
	projects, err := r.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	resources, err := r.resources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	tasks, err := r.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return &domain.Portfolio{Drivers: drivers, Projects: projects, Resources: resources, Tasks: tasks}, nil
}

func (r portfolioRepos) counts(ctx context.Context) (app.ImportResult, error) {
	var res app.ImportResult
	var err error
	if res.DriverCount, err = r.drivers.Count(ctx); err != nil {
		return res, err
	}
	if res.ProjectCount, err = r.projects.Count(ctx); err != nil {
		return res, err
	}
	if res.ResourceCount, err = r.resources.Count(ctx); err != nil {
		return res, err
	}
	if res.TaskCount, err = r.tasks.Count(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// replace deletes every row and writes p in its place. Callers run it inside
// a transaction so a failure part way leaves the previous portfolio intact.
func (r portfolioRepos) replace(ctx context.Context, p *domain.Portfolio) (app.ImportResult, error) {
	if err := r.scenarios.DeleteAll(ctx); err != nil {
		return app.ImportResult{}, err
	}
	if err := r.tasks.DeleteAll(ctx); err != nil {
		return app.ImportResult{}, err
	}
	if err := r.projects.DeleteAll(ctx); err != nil {
		return app.ImportResult{}, err
	}
	if err := r.resources.DeleteAll(ctx); err != nil {
		return app.ImportResult{}, err
	}
	if err := r.drivers.DeleteAll(ctx); err != nil {
		return app.ImportResult{}, err
	}

	for i := range p.Drivers {
		if err := r.drivers.Create(ctx, &p.Drivers[i]); err != nil {
			return app.ImportResult{}, fmt.Errorf("creating driver %q: %w", p.Drivers[i].Name, err)
		}
	}
	for i := range p.Projects {
		if err := r.projects.Create(ctx, &p.Projects[i]); err != nil {
			return app.ImportResult{}, fmt.Errorf("creating project %q: %w", p.Projects[i].Name, err)
		}
	}
	for i := range p.Resources {
		if err := r.resources.Create(ctx, &p.Resources[i]); err != nil {
			return app.ImportResult{}, fmt.Errorf("creating resource %q: %w", p.Resources[i].Name, err)
		}
	}
	for i := range p.Tasks {
		if err := r.tasks.Create(ctx, &p.Tasks[i]); err != nil {
			return app.ImportResult{}, fmt.Errorf("creating task %q: %w", p.Tasks[i].Name, err)
		}
	}

	d, pr, res, t := p.Counts()
	return app.ImportResult{DriverCount: d, ProjectCount: pr, ResourceCount: res, TaskCount: t}, nil
}

// reference turns a not-found lookup into a field validation error so a bad
// ID in a request reads as a client mistake rather than a missing entity.
func reference(field, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ValidationError{Field: field, Value: id, Message: "references an unknown " + entity}
	}
	return err
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	ve := make(domain.ValidationErrors, 0, len(errs))
	for _, e := range errs {
		var v domain.ValidationError
		if errors.As(e, &v) {
			ve = append(ve, v)
		} else {
			ve = append(ve, domain.ValidationError{Field: "import", Message: e.Error()})
		}
	}
	return &importValidationError{msg: msg, errs: ve}
}

// importValidationError keeps the readable summary while still matching
// domain.IsValidation through Unwrap.
type importValidationError struct {
	msg  string
	errs domain.ValidationErrors
}

func (e *importValidationError) Error() string { return e.msg }
func (e *importValidationError) Unwrap() error { return e.errs }
