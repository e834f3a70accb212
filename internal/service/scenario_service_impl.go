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

type scenarioService struct {
	projects  repository.ProjectRepo
	scenarios repository.ScenarioRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScenarioService(
	projects repository.ProjectRepo,
	scenarios repository.ScenarioRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScenarioService {
	return &scenarioService{
		projects:  projects,
		scenarios: scenarios,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Show compares the baseline portfolio with the scenario working copy.
func (s *scenarioService) Show(ctx context.Context) (view *app.ScenarioView, err error) {
	done := track(ctx, s.observer, "show-scenario", nil)
	defer func() { done(err) }()

	return s.view(ctx)
}

func (s *scenarioService) view(ctx context.Context) (*app.ScenarioView, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	adjustments, err := s.scenarios.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing scenario adjustments: %w", err)
	}
	return buildScenarioView(projects, adjustments), nil
}

// Adjust sets one project's delay and budget change in the scenario. The
// values replace any earlier adjustment; zeros remove it.
func (s *scenarioService) Adjust(ctx context.Context, req app.AdjustScenarioRequest) (view *app.ScenarioView, err error) {
	done := track(ctx, s.observer, "adjust-scenario", map[string]any{
		"project":       req.ProjectID,
		"delay":         req.Delay,
		"budget_change": req.BudgetChange,
	})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		project, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, req.ProjectID)
		if err != nil {
			return err
		}
		adj := domain.ScenarioAdjustment{ProjectID: req.ProjectID, Delay: req.Delay, BudgetChange: req.BudgetChange}
		if err := adj.ValidateAgainst(project); err != nil {
			return err
		}
		return repository.NewSQLiteScenarioRepo(tx).Upsert(ctx, adj)
	})
	if err != nil {
		return nil, err
	}
	return s.view(ctx)
}

// Reset discards every adjustment. The baseline is untouched.
func (s *scenarioService) Reset(ctx context.Context) (err error) {
	done := track(ctx, s.observer, "reset-scenario", nil)
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScenarioRepo(tx).DeleteAll(ctx)
	})
}

func buildScenarioView(projects []domain.Project, adjustments []domain.ScenarioAdjustment) *app.ScenarioView {
	scenario := scheduler.BuildScenario(projects, adjustments)
	view := &app.ScenarioView{
		Baseline: metricsView(scheduler.BaselineMetrics(projects)),
		Scenario: metricsView(scheduler.ScenarioMetrics(scenario)),
		Projects: make([]app.ScenarioProjectView, 0, len(scenario)),
	}
	for _, sp := range scenario {
		view.Projects = append(view.Projects, app.ScenarioProjectView{
			ProjectID:       sp.Project.ID,
			Name:            sp.Project.Name,
			Delay:           sp.Delay,
			BudgetChange:    sp.BudgetChange,
			Budget:          sp.Project.Budget,
			ScenarioBudget:  sp.ScenarioBudget(),
			Risk:            sp.Project.Risk,
			AdjustedRisk:    sp.AdjustedRisk,
			EndWeek:         sp.Project.EndWeek(),
			ScenarioEndWeek: sp.ScenarioEndWeek(),
		})
	}
	return view
}

func metricsView(m scheduler.PortfolioMetrics) app.PortfolioMetrics {
	return app.PortfolioMetrics{TotalBudget: m.TotalBudget, Timeline: m.Timeline, AvgRisk: m.AvgRisk}
}
