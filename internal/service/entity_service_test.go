package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverService_CreateGeneratesID(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewDriverService(r.drivers)

	d := &domain.Driver{Name: "Increase ROI", Weight: 8}
	require.NoError(t, svc.Create(ctx, d))
	assert.NotEmpty(t, d.ID, "UUID should be generated")

	fetched, err := svc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, *d, *fetched)
}

func TestDriverService_CreateRejectsInvalid(t *testing.T) {
	r := setupRepos(t)
	svc := NewDriverService(r.drivers)

	err := svc.Create(context.Background(), &domain.Driver{Name: "", Weight: 11})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestDriverService_SetWeight(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	obs := &recordingObserver{}
	svc := NewDriverService(r.drivers, obs)

	require.NoError(t, svc.SetWeight(ctx, fx.Drivers[0].ID, 0))
	d, err := svc.GetByID(ctx, fx.Drivers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Weight)
	assert.Equal(t, "set-driver-weight", obs.last().Name)
	assert.True(t, obs.last().Success)

	err = svc.SetWeight(ctx, fx.Drivers[0].ID, 11)
	assert.True(t, domain.IsValidation(err))
	assert.False(t, obs.last().Success)

	err = svc.SetWeight(ctx, "missing", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_CreateChecksScoreDrivers(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	svc := NewProjectService(r.projects, r.drivers, r.uow)

	p := testutil.NewTestProject("Zephyr", testutil.WithScore(fx.Drivers[0].ID, 7), testutil.WithScore("retired", 3))
	err := svc.Create(ctx, p)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "project.scores[1].driver_id")

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "nothing written on failure")

	p.Scores = p.Scores[:1]
	require.NoError(t, svc.Create(ctx, p))
	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Scores, fetched.Scores)
}

func TestProjectService_CreateRejectsInvalidFields(t *testing.T) {
	r := setupRepos(t)
	svc := NewProjectService(r.projects, r.drivers, r.uow)

	p := testutil.NewTestProject("Bad", testutil.WithRisk(11), testutil.WithBudget(-1))
	err := svc.Create(context.Background(), p)

	var ve domain.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve, 2)
}

func TestProjectService_UpdateReplacesScores(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	svc := NewProjectService(r.projects, r.drivers, r.uow)

	p := *fx.Project
	p.Name = "Apollo II"
	p.Scores = []domain.ProjectScore{{DriverID: fx.Drivers[1].ID, Score: 10}}
	require.NoError(t, svc.Update(ctx, &p))

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo II", fetched.Name)
	assert.Equal(t, p.Scores, fetched.Scores)
}

func TestProjectService_SetScore(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	svc := NewProjectService(r.projects, r.drivers, r.uow)

	require.NoError(t, svc.SetScore(ctx, fx.Project.ID, fx.Drivers[1].ID, 10))
	p, err := svc.GetByID(ctx, fx.Project.ID)
	require.NoError(t, err)
	score, ok := p.ScoreFor(fx.Drivers[1].ID)
	require.True(t, ok)
	assert.Equal(t, 10, score)

	assert.True(t, domain.IsValidation(svc.SetScore(ctx, fx.Project.ID, fx.Drivers[1].ID, 0)))
	assert.True(t, domain.IsValidation(svc.SetScore(ctx, fx.Project.ID, "retired", 5)))
	assert.ErrorIs(t, svc.SetScore(ctx, "missing", fx.Drivers[0].ID, 5), domain.ErrNotFound)
}

func TestTaskService_CreateChecksReferences(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	svc := NewTaskService(r.tasks, r.projects, r.resources)

	tests := []struct {
		name  string
		task  *domain.Task
		field string
	}{
		{"unknown project", testutil.NewTestTask("ghost", "Orphan"), "task.project_id"},
		{"unknown resource", testutil.NewTestTask(fx.Project.ID, "Lost", testutil.WithResource("nobody")), "task.resource_id"},
		{"zero duration", testutil.NewTestTask(fx.Project.ID, "Instant", testutil.WithWeeks(1, 0)), "task.duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, tt.task)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	ok := &domain.Task{ProjectID: fx.Project.ID, Name: "Unassigned", EstimatedHours: 10, StartWeek: 2, Duration: 1}
	require.NoError(t, svc.Create(ctx, ok))
	assert.NotEmpty(t, ok.ID)
}

func TestTaskService_ListByResource(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	svc := NewTaskService(r.tasks, r.projects, r.resources)

	alice, err := svc.ListByResource(ctx, fx.Resources[0].ID)
	require.NoError(t, err)
	assert.Len(t, alice, 2)

	bob, err := svc.ListByResource(ctx, fx.Resources[1].ID)
	require.NoError(t, err)
	assert.Empty(t, bob)
}

func TestResourceService_DeleteUnassignsTasks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	fx := testutil.InsertPortfolio(t, r.db)
	resources := NewResourceService(r.resources)
	tasks := NewTaskService(r.tasks, r.projects, r.resources)

	require.NoError(t, resources.Delete(ctx, fx.Resources[0].ID))

	list, err := tasks.ListByProject(ctx, fx.Project.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, task := range list {
		assert.False(t, task.IsAssigned(), "task %s should be unassigned", task.Name)
	}
}

func TestResourceService_CreateRejectsZeroCapacity(t *testing.T) {
	r := setupRepos(t)
	err := NewResourceService(r.resources).Create(context.Background(), &domain.Resource{Name: "Idle", Capacity: 0})
	assert.True(t, domain.IsValidation(err))
}
