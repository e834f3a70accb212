package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverRepo_CRUD(t *testing.T) {
	repo := NewSQLiteDriverRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDriver("Increase ROI", 8)
	require.NoError(t, repo.Create(ctx, d))

	require.NoError(t, repo.UpdateWeight(ctx, d.ID, 3))
	fetched, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fetched.Weight)

	fetched.Name = "ROI"
	require.NoError(t, repo.Update(ctx, fetched))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ROI", list[0].Name)

	assert.Error(t, repo.UpdateWeight(ctx, d.ID, 11), "weight is checked by the schema")
	assert.ErrorIs(t, repo.UpdateWeight(ctx, "ghost", 5), domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, d.ID))
	_, err = repo.GetByID(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceRepo_CRUD(t *testing.T) {
	repo := NewSQLiteResourceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	alice := testutil.NewTestResource("Alice", 40)
	charlie := testutil.NewTestResource("Charlie", 30)
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, charlie))

	charlie.Capacity = 32
	require.NoError(t, repo.Update(ctx, charlie))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Name)
	assert.InDelta(t, 32.0, list[1].Capacity, 1e-9)

	bad := testutil.NewTestResource("Nobody", 0)
	assert.Error(t, repo.Create(ctx, bad), "capacity must be positive")

	require.NoError(t, repo.DeleteAll(ctx))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTaskRepo_CRUD(t *testing.T) {
	database := testutil.NewTestDB(t)
	fx := testutil.InsertPortfolio(t, database)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	unassigned := testutil.NewTestTask(fx.Project.ID, "Research", testutil.WithWeeks(3, 2))
	require.NoError(t, repo.Create(ctx, unassigned))

	fetched, err := repo.GetByID(ctx, unassigned.ID)
	require.NoError(t, err)
	assert.Equal(t, "", fetched.ResourceID, "NULL resource reads back as unassigned")
	assert.Equal(t, *unassigned, *fetched)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Design", all[0].Name)
	assert.Equal(t, "Research", all[2].Name)

	byProject, err := repo.ListByProject(ctx, fx.Project.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 3)

	byAlice, err := repo.ListByResource(ctx, fx.Resources[0].ID)
	require.NoError(t, err)
	assert.Len(t, byAlice, 2)

	fetched.ResourceID = fx.Resources[1].ID
	fetched.StartWeek = 4
	require.NoError(t, repo.Update(ctx, fetched))
	again, err := repo.GetByID(ctx, fetched.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.Resources[1].ID, again.ResourceID)
	assert.Equal(t, 4, again.StartWeek)

	ghost := testutil.NewTestTask(fx.Project.ID, "Ghost", testutil.WithResource("nobody"))
	assert.Error(t, repo.Create(ctx, ghost), "resource must exist")

	require.NoError(t, repo.Delete(ctx, fetched.ID))
	assert.ErrorIs(t, repo.Delete(ctx, fetched.ID), domain.ErrNotFound)
}

func TestScenarioRepo_UpsertListReset(t *testing.T) {
	database := testutil.NewTestDB(t)
	fx := testutil.InsertPortfolio(t, database)
	repo := NewSQLiteScenarioRepo(database)
	ctx := context.Background()

	adj := domain.ScenarioAdjustment{ProjectID: fx.Project.ID, Delay: 3, BudgetChange: -5000}
	require.NoError(t, repo.Upsert(ctx, adj))
	adj.Delay = 4
	require.NoError(t, repo.Upsert(ctx, adj))

	got, err := repo.Get(ctx, fx.Project.ID)
	require.NoError(t, err)
	assert.Equal(t, adj, *got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ScenarioAdjustment{adj}, list)

	require.NoError(t, repo.Upsert(ctx, domain.ScenarioAdjustment{ProjectID: fx.Project.ID}))
	_, err = repo.Get(ctx, fx.Project.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "zero adjustment clears the row")

	require.NoError(t, repo.Upsert(ctx, adj))
	require.NoError(t, repo.DeleteAll(ctx))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.Error(t, repo.Upsert(ctx, domain.ScenarioAdjustment{ProjectID: fx.Project.ID, Delay: 27}), "delay is bounded")
}
