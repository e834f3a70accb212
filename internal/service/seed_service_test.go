package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_SeedsEmptyDatabaseOnce(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewSeedService(r.uow)

	first, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, first.Seeded)
	assert.Equal(t, app.ImportResult{DriverCount: 4, ProjectCount: 4, ResourceCount: 4, TaskCount: 12}, first.Counts)

	second, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, second.Seeded)
	assert.Equal(t, first.Counts, second.Counts)
}

func TestSeedService_SkipsWhenAnythingExists(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	testutil.InsertPortfolio(t, r.db)

	res, err := NewSeedService(r.uow).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, res.Seeded)
	assert.Equal(t, 2, res.Counts.DriverCount)
}

func TestSeedService_Reseed(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	testutil.InsertPortfolio(t, r.db)

	res, err := NewSeedService(r.uow).Reseed(ctx)
	require.NoError(t, err)
	assert.True(t, res.Seeded)

	drivers, err := r.drivers.List(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 4)
	assert.Equal(t, "d1", drivers[0].ID)
}

func TestSeedService_RollbackOnWriteFailure(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	failUoW := &testutil.FailOnNthExecUoW{DB: r.db, FailOn: 10, Err: fmt.Errorf("injected seed failure")}

	_, err := NewSeedService(failUoW).SeedIfEmpty(ctx)
	require.Error(t, err)

	for _, count := range []func(context.Context) (int, error){r.drivers.Count, r.projects.Count, r.resources.Count, r.tasks.Count} {
		n, err := count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}
