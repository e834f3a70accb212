package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignmentService_RanksSeedPortfolio(t *testing.T) {
	r := seeded(t)
	svc := NewAlignmentService(r.drivers, r.projects)

	resp, err := svc.Rank(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 26, resp.TotalWeight)
	require.Len(t, resp.Drivers, 4)
	assert.Equal(t, "Increase ROI", resp.Drivers[0].Name)

	require.Len(t, resp.Projects, 4)
	// 185/26, 174/26, 169/26, 160/26
	wantOrder := []string{"p1", "p3", "p4", "p2"}
	for i, id := range wantOrder {
		assert.Equal(t, id, resp.Projects[i].ProjectID, "rank %d", i+1)
		assert.Equal(t, i+1, resp.Projects[i].Rank)
	}
	assert.InDelta(t, 185.0/26.0, resp.Projects[0].Score, 1e-9)
	assert.Equal(t, "Next-gen customer relationship management platform.", resp.Projects[0].Description)
}

func TestAlignmentService_ReweightingReorders(t *testing.T) {
	r := seeded(t)
	ctx := context.Background()
	drivers := NewDriverService(r.drivers)
	svc := NewAlignmentService(r.drivers, r.projects)

	// Only risk reduction counts: Nebula (9) leads.
	for id, w := range map[string]int{"d1": 0, "d2": 0, "d3": 10, "d4": 0} {
		require.NoError(t, drivers.SetWeight(ctx, id, w))
	}

	resp, err := svc.Rank(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p2", resp.Projects[0].ProjectID)
	assert.InDelta(t, 9.0, resp.Projects[0].Score, 1e-9)
}

func TestAlignmentService_AllWeightsZero(t *testing.T) {
	r := seeded(t)
	ctx := context.Background()
	drivers := NewDriverService(r.drivers)
	for _, id := range []string{"d1", "d2", "d3", "d4"} {
		require.NoError(t, drivers.SetWeight(ctx, id, 0))
	}

	resp, err := NewAlignmentService(r.drivers, r.projects).Rank(ctx)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalWeight)
	for i, p := range resp.Projects {
		assert.Zero(t, p.Score)
		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}[i], p.ProjectID, "ties keep display order")
	}
}

func TestAlignmentService_EmptyDatabase(t *testing.T) {
	r := setupRepos(t)
	resp, err := NewAlignmentService(r.drivers, r.projects).Rank(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Projects)
	assert.Empty(t, resp.Drivers)
}
