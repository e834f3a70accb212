package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/alexanderramin/telos/internal/testutil"
)

type testRepos struct {
	db        *sql.DB
	uow       db.UnitOfWork
	drivers   *repository.SQLiteDriverRepo
	projects  *repository.SQLiteProjectRepo
	resources *repository.SQLiteResourceRepo
	tasks     *repository.SQLiteTaskRepo
	scenarios *repository.SQLiteScenarioRepo
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testRepos{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		drivers:   repository.NewSQLiteDriverRepo(database),
		projects:  repository.NewSQLiteProjectRepo(database),
		resources: repository.NewSQLiteResourceRepo(database),
		tasks:     repository.NewSQLiteTaskRepo(database),
		scenarios: repository.NewSQLiteScenarioRepo(database),
	}
}

// seeded returns repos over a database holding the sample portfolio.
func seeded(t *testing.T) *testRepos {
	t.Helper()
	r := setupRepos(t)
	if _, err := NewSeedService(r.uow).SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	return r
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}

func appAdjust(projectID string, delay int) app.AdjustScenarioRequest {
	return app.AdjustScenarioRequest{ProjectID: projectID, Delay: delay}
}
