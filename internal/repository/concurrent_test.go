package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite lists tasks from several goroutines
// while a writer adds them one by one, as the HTTP server does when the TUI
// or CLI writes to the same file.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	resources := NewSQLiteResourceRepo(database)
	tasks := NewSQLiteTaskRepo(database)

	proj := testutil.NewTestProject("ReadWrite")
	require.NoError(t, projects.Create(ctx, proj))
	res := testutil.NewTestResource("Alice", 40)
	require.NoError(t, resources.Create(ctx, res))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			task := testutil.NewTestTask(proj.ID, fmt.Sprintf("Task-%d", i),
				testutil.WithResource(res.ID),
				testutil.WithWeeks(i+1, 2),
			)
			if err := tasks.Create(ctx, task); err != nil {
				t.Errorf("writer: create task %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := tasks.ListByResource(ctx, res.ID)
				if err != nil {
					t.Errorf("reader %d: list tasks: %v", reader, err)
					return
				}
				for _, task := range list {
					if task.ID == "" || task.ProjectID != proj.ID {
						t.Errorf("reader %d: got half-written task %+v", reader, task)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	list, err := tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
	for i, task := range list {
		assert.Equal(t, fmt.Sprintf("Task-%d", i), task.Name, "positions follow insertion order")
	}
}
