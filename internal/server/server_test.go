package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/logging"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/alexanderramin/telos/internal/service"
	"github.com/alexanderramin/telos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	drivers := repository.NewSQLiteDriverRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	resources := repository.NewSQLiteResourceRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	scenarios := repository.NewSQLiteScenarioRepo(database)

	_, err := service.NewSeedService(uow).SeedIfEmpty(context.Background())
	require.NoError(t, err)

	srv := New(Config{
		Addr: "127.0.0.1:0",
		Log:  logging.Nop(),
		Services: Services{
			Drivers:   service.NewDriverService(drivers),
			Projects:  service.NewProjectService(projects, drivers, uow),
			Resources: service.NewResourceService(resources),
			Tasks:     service.NewTaskService(tasks, projects, resources),
			Alignment: service.NewAlignmentService(drivers, projects),
			Leveling:  service.NewLevelingService(projects, resources, tasks, uow),
			Scenario:  service.NewScenarioService(projects, scenarios, uow),
			Export:    service.NewExportService(drivers, projects, resources, tasks),
		},
	})
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRoutes_Registered(t *testing.T) {
	h := newTestServer(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/api/drivers"},
		{"GET", "/api/projects"},
		{"GET", "/api/alignment"},
		{"GET", "/api/resources"},
		{"GET", "/api/tasks"},
		{"GET", "/api/leveling"},
		{"GET", "/api/scenario"},
		{"GET", "/api/export.csv"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.path, "")
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestListEndpoints_UseCamelCase(t *testing.T) {
	h := newTestServer(t)

	tasks := decodeBody[[]map[string]any](t, do(t, h, "GET", "/api/tasks", ""))
	require.Len(t, tasks, 12)
	assert.Equal(t, "t1", tasks[0]["id"])
	assert.Equal(t, "r1", tasks[0]["resourceId"])
	assert.EqualValues(t, 160, tasks[0]["estimatedHours"])

	drivers := decodeBody[[]domain.Driver](t, do(t, h, "GET", "/api/drivers", ""))
	assert.Len(t, drivers, 4)
}

func TestSetDriverWeight(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, "PUT", "/api/drivers/d3/weight", `{"weight": 10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[app.AlignmentResponse](t, rec)
	assert.Equal(t, 31, resp.TotalWeight)

	rec = do(t, h, "PUT", "/api/drivers/d3/weight", `{"weight": 11}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.NotEmpty(t, body["fields"])

	rec = do(t, h, "PUT", "/api/drivers/nope/weight", `{"weight": 3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "PUT", "/api/drivers/d3/weight", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "PUT", "/api/drivers/d3/weight", `{"weight": 3, "extra": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlignment(t *testing.T) {
	h := newTestServer(t)

	resp := decodeBody[app.AlignmentResponse](t, do(t, h, "GET", "/api/alignment", ""))
	require.Len(t, resp.Projects, 4)
	assert.Equal(t, "QuantumLeap CRM", resp.Projects[0].Name)
	assert.Equal(t, 1, resp.Projects[0].Rank)
}

func TestLevelingFlow(t *testing.T) {
	h := newTestServer(t)

	grid := decodeBody[app.LevelingGrid](t, do(t, h, "GET", "/api/leveling", ""))
	assert.Equal(t, 19, grid.Weeks)
	assert.Equal(t, domain.LoadOver, grid.Cell("r1", 5).Load)

	rec := do(t, h, "GET", "/api/leveling/suggestions?resource=r1&week=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	sugg := decodeBody[app.SuggestionsResponse](t, rec)
	require.Len(t, sugg.Suggestions, 2)
	assert.Equal(t, `Delay "Frontend Dev" by 1 week.`, sugg.Suggestions[0].Message)

	rec = do(t, h, "POST", "/api/leveling/apply", `{"resourceId": "r1", "week": 5, "index": 0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	applied := decodeBody[app.ApplySuggestionResponse](t, rec)
	assert.Equal(t, 6, applied.Task.StartWeek)

	grid = decodeBody[app.LevelingGrid](t, do(t, h, "GET", "/api/leveling", ""))
	assert.Equal(t, domain.LoadOptimal, grid.Cell("r1", 5).Load)
}

func TestLevelingErrors(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, "GET", "/api/leveling/suggestions?resource=r1&week=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", "/api/leveling/suggestions?resource=zz&week=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CELL", decodeBody[map[string]any](t, rec)["code"])

	rec = do(t, h, "POST", "/api/leveling/apply", `{"resourceId": "r1", "week": 5, "index": 7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_SUGGESTION", decodeBody[map[string]any](t, rec)["code"])
}

func TestScenarioFlow(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, "PUT", "/api/scenario/projects/p1", `{"delay": 10, "budgetChange": 0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decodeBody[app.ScenarioView](t, rec)
	assert.Equal(t, 19, view.Baseline.Timeline)
	assert.Equal(t, 23, view.Scenario.Timeline)

	rec = do(t, h, "PUT", "/api/scenario/projects/p1", `{"delay": 40}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "PUT", "/api/scenario/projects/nope", `{"delay": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "POST", "/api/scenario/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeBody[app.ScenarioView](t, rec)
	assert.Equal(t, view.Baseline, view.Scenario)
}

func TestExportCSV(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, "GET", "/api/export.csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "portfolio_export.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "DRIVERS\nid,name,weight\n"))
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/api/alignment", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
