package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayToCSV_DriverExample(t *testing.T) {
	got := ArrayToCSV([]Record{{"id": "d1", "name": "ROI", "weight": 8}}, []string{"id", "name", "weight"})
	assert.Equal(t, "id,name,weight\nd1,ROI,8", got)
}

func TestArrayToCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	assert.Equal(t, "id,name", ArrayToCSV(nil, []string{"id", "name"}))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain string", "Alice", "Alice"},
		{"comma", "Cloud, infra", `"Cloud, infra"`},
		{"quote", `The "big" one`, `"The ""big"" one"`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
		{"leading space untouched", " padded", " padded"},
		{"nil", nil, ""},
		{"empty", "", ""},
		{"int", 42, "42"},
		{"whole float", 500000.0, "500000"},
		{"fractional float", 26.5, "26.5"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestArrayToCSV_MissingColumnsRenderEmpty(t *testing.T) {
	got := ArrayToCSV([]Record{{"id": "t1"}}, []string{"id", "resourceId", "duration"})
	assert.Equal(t, "id,resourceId,duration\nt1,,", got)
}

func TestPortfolio_Blocks(t *testing.T) {
	drivers := []domain.Driver{{ID: "d1", Name: "ROI", Weight: 8}, {ID: "d2", Name: "Market", Weight: 2}}
	projects := []domain.Project{{
		ID: "p1", Name: "Nebula", Description: "Cloud, migration", Budget: 750000, Risk: 7,
		StartWeek: 3, Duration: 16,
		Scores: []domain.ProjectScore{{DriverID: "d1", Score: 7}, {DriverID: "d2", Score: 5}},
	}}
	resources := []domain.Resource{{ID: "r1", Name: "Alice", Capacity: 40}}
	tasks := []domain.Task{
		{ID: "t1", ProjectID: "p1", Name: "Audit", EstimatedHours: 160, ResourceID: "r1", StartWeek: 3, Duration: 4},
		{ID: "t2", ProjectID: "p1", Name: "Plan", EstimatedHours: 80, StartWeek: 5, Duration: 2},
	}

	got := Portfolio(drivers, projects, resources, tasks)

	want := strings.Join([]string{
		"DRIVERS",
		"id,name,weight",
		"d1,ROI,8",
		"d2,Market,2",
		"",
		"PROJECTS",
		"id,name,description,budget,risk,startWeek,duration,alignmentScore",
		`p1,Nebula,"Cloud, migration",750000,7,3,16,6.60`,
		"",
		"RESOURCES",
		"id,name,capacity",
		"r1,Alice,40",
		"",
		"TASKS",
		"id,projectId,name,estimatedHours,resourceId,startWeek,duration",
		"t1,p1,Audit,160,r1,3,4",
		"t2,p1,Plan,80,,5,2",
	}, "\n")
	assert.Equal(t, want, got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestPortfolio_ZeroWeightsScoreZero(t *testing.T) {
	projects := []domain.Project{{ID: "p1", Name: "X", Risk: 1, StartWeek: 1, Duration: 1,
		Scores: []domain.ProjectScore{{DriverID: "d1", Score: 9}}}}
	got := Portfolio([]domain.Driver{{ID: "d1", Name: "ROI"}}, projects, nil, nil)
	assert.Contains(t, got, "p1,X,,0,1,1,1,0.00")
}

func TestWritePortfolio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePortfolio(&buf, nil, nil, nil, nil))
	assert.Equal(t, "DRIVERS\nid,name,weight\n\nPROJECTS\n"+strings.Join(ProjectHeaders, ",")+
		"\n\nRESOURCES\nid,name,capacity\n\nTASKS\n"+strings.Join(TaskHeaders, ","), buf.String())
}
