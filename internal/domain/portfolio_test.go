package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPortfolio() Portfolio {
	return Portfolio{
		Drivers: []Driver{{ID: "d1", Name: "ROI", Weight: 8}},
		Projects: []Project{{
			ID: "p1", Name: "CRM", Budget: 1000, Risk: 4, StartWeek: 1, Duration: 4,
			Scores: []ProjectScore{{DriverID: "d1", Score: 9}},
		}},
		Resources: []Resource{{ID: "r1", Name: "Alice", Capacity: 40}},
		Tasks: []Task{
			{ID: "t1", ProjectID: "p1", Name: "Design", EstimatedHours: 80, ResourceID: "r1", StartWeek: 1, Duration: 2},
			{ID: "t2", ProjectID: "p1", Name: "Backlog", EstimatedHours: 10, StartWeek: 2, Duration: 1},
		},
	}
}

func TestPortfolioValidate_Valid(t *testing.T) {
	p := validPortfolio()
	assert.NoError(t, p.Validate())

	d, pr, r, tk := p.Counts()
	assert.Equal(t, []int{1, 1, 1, 2}, []int{d, pr, r, tk})
}

func TestPortfolioValidate_References(t *testing.T) {
	p := validPortfolio()
	p.Projects[0].Scores[0].DriverID = "d9"
	p.Tasks[0].ProjectID = "p9"
	p.Tasks[0].ResourceID = "r9"

	err := p.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{
		"projects[0].scores[0].driver_id",
		"tasks[0].project_id",
		"tasks[0].resource_id",
	}, fields)
}

func TestPortfolioValidate_DuplicatesAndFieldErrors(t *testing.T) {
	p := validPortfolio()
	p.Resources = append(p.Resources, Resource{ID: "r1", Name: "Again", Capacity: 0})

	err := p.Validate()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "resources[1].capacity")
	assert.Contains(t, err.Error(), "resources[1].id: is duplicated")
}
