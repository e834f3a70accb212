package domain

import "fmt"

// MaxScenarioDelayWeeks bounds how far a scenario may push a project back.
const MaxScenarioDelayWeeks = 26

// ScenarioAdjustment is a what-if edit to one project in the scenario
// working copy. The baseline project is never modified.
type ScenarioAdjustment struct {
	ProjectID    string
	Delay        int     // weeks
	BudgetChange float64 // signed, same currency as Project.Budget
}

// IsZero reports whether the adjustment leaves the project unchanged.
func (a ScenarioAdjustment) IsZero() bool {
	return a.Delay == 0 && a.BudgetChange == 0
}

// ValidateAgainst checks the adjustment for the project it targets.
func (a ScenarioAdjustment) ValidateAgainst(p *Project) error {
	var errs ValidationErrors
	if a.ProjectID != p.ID {
		errs = append(errs, ValidationError{Field: "scenario.project_id", Value: a.ProjectID, Message: fmt.Sprintf("does not match project %q", p.ID)})
	}
	if a.Delay < 0 || a.Delay > MaxScenarioDelayWeeks {
		errs = append(errs, ValidationError{Field: "scenario.delay", Value: a.Delay, Message: fmt.Sprintf("must be between 0 and %d weeks", MaxScenarioDelayWeeks)})
	}
	if p.Budget+a.BudgetChange < 0 {
		errs = append(errs, ValidationError{Field: "scenario.budget_change", Value: a.BudgetChange, Message: "would make the budget negative"})
	}
	return errs.OrNil()
}
