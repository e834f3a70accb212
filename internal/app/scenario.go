package app

// ScenarioProjectView compares one project's baseline with its scenario copy.
type ScenarioProjectView struct {
	ProjectID       string  `json:"projectId"`
	Name            string  `json:"name"`
	Delay           int     `json:"delay"`
	BudgetChange    float64 `json:"budgetChange"`
	Budget          float64 `json:"budget"`
	ScenarioBudget  float64 `json:"scenarioBudget"`
	Risk            float64 `json:"risk"`
	AdjustedRisk    float64 `json:"adjustedRisk"`
	EndWeek         int     `json:"endWeek"`
	ScenarioEndWeek int     `json:"scenarioEndWeek"`
}

type ScenarioView struct {
	Baseline PortfolioMetrics      `json:"baseline"`
	Scenario PortfolioMetrics      `json:"scenario"`
	Projects []ScenarioProjectView `json:"projects"`
}

// Adjusted reports whether any project in the scenario differs from baseline.
func (v *ScenarioView) Adjusted() bool {
	for _, p := range v.Projects {
		if p.Delay != 0 || p.BudgetChange != 0 {
			return true
		}
	}
	return false
}

type AdjustScenarioRequest struct {
	ProjectID    string  `json:"projectId"`
	Delay        int     `json:"delay"`
	BudgetChange float64 `json:"budgetChange"`
}
