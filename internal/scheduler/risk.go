package scheduler

import (
	"github.com/alexanderramin/telos/internal/domain"
	"gonum.org/v1/gonum/stat"
)

const (
	// DelayRiskPerWeek is how much each week of delay adds to a project's risk.
	DelayRiskPerWeek = 0.2
	// BudgetRiskFactor scales the relative budget change into risk reduction.
	BudgetRiskFactor = 2.0
)

// PortfolioMetrics summarizes a set of projects for baseline/scenario comparison.
type PortfolioMetrics struct {
	TotalBudget float64
	Timeline    int // weeks; max(start + delay + duration)
	AvgRisk     float64
}

// ScenarioProject is one project in the scenario working copy.
type ScenarioProject struct {
	Project      domain.Project
	Delay        int
	BudgetChange float64
	AdjustedRisk float64
}

// ScenarioBudget is the project's budget after the adjustment.
func (s ScenarioProject) ScenarioBudget() float64 {
	return s.Project.Budget + s.BudgetChange
}

// ScenarioEndWeek is the project's end week after the delay.
func (s ScenarioProject) ScenarioEndWeek() int {
	return s.Project.StartWeek + s.Delay + s.Project.Duration
}

// AdjustedRisk applies the scenario risk model: each week of delay adds
// DelayRiskPerWeek, extra budget lowers risk by its share of the baseline
// budget times BudgetRiskFactor. The result is clamped to [MinRisk, MaxRisk].
// A non-positive baseline budget contributes no budget term.
func AdjustedRisk(p domain.Project, delay int, budgetChange float64) float64 {
	modifier := float64(delay) * DelayRiskPerWeek
	if p.Budget > 0 {
		modifier -= budgetChange / p.Budget * BudgetRiskFactor
	}
	return clamp(p.Risk+modifier, domain.MinRisk, domain.MaxRisk)
}

// BuildScenario overlays adjustments onto the baseline projects. Projects
// without an adjustment carry a zero delay and budget change. Adjustments for
// unknown projects are ignored.
func BuildScenario(projects []domain.Project, adjustments []domain.ScenarioAdjustment) []ScenarioProject {
	byProject := make(map[string]domain.ScenarioAdjustment, len(adjustments))
	for _, a := range adjustments {
		byProject[a.ProjectID] = a
	}

	out := make([]ScenarioProject, len(projects))
	for i, p := range projects {
		adj := byProject[p.ID]
		out[i] = ScenarioProject{
			Project:      p,
			Delay:        adj.Delay,
			BudgetChange: adj.BudgetChange,
			AdjustedRisk: AdjustedRisk(p, adj.Delay, adj.BudgetChange),
		}
	}
	return out
}

// BaselineMetrics computes totals over the unmodified projects. Empty input
// yields the zero value.
func BaselineMetrics(projects []domain.Project) PortfolioMetrics {
	if len(projects) == 0 {
		return PortfolioMetrics{}
	}
	var m PortfolioMetrics
	risks := make([]float64, len(projects))
	for i, p := range projects {
		m.TotalBudget += p.Budget
		if end := p.EndWeek(); end > m.Timeline {
			m.Timeline = end
		}
		risks[i] = p.Risk
	}
	m.AvgRisk = stat.Mean(risks, nil)
	return m
}

// ScenarioMetrics computes totals over the scenario working copy. Empty input
// yields the zero value.
func ScenarioMetrics(scenario []ScenarioProject) PortfolioMetrics {
	if len(scenario) == 0 {
		return PortfolioMetrics{}
	}
	var m PortfolioMetrics
	risks := make([]float64, len(scenario))
	for i, s := range scenario {
		m.TotalBudget += s.ScenarioBudget()
		if end := s.ScenarioEndWeek(); end > m.Timeline {
			m.Timeline = end
		}
		risks[i] = s.AdjustedRisk
	}
	m.AvgRisk = stat.Mean(risks, nil)
	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
