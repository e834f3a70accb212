package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/telos/internal/app"
)

// FormatScenario renders the baseline/scenario comparison and, when any
// project is adjusted, the per-project adjustments.
func FormatScenario(view *app.ScenarioView) string {
	var b strings.Builder
	b.WriteString(Header("Scenario Comparison"))
	b.WriteString("\n")

	base, scen := view.Baseline, view.Scenario
	rows := [][]string{
		{"Total Budget", Currency(base.TotalBudget), changed(Currency(scen.TotalBudget), base.TotalBudget != scen.TotalBudget)},
		{"Timeline (Weeks)", strconv.Itoa(base.Timeline), changed(strconv.Itoa(scen.Timeline), base.Timeline != scen.Timeline)},
		{"Avg. Risk Score", fmt.Sprintf("%.1f", base.AvgRisk), changed(fmt.Sprintf("%.1f", scen.AvgRisk), fmt.Sprintf("%.1f", base.AvgRisk) != fmt.Sprintf("%.1f", scen.AvgRisk))},
	}
	b.WriteString(RenderTable([]string{"Metric", "Baseline", "Scenario"}, rows, AlignRight(1, 2)))
	b.WriteString("\n")

	if !view.Adjusted() {
		b.WriteString(Dim("No adjustments; the scenario matches the baseline."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Header("Adjustments"))
	b.WriteString("\n")
	var adj [][]string
	for _, p := range view.Projects {
		if p.Delay == 0 && p.BudgetChange == 0 {
			continue
		}
		delay, budget := Dim("-"), Dim("-")
		if p.Delay > 0 {
			delay = "+" + Weeks(p.Delay)
		}
		if p.BudgetChange != 0 {
			budget = SignedCurrency(p.BudgetChange)
		}
		adj = append(adj, []string{
			p.Name,
			delay,
			budget,
			fmt.Sprintf("%.1f → %s", p.Risk, RiskStyle(p.AdjustedRisk).Render(fmt.Sprintf("%.1f", p.AdjustedRisk))),
			fmt.Sprintf("W%d → W%d", p.EndWeek, p.ScenarioEndWeek),
		})
	}
	b.WriteString(RenderTable([]string{"Project", "Delay", "Budget Change", "Risk", "Ends"}, adj, AlignRight(2)))
	return b.String()
}

func changed(s string, diff bool) string {
	if diff {
		return StyleYellow.Render(s)
	}
	return s
}
