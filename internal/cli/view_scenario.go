package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// budgetStep is how much one +/- press moves a project's budget change.
const budgetStep = 25000

type scenarioLoadedMsg struct {
	view *app.ScenarioView
	err  error
}

type scenarioKeys struct {
	Up       key.Binding
	Down     key.Binding
	Later    key.Binding
	Sooner   key.Binding
	More     key.Binding
	Less     key.Binding
	Clear    key.Binding
	ResetAll key.Binding
}

// scenarioView edits per-project delay and budget change and shows the
// resulting metrics next to the baseline.
type scenarioView struct {
	state   *SharedState
	keys    scenarioKeys
	view    *app.ScenarioView
	cursor  int
	loading bool
	err     error
}

func newScenarioView(state *SharedState) *scenarioView {
	return &scenarioView{
		state:   state,
		loading: true,
		keys: scenarioKeys{
			Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "project")),
			Down:     key.NewBinding(key.WithKeys("down", "j")),
			Later:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "delay")),
			Sooner:   key.NewBinding(key.WithKeys("left", "h")),
			More:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "budget")),
			Less:     key.NewBinding(key.WithKeys("-")),
			Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear project")),
			ResetAll: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		},
	}
}

func (v *scenarioView) Mode() domain.ViewMode { return domain.ViewScenario }
func (v *scenarioView) Title() string         { return "Scenario" }

func (v *scenarioView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Up, v.keys.Later, v.keys.More, v.keys.Clear, v.keys.ResetAll}
}

func (v *scenarioView) Init() tea.Cmd {
	return v.load()
}

func (v *scenarioView) load() tea.Cmd {
	uc := v.state.App.Scenario
	return func() tea.Msg {
		view, err := uc.Show(context.Background())
		return scenarioLoadedMsg{view: view, err: err}
	}
}

func (v *scenarioView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scenarioLoadedMsg:
		v.loading = false
		if msg.err != nil {
			if v.view == nil {
				v.err = msg.err
				return v, nil
			}
			return v, statusCmd(msg.err.Error(), true)
		}
		v.err = nil
		v.view = msg.view
		v.cursor = min(v.cursor, max(len(msg.view.Projects)-1, 0))
		return v, nil

	case dataChangedMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.view == nil || len(v.view.Projects) == 0 {
			return v, nil
		}
		p := v.view.Projects[v.cursor]
		switch {
		case key.Matches(msg, v.keys.Up):
			v.cursor = max(v.cursor-1, 0)
		case key.Matches(msg, v.keys.Down):
			v.cursor = min(v.cursor+1, len(v.view.Projects)-1)
		case key.Matches(msg, v.keys.Later):
			return v, v.adjust(p.ProjectID, p.Delay+1, p.BudgetChange)
		case key.Matches(msg, v.keys.Sooner):
			if p.Delay > 0 {
				return v, v.adjust(p.ProjectID, p.Delay-1, p.BudgetChange)
			}
		case key.Matches(msg, v.keys.More):
			return v, v.adjust(p.ProjectID, p.Delay, p.BudgetChange+budgetStep)
		case key.Matches(msg, v.keys.Less):
			return v, v.adjust(p.ProjectID, p.Delay, p.BudgetChange-budgetStep)
		case key.Matches(msg, v.keys.Clear):
			return v, v.adjust(p.ProjectID, 0, 0)
		case key.Matches(msg, v.keys.ResetAll):
			return v, v.reset()
		}
	}
	return v, nil
}

func (v *scenarioView) adjust(projectID string, delay int, budgetChange float64) tea.Cmd {
	uc := v.state.App.Scenario
	return func() tea.Msg {
		view, err := uc.Adjust(context.Background(), app.AdjustScenarioRequest{
			ProjectID:    projectID,
			Delay:        delay,
			BudgetChange: budgetChange,
		})
		return scenarioLoadedMsg{view: view, err: err}
	}
}

func (v *scenarioView) reset() tea.Cmd {
	uc := v.state.App.Scenario
	return func() tea.Msg {
		if err := uc.Reset(context.Background()); err != nil {
			return scenarioLoadedMsg{err: err}
		}
		view, err := uc.Show(context.Background())
		return scenarioLoadedMsg{view: view, err: err}
	}
}

func (v *scenarioView) View() string {
	if v.loading {
		return formatter.Dim("Loading scenario...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	var b strings.Builder
	base, scen := v.view.Baseline, v.view.Scenario
	b.WriteString(formatter.Header("Scenario Comparison"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderTable(
		[]string{"Metric", "Baseline", "Scenario"},
		[][]string{
			{"Total Budget", formatter.Currency(base.TotalBudget), formatter.Currency(scen.TotalBudget)},
			{"Timeline (Weeks)", strconv.Itoa(base.Timeline), strconv.Itoa(scen.Timeline)},
			{"Avg. Risk Score", fmt.Sprintf("%.1f", base.AvgRisk), fmt.Sprintf("%.1f", scen.AvgRisk)},
		},
		formatter.AlignRight(1, 2),
	))
	b.WriteString("\n")

	b.WriteString(formatter.Header("Projects"))
	b.WriteString("\n")
	if len(v.view.Projects) == 0 {
		b.WriteString(formatter.Dim("No projects yet."))
		return b.String()
	}
	rows := make([][]string, 0, len(v.view.Projects))
	for i, p := range v.view.Projects {
		marker := " "
		name := p.Name
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸")
			name = formatter.Bold(name)
		}
		rows = append(rows, []string{
			marker,
			name,
			strconv.Itoa(p.Delay) + "w",
			formatter.SignedCurrency(p.BudgetChange),
			fmt.Sprintf("%.1f → %s", p.Risk, formatter.RiskStyle(p.AdjustedRisk).Render(fmt.Sprintf("%.1f", p.AdjustedRisk))),
		})
	}
	b.WriteString(formatter.RenderTable([]string{"", "Project", "Delay", "Budget Change", "Risk"}, rows, formatter.AlignRight(2, 3)))
	return b.String()
}
