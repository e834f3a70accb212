package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type alignmentLoadedMsg struct {
	resp *app.AlignmentResponse
	err  error
}

type weightSetMsg struct {
	name   string
	weight int
	err    error
}

type alignmentKeys struct {
	Up   key.Binding
	Down key.Binding
	Inc  key.Binding
	Dec  key.Binding
}

// alignmentView lists the drivers with adjustable weights above the
// ranking they produce.
type alignmentView struct {
	state   *SharedState
	keys    alignmentKeys
	resp    *app.AlignmentResponse
	cursor  int
	loading bool
	err     error
}

func newAlignmentView(state *SharedState) *alignmentView {
	return &alignmentView{
		state:   state,
		loading: true,
		keys: alignmentKeys{
			Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "driver")),
			Down: key.NewBinding(key.WithKeys("down", "j")),
			Inc:  key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("←/→", "weight")),
			Dec:  key.NewBinding(key.WithKeys("left", "h", "-")),
		},
	}
}

func (v *alignmentView) Mode() domain.ViewMode { return domain.ViewAlignment }
func (v *alignmentView) Title() string         { return "Alignment" }

func (v *alignmentView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Up, v.keys.Inc}
}

func (v *alignmentView) Init() tea.Cmd {
	return v.load()
}

func (v *alignmentView) load() tea.Cmd {
	uc := v.state.App.Alignment
	return func() tea.Msg {
		resp, err := uc.Rank(context.Background())
		return alignmentLoadedMsg{resp: resp, err: err}
	}
}

func (v *alignmentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alignmentLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.resp = msg.resp
			v.cursor = min(v.cursor, max(len(msg.resp.Drivers)-1, 0))
		}
		return v, nil

	case weightSetMsg:
		if msg.err != nil {
			return v, statusCmd(msg.err.Error(), true)
		}
		return v, tea.Batch(dataChanged, statusCmd(fmt.Sprintf("%s weight set to %d", msg.name, msg.weight), false))

	case dataChangedMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.resp == nil || len(v.resp.Drivers) == 0 {
			return v, nil
		}
		switch {
		case key.Matches(msg, v.keys.Up):
			v.cursor = max(v.cursor-1, 0)
		case key.Matches(msg, v.keys.Down):
			v.cursor = min(v.cursor+1, len(v.resp.Drivers)-1)
		case key.Matches(msg, v.keys.Inc):
			return v, v.setWeight(+1)
		case key.Matches(msg, v.keys.Dec):
			return v, v.setWeight(-1)
		}
	}
	return v, nil
}

// setWeight steps the selected driver's weight, staying inside the
// allowed range.
func (v *alignmentView) setWeight(step int) tea.Cmd {
	d := v.resp.Drivers[v.cursor]
	w := d.Weight + step
	if w < domain.MinDriverWeight || w > domain.MaxDriverWeight {
		return nil
	}
	drivers := v.state.App.Drivers
	return func() tea.Msg {
		err := drivers.SetWeight(context.Background(), d.DriverID, w)
		return weightSetMsg{name: d.Name, weight: w, err: err}
	}
}

func (v *alignmentView) View() string {
	if v.loading {
		return formatter.Dim("Loading alignment...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Strategic Drivers"))
	b.WriteString("\n")
	for i, d := range v.resp.Drivers {
		cursor := "  "
		name := fmt.Sprintf("%-32s", d.Name)
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			name = formatter.Bold(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %2d\n", cursor, name, weightBar(d.Weight), d.Weight))
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("Total weight: %d", v.resp.TotalWeight)))
	b.WriteString("\n\n")

	b.WriteString(formatter.Header("Project Ranking"))
	b.WriteString("\n")
	if len(v.resp.Projects) == 0 {
		b.WriteString(formatter.Dim("No projects yet."))
		return b.String()
	}
	rows := make([][]string, 0, len(v.resp.Projects))
	for _, p := range v.resp.Projects {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Rank),
			p.Name,
			fmt.Sprintf("%.2f", p.Score),
			formatter.ScoreBar(p.Score, 10),
		})
	}
	b.WriteString(formatter.RenderTable([]string{"#", "Project", "Score", ""}, rows, formatter.AlignRight(0, 2)))
	return b.String()
}

// weightBar draws a driver weight as ten slots.
func weightBar(w int) string {
	w = min(max(w, 0), domain.MaxDriverWeight)
	return formatter.StyleBlue.Render(strings.Repeat("■", w)) +
		formatter.Dim(strings.Repeat("□", domain.MaxDriverWeight-w))
}
