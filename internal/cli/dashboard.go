package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type globalKeys struct {
	Alignment key.Binding
	Scenario  key.Binding
	Leveling  key.Binding
	Next      key.Binding
	Prev      key.Binding
	Quit      key.Binding
}

func newGlobalKeys() globalKeys {
	return globalKeys{
		Alignment: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "alignment")),
		Scenario:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "scenario")),
		Leveling:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "leveling")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k globalKeys) bindings() []key.Binding {
	return []key.Binding{k.Next, k.Quit}
}

// dashboardModel is the root bubbletea model. It owns one view per mode
// and switches between them without persisting anything.
type dashboardModel struct {
	state    *SharedState
	views    []View
	mode     domain.ViewMode
	keys     globalKeys
	help     help.Model
	status   statusMsg
	quitting bool
}

func newDashboardModel(app *App) dashboardModel {
	state := &SharedState{App: app}
	return dashboardModel{
		state: state,
		views: []View{
			newAlignmentView(state),
			newScenarioView(state),
			newLevelingView(state),
		},
		mode: domain.ViewAlignment,
		keys: newGlobalKeys(),
		help: help.New(),
	}
}

func (m dashboardModel) activeView() View {
	for _, v := range m.views {
		if v.Mode() == m.mode {
			return v
		}
	}
	return m.views[0]
}

func (m *dashboardModel) setView(v View) {
	for i := range m.views {
		if m.views[i].Mode() == v.Mode() {
			m.views[i] = v
			return
		}
	}
}

// cycle moves the mode forward or backward through domain.ViewModes.
func (m *dashboardModel) cycle(step int) {
	n := len(domain.ViewModes)
	for i, mode := range domain.ViewModes {
		if mode == m.mode {
			m.mode = domain.ViewModes[((i+step)%n+n)%n]
			return
		}
	}
	m.mode = domain.ViewModes[0]
}

func (m dashboardModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m.broadcast(msg)

	case statusMsg:
		m.status = msg
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Alignment):
			m.mode = domain.ViewAlignment
		case key.Matches(msg, m.keys.Scenario):
			m.mode = domain.ViewScenario
		case key.Matches(msg, m.keys.Leveling):
			m.mode = domain.ViewLeveling
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		default:
			updated, cmd := m.activeView().Update(msg)
			m.setView(updated.(View))
			return m, cmd
		}
		m.status = statusMsg{}
		return m, nil
	}

	// Data messages are typed per view; the others ignore them.
	return m.broadcast(msg)
}

func (m dashboardModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.views {
		updated, cmd := v.Update(msg)
		m.views[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

var (
	tabActive   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	tabInactive = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	tabs := make([]string, 0, len(m.views))
	for i, v := range m.views {
		label := string(rune('1'+i)) + " " + v.Title()
		if v.Mode() == m.mode {
			tabs = append(tabs, tabActive.Render(label))
		} else {
			tabs = append(tabs, tabInactive.Render(label))
		}
	}
	b.WriteString(formatter.Bold("telos") + "  " + strings.Join(tabs, "   "))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", max(m.state.Width, 40))))
	b.WriteString("\n")

	b.WriteString(m.activeView().View())
	b.WriteString("\n")

	if m.status.text != "" {
		if m.status.isErr {
			b.WriteString(formatter.StyleRed.Render(m.status.text))
		} else {
			b.WriteString(formatter.StyleGreen.Render(m.status.text))
		}
		b.WriteString("\n")
	}

	bindings := append(m.activeView().ShortHelp(), m.keys.bindings()...)
	b.WriteString(m.help.ShortHelpView(bindings))
	return b.String()
}

// runDashboard runs the TUI until the user quits.
func runDashboard(ctx context.Context, app *App) error {
	p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app)
		},
	}
}
