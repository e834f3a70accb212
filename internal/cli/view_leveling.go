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
	"github.com/charmbracelet/lipgloss"
)

type levelingLoadedMsg struct {
	grid *app.LevelingGrid
	err  error
}

type suggestionsLoadedMsg struct {
	resp *app.SuggestionsResponse
	err  error
}

type suggestionAppliedMsg struct {
	resp *app.ApplySuggestionResponse
	err  error
}

type levelingKeys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Deselect key.Binding
}

// levelingView shows the allocation grid. Selecting a cell computes its
// suggestions; applying one clears the selection again.
type levelingView struct {
	state *SharedState
	keys  levelingKeys
	grid  *app.LevelingGrid

	row  int // index into grid.Rows
	week int // 1-based

	selected    bool
	suggestions *app.SuggestionsResponse
	choice      int

	loading bool
	err     error
}

var cursorCell = lipgloss.NewStyle().Reverse(true)

func newLevelingView(state *SharedState) *levelingView {
	return &levelingView{
		state:   state,
		week:    1,
		loading: true,
		keys: levelingKeys{
			Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("←↑↓→", "move")),
			Down:     key.NewBinding(key.WithKeys("down", "j")),
			Left:     key.NewBinding(key.WithKeys("left", "h")),
			Right:    key.NewBinding(key.WithKeys("right", "l")),
			Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/apply")),
			Deselect: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "deselect")),
		},
	}
}

func (v *levelingView) Mode() domain.ViewMode { return domain.ViewLeveling }
func (v *levelingView) Title() string         { return "Leveling" }

func (v *levelingView) ShortHelp() []key.Binding {
	if v.selected {
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "suggestion")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			v.keys.Deselect,
		}
	}
	return []key.Binding{v.keys.Up, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "suggestions"))}
}

func (v *levelingView) Init() tea.Cmd {
	return v.load()
}

func (v *levelingView) load() tea.Cmd {
	uc := v.state.App.Leveling
	return func() tea.Msg {
		grid, err := uc.Grid(context.Background())
		return levelingLoadedMsg{grid: grid, err: err}
	}
}

// current returns the resource and week under the cursor.
func (v *levelingView) current() (app.ResourceRow, int, bool) {
	if v.grid == nil || len(v.grid.Rows) == 0 || v.grid.Weeks == 0 {
		return app.ResourceRow{}, 0, false
	}
	return v.grid.Rows[v.row], v.week, true
}

func (v *levelingView) clearSelection() {
	v.selected = false
	v.suggestions = nil
	v.choice = 0
}

func (v *levelingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case levelingLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.grid = msg.grid
			v.row = min(v.row, max(len(msg.grid.Rows)-1, 0))
			v.week = min(max(v.week, 1), max(msg.grid.Weeks, 1))
		}
		return v, nil

	case suggestionsLoadedMsg:
		if msg.err != nil {
			v.clearSelection()
			return v, statusCmd(msg.err.Error(), true)
		}
		v.selected = true
		v.suggestions = msg.resp
		v.choice = 0
		return v, nil

	case suggestionAppliedMsg:
		v.clearSelection()
		if msg.err != nil {
			return v, statusCmd(msg.err.Error(), true)
		}
		return v, tea.Batch(dataChanged, statusCmd("Applied: "+msg.resp.Applied.Message, false))

	case dataChangedMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.selected {
			return v, v.updateSelected(msg)
		}
		return v, v.updateBrowsing(msg)
	}
	return v, nil
}

func (v *levelingView) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	row, week, ok := v.current()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, v.keys.Up):
		v.row = max(v.row-1, 0)
	case key.Matches(msg, v.keys.Down):
		v.row = min(v.row+1, len(v.grid.Rows)-1)
	case key.Matches(msg, v.keys.Left):
		v.week = max(v.week-1, 1)
	case key.Matches(msg, v.keys.Right):
		v.week = min(v.week+1, v.grid.Weeks)
	case key.Matches(msg, v.keys.Select):
		uc := v.state.App.Leveling
		return func() tea.Msg {
			resp, err := uc.Suggest(context.Background(), app.SuggestionsRequest{ResourceID: row.ResourceID, Week: week})
			return suggestionsLoadedMsg{resp: resp, err: err}
		}
	}
	return nil
}

func (v *levelingView) updateSelected(msg tea.KeyMsg) tea.Cmd {
	n := len(v.suggestions.Suggestions)
	switch {
	case key.Matches(msg, v.keys.Deselect):
		v.clearSelection()
	case key.Matches(msg, v.keys.Up):
		v.choice = max(v.choice-1, 0)
	case key.Matches(msg, v.keys.Down):
		v.choice = min(v.choice+1, max(n-1, 0))
	case key.Matches(msg, v.keys.Select):
		if n == 0 {
			v.clearSelection()
			return nil
		}
		req := app.ApplySuggestionRequest{
			ResourceID: v.suggestions.ResourceID,
			Week:       v.suggestions.Week,
			Index:      v.suggestions.Suggestions[v.choice].Index,
		}
		uc := v.state.App.Leveling
		return func() tea.Msg {
			resp, err := uc.Apply(context.Background(), req)
			return suggestionAppliedMsg{resp: resp, err: err}
		}
	}
	return nil
}

func (v *levelingView) View() string {
	if v.loading {
		return formatter.Dim("Loading allocation...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Resource Leveling"))
	b.WriteString("\n")

	row, week, ok := v.current()
	if !ok {
		b.WriteString(formatter.Dim("No scheduled work."))
		return b.String()
	}

	headers := []string{"Resource"}
	right := make([]int, 0, v.grid.Weeks)
	for w := 1; w <= v.grid.Weeks; w++ {
		headers = append(headers, "W"+strconv.Itoa(w))
		right = append(right, w)
	}
	rows := make([][]string, 0, len(v.grid.Rows))
	for i, r := range v.grid.Rows {
		cells := []string{formatter.CapacityLabel(r.Name, r.Capacity)}
		for _, c := range r.Cells {
			if i == v.row && c.Week == v.week {
				text := formatter.Hours(c.Hours)
				if c.Empty {
					text = "·"
				}
				cells = append(cells, cursorCell.Render(text))
				continue
			}
			cells = append(cells, formatter.GridCell(c))
		}
		rows = append(rows, cells)
	}
	b.WriteString(formatter.RenderTable(headers, rows, formatter.AlignRight(right...)))
	b.WriteString("\n")

	if v.selected {
		b.WriteString(v.renderSuggestions(row.Name))
		return b.String()
	}

	if c := v.grid.Cell(row.ResourceID, week); c != nil {
		b.WriteString(fmt.Sprintf("%s · W%d · %s of %s  %s",
			formatter.Bold(row.Name), week, formatter.Hours(c.Hours), formatter.Hours(row.Capacity), cellLoadLabel(*c)))
	}
	return b.String()
}

func (v *levelingView) renderSuggestions(resourceName string) string {
	resp := v.suggestions
	var b strings.Builder
	b.WriteString(formatter.Bold(fmt.Sprintf("Suggestions for %s, week %d", resourceName, resp.Week)))
	b.WriteString(formatter.Dim(fmt.Sprintf("  (%s of %s)", formatter.Hours(resp.Hours), formatter.Hours(resp.Capacity))))
	b.WriteString("\n")
	if len(resp.Suggestions) == 0 {
		if resp.Hours <= resp.Capacity {
			b.WriteString(formatter.StyleGreen.Render("Within capacity; nothing to level."))
		} else {
			b.WriteString(formatter.StyleYellow.Render("No suggestions available for this cell."))
		}
		return b.String()
	}
	for i, s := range resp.Suggestions {
		marker := "  "
		text := s.Message
		if i == v.choice {
			marker = formatter.StyleHeader.Render("▸ ")
			text = formatter.Bold(text)
		}
		b.WriteString(marker + text + "\n")
	}
	return b.String()
}

func cellLoadLabel(c app.GridCell) string {
	if c.Empty {
		return formatter.LoadIndicator("")
	}
	return formatter.LoadIndicator(c.Load)
}
