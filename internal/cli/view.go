package cli

import (
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is one dashboard page. It extends tea.Model with the mode it
// serves and the key hints shown in the bottom bar.
type View interface {
	tea.Model
	Mode() domain.ViewMode
	Title() string
	ShortHelp() []key.Binding
}

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	Width  int
	Height int
}

// ContentHeight returns the rows left for a view after the tab bar
// (2 lines), the status line and the help bar.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}

// dataChangedMsg is broadcast after any mutation so every view reloads.
type dataChangedMsg struct{}

func dataChanged() tea.Msg { return dataChangedMsg{} }

// statusMsg sets the one-line status shown under the active view.
type statusMsg struct {
	text  string
	isErr bool
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: isErr} }
}
