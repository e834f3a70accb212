package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LoadStyle returns the style for a leveling cell. Empty cells are dimmed
// regardless of their classification.
func LoadStyle(load domain.CellLoad, empty bool) lipgloss.Style {
	if empty {
		return StyleDim
	}
	switch load {
	case domain.LoadOver:
		return StyleRed
	case domain.LoadUnder:
		return StyleYellow
	case domain.LoadOptimal:
		return StyleGreen
	default:
		return StyleFg
	}
}

// LoadIndicator returns a colored label such as "● OVER".
func LoadIndicator(load domain.CellLoad) string {
	switch load {
	case domain.LoadOver:
		return StyleRed.Render("● OVER")
	case domain.LoadUnder:
		return StyleYellow.Render("● UNDER")
	case domain.LoadOptimal:
		return StyleGreen.Render("● OPTIMAL")
	default:
		return StyleDim.Render("● EMPTY")
	}
}

// RiskStyle colors a 1-10 risk score.
func RiskStyle(risk float64) lipgloss.Style {
	switch {
	case risk >= 7:
		return StyleRed
	case risk >= 4:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
