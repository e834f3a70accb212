package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// telosHuhTheme returns a huh theme matching the formatter palette.
func telosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// weightForm prompts for a driver weight.
func weightForm(driver *domain.Driver, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Weight for %q", driver.Name)).
				Description(fmt.Sprintf("%d to %d, currently %d", domain.MinDriverWeight, domain.MaxDriverWeight, driver.Weight)).
				Placeholder(strconv.Itoa(driver.Weight)).
				Value(value).
				Validate(validateWeight),
		),
	).WithTheme(telosHuhTheme()).WithShowHelp(false)
}

// scenarioForm prompts for a project and its delay and budget change.
func scenarioForm(projects []domain.Project, projectID, delay, budgetChange *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(projectID),
			huh.NewInput().
				Title("Delay (weeks)").
				Description(fmt.Sprintf("0 to %d", domain.MaxScenarioDelayWeeks)).
				Placeholder("0").
				Value(delay).
				Validate(validateDelay),
			huh.NewInput().
				Title("Budget change").
				Description("Signed amount, e.g. -50000").
				Placeholder("0").
				Value(budgetChange).
				Validate(validateBudgetChange),
		),
	).WithTheme(telosHuhTheme()).WithShowHelp(false)
}

// validateWeight accepts an integer driver weight within range.
func validateWeight(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return domain.ValidateWeight(v)
}

// validateDelay accepts empty or a delay in weeks within range.
func validateDelay(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > domain.MaxScenarioDelayWeeks {
		return fmt.Errorf("enter 0 to %d", domain.MaxScenarioDelayWeeks)
	}
	return nil
}

// validateBudgetChange accepts empty or any number.
func validateBudgetChange(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// parseOptionalInt returns 0 for blank input.
func parseOptionalInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func parseOptionalFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
