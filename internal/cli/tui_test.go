package cli

import (
	"context"
	"testing"

	telosapp "github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnAlignment(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, domain.ViewAlignment, d.ActiveMode())
	assert.Equal(t, 160, d.State().Width)
	out := d.View()
	assert.Contains(t, out, "1 Alignment")
	assert.Contains(t, out, "STRATEGIC DRIVERS")
	assert.Contains(t, out, "QuantumLeap CRM")
	assert.Contains(t, out, "Total weight: 26")
}

func TestTUI_ModeSwitching(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('2')
	assert.Equal(t, domain.ViewScenario, d.ActiveMode())
	assert.Contains(t, d.View(), "SCENARIO COMPARISON")

	d.PressKey('3')
	assert.Equal(t, domain.ViewLeveling, d.ActiveMode())
	assert.Contains(t, d.View(), "RESOURCE LEVELING")

	d.PressKey('1')
	assert.Equal(t, domain.ViewAlignment, d.ActiveMode())

	d.PressTab()
	assert.Equal(t, domain.ViewScenario, d.ActiveMode())
	d.PressTab()
	d.PressTab()
	assert.Equal(t, domain.ViewAlignment, d.ActiveMode(), "tab wraps around")

	d.PressShiftTab()
	assert.Equal(t, domain.ViewLeveling, d.ActiveMode())
}

func TestTUI_Quit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
	assert.Empty(t, d.View())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_AlignmentWeightChange(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressRight()

	drv, err := app.Drivers.GetByID(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, 9, drv.Weight)

	text, isErr := d.Status()
	assert.Equal(t, "Increase ROI weight set to 9", text)
	assert.False(t, isErr)
	assert.Equal(t, 27, d.Alignment().resp.TotalWeight)
	assert.Contains(t, d.View(), "Total weight: 27")
}

func TestTUI_AlignmentWeightStaysInRange(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Repeat(5, d.PressRight)

	drv, err := app.Drivers.GetByID(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxDriverWeight, drv.Weight)
}

func TestTUI_AlignmentCursorMovesBetweenDrivers(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressDown()
	d.PressLeft()

	drv, err := app.Drivers.GetByID(context.Background(), "d2")
	require.NoError(t, err)
	assert.Equal(t, 6, drv.Weight)
	assert.Equal(t, 1, d.Alignment().cursor)

	d.PressUp()
	d.PressUp()
	assert.Equal(t, 0, d.Alignment().cursor)
}

func TestTUI_WeightChangeReloadsOtherViews(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	_, err := app.Scenario.Adjust(context.Background(), telosapp.AdjustScenarioRequest{ProjectID: "p2", Delay: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, d.Scenario().view.Projects[1].Delay, "scenario view has not reloaded yet")

	d.PressRight()
	assert.Equal(t, 3, d.Scenario().view.Projects[1].Delay)
}

func TestTUI_ScenarioAdjust(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('2')

	d.PressRight()
	d.PressRight()
	d.PressKey('+')

	p := d.Scenario().view.Projects[0]
	assert.Equal(t, "p1", p.ProjectID)
	assert.Equal(t, 2, p.Delay)
	assert.Equal(t, float64(budgetStep), p.BudgetChange)
	assert.Equal(t, 1950000.0+budgetStep, d.Scenario().view.Scenario.TotalBudget)

	d.PressLeft()
	assert.Equal(t, 1, d.Scenario().view.Projects[0].Delay)

	d.PressKey('x')
	assert.False(t, d.Scenario().view.Adjusted())
}

func TestTUI_ScenarioDelayNeverNegative(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')

	d.PressLeft()
	assert.Equal(t, 0, d.Scenario().view.Projects[0].Delay)
	text, _ := d.Status()
	assert.Empty(t, text)
}

func TestTUI_ScenarioRejectedAdjustmentShowsError(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('2')

	d.Repeat(domain.MaxScenarioDelayWeeks+1, d.PressRight)

	assert.Equal(t, domain.MaxScenarioDelayWeeks, d.Scenario().view.Projects[0].Delay)
	_, isErr := d.Status()
	assert.True(t, isErr)
}

func TestTUI_ScenarioReset(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')

	d.PressDown()
	d.PressRight()
	d.PressKey('-')
	assert.True(t, d.Scenario().view.Adjusted())

	d.PressKey('r')
	v := d.Scenario().view
	assert.False(t, v.Adjusted())
	assert.Equal(t, v.Baseline, v.Scenario)
}

func TestTUI_LevelingShowsGrid(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('3')

	lv := d.Leveling()
	require.NotNil(t, lv.grid)
	assert.Equal(t, 19, lv.grid.Weeks)
	out := d.View()
	assert.Contains(t, out, "Alice (40h)")
	assert.Contains(t, out, "W19")
}

func TestTUI_LevelingCursorStaysInGrid(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('3')

	d.PressLeft()
	d.PressUp()
	lv := d.Leveling()
	assert.Equal(t, 0, lv.row)
	assert.Equal(t, 1, lv.week)

	d.Repeat(30, d.PressRight)
	d.Repeat(10, d.PressDown)
	lv = d.Leveling()
	assert.Equal(t, 19, lv.week)
	assert.Equal(t, len(lv.grid.Rows)-1, lv.row)
}

// Cell selected, suggestion applied, selection cleared.
func TestTUI_LevelingSelectAndApply(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('3')

	d.Repeat(4, d.PressRight)
	require.Equal(t, "r1", d.Leveling().grid.Rows[0].ResourceID)
	assert.Contains(t, d.View(), "W5 · 80h of 40h")

	d.PressEnter()
	lv := d.Leveling()
	require.True(t, lv.selected)
	require.Len(t, lv.suggestions.Suggestions, 2)
	assert.Contains(t, d.View(), "Suggestions for Alice, week 5")
	assert.Contains(t, d.View(), `Delay "Frontend Dev" by 1 week.`)

	d.PressEnter()
	lv = d.Leveling()
	assert.False(t, lv.selected)
	assert.Nil(t, lv.suggestions)

	text, isErr := d.Status()
	assert.Equal(t, `Applied: Delay "Frontend Dev" by 1 week.`, text)
	assert.False(t, isErr)

	t3, err := app.Tasks.GetByID(context.Background(), "t3")
	require.NoError(t, err)
	assert.Equal(t, 6, t3.StartWeek)
	assert.Equal(t, domain.LoadOptimal, lv.grid.Cell("r1", 5).Load)
}

func TestTUI_LevelingChooseSecondSuggestion(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('3')
	d.Repeat(4, d.PressRight)
	d.PressEnter()

	second := d.Leveling().suggestions.Suggestions[1]
	d.PressDown()
	d.PressDown()
	assert.Equal(t, 1, d.Leveling().choice)

	d.PressEnter()
	text, _ := d.Status()
	assert.Equal(t, "Applied: "+second.Message, text)
}

func TestTUI_LevelingEscClearsSelection(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('3')
	d.Repeat(4, d.PressRight)

	d.PressEnter()
	require.True(t, d.Leveling().selected)

	d.PressEsc()
	assert.False(t, d.Leveling().selected)
	assert.Equal(t, 5, d.Leveling().week, "cursor is kept")
}

func TestTUI_LevelingWithinCapacityCell(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('3')

	d.PressEnter()
	lv := d.Leveling()
	require.True(t, lv.selected)
	assert.Empty(t, lv.suggestions.Suggestions)
	assert.Contains(t, d.View(), "Within capacity; nothing to level.")

	d.PressEnter()
	assert.False(t, d.Leveling().selected)
}

func TestTUI_LevelingStaleSuggestion(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('3')
	d.Repeat(4, d.PressRight)
	d.PressEnter()
	d.PressDown()

	_, err := app.Leveling.Apply(context.Background(), telosapp.ApplySuggestionRequest{ResourceID: "r1", Week: 5, Index: 0})
	require.NoError(t, err)

	d.PressEnter()
	text, isErr := d.Status()
	assert.True(t, isErr)
	assert.Contains(t, text, string(telosapp.LevelingErrUnknownSuggestion))
	assert.False(t, d.Leveling().selected)
}

func TestTUI_ModeSwitchClearsStatus(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressRight()
	text, _ := d.Status()
	require.NotEmpty(t, text)

	d.PressKey('2')
	text, _ = d.Status()
	assert.Empty(t, text)
}

func TestTUI_EmptyPortfolio(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	assert.Contains(t, d.View(), "No projects yet.")
	d.PressRight()
	text, _ := d.Status()
	assert.Empty(t, text)

	d.PressKey('2')
	assert.Contains(t, d.View(), "No projects yet.")

	d.PressKey('3')
	assert.Contains(t, d.View(), "No scheduled work.")
	d.PressEnter()
	assert.False(t, d.Leveling().selected)
}
