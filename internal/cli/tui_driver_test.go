package cli

import (
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to the dashboard's views.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the dashboard for app, sizes it and drains Init so
// every view has loaded.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newDashboardModel(app), teatest.WithSize(160, 48))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) dashboard() dashboardModel {
	return d.Model.(dashboardModel)
}

// ActiveMode returns the mode of the view on screen.
func (d *TestDriver) ActiveMode() domain.ViewMode {
	return d.dashboard().mode
}

// Status returns the status line text and whether it is an error.
func (d *TestDriver) Status() (string, bool) {
	s := d.dashboard().status
	return s.text, s.isErr
}

// IsQuitting reports whether q or ctrl+c was handled.
func (d *TestDriver) IsQuitting() bool {
	return d.dashboard().quitting || d.Quitting
}

func (d *TestDriver) State() *SharedState {
	return d.dashboard().state
}

func (d *TestDriver) view(mode domain.ViewMode) View {
	for _, v := range d.dashboard().views {
		if v.Mode() == mode {
			return v
		}
	}
	d.T.Fatalf("no view for mode %s", mode)
	return nil
}

func (d *TestDriver) Alignment() *alignmentView {
	return d.view(domain.ViewAlignment).(*alignmentView)
}

func (d *TestDriver) Scenario() *scenarioView {
	return d.view(domain.ViewScenario).(*scenarioView)
}

func (d *TestDriver) Leveling() *levelingView {
	return d.view(domain.ViewLeveling).(*levelingView)
}
