package cli

import (
	"github.com/alexanderramin/telos/internal/config"
	"github.com/alexanderramin/telos/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Drivers   service.DriverService
	Projects  service.ProjectService
	Resources service.ResourceService
	Tasks     service.TaskService
	Alignment service.AlignmentService
	Leveling  service.LevelingService
	Scenario  service.ScenarioService
	Export    service.ExportService
	Import    service.ImportService
	Seed      service.SeedService

	Config *config.Config
	Log    zerolog.Logger

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// TUI are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		return config.Default()
	}
	return a.Config
}

// NewRootCmd creates the top-level "telos" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// dashboard on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "telos",
		Short:         "Project portfolio planner: alignment, scenarios and resource leveling",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newDriverCmd(app),
		newProjectCmd(app),
		newResourceCmd(app),
		newTaskCmd(app),
		newAlignmentCmd(app),
		newLevelingCmd(app),
		newScenarioCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
		newTUICmd(app),
	)

	return root
}
