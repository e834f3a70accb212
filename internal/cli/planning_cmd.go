package cli

import (
	"context"
	"fmt"
	"strconv"

	telosapp "github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAlignmentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "alignment",
		Short: "Rank projects by weighted alignment with the strategic drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Alignment.Rank(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlignment(resp))
			return nil
		},
	}
}

func newLevelingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leveling",
		Aliases: []string{"level"},
		Short:   "Inspect and balance weekly resource allocation",
	}

	grid := &cobra.Command{
		Use:   "grid",
		Short: "Show hours per resource per week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Leveling.Grid(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLevelingGrid(g))
			return nil
		},
	}

	suggest := &cobra.Command{
		Use:   "suggest <resource-id> <week>",
		Short: "List corrective actions for an over-allocated week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := parseWeek(args[1])
			if err != nil {
				return err
			}
			resp, err := app.Leveling.Suggest(cmd.Context(), telosapp.SuggestionsRequest{ResourceID: args[0], Week: week})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(resp, resourceName(cmd.Context(), app, args[0])))
			return nil
		},
	}

	apply := &cobra.Command{
		Use:   "apply <resource-id> <week> <index>",
		Short: "Apply one suggestion, as numbered by suggest",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := parseWeek(args[1])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid suggestion index %q", args[2])
			}
			resp, err := app.Leveling.Apply(cmd.Context(), telosapp.ApplySuggestionRequest{ResourceID: args[0], Week: week, Index: index})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Applied:"), resp.Applied.Message)
			return nil
		},
	}

	cmd.AddCommand(grid, suggest, apply)
	return cmd
}

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Model what-if delays and budget changes against the baseline",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Compare the scenario with the baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Scenario.Show(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScenario(view))
			return nil
		},
	}

	var (
		delay        int
		budgetChange float64
	)
	adjust := &cobra.Command{
		Use:   "adjust [project-id]",
		Short: "Set a project's delay and budget change in the scenario",
		Long: "Set a project's scenario delay (weeks) and budget change. The values replace\n" +
			"any earlier adjustment; zero for both removes it. Without arguments on a\n" +
			"terminal, a form asks for the project and values.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req := telosapp.AdjustScenarioRequest{Delay: delay, BudgetChange: budgetChange}

			switch {
			case len(args) == 1:
				req.ProjectID = args[0]
			case app.interactive():
				projects, err := app.Projects.List(ctx)
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					return fmt.Errorf("no projects to adjust")
				}
				var projectID, rawDelay, rawBudget string
				if err := scenarioForm(projects, &projectID, &rawDelay, &rawBudget).Run(); err != nil {
					return err
				}
				req.ProjectID = projectID
				req.Delay = parseOptionalInt(rawDelay)
				req.BudgetChange = parseOptionalFloat(rawBudget)
			default:
				return fmt.Errorf("project ID is required")
			}

			view, err := app.Scenario.Adjust(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScenario(view))
			return nil
		},
	}
	adjust.Flags().IntVar(&delay, "delay", 0, "Delay in weeks (0-26)")
	adjust.Flags().Float64Var(&budgetChange, "budget-change", 0, "Signed budget change")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Discard all scenario adjustments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Scenario.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Scenario reset to baseline.")
			return nil
		},
	}

	cmd.AddCommand(show, adjust, reset)
	return cmd
}

func parseWeek(s string) (int, error) {
	week, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid week %q: must be a whole number", s)
	}
	return week, nil
}

// resourceName falls back to the ID when the resource cannot be loaded.
func resourceName(ctx context.Context, a *App, id string) string {
	r, err := a.Resources.GetByID(ctx, id)
	if err != nil {
		return id
	}
	return r.Name
}
