package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addScheduleFlags registers the shared --start/--duration pair.
func addScheduleFlags(fs *pflag.FlagSet, start, duration *int) {
	fs.IntVar(start, "start", 1, "First week (1-based)")
	fs.IntVar(duration, "duration", 1, "Length in weeks")
}

func newDriverCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Manage strategic business drivers",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List drivers and their weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drivers, err := app.Drivers.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDrivers(drivers))
			return nil
		},
	}

	var weight int
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Driver{Name: args[0], Weight: weight}
			if err := app.Drivers.Create(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added driver %s %s\n", formatter.Bold(d.Name), formatter.Dim(d.ID))
			return nil
		},
	}
	add.Flags().IntVar(&weight, "weight", 5, "Initial weight (0-10)")

	setWeight := &cobra.Command{
		Use:   "weight <driver-id> [weight]",
		Short: "Change how much a driver counts in alignment scoring",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := app.Drivers.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			var raw string
			switch {
			case len(args) == 2:
				raw = args[1]
			case app.interactive():
				if err := weightForm(d, &raw).Run(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("weight is required")
			}

			w, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid weight %q: must be a whole number", raw)
			}
			if err := app.Drivers.SetWeight(ctx, d.ID, w); err != nil {
				return err
			}

			resp, err := app.Alignment.Rank(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s weight %d → %d\n\n", formatter.Bold(d.Name), d.Weight, w)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlignment(resp))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <driver-id>",
		Short: "Remove a driver and its project scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Drivers.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed driver %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, setWeight, remove)
	return cmd
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjects(projects))
			return nil
		},
	}

	var (
		description string
		budget      float64
		risk        float64
		start       int
		duration    int
		scores      map[string]int
	)
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:        args[0],
				Description: description,
				Budget:      budget,
				Risk:        risk,
				StartWeek:   start,
				Duration:    duration,
			}
			driverIDs := make([]string, 0, len(scores))
			for id := range scores {
				driverIDs = append(driverIDs, id)
			}
			sort.Strings(driverIDs)
			for _, id := range driverIDs {
				p.Scores = append(p.Scores, domain.ProjectScore{DriverID: id, Score: scores[id]})
			}
			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added project %s %s\n", formatter.Bold(p.Name), formatter.Dim(p.ID))
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "Short description")
	add.Flags().Float64Var(&budget, "budget", 0, "Budget")
	add.Flags().Float64Var(&risk, "risk", 5, "Risk score (1-10)")
	addScheduleFlags(add.Flags(), &start, &duration)
	add.Flags().StringToIntVar(&scores, "score", nil, "Driver scores as driver-id=score (1-10)")

	score := &cobra.Command{
		Use:   "score <project-id> <driver-id> <score>",
		Short: "Set a project's score against one driver",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid score %q: must be a whole number", args[2])
			}
			if err := app.Projects.SetScore(cmd.Context(), args[0], args[1], v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scored %s on %s: %d\n", args[0], args[1], v)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <project-id>",
		Short: "Remove a project with its tasks and scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, score, remove)
	return cmd
}

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage people and their weekly capacity",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := app.Resources.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResources(resources))
			return nil
		},
	}

	var capacity float64
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Resource{Name: args[0], Capacity: capacity}
			if err := app.Resources.Create(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added resource %s %s\n", formatter.Bold(r.Name), formatter.Dim(r.ID))
			return nil
		},
	}
	add.Flags().Float64Var(&capacity, "capacity", 40, "Weekly capacity in hours")

	remove := &cobra.Command{
		Use:   "remove <resource-id>",
		Short: "Remove a resource; its tasks become unassigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Resources.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed resource %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage project tasks",
	}

	var projectID, resourceID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				tasks []domain.Task
				err   error
			)
			switch {
			case projectID != "":
				tasks, err = app.Tasks.ListByProject(ctx, projectID)
			case resourceID != "":
				tasks, err = app.Tasks.ListByResource(ctx, resourceID)
			default:
				tasks, err = app.Tasks.List(ctx)
			}
			if err != nil {
				return err
			}
			resources, err := app.Resources.List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks, resources))
			return nil
		},
	}
	list.Flags().StringVar(&projectID, "project", "", "Only tasks of this project")
	list.Flags().StringVar(&resourceID, "resource", "", "Only tasks assigned to this resource")
	list.MarkFlagsMutuallyExclusive("project", "resource")

	var (
		addProject  string
		addResource string
		hours       float64
		start       int
		duration    int
	)
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				ProjectID:      addProject,
				Name:           args[0],
				EstimatedHours: hours,
				ResourceID:     addResource,
				StartWeek:      start,
				Duration:       duration,
			}
			if err := app.Tasks.Create(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s %s\n", formatter.Bold(t.Name), formatter.Dim(t.ID))
			return nil
		},
	}
	add.Flags().StringVar(&addProject, "project", "", "Owning project ID")
	add.Flags().StringVar(&addResource, "resource", "", "Assigned resource ID (blank for unassigned)")
	add.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	addScheduleFlags(add.Flags(), &start, &duration)
	_ = add.MarkFlagRequired("project")

	var assignTo string
	assign := &cobra.Command{
		Use:   "assign <task-id>",
		Short: "Assign a task to a resource, or unassign it with --to \"\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := app.Tasks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			t.ResourceID = assignTo
			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s assigned to %s\n", t.Name, domain.CoalesceStr(assignTo, "nobody"))
			return nil
		},
	}
	assign.Flags().StringVar(&assignTo, "to", "", "Resource ID")

	remove := &cobra.Command{
		Use:   "remove <task-id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, assign, remove)
	return cmd
}
