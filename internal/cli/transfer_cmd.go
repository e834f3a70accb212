package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/export"
	"github.com/alexanderramin/telos/internal/importer"
	"github.com/spf13/cobra"
)

const stdoutPath = "-"

func newExportCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the portfolio as CSV, or as a JSON/YAML import file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = filepath.Join(app.config().Export.Dir, defaultExportName(format))
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != stdoutPath {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			var err error
			switch format {
			case "csv":
				err = app.Export.ExportCSV(cmd.Context(), w)
			case string(importer.FormatJSON), string(importer.FormatYAML):
				err = app.Export.ExportSchema(cmd.Context(), w, importer.Format(format))
			default:
				return fmt.Errorf("unknown export format %q (csv, json, yaml)", format)
			}
			if err != nil {
				return err
			}

			if output != stdoutPath {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported portfolio to %s\n", formatter.Bold(output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout (default: <export dir>/"+export.FileName+")")

	return cmd
}

func defaultExportName(format string) string {
	switch format {
	case string(importer.FormatJSON):
		return "portfolio.json"
	case string(importer.FormatYAML):
		return "portfolio.yaml"
	default:
		return export.FileName
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the portfolio with the contents of a JSON or YAML file",
		Long: "Replace the whole portfolio (drivers, projects, resources, tasks) with the\n" +
			"contents of a .json, .yaml or .yml file. The file is validated first; on any\n" +
			"error nothing is changed. Scenario adjustments are discarded.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPortfolio(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d drivers, %d projects, %d resources, %d tasks\n",
				result.DriverCount, result.ProjectCount, result.ResourceCount, result.TaskCount)
			return nil
		},
	}
}

func newSeedCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample portfolio into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force {
				result, err := app.Seed.Reseed(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced portfolio with sample data (%d projects, %d tasks)\n",
					result.Counts.ProjectCount, result.Counts.TaskCount)
				return nil
			}

			result, err := app.Seed.SeedIfEmpty(cmd.Context())
			if err != nil {
				return err
			}
			if !result.Seeded {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Database already has data; use --force to replace it."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded sample portfolio (%d projects, %d tasks)\n",
				result.Counts.ProjectCount, result.Counts.TaskCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace existing data with the sample portfolio")
	return cmd
}
