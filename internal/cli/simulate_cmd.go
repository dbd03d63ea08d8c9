package cli

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/importer"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Score hypothetical achievements without saving them",
		Long: `Load hypothetical additions from a JSON file shaped like
{"additions": {"research": [...], "patents": [...]}} and compare the
resulting total against the current one. Nothing is stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := importer.LoadSimulation(file)
			if err != nil {
				return fmt.Errorf("loading simulation file: %w", err)
			}
			if err := importer.Validate(sim); err != nil {
				return err
			}

			result, err := app.Faculty.Simulate(cmd.Context(), sim.Additions.Set())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSimulation(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with hypothetical additions")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
