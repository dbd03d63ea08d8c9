package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Submit a promotion application",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.Faculty.Apply(cmd.Context())
			if errors.Is(err, domain.ErrIneligibleApplication) {
				e, eErr := app.Faculty.Eligibility(cmd.Context())
				if eErr == nil {
					return fmt.Errorf("%w: %d more points needed", err, e.PointsNeeded)
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatApplied(f))
			return nil
		},
	}
}
