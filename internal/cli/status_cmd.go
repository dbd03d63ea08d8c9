package cli

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var eligibilityOnly bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, points and promotion eligibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			if eligibilityOnly {
				e, err := app.Faculty.Eligibility(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEligibility(e))
				return nil
			}

			f, err := app.Faculty.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(f))
			return nil
		},
	}

	cmd.Flags().BoolVar(&eligibilityOnly, "eligibility", false, "Show only the eligibility verdict")

	return cmd
}
