package cli

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/scoring"
	"github.com/spf13/cobra"
)

func newConfigCmd(_ *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the static scoring tables",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "rates",
			Short: "Show points per achievement type",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRates(scoring.RateTable()))
			},
		},
		&cobra.Command{
			Use:   "requirements",
			Short: "Show minimum points per position",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequirements(domain.PromotionRequirements()))
			},
		},
	)

	return cmd
}
