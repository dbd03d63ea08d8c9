package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the profile, all achievements and the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset without confirmation (pass --yes)")
				}
				confirmed := false
				err := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Erase all promotion data?").
						Description("Profile, achievements and application status will be removed.").
						Affirmative("Reset").
						Negative("Cancel").
						Value(&confirmed),
				)).WithTheme(promotrackHuhTheme()).WithShowHelp(false).Run()
				if err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			if _, err := app.Faculty.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s All data reset. Run %s to start over.\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold("promotrack wizard"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
