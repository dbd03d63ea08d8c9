package cli

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/importer"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or edit the faculty profile",
	}

	cmd.AddCommand(newProfileSetCmd(app))

	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields and re-evaluate eligibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := flags.patch(cmd)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: pass at least one of --name, --degree, --position, --years")
			}

			f, err := app.Faculty.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Profile updated.\n\n", formatter.StyleGreen.Render("✔"))
			fmt.Fprint(out, formatter.FormatEligibility(f.Eligibility()))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

// patch converts the flags the user set into a profile patch.
func (pf *profileFlags) patch(cmd *cobra.Command) (domain.ProfilePatch, error) {
	var patch domain.ProfilePatch
	changed := cmd.Flags().Changed

	if changed("name") {
		if err := validateRequired(pf.name); err != nil {
			return patch, fmt.Errorf("%w: name is required", importer.ErrValidation)
		}
		patch.Name = &pf.name
	}
	if changed("degree") {
		patch.Degree = &pf.degree
	}
	if changed("position") {
		p, err := domain.ParsePosition(pf.position)
		if err != nil {
			return patch, err
		}
		patch.CurrentPosition = &p
	}
	if changed("years") {
		if pf.years < 0 {
			return patch, fmt.Errorf("%w: years must be at least 0", importer.ErrValidation)
		}
		patch.YearsOfService = &pf.years
	}
	return patch, nil
}
