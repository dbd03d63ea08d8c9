package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// promotrackHuhTheme returns a huh theme using the Gruvbox palette.
func promotrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter zero or a positive number")
	}
	return nil
}

func positionOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Positions))
	for _, p := range domain.Positions {
		opts = append(opts, huh.NewOption(formatter.PositionLabel(p), string(p)))
	}
	return opts
}

// profileForm builds the onboarding form. Fields already filled in p are
// used as defaults.
func profileForm(p *importer.ProfileImport, years *string) *huh.Form {
	if p.CurrentPosition == "" {
		p.CurrentPosition = string(domain.PositionTeachingAssistant)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Value(&p.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Degree").
				Placeholder("PhD").
				Value(&p.Degree),
			huh.NewSelect[string]().
				Title("Current Position").
				Options(positionOptions()...).
				Value(&p.CurrentPosition),
			huh.NewInput().
				Title("Years of Service").
				Placeholder("0").
				Value(years).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(promotrackHuhTheme()).WithShowHelp(false)
}

type profileFlags struct {
	name     string
	degree   string
	position string
	years    int
}

func (pf *profileFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&pf.name, "name", "", "Full name")
	fs.StringVar(&pf.degree, "degree", "", "Highest degree")
	fs.StringVar(&pf.position, "position", "", "Current position (teaching_assistant, lecturer, assistant_professor)")
	fs.IntVar(&pf.years, "years", 0, "Years of service")
}

// overlay writes every flag the user set onto p, creating p if needed.
func (pf *profileFlags) overlay(cmd *cobra.Command, p *importer.ProfileImport) *importer.ProfileImport {
	changed := cmd.Flags().Changed
	if !changed("name") && !changed("degree") && !changed("position") && !changed("years") {
		return p
	}
	if p == nil {
		p = &importer.ProfileImport{}
	}
	if changed("name") {
		p.Name = pf.name
	}
	if changed("degree") {
		p.Degree = pf.degree
	}
	if changed("position") {
		p.CurrentPosition = pf.position
	}
	if changed("years") {
		p.YearsOfService = pf.years
	}
	return p
}

func newWizardCmd(app *App) *cobra.Command {
	var file string
	var nonInteractive bool
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Complete onboarding: profile plus initial achievements",
		Long: `Capture the profile and the initial achievement set, then run the first
scoring pass. Achievements can be loaded from a JSON file with --file; the
profile comes from the file, from flags, or from an interactive form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &importer.WizardImport{}
			if file != "" {
				loaded, err := importer.LoadWizard(file)
				if err != nil {
					return fmt.Errorf("loading wizard file: %w", err)
				}
				w = loaded
			}
			w.Profile = flags.overlay(cmd, w.Profile)

			if w.Profile == nil || w.Profile.Name == "" {
				if nonInteractive || !app.interactive() {
					return fmt.Errorf("%w: profile is required (use --file or --name/--position)", importer.ErrValidation)
				}
				if w.Profile == nil {
					w.Profile = &importer.ProfileImport{}
				}
				years := ""
				if w.Profile.YearsOfService > 0 {
					years = strconv.Itoa(w.Profile.YearsOfService)
				}
				if err := profileForm(w.Profile, &years).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return err
				}
				if years != "" {
					w.Profile.YearsOfService, _ = strconv.Atoi(years)
				}
			}

			if err := importer.ValidateWizard(w, true); err != nil {
				return err
			}

			f, err := app.Faculty.CompleteWizard(cmd.Context(), w.Profile.Profile(), w.Achievements.Set())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Onboarding complete for %s.\n\n", formatter.StyleGreen.Render("✔"), formatter.Bold(f.Profile.Name))
			fmt.Fprint(out, formatter.FormatStatus(f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with profile and achievements")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; fail when the profile is incomplete")
	flags.register(cmd.Flags())

	return cmd
}
