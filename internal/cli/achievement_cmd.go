package cli

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/importer"
	"github.com/spf13/cobra"
)

func newAchievementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievement",
		Aliases: []string{"ach"},
		Short:   "Manage recorded achievements",
	}

	cmd.AddCommand(
		newAchievementAddCmd(app),
		newAchievementListCmd(app),
		newAchievementDeleteCmd(app),
	)

	return cmd
}

// achievementFlags collects the union of per-category fields. Only the
// ones relevant to the chosen category are read.
type achievementFlags struct {
	title     string
	journal   string
	quartile  string
	number    string
	status    string
	student   string
	project   string
	kind      string
	role      string
	provider  string
	certified bool
}

func (af *achievementFlags) record(c domain.Category) importer.RecordImport {
	switch c {
	case domain.CategoryResearch:
		return &importer.ResearchImport{Title: af.title, Journal: af.journal, Quartile: af.quartile}
	case domain.CategoryPatents:
		return &importer.PatentImport{Title: af.title, Number: af.number, Status: af.status}
	case domain.CategorySupervision:
		return &importer.SupervisionImport{StudentName: af.student, ProjectTitle: af.project, Type: af.kind}
	case domain.CategoryConferences:
		return &importer.ConferenceImport{Title: af.title, Type: af.kind, Role: af.role}
	case domain.CategoryTraining:
		return &importer.TrainingImport{Title: af.title, Provider: af.provider, Certified: af.certified}
	default:
		return &importer.TeachingImport{Title: af.title, Type: af.kind}
	}
}

func newAchievementAddCmd(app *App) *cobra.Command {
	var af achievementFlags

	cmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Record an achievement and recompute points",
		Long: `Record an achievement in one of the six categories:
  research     --title --quartile (Q1..Q4, local) [--journal]
  patents      --title --status (granted, pending) [--number]
  supervision  --student --type (phd, masters, graduation) [--project]
  conferences  --title --type (international, local) --role (presenter, attendee, keynote, organizer)
  training     --title [--certified] [--provider]
  teaching     --title --type (course_development, lectures, assessment)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			details, err := importer.ValidateRecord(af.record(c))
			if err != nil {
				return err
			}

			res, err := app.Faculty.AddAchievement(cmd.Context(), details)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievementAdded(res.Achievement, res.Faculty))
			return nil
		},
	}

	cmd.Flags().StringVar(&af.title, "title", "", "Title")
	cmd.Flags().StringVar(&af.journal, "journal", "", "Journal name (research)")
	cmd.Flags().StringVar(&af.quartile, "quartile", "", "Journal quartile (research)")
	cmd.Flags().StringVar(&af.number, "number", "", "Patent number (patents)")
	cmd.Flags().StringVar(&af.status, "status", "", "Patent status (patents)")
	cmd.Flags().StringVar(&af.student, "student", "", "Student name (supervision)")
	cmd.Flags().StringVar(&af.project, "project", "", "Project title (supervision)")
	cmd.Flags().StringVar(&af.kind, "type", "", "Type (supervision, conferences, teaching)")
	cmd.Flags().StringVar(&af.role, "role", "", "Role (conferences)")
	cmd.Flags().StringVar(&af.provider, "provider", "", "Provider (training)")
	cmd.Flags().BoolVar(&af.certified, "certified", false, "Certified (training)")

	return cmd
}

func newAchievementListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List achievements with their points",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var only domain.Category
			if len(args) == 1 {
				c, err := domain.ParseCategory(args[0])
				if err != nil {
					return err
				}
				only = c
			}

			items, err := app.Faculty.ListAchievements(cmd.Context(), only)
			if err != nil {
				return err
			}
			set := domain.NewAchievementSet()
			for _, a := range items {
				set.Add(a)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievementList(set, only))
			return nil
		},
	}
}

func newAchievementDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an achievement and recompute points",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveAchievementID(cmd, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Faculty.DeleteAchievement(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievementDeleted(res.Achievement, res.Faculty))
			return nil
		},
	}
}
