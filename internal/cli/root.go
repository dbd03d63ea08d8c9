package cli

import (
	"github.com/alexanderramin/promotrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal facts used by CLI commands.
type App struct {
	Faculty service.FacultyService

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Addr is the default listen address for serve.
	Addr string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "promotrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "promotrack",
		Short:         "Faculty promotion points tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newWizardCmd(app),
		newStatusCmd(app),
		newAchievementCmd(app),
		newProfileCmd(app),
		newApplyCmd(app),
		newSimulateCmd(app),
		newConfigCmd(app),
		newResetCmd(app),
		newDashboardCmd(app),
		newServeCmd(app),
	)

	return root
}
