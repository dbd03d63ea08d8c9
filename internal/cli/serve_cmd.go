package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Addr
			}
			if addr == "" {
				addr = ":8080"
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := httpapi.NewServer(app.Faculty).Router(cmd.ErrOrStderr())
			fmt.Fprintf(cmd.OutOrStdout(), "%s Listening on %s %s\n",
				formatter.StyleGreen.Render("●"), formatter.Bold(addr), formatter.Dim("(ctrl+c to stop)"))
			return httpapi.ListenAndServe(ctx, addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from PROMOTRACK_ADDR)")

	return cmd
}
