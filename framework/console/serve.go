package console

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/slarb/framework/app"
	"github.com/km-arc/slarb/routes"
)

func newServeCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo API",
		Example: `  slarb serve
  slarb serve --env .env.production`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := app.New(app.WithEnvFiles(envFiles...))
			routes.Register(a)
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env", nil, "env files to load (default .env)")
	return cmd
}
