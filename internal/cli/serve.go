package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the session monitors and the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info().
				Str("mode", cfg.Server.Mode).
				Int("port", cfg.Server.Port).
				Str("bridge", cfg.Wallet.BridgeURL).
				Str("node", cfg.Chain.NodeURL).
				Msg("Starting token recovery dApp")

			app, err := NewApp(ctx, cfg, Deps{}, log)
			if err != nil {
				return err
			}
			app.Start(ctx)

			serveErr := make(chan error, 1)
			go func() { serveErr <- app.Serve() }()

			select {
			case <-ctx.Done():
				log.Info().Msg("Shutting down...")
			case err = <-serveErr:
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if stopErr := app.Stop(shutdownCtx); stopErr != nil {
				log.Error().Err(stopErr).Msg("Shutdown incomplete")
			}

			log.Info().Msg("Exited")
			return err
		},
	}
}
