package main

import (
	"context"
	"log/slog"

	"automarket/internal/domain/lifecycle"
	"automarket/internal/errors"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newAgentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Run the order poller and the local message bridge",
		Long:  "Checks for paid orders at start and on every poll interval, and serves the bridge used by the page integration and the CLI.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(
				appOptions(context.Background()),
				injectHandler(),
				injectDelivery(),
				withSlogEvents(),
				fx.Invoke(
					startServer,
				),
			)
			if err := app.Err(); err != nil {
				return errors.Wrap(err, "build agent")
			}

			startCtx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return errors.Wrap(err, "start agent")
			}

			select {
			case <-cmd.Context().Done():
			case sig := <-app.Done():
				slog.Info("Agent received signal", slog.String("signal", sig.String()))
			}

			stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancelStop()

			return errors.Wrap(app.Stop(stopCtx), "stop agent")
		},
	}
}
