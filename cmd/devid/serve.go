package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teklink/devid/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification API server",
		Long: `Serve the device classification API.

Endpoints:
  ANY /identify   classify a device (query string or JSON/form body)
  GET /health     liveness check

Examples:
  devid serve                 # listen on :3000
  devid serve --addr :8080`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":3000", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	eng, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	addr := viper.GetString("server.addr")
	slog.Info("Starting classification server", "addr", addr)

	return server.New(eng).Run(ctx, addr)
}
