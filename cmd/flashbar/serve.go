package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flashbar-dev/flashbar/internal/config"
	"github.com/flashbar-dev/flashbar/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the notification server",
		Long: `Start the flashbar notification server.

The server renders the preview page, accepts toast submissions on
POST /toast, and pushes them to connected browsers over WebSocket.

Examples:
  flashbar serve
  flashbar serve --port=9090
  flashbar serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from flashbar.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from flashbar.json)")

	return cmd
}

func runServe(port int, host string) error {
	cfg, err := loadOrDefaultConfig()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printLogo()
	info("listening on http://%s", cfg.Address())
	info("preview:      http://%s/", cfg.Address())
	if cfg.Metrics.Enabled {
		info("metrics:      http://%s/metrics", cfg.Address())
	}

	srv := server.New(&server.Config{
		Address:         cfg.Address(),
		ShutdownTimeout: cfg.ShutdownTimeout(),
		AutoHide:        cfg.AutoHide(),
	})
	return srv.Run()
}

// loadOrDefaultConfig loads flashbar.json from the working directory,
// falling back to defaults when no file exists.
func loadOrDefaultConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if !config.Exists(wd) {
		return config.New(), nil
	}
	return config.Load(wd)
}
