package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the HTTP score API",
	Long: `Serve the leaderboard and the headless simulator over HTTP.

Endpoints:
  GET  /health
  GET  /api/v1/scores?limit=N
  GET  /api/v1/scores/high
  GET  /api/v1/runs/{runID}
  GET  /api/v1/stats
  POST /api/v1/simulate

Examples:
  frogger api
  frogger api --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", "", "Listen address (default from config)")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	addr := appConfig.Server.APIAddress
	if flagAPIAddr != "" {
		addr = flagAPIAddr
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serveHTTP(ctx, addr, store)
}
