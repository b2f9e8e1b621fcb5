package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/api"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/platform/tui"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeAPI    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Frogger SSH server",
	Long: `Start an SSH server where every connection gets its own menu and game.
All players share one leaderboard. With --api the HTTP score API runs in the
same process.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  frogger serve
  frogger serve --ssh :2222
  frogger serve --api :8080

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagServeAPI, "api", "", "Also serve the HTTP API on this address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srvCfg := appConfig.Server
	if flagSSHAddr != "" {
		srvCfg.SSHAddress = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	switch {
	case err != nil && flagServeAPI != "":
		return fmt.Errorf("the API needs the scores database: %w", err)
	case err != nil:
		logger.Warn("could not open scores database; scores will not be saved", "error", err)
		store = nil
	default:
		defer store.Close()
	}

	sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:       srvCfg.SSHAddress,
		HostKeyPath:   srvCfg.HostKeyPath,
		IdleTimeout:   srvCfg.IdleTimeout(),
		GameID:        frogger.ID,
		TickRate:      tickRate(),
		Difficulty:    appConfig.Difficulty,
		PlatformEvery: appConfig.Timing.PlatformEvery(),
	}, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sshServer.ListenAndServe(ctx) })
	if flagServeAPI != "" {
		g.Go(func() error { return serveHTTP(ctx, flagServeAPI, store) })
	}

	cmd.Printf("Frogger SSH server on %s (ssh localhost -p <port>), Ctrl+C to stop\n", sshServer.Addr())
	return g.Wait()
}

// serveHTTP runs the score API until ctx is done.
func serveHTTP(ctx context.Context, addr string, store *storage.Store) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(store, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP API", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
