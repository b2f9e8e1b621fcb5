package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/config"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/registry"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file. Empty means ~/.arcade/host_key,
	// generated on first start.
	HostKeyPath string

	IdleTimeout time.Duration

	// GameID is the registered game every session plays.
	GameID string

	TickRate   int
	Difficulty config.DifficultyPreset

	// PlatformEvery is the platform cadence handed to every session.
	PlatformEvery int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:       ":23234",
		IdleTimeout:   30 * time.Minute,
		GameID:        "frogger",
		TickRate:      100,
		Difficulty:    config.DifficultyEasy,
		PlatformEvery: 1,
	}
}

// SSHServer serves the game to SSH clients through Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates an SSH server. store may be nil, in which case runs
// are not saved. The caller owns store.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("tui: unknown game %q", cfg.GameID)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger.WithPrefix("ssh"),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:       pty.Window.Width,
		ScreenH:       pty.Window.Height,
		TickRate:      s.config.TickRate,
		StartLevel:    config.StartLevelForPreset(s.config.Difficulty),
		PlatformEvery: s.config.PlatformEvery,
	}
	id := uuid.NewString()
	logger := s.logger.With("session", id[:8], "user", sess.User())

	return NewSessionModel(s.store, cfg, s.config, sess.User(), logger), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel drives one SSH session: menu, game and scoreboard.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	server   SSHServerConfig
	player   string
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, server SSHServerConfig, player string, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		server: server,
		player: player,
		logger: logger,
		menu:   NewMenuModel(cfg, server.Difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = wsm.Width, wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceNone:
		return m, cmd
	case ChoicePlay:
		game, err := registry.Create(m.server.GameID)
		if err != nil {
			m.logger.Error("create game", "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		res := m.menu.Result()
		cfg := m.config
		cfg.StartLevel = res.Config.StartLevel
		m.game = NewModel(game, m.store, cfg, Options{Player: m.player, Logger: m.logger})
		m.game.embedded = true
		m.screen = screenGame
		m.logger.Debug("game started", "difficulty", res.Difficulty, "seed", m.game.config.Seed)
		return m, m.game.Init()
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.server.GameID, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.quitting:
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config, m.menu.Difficulty())
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
