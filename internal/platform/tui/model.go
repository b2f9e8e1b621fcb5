package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/registry"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

// Options customizes a game session.
type Options struct {
	// Player is stored with saved runs. Empty means anonymous.
	Player string
	// Logger receives session events. Nil uses the default logger.
	Logger *log.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    core.InputFrame
	state    core.GameState
	player   string
	logger   *log.Logger
	quitting bool
	back     bool
	embedded bool // running inside a session; never quit the program
	saved    bool // run already stored for the current game over
}

// NewModel creates a model for game. A zero seed is replaced by a clock
// based one so it can be stored with the run.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		player: opts.Player,
		logger: logger,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}
	action, quit := m.keys.MapKey(msg)
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && (m.state.GameOver || m.state.Paused):
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case action != core.ActionNone:
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input)
	m.input.Clear()
	m.state = res.State

	if res.LevelCleared {
		m.logger.Debug("level cleared", "level", m.state.Level, "score", m.state.Score)
	}

	switch {
	case m.state.GameOver && !m.saved:
		m.saveRun()
		m.saved = true
	case !m.state.GameOver:
		m.saved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Storage errors are logged and the game
// goes on.
func (m *Model) saveRun() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.state.Score,
		Level:  m.state.Level,
	}
	if s, ok := m.game.(registry.Seeded); ok {
		entry.Seed = s.Seed()
	}
	saved, err := m.store.SaveRun(entry)
	if err != nil {
		m.logger.Error("save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run_id", saved.RunID, "score", saved.Score, "level", saved.Level)
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View draws the game.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.state
}

// BackToMenu reports whether the player left a finished or paused game.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays game in the local terminal until the player quits
// or goes back to the menu. It reports whether the player asked to go back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	p := tea.NewProgram(NewModel(game, store, cfg, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
