package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/platform/tui"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/registry"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a run right away.

Controls:
  Arrows/WASD/HJKL - Move the frog
  P                - Pause
  R                - Restart from the start level
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Esc              - Leave (when paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 2
  hard   - Start at level 3

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --seed 42 --player alice`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}
	_, err := playOnce(store)
	return err
}

// playOnce runs one game session. It reports whether the player asked to
// go back to the menu.
func playOnce(store *storage.Store) (bool, error) {
	game, err := registry.Create(frogger.ID)
	if err != nil {
		return false, err
	}
	back, err := tui.Run(game, store, runtimeConfig(), tui.Options{Player: flagPlayer, Logger: logger})
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}
	return back, nil
}

// openStoreOrWarn opens the scores database. The game still runs without
// one, so a failure is only logged.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database; scores will not be saved", "error", err)
		return nil
	}
	return store
}
