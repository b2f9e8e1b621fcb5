package main

import (
	"github.com/spf13/cobra"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/config"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/platform/tui"
)

// runMenu loops menu -> game or scoreboard -> menu until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	preset := appConfig.Difficulty
	for {
		cfg := runtimeConfig()
		res, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}
		preset = res.Difficulty
		config.ApplyFroggerPreset(&appConfig, preset)

		switch res.Choice {
		case tui.ChoicePlay:
			back, err := playOnce(store)
			if err != nil || !back {
				return err
			}
		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(store, frogger.ID, res.Config.ScreenW, res.Config.ScreenH)
			if err != nil || !back {
				return err
			}
		default:
			return nil
		}
	}
}
