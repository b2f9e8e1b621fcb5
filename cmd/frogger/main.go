// frogger is a deterministic Frogger for the terminal, playable locally or
// over SSH, with a score API and a headless simulator.
//
// Usage:
//
//	frogger                  - Start the interactive menu
//	frogger play             - Play a game right away
//	frogger scores           - Show high scores
//	frogger serve            - Start the SSH server (and optionally the API)
//	frogger api              - Serve the HTTP score API
//	frogger simulate <file>  - Replay a script and print the final state
//	frogger list             - List registered games
//
// Global flags:
//
//	--config <path>       - Config file (default: ~/.arcade/configs/frogger.yaml)
//	--difficulty <name>   - easy, normal or hard
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Scores database
//	--fps <rate>          - Steps per second, overriding timing.tick_ms
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/config"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagFPS        int
	flagLogLevel   string
)

// Resolved in PersistentPreRunE.
var (
	appConfig config.FroggerConfig
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger in your terminal",
	Long: `Guide the frog across the road and the river into the five homes.

Run without a subcommand to open the menu.

Examples:
  frogger
  frogger play --difficulty hard
  frogger serve --api :8080
  frogger simulate run.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time based)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	pf.IntVar(&flagFPS, "fps", 0, "Steps per second (0 = from timing.tick_ms)")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          "frogger",
	})
	log.SetDefault(logger)

	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyFroggerPreset(&cfg, preset)
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	cfg.Storage.DBPath = config.ExpandHome(cfg.Storage.DBPath)
	appConfig = cfg

	logger.Debug("config loaded",
		"difficulty", cfg.Difficulty,
		"tick", cfg.Timing.TickInterval(),
		"platform", cfg.Timing.PlatformInterval(),
		"db", cfg.Storage.DBPath,
	)
	return nil
}

// tickRate returns steps per second: --fps, else one step per clock pulse.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return max(1, int(time.Second/appConfig.Timing.TickInterval()))
}

// runtimeConfig sizes the run to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = tickRate()
	cfg.Seed = appConfig.Game.Seed
	cfg.StartLevel = appConfig.StartLevel()
	cfg.PlatformEvery = appConfig.Timing.PlatformEvery()
	return cfg
}
