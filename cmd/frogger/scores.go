package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, a single run by id, or clear the board.

Examples:
  frogger scores
  frogger scores --limit 25
  frogger scores --run 0b6f0c8e-...
  frogger scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show one run by id")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(frogger.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil

	case flagScoresRun != "":
		run, err := store.RunByID(flagScoresRun)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no run with id %q", flagScoresRun)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Run     %s\n", run.RunID)
		fmt.Fprintf(out, "Player  %s\n", orDash(run.Player))
		fmt.Fprintf(out, "Score   %d\n", run.Score)
		fmt.Fprintf(out, "Level   %d\n", run.Level)
		fmt.Fprintf(out, "Seed    %d\n", run.Seed)
		fmt.Fprintf(out, "Date    %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	}

	scores, err := store.TopScores(frogger.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Frogger")
	fmt.Fprintln(out)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'frogger play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-16s  %s\n", "Rank", "Player", "Score", "Level", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-16s  %s\n", "----", "------", "-----", "-----", "----", "---")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-5d  %-16s  %s\n",
			i+1, orDash(e.Player), e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"), e.RunID)
	}

	if stats, err := store.GetGameStats(frogger.ID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f  Max level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.MaxLevel)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
