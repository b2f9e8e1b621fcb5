package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/config"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and difficulty presets",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	games := registry.List()
	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Difficulty presets:")
	for _, p := range config.Presets {
		marker := " "
		if p == appConfig.Difficulty {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-6s  starts at level %d\n", marker, p, config.StartLevelForPreset(p))
	}
}
