package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "frogger.yaml")
	scriptPath := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(cfgPath, []byte("difficulty: easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	script := "seed: 42\nsteps: 40\nevents:\n  - {at: 3, event: right}\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"simulate", scriptPath,
		"--config", cfgPath,
		"--db", filepath.Join(dir, "scores.db"),
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	got := out.String()
	for _, want := range []string{"status: playing", "frog_x: 350", "level: 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
