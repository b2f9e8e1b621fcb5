package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(ScoreEntry{GameID: "frogger", Player: "alice", Score: 155, Level: 2, Seed: 42})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("run id %q is not a UUID: %v", saved.RunID, err)
	}
	if saved.ID == 0 {
		t.Error("expected a row id")
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Player != "alice" || got.Score != 155 || got.Level != 2 || got.Seed != 42 {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}
}

func TestSaveRunRejectsDuplicateID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	if _, err := store.SaveRun(ScoreEntry{RunID: id, GameID: "frogger", Score: 10}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(ScoreEntry{RunID: id, GameID: "frogger", Score: 20}); err == nil {
		t.Error("expected unique constraint error")
	}
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RunByID(uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(ScoreEntry{GameID: "frogger", Score: (i + 1) * 100}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(ScoreEntry{GameID: "other", Score: 900}); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores("frogger", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
	if all[4].Level != 1 {
		t.Errorf("level = %d, want 1 for a run saved without one", all[4].Level)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty table, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		if _, err := store.SaveRun(ScoreEntry{GameID: "frogger", Score: s}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(ScoreEntry{GameID: "other", Score: 50}); err != nil {
		t.Fatal(err)
	}

	if high, _ = store.HighScore("frogger"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("frogger"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("frogger", 10); len(left) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(left))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("clearing one game touched another")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	runs := []ScoreEntry{
		{GameID: "frogger", Score: 100, Level: 1},
		{GameID: "frogger", Score: 300, Level: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, want 200", stats.AvgScore)
	}
	if stats.MaxLevel != 3 {
		t.Errorf("max level = %d, want 3", stats.MaxLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}
