package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("chase", "normal", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Another game in the same database
	if _, err := store.SaveScore("other", "normal", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("chase", "normal", (i+1)*100)
	}

	scores, err := store.TopScores("chase", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresByDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chase", "easy", 400)
	store.SaveScore("chase", "normal", 250)
	store.SaveScore("chase", "hard", 120)
	store.SaveScore("chase", "hard", 180)

	hard, err := store.TopScoresByDifficulty("chase", "hard", 10)
	if err != nil {
		t.Fatalf("TopScoresByDifficulty() failed: %v", err)
	}
	if len(hard) != 2 {
		t.Fatalf("Expected 2 hard scores, got %d", len(hard))
	}
	if hard[0].Score != 180 || hard[0].Difficulty != "hard" {
		t.Errorf("Unexpected top hard entry: %+v", hard[0])
	}

	// The combined board still sees all difficulties
	all, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 scores across difficulties, got %d", len(all))
	}
}

func TestStoreEmptyDifficultyDefaultsToNormal(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("chase", "", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScoresByDifficulty("chase", "normal", 10)
	if err != nil {
		t.Fatalf("TopScoresByDifficulty() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Expected the untagged score under normal, got %d entries", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("chase", "normal", 100)
	store.SaveScore("chase", "hard", 300)
	store.SaveScore("chase", "normal", 200)

	high, err = store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chase", "normal", 100)
	store.SaveScore("chase", "normal", 200)
	store.SaveScore("other", "normal", 300)

	if err := store.ClearScores("chase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	chaseScores, _ := store.TopScores("chase", 10)
	if len(chaseScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(chaseScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Clearing one game should not affect another")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("chase")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("chase", "normal", 100)
	store.SaveScore("chase", "normal", 300)

	stats, err = store.Stats("chase")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.Sessions)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
}
