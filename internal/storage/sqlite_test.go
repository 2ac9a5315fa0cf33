package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lunarcade/lunarcade/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dirs", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := newTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("lander", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("lander", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Got %d scores, expected 3", len(scores))
	}

	// Ordered by score descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores out of order: %d, %d, %d", scores[0].Score, scores[1].Score, scores[2].Score)
	}

	for _, s := range scores {
		if s.GameID != "lander" {
			t.Errorf("Got score for game %q, expected only lander", s.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("lander", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("lander", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Got %d scores, expected limit of 5", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := newTestStore(t)

	// Empty database reports zero
	high, err := store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore on empty db = %d, expected 0", high)
	}

	store.SaveScore("lander", 150)
	store.SaveScore("lander", 320)
	store.SaveScore("lander", 90)

	high, err = store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 320 {
		t.Errorf("HighScore = %d, expected 320", high)
	}
}

func TestClearScores(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("lander", 100)
	store.SaveScore("other", 200)

	if err := store.ClearScores("lander"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("lander", 10)
	if len(scores) != 0 {
		t.Errorf("Got %d lander scores after clear, expected 0", len(scores))
	}

	// Other game untouched
	scores, _ = store.TopScores("other", 10)
	if len(scores) != 1 {
		t.Errorf("Got %d other scores, expected 1", len(scores))
	}
}

func TestSaveAndRetrieveAttempts(t *testing.T) {
	store := newTestStore(t)

	events := []core.TouchdownEvent{
		{Attempt: 1, Landed: false, OnPlatform: false, Speed: 12.5, TiltDeg: 95.0, Fuel: 4100, Duration: 8.2},
		{Attempt: 2, Landed: true, OnPlatform: true, Speed: 1.4, TiltDeg: 2.0, Fuel: 3200, Duration: 14.6},
		{Attempt: 3, Landed: false, OnPlatform: true, Speed: 4.8, TiltDeg: 30.0, Fuel: 0, Duration: 21.0},
	}
	for _, ev := range events {
		if _, err := store.SaveAttempt("lander", ev); err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}

	attempts, err := store.RecentAttempts("lander", 10)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("Got %d attempts, expected 3", len(attempts))
	}

	// Newest first
	if attempts[0].Speed != 4.8 || attempts[2].Speed != 12.5 {
		t.Errorf("Attempts out of order: speeds %v, %v, %v",
			attempts[0].Speed, attempts[1].Speed, attempts[2].Speed)
	}

	if attempts[1].Landed != true || attempts[1].OnPlatform != true {
		t.Errorf("Landed attempt round-trip: %+v", attempts[1])
	}
	if attempts[0].Landed != false || attempts[0].OnPlatform != true {
		t.Errorf("On-pad crash round-trip: %+v", attempts[0])
	}
	if attempts[1].TiltDeg != 2.0 || attempts[1].Fuel != 3200 || attempts[1].Duration != 14.6 {
		t.Errorf("Attempt fields round-trip: %+v", attempts[1])
	}
}

func TestRecentAttemptsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveAttempt("lander", core.TouchdownEvent{Attempt: i + 1, Speed: float64(i)})
	}

	attempts, err := store.RecentAttempts("lander", 4)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(attempts) != 4 {
		t.Errorf("Got %d attempts, expected limit of 4", len(attempts))
	}
	if attempts[0].Speed != 14.0 {
		t.Errorf("Newest attempt speed = %v, expected 14.0", attempts[0].Speed)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)

	// Empty database: all zeros, no division by zero
	stats, err := store.Stats("lander")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Total != 0 || stats.Landed != 0 || stats.SuccessRate() != 0.0 {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveAttempt("lander", core.TouchdownEvent{Landed: true, Speed: 1.0, Duration: 10.0})
	store.SaveAttempt("lander", core.TouchdownEvent{Landed: true, Speed: 2.0, Duration: 20.0})
	store.SaveAttempt("lander", core.TouchdownEvent{Landed: false, Speed: 50.0, Duration: 6.0})
	store.SaveAttempt("other", core.TouchdownEvent{Landed: false, Speed: 9.0, Duration: 1.0})

	stats, err = store.Stats("lander")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("Total = %d, expected 3", stats.Total)
	}
	if stats.Landed != 2 {
		t.Errorf("Landed = %d, expected 2", stats.Landed)
	}
	// Average touchdown speed counts safe landings only
	if stats.AvgSpeed != 1.5 {
		t.Errorf("AvgSpeed = %v, expected 1.5", stats.AvgSpeed)
	}
	if stats.AvgDuration != 12.0 {
		t.Errorf("AvgDuration = %v, expected 12.0", stats.AvgDuration)
	}
	if rate := stats.SuccessRate(); rate < 66.6 || rate > 66.7 {
		t.Errorf("SuccessRate = %v, expected ~66.7", rate)
	}
}
