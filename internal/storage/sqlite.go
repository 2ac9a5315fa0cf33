// Package storage provides SQLite-based persistence for session scores and
// landing-attempt records. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/lunarcade/lunarcade/internal/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// AttemptEntry represents one recorded landing attempt.
type AttemptEntry struct {
	ID         int64
	GameID     string
	Landed     bool
	OnPlatform bool
	Speed      float64
	TiltDeg    float64
	Fuel       float64
	Duration   float64
	CreatedAt  time.Time
}

// AttemptStats summarizes the recorded attempts for one game.
type AttemptStats struct {
	Total       int
	Landed      int
	AvgSpeed    float64 // average touchdown speed across safe landings
	AvgDuration float64 // average attempt duration in seconds
}

// SuccessRate returns landed/total as a percentage, or 0 with no attempts.
func (s AttemptStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Landed) / float64(s.Total) * 100.0
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			landed INTEGER NOT NULL,
			on_platform INTEGER NOT NULL,
			speed REAL NOT NULL,
			tilt_deg REAL NOT NULL,
			fuel REAL NOT NULL,
			duration_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_game_id ON attempts(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveAttempt records one concluded landing attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveAttempt(gameID string, ev core.TouchdownEvent) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO attempts
		 (game_id, landed, on_platform, speed, tilt_deg, fuel, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID,
		boolToInt(ev.Landed),
		boolToInt(ev.OnPlatform),
		ev.Speed,
		ev.TiltDeg,
		ev.Fuel,
		ev.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAttempts retrieves the latest N attempts for the given game,
// newest first.
func (s *Store) RecentAttempts(gameID string, limit int) ([]AttemptEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, landed, on_platform, speed, tilt_deg, fuel, duration_secs, created_at
		 FROM attempts
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var landed, onPlatform int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &landed, &onPlatform,
			&e.Speed, &e.TiltDeg, &e.Fuel, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Landed = landed != 0
		e.OnPlatform = onPlatform != 0
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats summarizes the recorded attempts for the given game.
func (s *Store) Stats(gameID string) (AttemptStats, error) {
	var stats AttemptStats
	var avgSpeed, avgDuration sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(landed), 0),
		        AVG(CASE WHEN landed = 1 THEN speed END),
		        AVG(duration_secs)
		 FROM attempts
		 WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Total, &stats.Landed, &avgSpeed, &avgDuration)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query attempt stats: %w", err)
	}

	if avgSpeed.Valid {
		stats.AvgSpeed = avgSpeed.Float64
	}
	if avgDuration.Valid {
		stats.AvgDuration = avgDuration.Float64
	}
	return stats, nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
