// Package storage provides SQLite-based persistence for hexpop scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// TopLimit is how many scores count as the high-score table.
const TopLimit = 10

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID            int64
	Score         int
	BubblesPopped int
	Level         int
	CreatedAt     time.Time
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
			score INTEGER NOT NULL,
			bubbles_popped INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
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

// AddScore records a finished run. Zero scores are never recorded.
// Returns whether the new entry ranks within the top-10 table.
func (s *Store) AddScore(score, bubblesPopped, level int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	_, err := s.db.Exec(
		"INSERT INTO scores (score, bubbles_popped, level) VALUES (?, ?, ?)",
		score, bubblesPopped, level,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save score: %w", err)
	}

	var higher int
	err = s.db.QueryRow(
		"SELECT COUNT(*) FROM scores WHERE score > ?", score,
	).Scan(&higher)
	if err != nil {
		return false, fmt.Errorf("storage: cannot rank score: %w", err)
	}
	return higher < TopLimit, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = TopLimit
	}

	rows, err := s.db.Query(
		`SELECT id, score, bubbles_popped, level, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.BubblesPopped, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated run statistics.
type Stats struct {
	RunsCount    int
	HighScore    int
	AvgScore     float64
	TotalBubbles int64
	LastPlayed   time.Time
}

// GetStats retrieves aggregated statistics over all recorded runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(bubbles_popped), 0)
		 FROM scores`,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalBubbles)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the datetime column, which the driver may return as
// time.Time or as a string.
func parseTime(v any) time.Time {
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
