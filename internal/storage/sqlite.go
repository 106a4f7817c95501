// Package storage records finished games in SQLite (modernc.org/sqlite,
// no cgo). Boards in progress are never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	GameID    string // difficulty preset
	Seconds   int    // elapsed time, uncapped
	Won       bool
	Cols      int
	Rows      int
	Mines     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a preset.
type GameStats struct {
	GameID     string
	Played     int
	Won        int
	BestTime   int // 0 when no game was won
	AvgWinTime float64
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, 0 when nothing was played.
func (g GameStats) WinRate() float64 {
	if g.Played == 0 {
		return 0
	}
	return float64(g.Won) / float64(g.Played)
}

// Open creates or opens the results database at path, creating parent
// directories and applying pending migrations. A leading ~ is expanded.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	// SSH sessions write concurrently; wait on the lock instead of failing
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// migrations are applied in order. PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS results (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		seconds    INTEGER NOT NULL,
		won        INTEGER NOT NULL DEFAULT 0,
		cols       INTEGER NOT NULL,
		rows       INTEGER NOT NULL,
		mines      INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_results_best ON results(game_id, won, seconds)`,
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", version, len(migrations))
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// SchemaVersion returns the number of applied migrations.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow(`PRAGMA user_version`).Scan(&v)
	return v, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
// A zero CreatedAt is replaced with the current time.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: result has no game id")
	}
	if r.Seconds < 0 {
		return 0, fmt.Errorf("storage: negative elapsed time %d", r.Seconds)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (game_id, seconds, won, cols, rows, mines, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seconds, r.Won, r.Cols, r.Rows, r.Mines,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the fastest N wins for the given preset, ascending.
func (s *Store) BestTimes(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, game_id, seconds, won, cols, rows, mines, created_at
		 FROM results
		 WHERE game_id = ? AND won = 1
		 ORDER BY seconds ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentResults retrieves the latest N games for the given preset, won or lost.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, game_id, seconds, won, cols, rows, mines, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seconds, &r.Won, &r.Cols, &r.Rows, &r.Mines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTime returns the fastest win for the given preset.
// ok is false when the preset has never been won.
func (s *Store) BestTime(gameID string) (seconds int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(seconds) FROM results WHERE game_id = ? AND won = 1",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}

	return int(best.Int64), true, nil
}

// ClearResults deletes all results for the given preset.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

const statsColumns = `COUNT(*),
	COALESCE(SUM(won), 0),
	COALESCE(MIN(CASE WHEN won = 1 THEN seconds END), 0),
	COALESCE(AVG(CASE WHEN won = 1 THEN seconds END), 0),
	MAX(created_at)`

// GetGameStats retrieves aggregated statistics for a specific preset.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.Won, &stats.BestTime, &stats.AvgWinTime, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every preset that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, ` + statsColumns + `
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Played, &gs.Won, &gs.BestTime, &gs.AvgWinTime, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both driver-parsed timestamps and raw strings from aggregates.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
