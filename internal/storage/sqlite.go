// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-gobblet/internal/core"
)

// transcriptSep separates half-moves in the transcript column. Moves
// themselves contain spaces.
const transcriptSep = ";"

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchEntry represents a single finished match.
type MatchEntry struct {
	ID         int64
	GameID     string
	Winner     string
	WinnerSeat int
	HalfMoves  int
	Lines      []string
	Transcript []string
	CreatedAt  time.Time
}

// Tally counts wins per winner name.
type Tally struct {
	Winner string
	Wins   int
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	MatchesCount int
	AvgHalfMoves float64
	Seat1Wins    int
	Seat2Wins    int
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			winner TEXT NOT NULL,
			winner_seat INTEGER NOT NULL,
			half_moves INTEGER NOT NULL,
			lines TEXT NOT NULL DEFAULT '',
			transcript TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(game_id, winner);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m core.MatchResult) (int64, error) {
	if m.GameID == "" {
		return 0, errors.New("storage: match without game id")
	}

	result, err := s.db.Exec(
		`INSERT INTO matches (game_id, winner, winner_seat, half_moves, lines, transcript)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.GameID, m.Winner, m.WinnerSeat, m.HalfMoves,
		strings.Join(m.Lines, ","), strings.Join(m.Transcript, transcriptSep),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, game_id, winner, winner_seat, half_moves, lines, transcript, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchEntry, error) {
	var e MatchEntry
	var lines, transcript string
	var createdAt any
	if err := row.Scan(&e.ID, &e.GameID, &e.Winner, &e.WinnerSeat, &e.HalfMoves, &lines, &transcript, &createdAt); err != nil {
		return e, err
	}
	e.Lines = split(lines, ",")
	e.Transcript = split(transcript, transcriptSep)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// MatchByID retrieves a match by its ID. Returns nil if there is none.
func (s *Store) MatchByID(id int64) (*MatchEntry, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	e, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &e, nil
}

// RecentMatches retrieves the most recent matches for the given game,
// newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		e, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// WinTally counts wins per winner for the given game, most wins first.
func (s *Store) WinTally(gameID string) ([]Tally, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) AS wins
		 FROM matches
		 WHERE game_id = ?
		 GROUP BY winner
		 ORDER BY wins DESC, winner ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	defer rows.Close()

	var tally []Tally
	for rows.Next() {
		var t Tally
		if err := rows.Scan(&t.Winner, &t.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally row: %w", err)
		}
		tally = append(tally, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tally, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(AVG(half_moves), 0),
		        COALESCE(SUM(winner_seat = 1), 0),
		        COALESCE(SUM(winner_seat = 2), 0),
		        MAX(created_at)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&stats.MatchesCount, &stats.AvgHalfMoves, &stats.Seat1Wins, &stats.Seat2Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearMatches deletes all matches for the given game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func split(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
