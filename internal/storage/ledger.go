// Package storage keeps the results ledger of finished PIC-MAN runs.
// Uses the pure-Go modernc.org/sqlite driver against an in-memory database:
// nothing is written to disk and the ledger ends with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a recorded run ended.
type Outcome string

// Recorded outcomes.
const (
	OutcomeWon  Outcome = "won"  // Every item collected
	OutcomeLost Outcome = "lost" // Caught by an enemy
)

// Result is one finished run.
type Result struct {
	ID        int64
	RunID     string
	Player    string
	Score     int
	Outcome   Outcome
	Duration  time.Duration // Whole seconds
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Games      int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Store is the results ledger. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

const timestampLayout = "2006-01-02 15:04:05"

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished run. A run ID is generated when r has none.
// Returns the stored result with its ID and run ID filled in.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return Result{}, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO results (run_id, player, score, outcome, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.Player, r.Score, string(r.Outcome), int64(r.Duration/time.Second),
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id
	r.Duration = r.Duration.Truncate(time.Second)

	return r, nil
}

const selectResult = `SELECT id, run_id, player, score, outcome, duration_secs, created_at FROM results`

// TopResults retrieves the best N results, highest score first.
// Equal scores keep recording order.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(selectResult+` ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

// PlayerResults retrieves the most recent results of one player.
func (s *Store) PlayerResults(player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(selectResult+` WHERE player = ? ORDER BY id DESC LIMIT ?`, player, limit)
}

// ResultByRunID retrieves one result. Returns nil if there is none.
func (s *Store) ResultByRunID(runID string) (*Result, error) {
	row := s.db.QueryRow(selectResult+` WHERE run_id = ?`, runID)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// HighScore returns the highest recorded score, or 0 if there is none.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated statistics over every recorded run.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM results`,
	).Scan(&st.Games, &st.Wins, &st.HighScore, &st.AvgScore, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTimestamp(lastPlayed)

	return st, nil
}

// Rank returns the 1-based position of a run in the TopResults order,
// or 0 if the run is not recorded.
func (s *Store) Rank(runID string) (int, error) {
	r, err := s.ResultByRunID(runID)
	if err != nil || r == nil {
		return 0, err
	}

	var better int
	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM results WHERE score > ? OR (score = ? AND id < ?)`,
		r.Score, r.Score, r.ID,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot rank result: %w", err)
	}
	return better + 1, nil
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (Result, error) {
	var r Result
	var outcome string
	var secs int64
	var createdAt any

	if err := row.Scan(&r.ID, &r.RunID, &r.Player, &r.Score, &outcome, &secs, &createdAt); err != nil {
		return Result{}, err
	}
	r.Outcome = Outcome(outcome)
	r.Duration = time.Duration(secs) * time.Second
	r.CreatedAt = parseTimestamp(createdAt)

	return r, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timestampLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
