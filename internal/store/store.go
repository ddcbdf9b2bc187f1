// Package store handles SQLite persistence of analysis history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for history data.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Open opens or creates the SQLite database and applies migrations. Each
// Store gets a fresh session id that groups the entries it records.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, sessionID: uuid.NewString()}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionID returns the id attached to entries recorded by this Store.
func (s *Store) SessionID() string {
	return s.sessionID
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			length INTEGER NOT NULL,
			score INTEGER NOT NULL,
			strength TEXT NOT NULL,
			entropy INTEGER NOT NULL,
			upper_count INTEGER NOT NULL,
			lower_count INTEGER NOT NULL,
			number_count INTEGER NOT NULL,
			special_count INTEGER NOT NULL,
			has_sequence INTEGER NOT NULL,
			is_common INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_session ON analyses(session_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EntryFromResult builds a history entry from an analysis result.
func EntryFromResult(r analyzer.Result, source model.Source, at time.Time) model.HistoryEntry {
	return model.HistoryEntry{
		CreatedAt:   at,
		Source:      source,
		Length:      r.Length,
		Score:       r.Score,
		Strength:    string(r.Strength),
		Entropy:     r.Entropy,
		Upper:       r.Counts.Upper,
		Lower:       r.Counts.Lower,
		Numbers:     r.Counts.Numbers,
		Special:     r.Counts.Special,
		HasSequence: r.HasSequence,
		IsCommon:    r.IsCommon,
	}
}

// InsertEntry stores an entry under this Store's session and returns its id.
func (s *Store) InsertEntry(ctx context.Context, e model.HistoryEntry) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (session_id, created_at, source, length, score, strength, entropy,
			upper_count, lower_count, number_count, special_count, has_sequence, is_common)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.sessionID,
		e.CreatedAt.Format(time.RFC3339Nano),
		string(e.Source),
		e.Length,
		e.Score,
		e.Strength,
		e.Entropy,
		e.Upper,
		e.Lower,
		e.Numbers,
		e.Special,
		boolToInt(e.HasSequence),
		boolToInt(e.IsCommon),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEntries returns entries filtered by cfg, oldest first.
func (s *Store) ListEntries(ctx context.Context, cfg model.HistoryConfig) ([]model.HistoryEntry, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	if cfg.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, string(cfg.Source))
	}
	query := fmt.Sprintf(`SELECT id, session_id, created_at, source, length, score, strength, entropy,
			upper_count, lower_count, number_count, special_count, has_sequence, is_common
		FROM analyses
		WHERE %s
		ORDER BY created_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		var createdAt, source string
		var hasSeq, isCommon int
		if err := rows.Scan(&e.ID, &e.SessionID, &createdAt, &source, &e.Length, &e.Score, &e.Strength, &e.Entropy,
			&e.Upper, &e.Lower, &e.Numbers, &e.Special, &hasSeq, &isCommon); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		e.CreatedAt = parsed
		e.Source = model.Source(source)
		e.HasSequence = hasSeq != 0
		e.IsCommon = isCommon != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(entries) > cfg.Last {
		entries = entries[len(entries)-cfg.Last:]
	}
	return entries, nil
}

// Summary aggregates all stored entries.
func (s *Store) Summary(ctx context.Context) (model.HistorySummary, error) {
	var sum model.HistorySummary
	var avgScore, avgEntropy sql.NullFloat64
	var best sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT session_id), AVG(score), MAX(score), AVG(entropy) FROM analyses`).
		Scan(&sum.Count, &sum.Sessions, &avgScore, &best, &avgEntropy)
	if err != nil {
		return model.HistorySummary{}, err
	}
	sum.AvgScore = avgScore.Float64
	sum.BestScore = int(best.Int64)
	sum.AvgEntropy = avgEntropy.Float64
	return sum, nil
}

// Clear removes all stored entries and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
