package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/san-kum/trajsim/internal/ballistics"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id             TEXT PRIMARY KEY,
    label          TEXT NOT NULL,
    created_at     INTEGER NOT NULL,
    integrator     TEXT NOT NULL DEFAULT '',
    params         TEXT NOT NULL,
    vacuum_range   REAL NOT NULL,
    vacuum_height  REAL NOT NULL,
    vacuum_time    REAL NOT NULL,
    drag_range     REAL NOT NULL,
    drag_height    REAL NOT NULL,
    drag_time      REAL NOT NULL,
    vacuum_samples INTEGER NOT NULL,
    drag_samples   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at);
`

func openCatalog(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open catalog: %w", err)
	}

	// SQLite has a single writer; one pooled connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return db, nil
}

func (s *Store) insert(ctx context.Context, m RunMetadata) error {
	params, err := json.Marshal(m.Params)
	if err != nil {
		return err
	}

	const q = `
		INSERT INTO runs (id, label, created_at, integrator, params,
			vacuum_range, vacuum_height, vacuum_time,
			drag_range, drag_height, drag_time,
			vacuum_samples, drag_samples)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, q, m.ID, m.Label, m.Timestamp.UnixNano(), m.Integrator, string(params),
		m.VacuumSummary.Range, m.VacuumSummary.MaxHeight, m.VacuumSummary.FlightTime,
		m.DragSummary.Range, m.DragSummary.MaxHeight, m.DragSummary.FlightTime,
		m.VacuumSamples, m.DragSamples)
	if err != nil {
		return fmt.Errorf("storage: insert run %q: %w", m.ID, err)
	}
	return nil
}

func (s *Store) list(ctx context.Context) ([]RunMetadata, error) {
	const q = `
		SELECT id, label, created_at, integrator, params,
			vacuum_range, vacuum_height, vacuum_time,
			drag_range, drag_height, drag_time,
			vacuum_samples, drag_samples
		FROM runs ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("storage: list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		var (
			m       RunMetadata
			created int64
			params  string
		)
		if err := rows.Scan(&m.ID, &m.Label, &created, &m.Integrator, &params,
			&m.VacuumSummary.Range, &m.VacuumSummary.MaxHeight, &m.VacuumSummary.FlightTime,
			&m.DragSummary.Range, &m.DragSummary.MaxHeight, &m.DragSummary.FlightTime,
			&m.VacuumSamples, &m.DragSamples); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		m.Timestamp = time.Unix(0, created)
		if err := json.Unmarshal([]byte(params), &m.Params); err != nil {
			return nil, fmt.Errorf("storage: decode params of %q: %w", m.ID, err)
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

func (s *Store) remove(ctx context.Context, runID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", runID)
	if err != nil {
		return 0, fmt.Errorf("storage: delete run %q: %w", runID, err)
	}
	return res.RowsAffected()
}

// Best returns the stored run with the longest drag range, if any.
func (s *Store) Best(ctx context.Context) (string, ballistics.Summary, error) {
	var (
		id string
		sm ballistics.Summary
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, drag_range, drag_height, drag_time FROM runs ORDER BY drag_range DESC LIMIT 1").
		Scan(&id, &sm.Range, &sm.MaxHeight, &sm.FlightTime)
	if err == sql.ErrNoRows {
		return "", ballistics.Summary{}, ErrNotFound
	}
	if err != nil {
		return "", ballistics.Summary{}, fmt.Errorf("storage: best run: %w", err)
	}
	return id, sm, nil
}
