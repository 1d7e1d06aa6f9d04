// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package store keeps a history of reports in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slukits/nativeunit"
	"github.com/slukits/nativeunit/pkg/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	start TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	tests INTEGER NOT NULL,
	failed INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(id),
	fixture TEXT NOT NULL,
	test TEXT NOT NULL,
	row_ordinal INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	assert_count INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	description TEXT,
	message TEXT,
	expected TEXT,
	actual TEXT
);
CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`

// Store is a SQLite history of reports.  It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens respectively creates the database at given path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Run summarizes a stored report.
type Run struct {
	ID       string
	Start    time.Time
	Duration time.Duration
	Tests    int
	Failed   int
}

// Failure is a stored failed test.  Row is the ordinal of a failed row
// test and -1 for a test.
type Failure struct {
	Fixture     string
	Test        string
	Row         int
	Description string
	Message     string
	Expected    string
	Actual      string
}

// Save stores the results of given report's tests and row tests.
func (s *Store) Save(ctx context.Context, rpt *report.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, start, duration_ms, tests, failed)
		VALUES (?, ?, ?, ?, ?)`,
		rpt.ID, rpt.Start.UTC().Format(time.RFC3339Nano),
		rpt.Duration.Milliseconds(), rpt.Len(), rpt.LenFailed(),
	); err != nil {
		return fmt.Errorf("store: save run: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO results (
		run_id, fixture, test, row_ordinal, outcome, assert_count, duration_ms,
		description, message, expected, actual
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()
	save := func(fixture, test string, row int, r *report.Result) {
		if err != nil {
			return
		}
		var dsc, msg, exp, act sql.NullString
		if f := r.Failure; f != nil {
			dsc = sql.NullString{String: f.Description, Valid: true}
			msg = sql.NullString{String: f.Message, Valid: f.Message != ""}
			if f.Expected != nil {
				exp = sql.NullString{String: f.Expected.Text, Valid: true}
			}
			if f.Actual != nil {
				act = sql.NullString{String: f.Actual.Text, Valid: true}
			}
		}
		_, err = stmt.ExecContext(ctx, rpt.ID, fixture, test, row,
			r.Outcome.String(), r.AssertCount, r.Duration.Milliseconds(),
			dsc, msg, exp, act)
	}
	rpt.For(func(f *report.FixtureResult) {
		f.For(func(t *report.Result) {
			if t.Kind != nativeunit.KindGroup {
				save(f.Name, t.Name, -1, t)
				return
			}
			t.For(func(row *report.Result) {
				save(f.Name, t.Name, row.Index, row)
			})
		})
	})
	if err != nil {
		return fmt.Errorf("store: save result: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// Runs returns the stored runs, the most recent first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, start, duration_ms, tests, failed FROM runs
		ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()
	rr := []Run{}
	for rows.Next() {
		var (
			r     Run
			start string
			ms    int64
		)
		if err := rows.Scan(&r.ID, &start, &ms, &r.Tests, &r.Failed); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if r.Start, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return nil, fmt.Errorf("store: parse start: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		rr = append(rr, r)
	}
	return rr, rows.Err()
}

// Failures returns the failed tests and row tests of the run with given
// id in the order they were reported.
func (s *Store) Failures(ctx context.Context, runID string) ([]Failure, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fixture, test, row_ordinal, description, message, expected, actual
		FROM results WHERE run_id = ? AND outcome = ? ORDER BY id`,
		runID, nativeunit.Failed.String())
	if err != nil {
		return nil, fmt.Errorf("store: query failures: %w", err)
	}
	defer rows.Close()
	ff := []Failure{}
	for rows.Next() {
		var (
			f                  Failure
			dsc, msg, exp, act sql.NullString
		)
		if err := rows.Scan(&f.Fixture, &f.Test, &f.Row,
			&dsc, &msg, &exp, &act); err != nil {
			return nil, fmt.Errorf("store: scan failure: %w", err)
		}
		f.Description, f.Message = dsc.String, msg.String
		f.Expected, f.Actual = exp.String, act.String
		ff = append(ff, f)
	}
	return ff, rows.Err()
}
