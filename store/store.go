// Package store archives simulation reports in a local SQLite database.
//
// The full report is kept as a JSON document next to a few indexed meta
// columns, so reports can be listed cheaply and fetched whole.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/cashcast"
	_ "github.com/mattn/go-sqlite3"
)

// Store provides SQLite-based persistence for simulation reports.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the report archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		run_date DATETIME NOT NULL,
		as_of DATE NOT NULL,
		run_count INTEGER NOT NULL,
		run_length INTEGER NOT NULL,
		seed TEXT NOT NULL,
		document TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_run_date ON reports(run_date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save archives a report. Saving an already archived id is an error, report
// documents are immutable.
func (s *Store) Save(r *cashcast.SimulationReport) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report %q: %w", r.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO reports (id, run_date, as_of, run_count, run_length, seed, document)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Meta.RunDate, r.Meta.AsOf.String(), r.Meta.RunCount, r.Meta.RunLength, r.Meta.Seed, string(doc),
	)
	if err != nil {
		return fmt.Errorf("save report %q: %w", r.ID, err)
	}
	return nil
}

// Get returns the archived report with the given id.
func (s *Store) Get(id string) (*cashcast.SimulationReport, error) {
	return s.scanReport(s.db.QueryRow(`SELECT document FROM reports WHERE id = ?`, id), id)
}

// Latest returns the most recently captured report.
func (s *Store) Latest() (*cashcast.SimulationReport, error) {
	row := s.db.QueryRow(`SELECT document FROM reports ORDER BY run_date DESC, id DESC LIMIT 1`)
	return s.scanReport(row, "latest")
}

func (s *Store) scanReport(row *sql.Row, label string) (*cashcast.SimulationReport, error) {
	var doc string
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no report %q: %w", label, err)
		}
		return nil, fmt.Errorf("read report %q: %w", label, err)
	}
	var r cashcast.SimulationReport
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return nil, fmt.Errorf("decode report %q: %w", label, err)
	}
	return &r, nil
}

// Info summarizes one archived report for listings.
type Info struct {
	ID        string
	RunDate   time.Time
	AsOf      string
	RunCount  int
	RunLength int
}

// List returns summaries of the archived reports, most recent first. A
// non-positive limit returns all of them.
func (s *Store) List(limit int) ([]Info, error) {
	q := `SELECT id, run_date, as_of, run_count, run_length FROM reports ORDER BY run_date DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.ID, &info.RunDate, &info.AsOf, &info.RunCount, &info.RunLength); err != nil {
			return nil, fmt.Errorf("list reports: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes an archived report.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete report %q: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no report %q", id)
	}
	return nil
}
