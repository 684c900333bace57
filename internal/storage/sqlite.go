// Package storage provides the SQLite-backed chart library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// ErrChartNotFound is returned when the library has no chart with the given ID.
var ErrChartNotFound = errors.New("storage: chart not found")

// Store manages the SQLite database connection for the chart library.
type Store struct {
	db *sql.DB
}

// ChartSummary describes a stored chart without its notes.
type ChartSummary struct {
	ID        string
	Title     string
	Notes     int
	Duration  float64 // hit time of the last note
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS charts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS chart_notes (
			chart_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			hit_time REAL NOT NULL,
			speed TEXT NOT NULL,
			direction TEXT NOT NULL,
			PRIMARY KEY (chart_id, seq)
		);

		CREATE TABLE IF NOT EXISTS chart_metadata (
			chart_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (chart_id, key)
		);
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

// SaveChart inserts or replaces a chart and all of its notes.
func (s *Store) SaveChart(def charts.Def) error {
	if err := def.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO charts (id, title) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, updated_at = CURRENT_TIMESTAMP`,
		def.ID, def.Title,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save chart %s: %w", def.ID, err)
	}

	for _, table := range []string{"chart_notes", "chart_metadata"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE chart_id = ?", def.ID); err != nil {
			return fmt.Errorf("storage: cannot clear %s for %s: %w", table, def.ID, err)
		}
	}

	for i, n := range def.Notes {
		_, err := tx.Exec(
			"INSERT INTO chart_notes (chart_id, seq, hit_time, speed, direction) VALUES (?, ?, ?, ?, ?)",
			def.ID, i, n.HitTime, n.Speed.String(), n.Direction.String(),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save note %d of %s: %w", i, def.ID, err)
		}
	}

	for k, v := range def.Metadata {
		_, err := tx.Exec(
			"INSERT INTO chart_metadata (chart_id, key, value) VALUES (?, ?, ?)",
			def.ID, k, v,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save metadata of %s: %w", def.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit chart %s: %w", def.ID, err)
	}
	return nil
}

// LoadChart retrieves a chart with its notes in authored order.
func (s *Store) LoadChart(id string) (charts.Def, error) {
	def := charts.Def{ID: id, Source: charts.SourceLibrary}

	err := s.db.QueryRow("SELECT title FROM charts WHERE id = ?", id).Scan(&def.Title)
	if err == sql.ErrNoRows {
		return charts.Def{}, fmt.Errorf("%w: %s", ErrChartNotFound, id)
	}
	if err != nil {
		return charts.Def{}, fmt.Errorf("storage: cannot query chart %s: %w", id, err)
	}

	rows, err := s.db.Query(
		"SELECT hit_time, speed, direction FROM chart_notes WHERE chart_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return charts.Def{}, fmt.Errorf("storage: cannot query notes of %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var hitTime float64
		var speedName, dirName string
		if err := rows.Scan(&hitTime, &speedName, &dirName); err != nil {
			return charts.Def{}, fmt.Errorf("storage: cannot scan note: %w", err)
		}
		speed, err := rhythm.ParseSpeedClass(speedName)
		if err != nil {
			return charts.Def{}, fmt.Errorf("storage: chart %s: %w", id, err)
		}
		dir, err := rhythm.ParseDirection(dirName)
		if err != nil {
			return charts.Def{}, fmt.Errorf("storage: chart %s: %w", id, err)
		}
		def.Notes = append(def.Notes, rhythm.Entry{HitTime: hitTime, Speed: speed, Direction: dir})
	}
	if err := rows.Err(); err != nil {
		return charts.Def{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	meta, err := s.metadata(id)
	if err != nil {
		return charts.Def{}, err
	}
	def.Metadata = meta

	return def, nil
}

func (s *Store) metadata(id string) (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM chart_metadata WHERE chart_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query metadata of %s: %w", id, err)
	}
	defer rows.Close()

	var meta map[string]string
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan metadata: %w", err)
		}
		if meta == nil {
			meta = make(map[string]string)
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// ListCharts returns summaries of every stored chart, sorted by ID.
func (s *Store) ListCharts() ([]ChartSummary, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.title, COUNT(n.seq), COALESCE(MAX(n.hit_time), 0), c.updated_at
		 FROM charts c
		 LEFT JOIN chart_notes n ON n.chart_id = c.id
		 GROUP BY c.id
		 ORDER BY c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query charts: %w", err)
	}
	defer rows.Close()

	var out []ChartSummary
	for rows.Next() {
		var cs ChartSummary
		var updatedAt any
		if err := rows.Scan(&cs.ID, &cs.Title, &cs.Notes, &cs.Duration, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cs.UpdatedAt = parseTime(updatedAt)
		out = append(out, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteChart removes a chart with its notes and metadata.
func (s *Store) DeleteChart(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM charts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete chart %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete chart %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrChartNotFound, id)
	}

	for _, table := range []string{"chart_notes", "chart_metadata"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE chart_id = ?", id); err != nil {
			return fmt.Errorf("storage: cannot clear %s for %s: %w", table, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete of %s: %w", id, err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
