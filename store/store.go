// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/jetobsmc/batch"
)

// Store is an open results database. Methods are safe for concurrent use.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Run describes one stored evaluation.
type Run struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Source    string    `json:"source"`
	Jets      int       `json:"jets"`
	CreatedAt time.Time `json:"created_at"`
}

// Option configures Open.
type Option func(*Store)

// WithLogger sets the logger used for migration output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open opens (creating if needed) the SQLite database at path and applies
// pending migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	s := &Store{db: db, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}
	if err = migrateUp(db, s.logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// dsn enables foreign keys on every pooled connection.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "_pragma=foreign_keys(1)"
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// CreateRun registers a new run and returns its ID.
func (s *Store) CreateRun(ctx context.Context, label, source string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, label, source, created_ns) VALUES (?, ?, ?, ?)`,
		id.String(), label, source, time.Now().UTC().UnixNano())
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: create run: %w", err)
	}
	s.logger.Debug("run created", zap.Stringer("run", id), zap.String("label", label))

	return id, nil
}

// SaveTable stores every value of t under run id in one transaction.
//
// Errors: ErrRunNotFound, ErrTableSaved.
func (s *Store) SaveTable(ctx context.Context, id uuid.UUID, t *batch.Table) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = runExists(ctx, tx, id); err != nil {
		return err
	}
	var saved int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM run_columns WHERE run_id = ?`, id.String()).Scan(&saved); err != nil {
		return fmt.Errorf("store: count columns: %w", err)
	}
	if saved > 0 {
		return fmt.Errorf("run %s: %w", id, ErrTableSaved)
	}

	for pos, name := range t.Names {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO run_columns (run_id, position, name) VALUES (?, ?, ?)`,
			id.String(), pos, name); err != nil {
			return fmt.Errorf("store: insert column %q: %w", name, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO observable_values (run_id, jet, name, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	for jet, row := range t.Rows {
		for c, name := range t.Names {
			if _, err = stmt.ExecContext(ctx, id.String(), jet, name, nullable(row[c])); err != nil {
				return fmt.Errorf("store: insert jet %d %q: %w", jet, name, err)
			}
		}
	}

	if _, err = tx.ExecContext(ctx, `UPDATE runs SET jets = ? WHERE id = ?`, len(t.Rows), id.String()); err != nil {
		return fmt.Errorf("store: update run: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	s.logger.Debug("table saved", zap.Stringer("run", id), zap.Int("jets", len(t.Rows)), zap.Int("columns", len(t.Names)))

	return nil
}

// Columns returns the column names of run id in table order.
//
// Errors: ErrRunNotFound.
func (s *Store) Columns(ctx context.Context, id uuid.UUID) ([]string, error) {
	if err := runExists(ctx, s.db, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM run_columns WHERE run_id = ? ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("store: query columns: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err = rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("store: scan column: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}

// Column returns the values of one observable for run id, in jet order.
//
// Errors: ErrRunNotFound, ErrUnknownColumn.
func (s *Store) Column(ctx context.Context, id uuid.UUID, name string) ([]float64, error) {
	if err := runExists(ctx, s.db, id); err != nil {
		return nil, err
	}
	var known int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM run_columns WHERE run_id = ? AND name = ?`, id.String(), name).Scan(&known); err != nil {
		return nil, fmt.Errorf("store: lookup column: %w", err)
	}
	if known == 0 {
		return nil, fmt.Errorf("run %s column %q: %w", id, name, ErrUnknownColumn)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM observable_values WHERE run_id = ? AND name = ? ORDER BY jet`, id.String(), name)
	if err != nil {
		return nil, fmt.Errorf("store: query values: %w", err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v sql.NullFloat64
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("store: scan value: %w", err)
		}
		out = append(out, fromNullable(v))
	}

	return out, rows.Err()
}

// Table rebuilds the stored table of run id.
//
// Errors: ErrRunNotFound.
func (s *Store) Table(ctx context.Context, id uuid.UUID) (*batch.Table, error) {
	names, err := s.Columns(ctx, id)
	if err != nil {
		return nil, err
	}
	t := &batch.Table{Names: names}
	for c, name := range names {
		col, err := s.Column(ctx, id, name)
		if err != nil {
			return nil, err
		}
		if t.Rows == nil {
			t.Rows = make([][]float64, len(col))
			for i := range t.Rows {
				t.Rows[i] = make([]float64, len(names))
			}
		}
		for i, v := range col {
			t.Rows[i][c] = v
		}
	}

	return t, nil
}

// Runs lists every run, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, source, jets, created_ns FROM runs ORDER BY created_ns, id`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r  Run
			id string
			ns int64
		)
		if err = rows.Scan(&id, &r.Label, &r.Source, &r.Jets, &ns); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("store: run id %q: %w", id, err)
		}
		r.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, r)
	}

	return out, rows.Err()
}

// DeleteRun removes run id and its values.
//
// Errors: ErrRunNotFound.
func (s *Store) DeleteRun(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("store: delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}

	return nil
}

// queryer is the read surface shared by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func runExists(ctx context.Context, q queryer, id uuid.UUID) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, id.String()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: lookup run: %w", err)
	}

	return nil
}

// nullable maps non-finite values to SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}

	return v.Float64
}
