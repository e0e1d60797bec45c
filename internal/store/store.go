// Package store keeps a SQLite history of scan summaries.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/score"
)

//go:embed schema.sql
var schemaFS embed.FS

var ErrScanNotFound = errors.New("scan not found")

// DBFile is the history database name under the storage root.
const DBFile = "history.db"

// ExcerptLen caps the stored input text, in runes.
const ExcerptLen = 280

// Record is one stored scan.
type Record struct {
	ID           string              `json:"id"`
	Source       string              `json:"source"`
	Jurisdiction string              `json:"jurisdiction,omitempty"`
	Score        int                 `json:"score"`
	Risk         score.Level         `json:"risk"`
	HighCount    int                 `json:"high_count"`
	MediumCount  int                 `json:"medium_count"`
	LowCount     int                 `json:"low_count"`
	Excerpt      string              `json:"excerpt"`
	Violations   []scanner.Violation `json:"violations"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Store is safe for concurrent use.
type Store struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// Open creates rootDir if needed and opens rootDir/history.db.
func Open(rootDir string, logger logging.Logger) (*Store, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("rootDir is required")
	}
	rootDir = filepath.Clean(rootDir)
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure rootDir %s: %w", rootDir, err)
	}
	db, err := sql.Open("sqlite", filepath.Join(rootDir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s, err := New(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New applies pragmas and the schema to db and wraps it.
func New(db *sql.DB, logger logging.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if err := applySchema(db); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	l := logging.OrNop(logger).With(logging.Field{Key: "component", Value: "store"})
	return &Store{db: db, logger: l, now: time.Now}, nil
}

func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= ExcerptLen {
		return text
	}
	r := []rune(text)
	return string(r[:ExcerptLen]) + "…"
}

// Save records one scan. source is free-form: "text", "cli" or a URL.
func (s *Store) Save(ctx context.Context, source, text string, sum scanner.Summary) (*Record, error) {
	violations := sum.Violations
	if violations == nil {
		violations = []scanner.Violation{}
	}
	rec := &Record{
		ID:           uuid.New().String(),
		Source:       source,
		Jurisdiction: sum.Jurisdiction,
		Score:        sum.Score,
		Risk:         sum.Risk.Level,
		HighCount:    sum.HighCount,
		MediumCount:  sum.MediumCount,
		LowCount:     sum.LowCount,
		Excerpt:      excerpt(text),
		Violations:   violations,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}
	vj, err := json.Marshal(rec.Violations)
	if err != nil {
		return nil, fmt.Errorf("marshal violations: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scans (id, source, jurisdiction, score, risk, high_count, medium_count, low_count, excerpt, violations_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, rec.Jurisdiction, rec.Score, string(rec.Risk),
		rec.HighCount, rec.MediumCount, rec.LowCount, rec.Excerpt, string(vj), rec.CreatedAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("insert scan: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit scan: %w", err)
	}

	s.logger.Debug("scan recorded",
		logging.Field{Key: "scan_id", Value: rec.ID},
		logging.Field{Key: "score", Value: rec.Score})
	return rec, nil
}

const selectColumns = `id, source, jurisdiction, score, risk, high_count, medium_count, low_count, excerpt, violations_json, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		rec       Record
		risk, vj  string
		createdMs int64
	)
	if err := row.Scan(&rec.ID, &rec.Source, &rec.Jurisdiction, &rec.Score, &risk,
		&rec.HighCount, &rec.MediumCount, &rec.LowCount, &rec.Excerpt, &vj, &createdMs); err != nil {
		return nil, err
	}
	rec.Risk = score.Level(risk)
	rec.CreatedAt = time.UnixMilli(createdMs).UTC()
	if err := json.Unmarshal([]byte(vj), &rec.Violations); err != nil {
		return nil, fmt.Errorf("decode violations for %s: %w", rec.ID, err)
	}
	return &rec, nil
}

// Get returns one record or ErrScanNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM scans WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scan %s: %w", id, err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. limit <= 0 means 50.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM scans ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	out := make([]*Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list scans: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a record. Missing ids return ErrScanNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scan %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrScanNotFound
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
