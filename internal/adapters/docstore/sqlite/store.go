// Package sqlite provides a SQLite-backed document store. Each collection is
// its own table, created on first use.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// Compile-time check that Store implements ports.DocumentStore.
var _ ports.DocumentStore = (*Store)(nil)

var tableNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Store persists documents in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time

	mu     sync.Mutex
	tables map[string]struct{}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens (or creates) the database file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{
		sqlDB:  sqlDB,
		now:    time.Now,
		tables: make(map[string]struct{}),
	}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// FindByID returns the body stored under id.
func (s *Store) FindByID(ctx context.Context, collection string, id identifier.ID) ([]byte, bool, error) {
	if err := s.ensureTable(ctx, collection); err != nil {
		return nil, false, err
	}

	var body []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT body FROM `+collection+` WHERE id_kind = ? AND id = ?`,
		id.Kind().String(), id.String(),
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find %s in %s: %w", id.Key(), collection, err)
	}
	return body, true, nil
}

// InsertMany inserts all records in one transaction. A duplicate id rolls
// the whole batch back and returns domain.ErrConflict.
func (s *Store) InsertMany(ctx context.Context, collection string, records []ports.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.ensureTable(ctx, collection); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert into %s: %w", collection, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO `+collection+` (id_kind, id, body, updated_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", collection, err)
	}
	defer func() { _ = stmt.Close() }()

	now := toMillis(s.now())
	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.ID.Kind().String(), r.ID.String(), r.Body, now); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%s %s: %w", collection, r.ID.Key(), domain.ErrConflict)
			}
			return fmt.Errorf("insert %s into %s: %w", r.ID.Key(), collection, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert into %s: %w", collection, err)
	}
	return nil
}

// ReplaceByID overwrites an existing document.
func (s *Store) ReplaceByID(ctx context.Context, collection string, rec ports.Record) error {
	if err := s.ensureTable(ctx, collection); err != nil {
		return err
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE `+collection+` SET body = ?, updated_at = ? WHERE id_kind = ? AND id = ?`,
		rec.Body, toMillis(s.now()), rec.ID.Kind().String(), rec.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("replace %s in %s: %w", rec.ID.Key(), collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace %s in %s: %w", rec.ID.Key(), collection, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", collection, rec.ID.Key(), domain.ErrNotFound)
	}
	return nil
}

// DeleteByID removes a document if present.
func (s *Store) DeleteByID(ctx context.Context, collection string, id identifier.ID) error {
	if err := s.ensureTable(ctx, collection); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM `+collection+` WHERE id_kind = ? AND id = ?`,
		id.Kind().String(), id.String(),
	); err != nil {
		return fmt.Errorf("delete %s from %s: %w", id.Key(), collection, err)
	}
	return nil
}

// ensureTable creates the collection's table once per process. The name is
// interpolated into SQL, so only [a-z0-9_]+ is accepted.
func (s *Store) ensureTable(ctx context.Context, collection string) error {
	if !tableNamePattern.MatchString(collection) {
		return &domain.ValidationError{Fields: map[string]string{
			"collection": fmt.Sprintf("%q must match [a-z0-9_]+", collection),
		}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[collection]; ok {
		return nil
	}

	if _, err := s.sqlDB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+collection+` (
		id_kind    TEXT    NOT NULL,
		id         TEXT    NOT NULL,
		body       BLOB    NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (id_kind, id)
	)`); err != nil {
		return fmt.Errorf("create table %s: %w", collection, err)
	}
	s.tables[collection] = struct{}{}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
