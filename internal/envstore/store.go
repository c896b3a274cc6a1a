// Package envstore persists the current worksheet of each interactive shell.
//
// Successive invocations of the client from the same shell share a parent
// process id, so the parent pid (the shell key) is used as the lookup key.
// The key is a heuristic: once a shell exits its pid may be reused by an
// unrelated shell, which will then observe the stale worksheet.
//
// This is the only package that loads the SQLite driver.
package envstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/irjudson/codalab-cli/internal"
	"github.com/irjudson/codalab-cli/internal/procutil"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	// FileName is the database file created inside the client home
	FileName = "env.db"

	// MaxWorksheetLen bounds the stored worksheet uuid
	MaxWorksheetLen = 63
)

// ErrInvalidWorksheet is returned for empty or oversized worksheet uuids.
var ErrInvalidWorksheet = errors.New("invalid worksheet uuid")

const createWorksheetsTable = `
CREATE TABLE IF NOT EXISTS worksheets (
	id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
	ppid INTEGER NOT NULL,
	worksheet_uuid VARCHAR(63) NOT NULL,
	CONSTRAINT uix_1 UNIQUE(ppid)
)`

// Record is one shell-to-worksheet mapping.
type Record struct {
	ShellKey  int    `json:"shell_key" yaml:"shell_key"`
	Worksheet string `json:"worksheet" yaml:"worksheet"`
}

// Store maps shell keys to worksheet uuids.
type Store struct {
	db       *sql.DB
	path     string
	resolver procutil.Resolver
	log      *logrus.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithResolver overrides how the shell key is derived.
func WithResolver(r procutil.Resolver) Option {
	return func(s *Store) {
		s.resolver = r
	}
}

// Open opens or creates the environment database inside home.
// Failures are returned as *internal.StorageError and are not retried.
func Open(ctx context.Context, home string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(home, 0755); err != nil {
		return nil, &internal.StorageError{Path: home, Op: "open", Err: err}
	}

	path := filepath.Join(home, FileName)
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, &internal.StorageError{Path: path, Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1) // sqlite

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &internal.StorageError{Path: path, Op: "open", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	s, err := newStore(ctx, db, path, opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// dsn builds a SQLite URI for path. The path is escaped so characters such
// as '#' and '?' stay part of the file name.
func dsn(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "_pragma=busy_timeout(5000)"}
	return u.String()
}

// OpenDB wraps an already opened database handle. The caller keeps
// ownership of db, but Close on the store closes it too.
func OpenDB(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	return newStore(ctx, db, ":memory:", opts)
}

func newStore(ctx context.Context, db *sql.DB, path string, opts []Option) (*Store, error) {
	s := &Store{
		db:       db,
		path:     path,
		resolver: procutil.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = internal.Logger("envstore").WithField("db", path)

	if _, err := db.ExecContext(ctx, createWorksheetsTable); err != nil {
		return nil, &internal.StorageError{Path: path, Op: "migrate", Err: err}
	}
	return s, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// ShellKey returns the key the current process reads and writes under.
func (s *Store) ShellKey() int {
	return s.resolver.ParentPID()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CurrentWorksheet returns the worksheet recorded for the calling shell.
// ok is false when none has been set.
func (s *Store) CurrentWorksheet(ctx context.Context) (uuid string, ok bool, err error) {
	key := s.ShellKey()
	row := s.db.QueryRowContext(ctx, "SELECT worksheet_uuid FROM worksheets WHERE ppid = ?", key)
	if err := row.Scan(&uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithField("shell_key", key).Debug("no current worksheet")
			return "", false, nil
		}
		return "", false, &internal.StorageError{Path: s.path, Op: "read", Err: err}
	}
	return uuid, true, nil
}

// SetCurrentWorksheet records uuid for the calling shell, replacing any
// previous value.
func (s *Store) SetCurrentWorksheet(ctx context.Context, uuid string) error {
	if uuid == "" || utf8.RuneCountInString(uuid) > MaxWorksheetLen {
		return fmt.Errorf("%w: %q (must be 1-%d characters)", ErrInvalidWorksheet, uuid, MaxWorksheetLen)
	}

	key := s.ShellKey()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO worksheets (ppid, worksheet_uuid) VALUES (?, ?)", key, uuid)
		return err
	})
	if err != nil {
		return &internal.StorageError{Path: s.path, Op: "write", Err: err}
	}
	s.log.WithFields(logrus.Fields{"shell_key": key, "worksheet": uuid}).Debug("set current worksheet")
	return nil
}

// ClearCurrentWorksheet removes the calling shell's record, if any.
func (s *Store) ClearCurrentWorksheet(ctx context.Context) error {
	key := s.ShellKey()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM worksheets WHERE ppid = ?", key)
		return err
	})
	if err != nil {
		return &internal.StorageError{Path: s.path, Op: "write", Err: err}
	}
	s.log.WithField("shell_key", key).Debug("cleared current worksheet")
	return nil
}

// Records returns every stored mapping ordered by shell key.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT ppid, worksheet_uuid FROM worksheets ORDER BY ppid")
	if err != nil {
		return nil, &internal.StorageError{Path: s.path, Op: "read", Err: err}
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ShellKey, &r.Worksheet); err != nil {
			return nil, &internal.StorageError{Path: s.path, Op: "read", Err: fmt.Errorf("scan failed: %w", err)}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &internal.StorageError{Path: s.path, Op: "read", Err: fmt.Errorf("rows iteration error: %w", err)}
	}
	return records, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
