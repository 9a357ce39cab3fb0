package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	// Path of the database file; the file is the storage origin
	Path string

	// QuotaBytes is the budget for keys plus values; zero means unlimited
	QuotaBytes int64
}

// sqliteStore implements Store on a single SQLite table
type sqliteStore struct {
	db    *sql.DB
	quota int64
}

// NewSQLite opens (creating if needed) a SQLite-backed key/value store
func NewSQLite(cfg *SQLiteConfig) (*sqliteStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	dsn := filepath.Clean(cfg.Path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &sqliteStore{db: db, quota: cfg.QuotaBytes}, nil
}

// Close closes the SQLite handle
func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	if s.quota > 0 {
		var used int64
		err := s.db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0) FROM kv WHERE key <> ?`, key,
		).Scan(&used)
		if err != nil {
			return fmt.Errorf("measure storage usage: %w", err)
		}
		if used+int64(len(key)+len(value)) > s.quota {
			return ErrQuotaExceeded
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		if isDiskFull(err) {
			return ErrQuotaExceeded
		}
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	// exact, case-sensitive prefix match
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`,
		utf8.RuneCountInString(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("clear kv: %w", err)
	}
	return nil
}

func isDiskFull(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_FULL
	}
	return false
}
