// Package cache persists generated records keyed by a deterministic
// fingerprint, so repeat runs over the same source skip the model calls.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/srijanshukla18/global-publish/internal/cache/migrations"
	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed cache. Entries are immutable once written;
// expiry is evaluated at read time, not by background eviction.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates a new cache store at the given path.
func Open(ctx context.Context, path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	store := &Store{
		db:  sqlDB,
		now: time.Now,
	}

	if err := store.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return store, nil
}

// Key builds a deterministic cache key from the source fingerprint, the
// scope ("analysis" or a platform ID), and the model identifier.
func Key(fingerprint, scope, model string) string {
	h := sha256.Sum256([]byte(fingerprint + "|" + scope + "|" + model))
	return hex.EncodeToString(h[:])
}

// Get returns the payload for key. The second return value is false both
// when no entry exists and when the entry's ttl has elapsed; callers
// regenerate in either case.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		payload   []byte
		createdNs int64
		ttlNs     int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT payload, created_at, ttl_ns FROM entries WHERE key = ?", key,
	).Scan(&payload, &createdNs, &ttlNs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache entry: %w", err)
	}

	age := s.now().UnixNano() - createdNs
	if age >= ttlNs {
		shortKey := key
		if len(shortKey) > 8 {
			shortKey = shortKey[:8]
		}
		slog.Debug("cache entry expired", "key", shortKey, "age", time.Duration(age))
		return nil, false, nil
	}

	return payload, true, nil
}

// Put writes an entry, overwriting any previous one with the same key.
// Last writer wins; there are no merge semantics.
func (s *Store) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO entries (key, payload, created_at, ttl_ns) VALUES (?, ?, ?, ?)",
		key, payload, s.now().UnixNano(), ttl.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// PurgeExpired deletes all entries whose ttl has elapsed and returns the
// number removed.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM entries WHERE created_at + ttl_ns <= ?", s.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("purge expired entries: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count purged entries: %w", err)
	}
	return removed, nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Total   int64
	Expired int64
}

// Stats reports how many entries exist and how many of them have expired.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	nowNs := s.now().UnixNano()
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(CASE WHEN created_at + ttl_ns <= ? THEN 1 END) FROM entries", nowNs,
	).Scan(&st.Total, &st.Expired)
	if err != nil {
		return Stats{}, fmt.Errorf("query cache stats: %w", err)
	}
	return st, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies all pending schema migrations.
func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("scan migration: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		if applied[file] {
			continue
		}

		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		sqlContent := extractUpMigration(string(content))

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlContent); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute migration %s: %w", file, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", file); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}

		slog.Debug("applied cache migration", "file", file)
	}

	return nil
}

// extractUpMigration extracts the "up" portion of a migration file.
func extractUpMigration(content string) string {
	downMarker := "-- +migrate Down"
	idx := strings.Index(content, downMarker)
	if idx == -1 {
		return content
	}

	up := content[:idx]
	up = strings.TrimPrefix(up, "-- +migrate Up")
	return strings.TrimSpace(up)
}
