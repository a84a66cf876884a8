// Package store implements the Knowledge Store (spec §4.3): an embedded
// relational cache of past decodings (cache) and past human rejections
// (failed_decodes), following the teacher's internal/store.LocalStore
// pattern of opening *sql.DB, serializing PRAGMAs for a single-writer
// SQLite file, and creating schema idempotently at startup.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// Store is the Knowledge Store. All methods are safe for concurrent use;
// SQLite itself serializes writers, and Store additionally sets a single
// open connection the way the teacher's LocalStore does (SetMaxOpenConns(1))
// so busy_timeout retries, not connection contention, absorb concurrent
// access from the search engine's worker pool (§5 "Knowledge store:
// serialized internally by the DB driver").
type Store struct {
	db     *sql.DB
	driver string
}

// DefaultPath returns the per-user data directory path named in §4.3 and
// §6: "$HOME/Ares/database.sqlite" (AppName = "Ares").
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Ares", "database.sqlite"), nil
}

// Open opens (creating if absent) the SQLite database at path using the
// cgo mattn/go-sqlite3 driver. If path is unusable — directory creation
// fails, sql.Open fails, or schema setup fails — Open falls back to an
// in-memory database using the pure-Go modernc.org/sqlite driver so the
// process never needs cgo just to keep running without persistence
// (§4.3 "falls back to an in-memory database for the process lifetime").
func Open(path string) (*Store, error) {
	if path == "" {
		return openMemory()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logging.Get(logging.CategoryStore).Warnw("store path unwritable, falling back to in-memory", "path", path, "err", err)
		return openMemory()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		logging.Get(logging.CategoryStore).Warnw("failed to open sqlite, falling back to in-memory", "path", path, "err", err)
		return openMemory()
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.Get(logging.CategoryStore).Debugw("failed to set busy_timeout", "err", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.Get(logging.CategoryStore).Debugw("failed to set journal_mode", "err", err)
	}

	s := &Store{db: db, driver: "sqlite3"}
	if err := s.setup(); err != nil {
		db.Close()
		logging.Get(logging.CategoryStore).Warnw("schema setup failed, falling back to in-memory", "err", err)
		return openMemory()
	}
	return s, nil
}

// openMemory is the in-memory fallback path, using the pure-Go modernc
// driver (registered under driver name "sqlite") so it never requires
// cgo even on a machine where mattn/go-sqlite3 couldn't have built.
// Every distinct modernc.org/sqlite connection to ":memory:" is its own
// separate database, so the pool is pinned to a single connection the
// same way the disk path is: without this, concurrent search-engine
// workers pulling a second connection would see none of the tables
// setup() just created on the first one.
func openMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("store: failed to open in-memory fallback: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	s := &Store{db: db, driver: "sqlite"}
	if err := s.setup(); err != nil {
		db.Close()
		return nil, types.NewStoreError(err)
	}
	return s, nil
}

// setup creates the cache and failed_decodes tables and their indexes if
// absent (§4.3 setup(), §6 schema). Idempotent.
func (s *Store) setup() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cache (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			encoded_text TEXT NOT NULL,
			decoded_text TEXT NOT NULL,
			path TEXT NOT NULL,
			successful BOOLEAN NOT NULL,
			execution_time_ms INTEGER NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cache_encoded_text ON cache(encoded_text)`,
		`CREATE TABLE IF NOT EXISTS failed_decodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			plaintext TEXT NOT NULL,
			checker TEXT NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stats_plaintext ON failed_decodes(plaintext)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("store: schema setup: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver reports which SQLite driver backs this Store ("sqlite3" for
// disk-backed mattn/go-sqlite3, "sqlite" for the modernc in-memory
// fallback) — surfaced for diagnostics, not used for branching.
func (s *Store) Driver() string {
	return s.driver
}

func marshalPath(path []types.CrackResult) (string, error) {
	raw, err := json.Marshal(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// unmarshalPath is the inverse of marshalPath: json.Marshal encodes each
// CrackResult through its MarshalText, so the column holds a JSON array
// of strings, each one a CrackResult JSON object.
func unmarshalPath(raw string) ([]types.CrackResult, error) {
	var elems []string
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, err
	}
	var path []types.CrackResult
	for _, e := range elems {
		cr, err := types.UnmarshalCrackResult([]byte(e))
		if err != nil {
			return nil, err
		}
		path = append(path, cr)
	}
	return path, nil
}

func nowStamp() string {
	return time.Now().Format(types.TimestampLayout)
}
