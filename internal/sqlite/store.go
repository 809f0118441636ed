// Package sqlite implements the Auralis data layer: a single-connection
// SQLite store and one repository per entity. Repositories validate input,
// enforce entity state rules, and serialize all access through the store.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "auralis.db"

// Store owns the single persistent SQLite connection. All repository
// operations acquire exclusive access through With or WithTx for their full
// duration; there is no connection pool and no separate read path.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	log *zap.Logger
}

// Open creates the data directory if needed, opens the database with WAL
// journaling and relaxed synchronous flushing, and applies the schema.
// Schema application is idempotent; reopening an existing database keeps
// its contents. A nil logger disables logging.
func Open(dataDir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		dbPath,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", dbPath, err)
	}

	// One connection: the store serializes access itself, and a single
	// connection keeps the pragmas in force for every statement.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	if _, err := db.Exec(seedFallbackArea); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding fallback area: %w", err)
	}

	log.Debug("store opened", zap.String("path", dbPath))

	return &Store{db: db, log: log}, nil
}

// Close releases the database connection. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.log.Debug("store closed")
	return nil
}

// With runs f while holding exclusive access to the connection. The lock is
// released on every exit path, so callers must not perform network I/O
// inside f.
func (s *Store) With(f func(db *sql.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.db)
}

// WithTx runs f inside a single transaction under exclusive access. The
// transaction commits only if f returns nil; any error rolls back every
// statement f issued.
func (s *Store) WithTx(f func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := f(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
