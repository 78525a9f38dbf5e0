package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseFile is the fixed filename inside the application data directory.
// Released installs depend on it; never rename.
const DatabaseFile = "srecha-invoice.db"

// Store owns the embedded database file. Commands may arrive from any host
// worker, so access to the shared handle is serialised through an explicit
// mutex; the dispatcher holds it for the duration of each command.
type Store struct {
	mu   sync.Mutex
	db   *gorm.DB
	path string
}

// Open creates the data directory if needed, opens (or creates) the database
// file and runs the schema bootstrap and seeds. It is idempotent: re-running
// it against an existing database leaves schema and seed tables unchanged.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dataDir, DatabaseFile)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	s := &Store{db: db, path: path}
	if err := s.bootstrap(); err != nil {
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}
	// The desktop shell may run under a different user than installers or
	// backup tooling; failure to widen permissions is not fatal.
	setPermissions(path)

	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return s, nil
}

// DB returns the shared handle. Callers must hold the store lock.
func (s *Store) DB() *gorm.DB { return s.db }

// Path returns the location of the database file.
func (s *Store) Path() string { return s.path }

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Now renders the current instant in the stored timestamp format.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
