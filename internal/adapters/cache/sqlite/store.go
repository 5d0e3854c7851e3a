// Package sqlite is the durable local cache of quotes, favorites,
// collections and remembered sessions, stored in a single SQLite file
// through gorm.
//
// The store implements ports.QuoteCache, ports.CollectionCache and
// ports.SessionCache. Writes are last-write-wins per primary key, batches
// commit in one transaction, and every committed write wakes the live
// watchers of the touched table.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// HealthCheckName identifies the cache in health responses.
const HealthCheckName = "quote-cache"

// Config configures the cache file.
type Config struct {
	Path        string
	BusyTimeout time.Duration
	LogQueries  bool
}

// Store is the gorm-backed cache.
type Store struct {
	db  *gorm.DB
	hub *hub
}

var (
	_ ports.QuoteCache      = (*Store)(nil)
	_ ports.CollectionCache = (*Store)(nil)
	_ ports.SessionCache    = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// Open opens (creating if needed) the cache file and migrates its schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn(cfg)), &gorm.Config{
		Logger:         newGormLogger(cfg.LogQueries),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", cfg.Path, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&quoteRow{}, &favoriteRow{}, &collectionRow{}, &sessionRow{}); err != nil {
		return nil, fmt.Errorf("migrating cache schema: %w", err)
	}

	return &Store{db: db, hub: newHub()}, nil
}

// dsn builds a mattn/go-sqlite3 DSN. WAL lets readers proceed during a write,
// and immediate transactions take the write lock up front so concurrent
// batches queue on busy_timeout instead of failing with SQLITE_BUSY.
func dsn(cfg Config) string {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	params.Set("_busy_timeout", strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10))

	return "file:" + cfg.Path + "?" + params.Encode()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return HealthCheckName
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// notFound converts gorm's missing-row error into the domain error.
func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity, id)
	}

	return err
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}
