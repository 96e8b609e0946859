package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/dumbed/internal/logging"
)

// ErrDatabaseClosed is returned by LazyDB.DB after Close.
var ErrDatabaseClosed = errors.New("layout database closed")

// LazyDB opens the layout database on first use, so commands that never
// touch stored layouts skip the WASM compilation and migrations.
// A failed open is not retried.
type LazyDB struct {
	path string

	mu       sync.Mutex
	attempts int
	db       *sql.DB
	err      error
	open     atomic.Bool
}

// NewLazyDB creates a new lazy database provider.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.attempts == 0 {
		l.attempts++
		l.db, l.err = l.connect(ctx)
		l.open.Store(l.err == nil)
	}
	if l.err != nil {
		return nil, fmt.Errorf("open layout database: %w", l.err)
	}
	return l.db, nil
}

func (l *LazyDB) connect(ctx context.Context) (*sql.DB, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("layout database unavailable")
		return nil, err
	}
	log.Debug().Str("path", l.path).Dur("took", time.Since(start)).Msg("layout database opened")
	return db, nil
}

// Close closes the connection if it was opened. Later DB calls fail
// with ErrDatabaseClosed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts++
	if l.err == nil {
		l.err = ErrDatabaseClosed
	}
	if !l.open.Swap(false) {
		return nil
	}
	db := l.db
	l.db = nil
	return db.Close()
}

// IsInitialized reports whether a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	return l.open.Load()
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
