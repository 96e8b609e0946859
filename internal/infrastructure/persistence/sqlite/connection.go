package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary

	"github.com/bnema/dumbed/internal/logging"
)

const dbDirPerm = 0o750

// connectionPragmas run on every new connection. Autosave and a second CLI
// invocation may write at the same time, hence the busy timeout.
var connectionPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(wal)",
	"synchronous(normal)",
}

// dataSourceName builds a file URI carrying the connection pragmas.
func dataSourceName(path string) string {
	query := url.Values{}
	for _, p := range connectionPragmas {
		query.Add("_pragma", p)
	}
	query.Set("_txlock", "immediate")

	u := url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: query.Encode()}
	return u.String()
}

// NewConnection opens the layout database, creating its directory when
// needed, and applies pending migrations.
func NewConnection(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), dbDirPerm); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("opening layout database")
	db, err := sql.Open("sqlite3", dataSourceName(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
