// Package port defines the interfaces the layout engine and its use cases
// depend on. Adapters live under infrastructure/ and ui/.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database connection. The first DB
// call may open the file and apply migrations.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// Path is the database file, used in error messages.
	Path() string
	Close() error
	IsInitialized() bool
}
