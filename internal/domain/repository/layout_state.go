package repository

import (
	"context"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// LayoutStateRepository persists named layout snapshots.
type LayoutStateRepository interface {
	// Save stores or replaces the snapshot under state.Name.
	Save(ctx context.Context, state *entity.LayoutState) error

	// Get returns the snapshot with the given name, or nil if none exists.
	Get(ctx context.Context, name string) (*entity.LayoutState, error)

	// List returns summaries ordered by most recently updated.
	List(ctx context.Context) ([]entity.LayoutSummary, error)

	// Delete removes a snapshot. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
