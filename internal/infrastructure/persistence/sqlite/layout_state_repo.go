package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/domain/repository"
	"github.com/bnema/dumbed/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/dumbed/internal/logging"
)

type layoutStateRepo struct {
	db      *sql.DB
	queries *sqlc.Queries
	now     func() time.Time
}

// NewLayoutStateRepository creates a new layout state repository.
func NewLayoutStateRepository(db *sql.DB) repository.LayoutStateRepository {
	return &layoutStateRepo{
		db:      db,
		queries: sqlc.New(db),
		now:     time.Now,
	}
}

// Save stores or replaces the snapshot under its name.
func (r *layoutStateRepo) Save(ctx context.Context, state *entity.LayoutState) error {
	log := logging.FromContext(ctx)
	if state == nil {
		return errors.New("layout state cannot be nil")
	}
	if state.SavedAt.IsZero() {
		state.SavedAt = r.now()
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout state")
		return fmt.Errorf("marshal layout %q: %w", state.Name, err)
	}

	log.Debug().
		Str("layout", state.Name).
		Int("group_count", len(state.Groups)).
		Int("editor_count", state.EditorCount()).
		Msg("saving layout state")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("layout rollback reported non-terminal error")
		}
	}()

	// Second precision keeps the stored text sortable.
	savedAt := state.SavedAt.UTC().Truncate(time.Second)
	if err := r.queries.WithTx(tx).UpsertLayoutState(ctx, sqlc.UpsertLayoutStateParams{
		Name:        state.Name,
		StateJson:   string(stateJSON),
		Version:     int64(state.Version),
		GroupCount:  int64(len(state.Groups)),
		EditorCount: int64(state.EditorCount()),
		CreatedAt:   savedAt,
		UpdatedAt:   savedAt,
	}); err != nil {
		return fmt.Errorf("upsert layout %q: %w", state.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout transaction: %w", err)
	}
	return nil
}

// Get returns the named snapshot, or nil if none exists.
func (r *layoutStateRepo) Get(ctx context.Context, name string) (*entity.LayoutState, error) {
	row, err := r.queries.GetLayoutState(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}

	var state entity.LayoutState
	if err := json.Unmarshal([]byte(row.StateJson), &state); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("layout", name).
			Msg("failed to unmarshal layout state")
		return nil, fmt.Errorf("decode layout %q: %w", name, err)
	}
	return &state, nil
}

// List returns summaries, most recently updated first.
// Rows whose JSON no longer decodes are skipped.
func (r *layoutStateRepo) List(ctx context.Context) ([]entity.LayoutSummary, error) {
	rows, err := r.queries.ListLayoutStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	summaries := make([]entity.LayoutSummary, 0, len(rows))
	for _, row := range rows {
		if !json.Valid([]byte(row.StateJson)) {
			logging.FromContext(ctx).Warn().
				Str("layout", row.Name).
				Msg("skipping corrupted layout state")
			continue
		}
		summaries = append(summaries, entity.LayoutSummary{
			Name:        row.Name,
			GroupCount:  int(row.GroupCount),
			EditorCount: int(row.EditorCount),
			SizeBytes:   row.SizeBytes,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return summaries, nil
}

// Delete removes a snapshot. Missing names are not an error.
func (r *layoutStateRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("deleting layout state")
	if err := r.queries.DeleteLayoutState(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}
