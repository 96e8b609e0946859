package usecase

import (
	"context"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/logging"
)

// EditorGroupFactory creates entity-backed editor groups.
type EditorGroupFactory struct {
	idGenerator  IDGenerator
	historyLimit int
}

// NewEditorGroupFactory creates a factory. historyLimit bounds each group's
// activation history; non-positive selects the entity default.
func NewEditorGroupFactory(idGenerator IDGenerator, historyLimit int) *EditorGroupFactory {
	return &EditorGroupFactory{
		idGenerator:  idGenerator,
		historyLimit: historyLimit,
	}
}

// SetHistoryLimit changes the limit used for groups created afterwards.
func (f *EditorGroupFactory) SetHistoryLimit(limit int) {
	f.historyLimit = limit
}

// CreateGroup returns a new empty group.
func (f *EditorGroupFactory) CreateGroup(ctx context.Context) port.EditorGroup {
	id := entity.GroupID(f.idGenerator())
	logging.FromContext(ctx).Debug().
		Str("group_id", string(id)).
		Int("history_limit", f.historyLimit).
		Msg("creating editor group")
	return entity.NewEditorGroup(id, f.historyLimit)
}
