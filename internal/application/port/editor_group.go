package port

import (
	"context"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// EditorGroup is the capability set every split-region implementation offers.
// The layout coordinator only talks to groups through this interface.
type EditorGroup interface {
	ID() entity.GroupID

	AddEditor(e *entity.Editor)
	RemoveEditor(e *entity.Editor)
	ContainsEditor(e *entity.Editor) bool
	// HideEditor hides a tab without closing it; the editor stays in the group.
	HideEditor(e *entity.Editor)
	IsHidden(e *entity.Editor) bool

	SetActiveEditor(e *entity.Editor)
	// ActiveEditor returns nil once the group holds no visible editor.
	ActiveEditor() *entity.Editor
	// RestorePreviousActive re-activates the group's previous active editor
	// and returns it (nil when there is nothing to restore).
	RestorePreviousActive() *entity.Editor

	FindEditorByTabID(tabID entity.TabID) (*entity.Editor, bool)
	FindTabForEditor(e *entity.Editor) (entity.TabID, bool)
	NextEditor(e *entity.Editor) (*entity.Editor, bool)
	PreviousEditor(e *entity.Editor) (*entity.Editor, bool)

	SetFocus(focused bool)
	RefreshLayout()

	// Editors returns the editors in tab order.
	Editors() []*entity.Editor
}

// GroupFactory materializes new, empty editor groups.
type GroupFactory interface {
	CreateGroup(ctx context.Context) EditorGroup
}

// RenderSurface places group surfaces on screen.
// The coordinator never knows how rendering is performed.
type RenderSurface interface {
	// AttachGroup shows group next to relative on the given side.
	// A nil relative attaches the group as a standalone region.
	AttachGroup(ctx context.Context, group, relative EditorGroup, side entity.Side)
	// DetachGroup removes the group's surface.
	DetachGroup(ctx context.Context, group EditorGroup)
}
