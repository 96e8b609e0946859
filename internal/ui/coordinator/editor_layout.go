package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/logging"
)

// EditorLayoutCoordinator owns the ordered set of editor groups and tracks
// which group and which editor have focus. Tab-level work is delegated to the
// group owning the editor; group surfaces are placed through a RenderSurface.
//
// Lookups that find nothing degrade to no-ops, never errors.
// The coordinator runs on the UI thread and is not safe for concurrent use.
type EditorLayoutCoordinator struct {
	groupFactory port.GroupFactory
	surface      port.RenderSurface
	defaultSide  entity.Side

	// groups is kept in creation order; the last one is the most recent.
	groups       []port.EditorGroup
	placements   map[entity.GroupID]*entity.PlacementSnapshot
	activeGroup  port.EditorGroup
	activeEditor *entity.Editor

	subscription   port.Subscription
	onStateChanged func()
}

// EditorLayoutCoordinatorConfig holds configuration for EditorLayoutCoordinator.
type EditorLayoutCoordinatorConfig struct {
	GroupFactory port.GroupFactory
	Surface      port.RenderSurface
	// Events is optional. When set, the coordinator follows
	// TopicActivePartChanged notifications.
	Events port.EventBus
	// DefaultSide is used for groups created without a constraint.
	DefaultSide entity.Side
}

// NewEditorLayoutCoordinator creates a new EditorLayoutCoordinator.
func NewEditorLayoutCoordinator(ctx context.Context, cfg EditorLayoutCoordinatorConfig) *EditorLayoutCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating editor layout coordinator")

	side := cfg.DefaultSide
	if !side.Valid() {
		side = entity.SideRight
	}

	c := &EditorLayoutCoordinator{
		groupFactory: cfg.GroupFactory,
		surface:      cfg.Surface,
		defaultSide:  side,
		placements:   make(map[entity.GroupID]*entity.PlacementSnapshot),
	}
	if cfg.Events != nil {
		c.subscription = cfg.Events.Subscribe(port.TopicActivePartChanged, c.handleActivePartChanged)
	}
	return c
}

// Close stops following focus notifications.
func (c *EditorLayoutCoordinator) Close() {
	if c.subscription != nil {
		c.subscription.Unsubscribe()
		c.subscription = nil
	}
}

// SetOnStateChanged sets the callback run after every layout mutation (for autosave).
func (c *EditorLayoutCoordinator) SetOnStateChanged(fn func()) {
	c.onStateChanged = fn
}

// SetDefaultSide changes the side used for unconstrained groups.
func (c *EditorLayoutCoordinator) SetDefaultSide(side entity.Side) {
	if side.Valid() {
		c.defaultSide = side
	}
}

func (c *EditorLayoutCoordinator) notifyStateChanged() {
	if c.onStateChanged != nil {
		c.onStateChanged()
	}
}

// AddEditor places an editor in the active group, creating a group when none
// is active. The editor becomes active. An editor already held by some group
// is activated instead of being added twice.
func (c *EditorLayoutCoordinator) AddEditor(ctx context.Context, e *entity.Editor) {
	if e == nil {
		return
	}
	log := logging.FromContext(ctx)

	if c.owner(e) != nil {
		log.Debug().Str("editor_id", string(e.ID)).Msg("editor already open, activating")
		c.SetActiveEditor(ctx, e)
		return
	}

	group := c.activeGroup
	if group == nil {
		group = c.createGroup(ctx, nil, c.defaultSide)
	}
	group.AddEditor(e)
	c.activeGroup = group
	c.activeEditor = e

	log.Debug().
		Str("editor_id", string(e.ID)).
		Str("tab_id", string(e.TabID)).
		Str("group_id", string(group.ID())).
		Msg("editor added")
	c.notifyStateChanged()
}

// AddEditorWithConstraint opens the editor in a new group split off the group
// owning constraint.RelativeTabID. A zero constraint behaves like AddEditor;
// an unknown reference tab is a no-op.
func (c *EditorLayoutCoordinator) AddEditorWithConstraint(ctx context.Context, e *entity.Editor, constraint entity.Constraint) {
	if e == nil {
		return
	}
	if constraint.RelativeTabID == "" {
		c.AddEditor(ctx, e)
		return
	}
	log := logging.FromContext(ctx)

	if c.owner(e) != nil {
		log.Debug().Str("editor_id", string(e.ID)).Msg("editor already open, activating")
		c.SetActiveEditor(ctx, e)
		return
	}

	relative, ok := c.FindGroupByTabID(constraint.RelativeTabID)
	if !ok {
		log.Debug().
			Str("relative_tab_id", string(constraint.RelativeTabID)).
			Msg("constraint reference not found, editor not placed")
		return
	}

	side := constraint.Side
	if !side.Valid() {
		side = c.defaultSide
	}

	group := c.createGroup(ctx, relative, side)
	group.AddEditor(e)
	c.activeGroup = group
	c.activeEditor = e

	log.Debug().
		Str("editor_id", string(e.ID)).
		Str("group_id", string(group.ID())).
		Str("relative_group_id", string(relative.ID())).
		Str("side", string(side)).
		Msg("editor added in new split")
	c.notifyStateChanged()
}

// SetActiveEditor records e as the active editor. When a group owns it, that
// group becomes active too; otherwise the active group is left untouched.
func (c *EditorLayoutCoordinator) SetActiveEditor(ctx context.Context, e *entity.Editor) {
	c.activeEditor = e
	if group := c.owner(e); group != nil {
		c.activeGroup = group
		group.SetActiveEditor(e)
	} else if e != nil {
		logging.FromContext(ctx).Debug().
			Str("editor_id", string(e.ID)).
			Msg("active editor is not held by any group")
	}
	c.notifyStateChanged()
}

// RemoveEditor closes an editor. A group left empty is destroyed; if it was
// the active group, the most recently created remaining group restores its
// previous active editor.
func (c *EditorLayoutCoordinator) RemoveEditor(ctx context.Context, e *entity.Editor) {
	group := c.owner(e)
	if group == nil {
		return
	}

	wasActiveEditor := c.activeEditor != nil && c.activeEditor.ID == e.ID
	group.RemoveEditor(e)

	switch {
	case len(group.Editors()) == 0:
		if wasActiveEditor {
			c.activeEditor = nil
		}
		c.destroyGroup(ctx, group)
	case wasActiveEditor:
		c.activeGroup = group
		c.activeEditor = group.ActiveEditor()
	}

	logging.FromContext(ctx).Debug().
		Str("editor_id", string(e.ID)).
		Str("group_id", string(group.ID())).
		Msg("editor removed")
	c.notifyStateChanged()
}

// HideEditor hides an editor's tab without closing it. When it was the active
// editor, the owning group's next active editor takes over, which may be nil.
func (c *EditorLayoutCoordinator) HideEditor(ctx context.Context, e *entity.Editor) {
	group := c.owner(e)
	if group == nil {
		return
	}
	group.HideEditor(e)
	if c.activeEditor != nil && c.activeEditor.ID == e.ID {
		c.activeGroup = group
		c.activeEditor = group.ActiveEditor()
	}

	logging.FromContext(ctx).Debug().
		Str("editor_id", string(e.ID)).
		Str("group_id", string(group.ID())).
		Msg("editor hidden")
	c.notifyStateChanged()
}

// RestorePreviousActive asks the group owning the active editor to restore
// its previous active editor, and follows the result.
func (c *EditorLayoutCoordinator) RestorePreviousActive(ctx context.Context) {
	if c.activeEditor == nil {
		return
	}
	group := c.owner(c.activeEditor)
	if group == nil {
		return
	}
	if restored := group.RestorePreviousActive(); restored != nil {
		c.activeGroup = group
		c.activeEditor = restored
		logging.FromContext(ctx).Debug().
			Str("editor_id", string(restored.ID)).
			Msg("restored previous active editor")
	}
	c.notifyStateChanged()
}

// SetFocus forwards focus to the active group, if any.
func (c *EditorLayoutCoordinator) SetFocus(_ context.Context, focused bool) {
	if c.activeGroup != nil {
		c.activeGroup.SetFocus(focused)
	}
}

// RefreshLayout asks every group, in creation order, to recompute its layout.
func (c *EditorLayoutCoordinator) RefreshLayout(_ context.Context) {
	for _, group := range c.Groups() {
		group.RefreshLayout()
	}
}

// ContainsEditor reports whether any group holds e.
func (c *EditorLayoutCoordinator) ContainsEditor(e *entity.Editor) bool {
	return c.owner(e) != nil
}

// FindGroupForEditor returns the group holding e.
func (c *EditorLayoutCoordinator) FindGroupForEditor(e *entity.Editor) (port.EditorGroup, bool) {
	group := c.owner(e)
	return group, group != nil
}

// FindGroupByTabID returns the group showing the given tab.
func (c *EditorLayoutCoordinator) FindGroupByTabID(tabID entity.TabID) (port.EditorGroup, bool) {
	for _, group := range c.Groups() {
		if _, ok := group.FindEditorByTabID(tabID); ok {
			return group, true
		}
	}
	return nil, false
}

// FindEditorByTabID returns the editor shown in the given tab.
func (c *EditorLayoutCoordinator) FindEditorByTabID(tabID entity.TabID) (*entity.Editor, bool) {
	for _, group := range c.Groups() {
		if e, ok := group.FindEditorByTabID(tabID); ok {
			return e, true
		}
	}
	return nil, false
}

// FindTabForEditor returns the tab showing e.
func (c *EditorLayoutCoordinator) FindTabForEditor(e *entity.Editor) (entity.TabID, bool) {
	for _, group := range c.Groups() {
		if tabID, ok := group.FindTabForEditor(e); ok {
			return tabID, true
		}
	}
	return "", false
}

// NextEditor returns the editor after e within its group.
func (c *EditorLayoutCoordinator) NextEditor(e *entity.Editor) (*entity.Editor, bool) {
	if group := c.owner(e); group != nil {
		return group.NextEditor(e)
	}
	return nil, false
}

// PreviousEditor returns the editor before e within its group.
func (c *EditorLayoutCoordinator) PreviousEditor(e *entity.Editor) (*entity.Editor, bool) {
	if group := c.owner(e); group != nil {
		return group.PreviousEditor(e)
	}
	return nil, false
}

// ActiveGroup returns the active group, or nil.
func (c *EditorLayoutCoordinator) ActiveGroup() port.EditorGroup {
	return c.activeGroup
}

// ActiveEditor returns the active editor, or nil.
func (c *EditorLayoutCoordinator) ActiveEditor() *entity.Editor {
	return c.activeEditor
}

// Groups returns the groups in creation order.
func (c *EditorLayoutCoordinator) Groups() []port.EditorGroup {
	out := make([]port.EditorGroup, len(c.groups))
	copy(out, c.groups)
	return out
}

// GroupCount returns the number of live groups.
func (c *EditorLayoutCoordinator) GroupCount() int {
	return len(c.groups)
}

// Snapshot captures the current layout under the given name.
func (c *EditorLayoutCoordinator) Snapshot(name string) *entity.LayoutState {
	state := &entity.LayoutState{
		Version:          entity.LayoutStateVersion,
		Name:             name,
		Groups:           make([]entity.GroupSnapshot, 0, len(c.groups)),
		ActiveGroupIndex: -1,
		SavedAt:          time.Now(),
	}

	for i, group := range c.groups {
		if group == c.activeGroup {
			state.ActiveGroupIndex = i
		}
		gs := entity.GroupSnapshot{ID: group.ID()}
		for _, e := range group.Editors() {
			es := entity.SnapshotEditor(e)
			es.Hidden = group.IsHidden(e)
			gs.Editors = append(gs.Editors, es)
		}
		if active := group.ActiveEditor(); active != nil {
			gs.ActiveTabID = active.TabID
		}
		if p := c.placements[group.ID()]; p != nil {
			placement := *p
			gs.Placement = &placement
		}
		state.Groups = append(state.Groups, gs)
	}
	return state
}

// Restore replaces the current layout with the one described by state.
// Groups are recreated in order and attached where the snapshot placed them.
func (c *EditorLayoutCoordinator) Restore(ctx context.Context, state *entity.LayoutState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("restore layout: %w", err)
	}
	log := logging.FromContext(ctx)

	c.reset(ctx)

	created := make(map[entity.GroupID]port.EditorGroup, len(state.Groups))
	for _, gs := range state.Groups {
		var relative port.EditorGroup
		side := c.defaultSide
		if gs.Placement != nil {
			relative = created[gs.Placement.RelativeGroupID]
			side = gs.Placement.Side
		}

		group := c.createGroup(ctx, relative, side)
		created[gs.ID] = group
		for _, es := range gs.Editors {
			group.AddEditor(es.ToEditor())
		}
		if e, ok := group.FindEditorByTabID(gs.ActiveTabID); ok {
			group.SetActiveEditor(e)
		}
		for _, es := range gs.Editors {
			if es.Hidden {
				group.HideEditor(es.ToEditor())
			}
		}
	}

	if state.ActiveGroupIndex >= 0 {
		c.activeGroup = c.groups[state.ActiveGroupIndex]
		c.activeEditor = c.activeGroup.ActiveEditor()
	}

	log.Info().
		Str("layout", state.Name).
		Int("group_count", len(c.groups)).
		Msg("editor layout restored")
	c.notifyStateChanged()
	return nil
}

// reset detaches every group and clears focus.
func (c *EditorLayoutCoordinator) reset(ctx context.Context) {
	for _, group := range c.Groups() {
		c.surface.DetachGroup(ctx, group)
	}
	c.groups = nil
	c.placements = make(map[entity.GroupID]*entity.PlacementSnapshot)
	c.activeGroup = nil
	c.activeEditor = nil
}

func (c *EditorLayoutCoordinator) createGroup(ctx context.Context, relative port.EditorGroup, side entity.Side) port.EditorGroup {
	group := c.groupFactory.CreateGroup(ctx)
	c.surface.AttachGroup(ctx, group, relative, side)

	switch {
	case relative != nil:
		c.placements[group.ID()] = &entity.PlacementSnapshot{RelativeGroupID: relative.ID(), Side: side}
	case len(c.groups) > 0:
		c.placements[group.ID()] = &entity.PlacementSnapshot{Side: side}
	}
	c.groups = append(c.groups, group)

	log := logging.FromContext(logging.WithGroupID(ctx, string(group.ID())))
	log.Info().Int("group_count", len(c.groups)).Msg("editor group created")
	return group
}

func (c *EditorLayoutCoordinator) destroyGroup(ctx context.Context, group port.EditorGroup) {
	idx := c.indexOf(group)
	if idx < 0 {
		return
	}
	c.groups = append(c.groups[:idx], c.groups[idx+1:]...)

	// Groups attached next to the destroyed one now hang off its own anchor.
	removed := c.placements[group.ID()]
	delete(c.placements, group.ID())
	for _, p := range c.placements {
		if p.RelativeGroupID != group.ID() {
			continue
		}
		if removed != nil {
			p.RelativeGroupID = removed.RelativeGroupID
		} else {
			p.RelativeGroupID = ""
		}
	}

	c.surface.DetachGroup(ctx, group)

	log := logging.FromContext(logging.WithGroupID(ctx, string(group.ID())))
	log.Info().Int("group_count", len(c.groups)).Msg("editor group destroyed")

	if group != c.activeGroup {
		return
	}
	c.activeGroup = nil
	c.activeEditor = nil
	c.restoreFallbackFocus(ctx)
}

// restoreFallbackFocus hands focus to the most recently created group.
func (c *EditorLayoutCoordinator) restoreFallbackFocus(ctx context.Context) {
	if len(c.groups) == 0 {
		return
	}
	fallback := c.groups[len(c.groups)-1]
	if restored := fallback.RestorePreviousActive(); restored != nil {
		c.activeGroup = fallback
		c.activeEditor = restored
		logging.FromContext(ctx).Debug().
			Str("group_id", string(fallback.ID())).
			Str("editor_id", string(restored.ID)).
			Msg("focus fell back to most recent group")
	}
}

func (c *EditorLayoutCoordinator) handleActivePartChanged(ctx context.Context, payload any) {
	var event port.ActivePartChanged
	switch p := payload.(type) {
	case port.ActivePartChanged:
		event = p
	case *port.ActivePartChanged:
		if p == nil {
			return
		}
		event = *p
	default:
		return
	}
	log := logging.FromContext(ctx)
	if event.Editor == nil {
		log.Trace().Str("part_id", event.PartID).Msg("active part is not an editor")
		return
	}

	// Unlike SetActiveEditor, the active group always follows the part.
	c.activeEditor = event.Editor
	c.activeGroup = c.owner(event.Editor)
	if c.activeGroup != nil {
		c.activeGroup.SetActiveEditor(event.Editor)
	} else {
		log.Debug().
			Str("editor_id", string(event.Editor.ID)).
			Msg("active part is not held by any group")
	}
	c.notifyStateChanged()
}

func (c *EditorLayoutCoordinator) owner(e *entity.Editor) port.EditorGroup {
	if e == nil {
		return nil
	}
	for _, group := range c.groups {
		if group.ContainsEditor(e) {
			return group
		}
	}
	return nil
}

func (c *EditorLayoutCoordinator) indexOf(group port.EditorGroup) int {
	for i, g := range c.groups {
		if g == group {
			return i
		}
	}
	return -1
}
