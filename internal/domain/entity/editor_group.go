package entity

// DefaultGroupHistoryLimit bounds the activation history kept by a group.
const DefaultGroupHistoryLimit = 32

// EditorGroup is one split region holding an ordered set of editor tabs.
//
// Besides the visible order, a group remembers which of its editors were
// active most recently. That history decides who takes over when the
// active editor is closed and what RestorePreviousActive brings back.
// Editors are matched by ID, so a handle rebuilt from a snapshot still
// resolves to the instance the group holds.
//
// A hidden editor stays in the group but is skipped when choosing who
// becomes active. Activating it shows it again.
//
// EditorGroup is not safe for concurrent use.
type EditorGroup struct {
	id           GroupID
	editors      []*Editor
	active       *Editor
	history      []*Editor // most recently active first, never hidden
	hidden       map[EditorID]bool
	historyLimit int
	focused      bool
	generation   int
}

// NewEditorGroup creates an empty group. A non-positive historyLimit
// selects DefaultGroupHistoryLimit.
func NewEditorGroup(id GroupID, historyLimit int) *EditorGroup {
	if historyLimit <= 0 {
		historyLimit = DefaultGroupHistoryLimit
	}
	return &EditorGroup{
		id:           id,
		historyLimit: historyLimit,
		hidden:       make(map[EditorID]bool),
	}
}

// ID returns the group identifier.
func (g *EditorGroup) ID() GroupID {
	return g.id
}

// AddEditor appends the editor and activates it.
// An editor already in the group is only activated.
func (g *EditorGroup) AddEditor(e *Editor) {
	if e == nil {
		return
	}
	if existing := g.lookup(e.ID); existing != nil {
		g.activate(existing)
		return
	}
	g.editors = append(g.editors, e)
	g.activate(e)
}

// RemoveEditor drops the editor from the group. When it was active, the most
// recently active remaining editor takes over, then its nearest visible
// neighbour. The active editor is nil once no visible editor remains.
func (g *EditorGroup) RemoveEditor(e *Editor) {
	if e == nil {
		return
	}
	idx := g.indexOf(e.ID)
	if idx < 0 {
		return
	}

	wasActive := g.active != nil && g.active.ID == e.ID
	g.editors = append(g.editors[:idx], g.editors[idx+1:]...)
	g.forget(e.ID)
	delete(g.hidden, e.ID)

	if wasActive {
		g.active = nil
		g.activateSuccessor(idx)
	}
}

// HideEditor hides a tab without closing it. A hidden active editor hands
// activation over as RemoveEditor would. Foreign editors are ignored.
func (g *EditorGroup) HideEditor(e *Editor) {
	if e == nil {
		return
	}
	idx := g.indexOf(e.ID)
	if idx < 0 || g.hidden[e.ID] {
		return
	}
	g.hidden[e.ID] = true
	g.forget(e.ID)

	if g.active != nil && g.active.ID == e.ID {
		g.active = nil
		g.activateSuccessor(idx)
	}
}

// IsHidden reports whether the editor is held by this group but hidden.
func (g *EditorGroup) IsHidden(e *Editor) bool {
	return e != nil && g.hidden[e.ID]
}

// ContainsEditor reports whether the editor is held by this group.
func (g *EditorGroup) ContainsEditor(e *Editor) bool {
	return e != nil && g.indexOf(e.ID) >= 0
}

// SetActiveEditor activates an editor of this group. Foreign editors are ignored.
func (g *EditorGroup) SetActiveEditor(e *Editor) {
	if e == nil {
		return
	}
	if existing := g.lookup(e.ID); existing != nil {
		g.activate(existing)
	}
}

// ActiveEditor returns the active editor, or nil for an empty group.
func (g *EditorGroup) ActiveEditor() *Editor {
	return g.active
}

// FindEditorByTabID returns the editor shown in the given tab.
func (g *EditorGroup) FindEditorByTabID(tabID TabID) (*Editor, bool) {
	for _, e := range g.editors {
		if e.TabID == tabID {
			return e, true
		}
	}
	return nil, false
}

// FindTabForEditor returns the tab of an editor held by this group.
func (g *EditorGroup) FindTabForEditor(e *Editor) (TabID, bool) {
	if e == nil {
		return "", false
	}
	if existing := g.lookup(e.ID); existing != nil {
		return existing.TabID, true
	}
	return "", false
}

// NextEditor returns the editor after e in tab order, wrapping around.
// A sole editor has no next editor.
func (g *EditorGroup) NextEditor(e *Editor) (*Editor, bool) {
	return g.step(e, 1)
}

// PreviousEditor returns the editor before e in tab order, wrapping around.
func (g *EditorGroup) PreviousEditor(e *Editor) (*Editor, bool) {
	return g.step(e, -1)
}

// step walks tab order from e, skipping hidden editors.
func (g *EditorGroup) step(e *Editor, delta int) (*Editor, bool) {
	if e == nil || len(g.editors) < 2 {
		return nil, false
	}
	idx := g.indexOf(e.ID)
	if idx < 0 {
		return nil, false
	}
	n := len(g.editors)
	for i := 1; i < n; i++ {
		next := g.editors[(idx+i*delta+n*n)%n]
		if !g.hidden[next.ID] {
			return next, true
		}
	}
	return nil, false
}

// SetFocus records whether the group holds keyboard focus.
func (g *EditorGroup) SetFocus(focused bool) {
	g.focused = focused
}

// Focused reports the last value passed to SetFocus.
func (g *EditorGroup) Focused() bool {
	return g.focused
}

// RefreshLayout marks the group layout as recomputed.
func (g *EditorGroup) RefreshLayout() {
	g.generation++
}

// LayoutGeneration counts RefreshLayout calls.
func (g *EditorGroup) LayoutGeneration() int {
	return g.generation
}

// RestorePreviousActive re-activates the most recently active editor still
// in the group and returns it. Returns nil when no visible editor remains.
func (g *EditorGroup) RestorePreviousActive() *Editor {
	if g.active == nil {
		g.activateSuccessor(len(g.editors))
		return g.active
	}
	if len(g.history) > 0 {
		g.activate(g.history[0])
	}
	return g.active
}

// Editors returns the editors in tab order.
func (g *EditorGroup) Editors() []*Editor {
	out := make([]*Editor, len(g.editors))
	copy(out, g.editors)
	return out
}

// Len returns the number of editors.
func (g *EditorGroup) Len() int {
	return len(g.editors)
}

// RecentEditors returns the activation history, most recent first.
func (g *EditorGroup) RecentEditors() []*Editor {
	out := make([]*Editor, len(g.history))
	copy(out, g.history)
	return out
}

// activateSuccessor activates the most recent visible editor, falling back
// to the visible editor nearest to position idx.
func (g *EditorGroup) activateSuccessor(idx int) {
	if len(g.history) > 0 {
		g.activate(g.history[0])
		return
	}
	for d := 0; d <= len(g.editors); d++ {
		for _, i := range []int{idx + d, idx - d - 1} {
			if i >= 0 && i < len(g.editors) && !g.hidden[g.editors[i].ID] {
				g.activate(g.editors[i])
				return
			}
		}
	}
}

func (g *EditorGroup) activate(e *Editor) {
	delete(g.hidden, e.ID)
	g.active = e
	g.forget(e.ID)
	g.history = append([]*Editor{e}, g.history...)
	if len(g.history) > g.historyLimit {
		g.history = g.history[:g.historyLimit]
	}
}

func (g *EditorGroup) forget(id EditorID) {
	for i, h := range g.history {
		if h.ID == id {
			g.history = append(g.history[:i], g.history[i+1:]...)
			return
		}
	}
}

func (g *EditorGroup) indexOf(id EditorID) int {
	for i, e := range g.editors {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (g *EditorGroup) lookup(id EditorID) *Editor {
	if i := g.indexOf(id); i >= 0 {
		return g.editors[i]
	}
	return nil
}
