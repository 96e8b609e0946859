package entity_test

import (
	"testing"

	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ed(id string) *entity.Editor {
	return entity.NewEditor(entity.EditorID(id), entity.TabID("tab-"+id), "file:///src/"+id+".go")
}

func ids(editors []*entity.Editor) []string {
	out := make([]string, 0, len(editors))
	for _, e := range editors {
		out = append(out, string(e.ID))
	}
	return out
}

func TestEditorGroup_AddEditor_ActivatesAndKeepsOrder(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b := ed("a"), ed("b")

	g.AddEditor(a)
	g.AddEditor(b)

	assert.Equal(t, []string{"a", "b"}, ids(g.Editors()))
	assert.Same(t, b, g.ActiveEditor())
	assert.Equal(t, 2, g.Len())
}

func TestEditorGroup_AddEditor_DuplicateOnlyActivates(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b := ed("a"), ed("b")
	g.AddEditor(a)
	g.AddEditor(b)

	g.AddEditor(ed("a"))

	assert.Equal(t, []string{"a", "b"}, ids(g.Editors()))
	assert.Same(t, a, g.ActiveEditor())
}

func TestEditorGroup_RemoveActive_FallsBackToMostRecent(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b, c := ed("a"), ed("b"), ed("c")
	g.AddEditor(a)
	g.AddEditor(b)
	g.AddEditor(c)
	g.SetActiveEditor(a)
	g.SetActiveEditor(c)

	g.RemoveEditor(c)

	assert.Same(t, a, g.ActiveEditor(), "a was active before c")
	assert.Equal(t, []string{"a", "b"}, ids(g.Editors()))
}

func TestEditorGroup_RemoveInactive_KeepsActive(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b := ed("a"), ed("b")
	g.AddEditor(a)
	g.AddEditor(b)

	g.RemoveEditor(a)

	assert.Same(t, b, g.ActiveEditor())
	assert.False(t, g.ContainsEditor(a))
}

func TestEditorGroup_RemoveLast_ClearsActive(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a := ed("a")
	g.AddEditor(a)

	g.RemoveEditor(a)

	assert.Nil(t, g.ActiveEditor())
	assert.Equal(t, 0, g.Len())
	assert.Nil(t, g.RestorePreviousActive())
}

func TestEditorGroup_RemoveUnknown_NoOp(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a := ed("a")
	g.AddEditor(a)

	g.RemoveEditor(ed("zzz"))
	g.RemoveEditor(nil)

	assert.Equal(t, 1, g.Len())
	assert.Same(t, a, g.ActiveEditor())
}

func TestEditorGroup_RemoveActive_HistoryTruncated_UsesNeighbour(t *testing.T) {
	g := entity.NewEditorGroup("g1", 1)
	a, b, c := ed("a"), ed("b"), ed("c")
	g.AddEditor(a)
	g.AddEditor(b)
	g.AddEditor(c)
	g.SetActiveEditor(b)

	g.RemoveEditor(b)

	assert.Same(t, c, g.ActiveEditor(), "neighbour at the removed index takes over")
}

func TestEditorGroup_SetActiveEditor_IgnoresForeign(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a := ed("a")
	g.AddEditor(a)

	g.SetActiveEditor(ed("other"))

	assert.Same(t, a, g.ActiveEditor())
}

func TestEditorGroup_FindByTab(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a := ed("a")
	g.AddEditor(a)

	got, ok := g.FindEditorByTabID("tab-a")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = g.FindEditorByTabID("tab-missing")
	assert.False(t, ok)

	tab, ok := g.FindTabForEditor(a)
	require.True(t, ok)
	assert.Equal(t, entity.TabID("tab-a"), tab)

	_, ok = g.FindTabForEditor(ed("b"))
	assert.False(t, ok)
}

func TestEditorGroup_NextPrevious(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b, c := ed("a"), ed("b"), ed("c")
	g.AddEditor(a)

	_, ok := g.NextEditor(a)
	assert.False(t, ok, "sole editor has no next")

	g.AddEditor(b)
	g.AddEditor(c)

	tests := []struct {
		name string
		fn   func(*entity.Editor) (*entity.Editor, bool)
		from *entity.Editor
		want *entity.Editor
	}{
		{"next middle", g.NextEditor, a, b},
		{"next wraps", g.NextEditor, c, a},
		{"previous middle", g.PreviousEditor, c, b},
		{"previous wraps", g.PreviousEditor, a, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.from)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}

	_, ok = g.PreviousEditor(ed("foreign"))
	assert.False(t, ok)
}

func TestEditorGroup_RestorePreviousActive(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b := ed("a"), ed("b")
	g.AddEditor(a)
	g.AddEditor(b)
	g.SetActiveEditor(a)

	got := g.RestorePreviousActive()

	assert.Same(t, a, got)
	assert.Same(t, a, g.ActiveEditor())
	assert.Equal(t, []string{"a", "b"}, ids(g.RecentEditors()))
}

func TestEditorGroup_FocusAndRefresh(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)

	g.SetFocus(true)
	assert.True(t, g.Focused())
	g.SetFocus(false)
	assert.False(t, g.Focused())

	g.RefreshLayout()
	g.RefreshLayout()
	assert.Equal(t, 2, g.LayoutGeneration())
}

func TestEditorGroup_HistoryLimit(t *testing.T) {
	g := entity.NewEditorGroup("g1", 2)
	g.AddEditor(ed("a"))
	g.AddEditor(ed("b"))
	g.AddEditor(ed("c"))

	assert.Equal(t, []string{"c", "b"}, ids(g.RecentEditors()))
}

func TestEditorGroup_HideEditor(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b, c := ed("a"), ed("b"), ed("c")
	g.AddEditor(a)
	g.AddEditor(b)
	g.AddEditor(c)
	g.SetActiveEditor(a)
	g.SetActiveEditor(c)

	g.HideEditor(c)

	assert.Same(t, a, g.ActiveEditor(), "activation moves to the most recent visible editor")
	assert.True(t, g.IsHidden(c))
	assert.True(t, g.ContainsEditor(c), "hidden editors stay in the group")
	assert.Equal(t, []string{"a", "b", "c"}, ids(g.Editors()))
	assert.Equal(t, []string{"a", "b"}, ids(g.RecentEditors()))

	next, ok := g.NextEditor(b)
	require.True(t, ok)
	assert.Same(t, a, next, "next skips hidden editors")
}

func TestEditorGroup_HideEditor_LastVisibleClearsActive(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a := ed("a")
	g.AddEditor(a)

	g.HideEditor(a)

	assert.Nil(t, g.ActiveEditor())
	assert.Equal(t, 1, g.Len())
	assert.Nil(t, g.RestorePreviousActive(), "nothing visible to restore")

	g.SetActiveEditor(a)

	assert.Same(t, a, g.ActiveEditor())
	assert.False(t, g.IsHidden(a), "activating shows the editor again")
}

func TestEditorGroup_HideEditor_InactiveAndForeign(t *testing.T) {
	g := entity.NewEditorGroup("g1", 0)
	a, b := ed("a"), ed("b")
	g.AddEditor(a)
	g.AddEditor(b)

	g.HideEditor(a)
	g.HideEditor(ed("foreign"))
	g.HideEditor(nil)

	assert.Same(t, b, g.ActiveEditor())
	assert.True(t, g.IsHidden(a))
	assert.False(t, g.IsHidden(ed("foreign")))

	g.RemoveEditor(a)
	assert.False(t, g.IsHidden(a))
	assert.Equal(t, []string{"b"}, ids(g.Editors()))
}
