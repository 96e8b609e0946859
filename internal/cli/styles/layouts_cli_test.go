package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/domain/entity"
)

func TestLayoutsCLIRenderer(t *testing.T) {
	r := styles.NewLayoutsCLIRenderer(styles.NewTheme())

	require.Contains(t, r.RenderEmptyList(), "No saved layouts found.")
	require.Contains(t, r.RenderList(nil), "No saved layouts found.")

	out := r.RenderList([]entity.LayoutSummary{
		{Name: "review", GroupCount: 2, EditorCount: 1, UpdatedAt: time.Now()},
	})
	assert.Contains(t, out, "Layouts")
	assert.Contains(t, out, "review")
	assert.Contains(t, out, "2 regions")
	assert.Contains(t, out, "1 editor")
	assert.Contains(t, out, "just now")

	assert.Contains(t, r.RenderSaved("review"), "Layout review saved.")
	assert.Contains(t, r.RenderDeleted("review"), "Layout review deleted.")
	assert.Contains(t, r.RenderRestored("review"), "Restored layout review.")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderReplayed(3), "3 command(s) applied")
}

func TestLayoutsCLIRenderer_RenderOutline(t *testing.T) {
	r := styles.NewLayoutsCLIRenderer(styles.NewTheme())
	outline := "horizontal\n├─ g1 [t1*]\n└─ > g2 [t2*]\n"

	out := r.RenderOutline("review", outline)

	assert.Contains(t, out, "review")
	assert.Contains(t, out, "horizontal")
	assert.Contains(t, out, "├─ g1 [t1*]")
	assert.Contains(t, out, "└─ > g2 [t2*]")
}

func TestLayoutsCLIRenderer_RenderChecks(t *testing.T) {
	r := styles.NewLayoutsCLIRenderer(styles.NewTheme())

	out := r.RenderChecks([]styles.ScriptCheck{
		{Path: "ok.layout", Commands: 4},
		{Path: "bad.layout", Err: errors.New("line 2: unknown command")},
	})

	assert.Contains(t, out, "ok.layout")
	assert.Contains(t, out, "4 command(s)")
	assert.Contains(t, out, "line 2: unknown command")
	assert.Contains(t, out, "2 script(s), 1 failed")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", styles.FormatBytes(512))
	assert.Equal(t, "1.5 KB", styles.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", styles.FormatBytes(2*1024*1024))
}
