package dispatcher_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/infrastructure/eventbus"
	"github.com/bnema/dumbed/internal/logging"
	"github.com/bnema/dumbed/internal/ui/coordinator"
	"github.com/bnema/dumbed/internal/ui/dispatcher"
	"github.com/bnema/dumbed/internal/ui/layout"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sequence(prefix string) usecase.IDGenerator {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newStack(t *testing.T) (context.Context, *coordinator.EditorLayoutCoordinator, *layout.SplitTree, *dispatcher.ScriptDispatcher) {
	t.Helper()
	ctx := testCtx()
	bus := eventbus.New()
	tree := layout.NewSplitTree()
	coord := coordinator.NewEditorLayoutCoordinator(ctx, coordinator.EditorLayoutCoordinatorConfig{
		GroupFactory: usecase.NewEditorGroupFactory(sequence("g"), 0),
		Surface:      tree,
		Events:       bus,
	})
	t.Cleanup(coord.Close)
	return ctx, coord, tree, dispatcher.NewScriptDispatcher(ctx, coord, bus, sequence("e"))
}

func TestParseScript(t *testing.T) {
	script := `
# two editors side by side
open t1 file:///a.go

split t2 file:///b.go right t1
  NEXT
`
	cmds, err := dispatcher.ParseScript(strings.NewReader(script))

	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, dispatcher.Command{Line: 3, Action: dispatcher.ActionOpen, Args: []string{"t1", "file:///a.go"}}, cmds[0])
	assert.Equal(t, 5, cmds[1].Line)
	assert.Equal(t, dispatcher.ActionSplit, cmds[1].Action)
	assert.Equal(t, dispatcher.ActionNext, cmds[2].Action)
	assert.Equal(t, "split t2 file:///b.go right t1", cmds[1].String())
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr error
		line    string
	}{
		{name: "unknown command", script: "open t1 a\nexplode\n", wantErr: dispatcher.ErrUnknownCommand, line: "line 2"},
		{name: "missing argument", script: "open t1\n", wantErr: dispatcher.ErrBadArguments, line: "line 1"},
		{name: "extra argument", script: "\n\nrefresh now\n", wantErr: dispatcher.ErrBadArguments, line: "line 3"},
		{name: "bad side", script: "open t1 a\nsplit t2 b diagonal t1\n", wantErr: entity.ErrInvalidSide, line: "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dispatcher.ParseScript(strings.NewReader(tt.script))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestScriptDispatcher_Run_SplitAndClose(t *testing.T) {
	ctx, coord, tree, d := newStack(t)
	script := `
open t1 file:///src/main.go
split t2 file:///src/util.go right t1
close t2
`
	n, err := d.Run(ctx, strings.NewReader(script))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, coord.GroupCount())
	require.NotNil(t, coord.ActiveEditor())
	assert.Equal(t, entity.TabID("t1"), coord.ActiveEditor().TabID)
	assert.Equal(t, "main.go", coord.ActiveEditor().Title)
	assert.Equal(t, "g1\n", tree.Render(nil))
}

func TestScriptDispatcher_Run_ParseErrorExecutesNothing(t *testing.T) {
	ctx, coord, _, d := newStack(t)

	n, err := d.Run(ctx, strings.NewReader("open t1 a\nwobble\n"))

	require.ErrorIs(t, err, dispatcher.ErrUnknownCommand)
	assert.Zero(t, n)
	assert.Zero(t, coord.GroupCount())
}

func TestScriptDispatcher_FocusAndClick(t *testing.T) {
	ctx, coord, _, d := newStack(t)
	_, err := d.Run(ctx, strings.NewReader(`
open t1 a.go
split t2 b.go down t1
click t1
`))
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("t1"), coord.ActiveEditor().TabID)
	assert.Equal(t, entity.GroupID("g1"), coord.ActiveGroup().ID())

	_, err = d.Run(ctx, strings.NewReader("focus ghost\n"))
	require.NoError(t, err)

	assert.Equal(t, entity.TabID("ghost"), coord.ActiveEditor().TabID)
	assert.Equal(t, entity.GroupID("g1"), coord.ActiveGroup().ID(), "unknown editor keeps the active group")
	assert.Equal(t, 2, coord.GroupCount())
}

func TestScriptDispatcher_NextPrevRestore(t *testing.T) {
	ctx, coord, _, d := newStack(t)
	_, err := d.Run(ctx, strings.NewReader(`
open t1 a
open t2 b
open t3 c
next
`))
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("t1"), coord.ActiveEditor().TabID, "next wraps around")

	_, err = d.Run(ctx, strings.NewReader("prev\nprev\n"))
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("t2"), coord.ActiveEditor().TabID)

	_, err = d.Run(ctx, strings.NewReader("close t2\nrestore\n"))
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("t3"), coord.ActiveEditor().TabID)
}

func TestScriptDispatcher_FocusCommands(t *testing.T) {
	ctx, coord, _, d := newStack(t)
	_, err := d.Run(ctx, strings.NewReader("open t1 a\nunblur\nrefresh\n"))
	require.NoError(t, err)

	group, ok := coord.ActiveGroup().(*entity.EditorGroup)
	require.True(t, ok)
	assert.True(t, group.Focused())
	assert.Equal(t, 1, group.LayoutGeneration())

	_, err = d.Run(ctx, strings.NewReader("blur\n"))
	require.NoError(t, err)
	assert.False(t, group.Focused())
}

func TestScriptDispatcher_HideAndShow(t *testing.T) {
	ctx, coord, _, d := newStack(t)
	_, err := d.Run(ctx, strings.NewReader(`
open t1 a
open t2 b
hide t2
hide nope
`))
	require.NoError(t, err)

	assert.Equal(t, entity.TabID("t1"), coord.ActiveEditor().TabID)
	hidden, ok := coord.FindEditorByTabID("t2")
	require.True(t, ok, "hidden tabs stay open")
	assert.True(t, coord.ActiveGroup().IsHidden(hidden))

	_, err = d.Run(ctx, strings.NewReader("focus t2\n"))
	require.NoError(t, err)
	assert.False(t, coord.ActiveGroup().IsHidden(hidden))
	assert.Equal(t, entity.TabID("t2"), coord.ActiveEditor().TabID)
}

func TestScriptDispatcher_CloseUnknownTabIsNoop(t *testing.T) {
	ctx, coord, _, d := newStack(t)

	_, err := d.Run(ctx, strings.NewReader("open t1 a\nclose nope\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, coord.GroupCount())
}

func TestScriptDispatcher_Dispatch_RejectsMalformedCommand(t *testing.T) {
	ctx, _, _, d := newStack(t)

	err := d.Dispatch(ctx, dispatcher.Command{Line: 7, Action: dispatcher.ActionOpen})
	require.ErrorIs(t, err, dispatcher.ErrBadArguments)
	assert.Contains(t, err.Error(), "line 7")

	err = d.Dispatch(ctx, dispatcher.Command{Line: 8, Action: "dance"})
	require.ErrorIs(t, err, dispatcher.ErrUnknownCommand)
}
