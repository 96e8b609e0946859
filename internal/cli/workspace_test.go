package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbed/internal/cli"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestWorkspace_Outline(t *testing.T) {
	ctx := testCtx()
	ws := cli.NewWorkspace(ctx, cli.WorkspaceConfig{DefaultSide: "right"})
	defer ws.Close()

	_, err := ws.Dispatcher.Run(ctx, strings.NewReader("open t1 a.go\nopen t2 b.go\nsplit t3 c.go down t1\n"))
	require.NoError(t, err)

	out := ws.Outline()
	assert.Contains(t, out, "g1 [t1 t2*]")
	assert.Contains(t, out, "> g2 [t3*]")
	assert.Equal(t, 2, ws.Tree.Len())
}

func TestWorkspace_OutlineMarksHiddenTabs(t *testing.T) {
	ctx := testCtx()
	ws := cli.NewWorkspace(ctx, cli.WorkspaceConfig{DefaultSide: "right"})
	defer ws.Close()

	_, err := ws.Dispatcher.Run(ctx, strings.NewReader("open t1 a.go\nopen t2 b.go\nhide t1\n"))
	require.NoError(t, err)

	assert.Equal(t, "> g1 [(t1) t2*]\n", ws.Outline())
}

func TestWorkspace_InvalidDefaultSideFallsBack(t *testing.T) {
	ctx := testCtx()
	ws := cli.NewWorkspace(ctx, cli.WorkspaceConfig{DefaultSide: "sideways"})
	defer ws.Close()

	_, err := ws.Dispatcher.Run(ctx, strings.NewReader("open t1 a.go\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, ws.Coordinator.GroupCount())
}

func TestOutlineState(t *testing.T) {
	ctx := testCtx()
	ws := cli.NewWorkspace(ctx, cli.WorkspaceConfig{DefaultSide: "right"})
	defer ws.Close()
	_, err := ws.Dispatcher.Run(ctx, strings.NewReader("open t1 a.go\nsplit t2 b.go right t1\n"))
	require.NoError(t, err)

	out, err := cli.OutlineState(ctx, ws.Coordinator.Snapshot("pair"))

	require.NoError(t, err)
	assert.Equal(t, ws.Outline(), out)
}

func TestOutlineState_Invalid(t *testing.T) {
	_, err := cli.OutlineState(testCtx(), &entity.LayoutState{Version: entity.LayoutStateVersion + 1})

	require.Error(t, err)
}
