package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/domain/repository"
	"github.com/bnema/dumbed/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbed/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newLayoutRepo(t *testing.T) (context.Context, repository.LayoutStateRepository, func(query string, args ...any)) {
	t.Helper()
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "layouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	exec := func(query string, args ...any) {
		_, err := db.ExecContext(ctx, query, args...)
		require.NoError(t, err)
	}
	return ctx, sqlite.NewLayoutStateRepository(db), exec
}

func layoutState(name string, savedAt time.Time, groups ...[]string) *entity.LayoutState {
	state := &entity.LayoutState{
		Version:          entity.LayoutStateVersion,
		Name:             name,
		ActiveGroupIndex: 0,
		SavedAt:          savedAt,
	}
	for i, tabs := range groups {
		gs := entity.GroupSnapshot{ID: entity.GroupID(name + "-g" + string(rune('0'+i)))}
		for _, tab := range tabs {
			gs.Editors = append(gs.Editors, entity.EditorSnapshot{
				ID:          entity.EditorID("e-" + tab),
				TabID:       entity.TabID(tab),
				ResourceURI: "file:///" + tab,
				Title:       tab,
			})
		}
		gs.ActiveTabID = gs.Editors[0].TabID
		if i > 0 {
			gs.Placement = &entity.PlacementSnapshot{RelativeGroupID: state.Groups[i-1].ID, Side: entity.SideRight}
		}
		state.Groups = append(state.Groups, gs)
	}
	return state
}

func TestLayoutStateRepository_SaveGet(t *testing.T) {
	ctx, repo, _ := newLayoutRepo(t)
	savedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := layoutState("work", savedAt, []string{"a", "b"}, []string{"c"})

	require.NoError(t, repo.Save(ctx, state))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.Name, got.Name)
	assert.Equal(t, state.Groups, got.Groups)
	assert.Equal(t, 3, got.EditorCount())
	assert.True(t, got.SavedAt.Equal(savedAt))
	assert.NoError(t, got.Validate())
}

func TestLayoutStateRepository_GetMissing(t *testing.T) {
	ctx, repo, _ := newLayoutRepo(t)

	got, err := repo.Get(ctx, "nope")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutStateRepository_SaveReplaces(t *testing.T) {
	ctx, repo, _ := newLayoutRepo(t)
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, layoutState("work", first, []string{"a"})))

	require.NoError(t, repo.Save(ctx, layoutState("work", first.Add(time.Hour), []string{"a", "b"}, []string{"c"})))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Groups, 2)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].GroupCount)
	assert.Equal(t, 3, summaries[0].EditorCount)
}

func TestLayoutStateRepository_SaveKeepsCreatedAt(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "layouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := sqlite.NewLayoutStateRepository(db)

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, layoutState("work", first, []string{"a"})))
	require.NoError(t, repo.Save(ctx, layoutState("work", first.Add(time.Hour), []string{"a", "b"})))

	var createdAt, updatedAt time.Time
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM layout_states WHERE name = ?", "work",
	).Scan(&createdAt, &updatedAt))
	assert.True(t, first.Equal(createdAt), "created_at = %v", createdAt)
	assert.True(t, first.Add(time.Hour).Equal(updatedAt), "updated_at = %v", updatedAt)
}

func TestLayoutStateRepository_SaveFillsTimestamp(t *testing.T) {
	ctx, repo, _ := newLayoutRepo(t)
	state := layoutState("now", time.Time{}, []string{"a"})

	require.NoError(t, repo.Save(ctx, state))

	assert.False(t, state.SavedAt.IsZero())
}

func TestLayoutStateRepository_ListOrderAndSkipCorrupted(t *testing.T) {
	ctx, repo, exec := newLayoutRepo(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, layoutState("old", base, []string{"a"})))
	require.NoError(t, repo.Save(ctx, layoutState("new", base.Add(2*time.Hour), []string{"b"}, []string{"c"})))
	require.NoError(t, repo.Save(ctx, layoutState("mid", base.Add(time.Hour), []string{"d"})))
	exec(`UPDATE layout_states SET state_json = '{broken' WHERE name = ?`, "mid")

	summaries, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].Name)
	assert.Equal(t, 2, summaries[0].GroupCount)
	assert.Positive(t, summaries[0].SizeBytes)
	assert.True(t, summaries[0].UpdatedAt.Equal(base.Add(2*time.Hour)))
	assert.Equal(t, "old", summaries[1].Name)

	_, err = repo.Get(ctx, "mid")
	assert.Error(t, err)
}

func TestLayoutStateRepository_Delete(t *testing.T) {
	ctx, repo, _ := newLayoutRepo(t)
	require.NoError(t, repo.Save(ctx, layoutState("work", time.Now(), []string{"a"})))

	require.NoError(t, repo.Delete(ctx, "work"))
	require.NoError(t, repo.Delete(ctx, "work"), "deleting twice is fine")

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutStateRepository_SaveNil(t *testing.T) {
	ctx, repo, _ := newLayoutRepo(t)

	assert.Error(t, repo.Save(ctx, nil))
}
