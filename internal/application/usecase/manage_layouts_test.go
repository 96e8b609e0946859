package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/domain/entity"
	repomocks "github.com/bnema/dumbed/internal/domain/repository/mocks"
	"github.com/bnema/dumbed/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sampleLayout(name string) *entity.LayoutState {
	return &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Name:    name,
		Groups: []entity.GroupSnapshot{
			{
				ID:          "g1",
				ActiveTabID: "t1",
				Editors: []entity.EditorSnapshot{
					{ID: "e1", TabID: "t1", ResourceURI: "file:///a.go", Title: "a.go"},
				},
			},
			{
				ID:          "g2",
				ActiveTabID: "t2",
				Placement:   &entity.PlacementSnapshot{RelativeGroupID: "g1", Side: entity.SideRight},
				Editors: []entity.EditorSnapshot{
					{ID: "e2", TabID: "t2", ResourceURI: "file:///b.go", Title: "b.go"},
				},
			},
		},
		ActiveGroupIndex: 1,
		SavedAt:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

type fakeRestorer struct {
	restored *entity.LayoutState
	err      error
}

func (f *fakeRestorer) Restore(_ context.Context, state *entity.LayoutState) error {
	f.restored = state
	return f.err
}

func TestSaveLayoutUseCase_Execute_Success(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutStateRepository(t)
	state := sampleLayout("  work  ")

	repo.EXPECT().Save(mock.Anything, state).Return(nil).Once()

	uc := usecase.NewSaveLayoutUseCase(repo)
	err := uc.Execute(ctx, state)

	require.NoError(t, err)
	assert.Equal(t, "work", state.Name, "name is trimmed before saving")
}

func TestSaveLayoutUseCase_Execute_Rejects(t *testing.T) {
	invalid := sampleLayout("broken")
	invalid.Groups[1].Placement.RelativeGroupID = "nope"

	tests := []struct {
		name    string
		state   *entity.LayoutState
		wantErr error
	}{
		{name: "nil state", state: nil, wantErr: entity.ErrInvalidLayoutState},
		{name: "empty name", state: sampleLayout("   "), wantErr: usecase.ErrLayoutNameEmpty},
		{name: "invalid placement", state: invalid, wantErr: entity.ErrInvalidLayoutState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockLayoutStateRepository(t)
			uc := usecase.NewSaveLayoutUseCase(repo)

			err := uc.Execute(testContext(), tt.state)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaveLayoutUseCase_Execute_RepositoryError(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	dbErr := errors.New("disk full")
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(dbErr).Once()

	err := usecase.NewSaveLayoutUseCase(repo).Execute(testContext(), sampleLayout("work"))

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), `"work"`)
}

func TestRestoreLayoutUseCase_Execute_Success(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	state := sampleLayout("work")
	repo.EXPECT().Get(mock.Anything, "work").Return(state, nil).Once()
	target := &fakeRestorer{}

	got, err := usecase.NewRestoreLayoutUseCase(repo).Execute(testContext(), " work", target)

	require.NoError(t, err)
	assert.Same(t, state, got)
	assert.Same(t, state, target.restored)
}

func TestRestoreLayoutUseCase_Execute_NotFound(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, nil).Once()
	target := &fakeRestorer{}

	_, err := usecase.NewRestoreLayoutUseCase(repo).Execute(testContext(), "missing", target)

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
	assert.Nil(t, target.restored)
}

func TestRestoreLayoutUseCase_Execute_CorruptSnapshotNotApplied(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	state := sampleLayout("work")
	state.Version = 42
	repo.EXPECT().Get(mock.Anything, "work").Return(state, nil).Once()
	target := &fakeRestorer{}

	_, err := usecase.NewRestoreLayoutUseCase(repo).Execute(testContext(), "work", target)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidLayoutState)
	assert.Nil(t, target.restored)
}

func TestRestoreLayoutUseCase_Execute_TargetError(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(sampleLayout("work"), nil).Once()
	restoreErr := errors.New("surface gone")

	_, err := usecase.NewRestoreLayoutUseCase(repo).Execute(testContext(), "work", &fakeRestorer{err: restoreErr})

	require.Error(t, err)
	assert.ErrorIs(t, err, restoreErr)
}

func TestListLayoutsUseCase_Execute(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	summaries := []entity.LayoutSummary{
		{Name: "recent", GroupCount: 2, EditorCount: 3},
		{Name: "older", GroupCount: 1, EditorCount: 1},
	}
	repo.EXPECT().List(mock.Anything).Return(summaries, nil).Once()

	got, err := usecase.NewListLayoutsUseCase(repo).Execute(testContext())

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestListLayoutsUseCase_Execute_Error(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("locked")).Once()

	got, err := usecase.NewListLayoutsUseCase(repo).Execute(testContext())

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestDeleteLayoutUseCase_Execute_Success(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(sampleLayout("work"), nil).Once()
	repo.EXPECT().Delete(mock.Anything, "work").Return(nil).Once()

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(testContext(), "work")

	require.NoError(t, err)
}

func TestDeleteLayoutUseCase_Execute_NotFound(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, nil).Once()

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(testContext(), "gone")

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
}

func TestDeleteLayoutUseCase_Execute_EmptyName(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)

	err := usecase.NewDeleteLayoutUseCase(repo).Execute(testContext(), "")

	assert.ErrorIs(t, err, usecase.ErrLayoutNameEmpty)
}
