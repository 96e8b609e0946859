package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbed/internal/application/port/mocks"
	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: "info", Section: "Logging"},
		{Key: "layout.default_side", Type: "string", Default: "right", Values: []string{"left", "right", "up", "down"}, Section: "Layout"},
		{Key: "layout.history_limit", Type: "int", Default: "32", Range: "1-1000", Section: "Layout"},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns every key and sorted sections", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(testContext(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		require.Len(t, result.Keys, 3)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
		assert.Equal(t, []string{"Layout", "Logging"}, result.Sections)
	})

	t.Run("filters by section ignoring case", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(testContext(), usecase.GetConfigSchemaInput{Section: "layout"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 2)
		assert.Equal(t, "1-1000", result.Keys[1].Range)
		assert.Len(t, result.Sections, 2)
	})

	t.Run("empty provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(nil)

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(testContext(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
		assert.Empty(t, result.Sections)
	})
}
