package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/domain/entity"
)

// GetConfigSchemaUseCase lists the documented configuration keys.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the returned keys.
type GetConfigSchemaInput struct {
	// Section restricts the output to one section (case-insensitive). Empty returns all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute returns the keys in provider order plus the distinct section names, sorted.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	seen := make(map[string]bool)
	sections := make([]string, 0)
	for _, key := range all {
		if !seen[key.Section] {
			seen[key.Section] = true
			sections = append(sections, key.Section)
		}
		if input.Section != "" && !strings.EqualFold(key.Section, input.Section) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(sections)

	return &GetConfigSchemaOutput{
		Keys:     keys,
		Sections: sections,
	}, nil
}
