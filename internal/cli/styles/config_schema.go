package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys grouped by section, sections in first-seen order.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, ok := sections[key.Section]; !ok {
			order = append(order, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}

	parts := []string{r.renderHeader(), ""}
	for _, section := range order {
		parts = append(parts, r.renderSection(section, sections[section]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Keys"))
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	body := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(body)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	defaultText := key.Default
	if defaultText == "" {
		defaultText = `""`
	}

	out := fmt.Sprintf("%s  %s  %s\n  %s",
		r.theme.Normal.Bold(true).Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(defaultText),
		r.theme.Subtle.Render(key.Description),
	)

	switch {
	case len(key.Values) > 0:
		out += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	case key.Range != "":
		out += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}
	return out
}
