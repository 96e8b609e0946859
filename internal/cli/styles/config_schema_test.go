package styles_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/domain/entity"
)

func TestConfigSchemaRenderer(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	keys := []entity.ConfigKeyInfo{
		{Key: "layout.default_side", Type: "string", Default: "right", Values: []string{"left", "right"}, Section: "Layout"},
		{Key: "layout.history_limit", Type: "int", Default: "32", Range: "1-1000", Section: "Layout"},
		{Key: "logging.level", Type: "string", Default: "info", Section: "Logging"},
	}

	out := r.Render(keys)

	assert.Contains(t, out, "Config Keys")
	assert.Contains(t, out, "Values: left, right")
	assert.Contains(t, out, "Range: 1-1000")
	assert.Less(t, strings.Index(out, "Layout"), strings.Index(out, "Logging"))
	assert.Contains(t, r.Render(nil), "No configuration keys found")

	raw, err := r.RenderJSON(keys)
	require.NoError(t, err)
	var decoded []entity.ConfigKeyInfo
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, keys, decoded)
}
