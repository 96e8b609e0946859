package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "side alias", mutate: func(c *Config) { c.Layout.DefaultSide = "above" }},
		{name: "history upper bound", mutate: func(c *Config) { c.Layout.HistoryLimit = maxHistoryLimit }},
		{
			name:    "bad side",
			mutate:  func(c *Config) { c.Layout.DefaultSide = "center" },
			wantErr: []string{"layout.default_side"},
		},
		{
			name:    "history too large",
			mutate:  func(c *Config) { c.Layout.HistoryLimit = maxHistoryLimit + 1 },
			wantErr: []string{"layout.history_limit"},
		},
		{
			name: "errors are aggregated",
			mutate: func(c *Config) {
				c.Logging.Level = "chatty"
				c.Logging.Format = "xml"
				c.Layout.HistoryLimit = 0
			},
			wantErr: []string{"logging.level", "logging.format", "layout.history_limit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
