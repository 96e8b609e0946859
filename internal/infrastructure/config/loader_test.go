package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp tree.
func isolateXDG(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	for _, env := range []string{"DUMBED_LOG_LEVEL", "DUMBED_LOG_FORMAT", "DUMBED_LAYOUT_DEFAULT_SIDE", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME"} {
		t.Setenv(env, "")
	}
	return filepath.Join(root, "config", appName), filepath.Join(root, "data", appName)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func loadManager(t *testing.T) (*Manager, error) {
	t.Helper()
	m, err := NewManager()
	require.NoError(t, err)
	return m, m.Load()
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "right", mgr.viper.GetString("layout.default_side"))
	assert.Equal(t, 32, mgr.viper.GetInt("layout.history_limit"))
	assert.Equal(t, "dumbed", mgr.viper.GetString("telemetry.service_name"))
}

func TestManager_Load_CreatesDefaultConfig(t *testing.T) {
	configDir, dataDir := isolateXDG(t)

	m, err := loadManager(t)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(configDir, configName))
	assert.FileExists(t, filepath.Join(configDir, schemaName))

	cfg := m.Get()
	assert.Equal(t, "right", cfg.Layout.DefaultSide)
	assert.Equal(t, defaultHistoryLimit, cfg.Layout.HistoryLimit)
	assert.Equal(t, filepath.Join(dataDir, databaseName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(configDir, configName), m.GetConfigFile())
}

func TestManager_Load_NormalizesFileValues(t *testing.T) {
	configDir, _ := isolateXDG(t)
	writeConfig(t, configDir, `
[logging]
level = "DEBUG"
format = "text"

[layout]
default_side = "Below"
history_limit = 5
autosave = "  last  "
`)

	m, err := loadManager(t)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "down", cfg.Layout.DefaultSide)
	assert.Equal(t, 5, cfg.Layout.HistoryLimit)
	assert.Equal(t, "last", cfg.Layout.Autosave)
	assert.Equal(t, "dumbed", cfg.Telemetry.ServiceName)
}

func TestManager_Load_EnvironmentOverrides(t *testing.T) {
	configDir, _ := isolateXDG(t)
	writeConfig(t, configDir, "[logging]\nlevel = \"info\"\n")
	t.Setenv("DUMBED_LOG_LEVEL", "warn")
	t.Setenv("DUMBED_LAYOUT_DEFAULT_SIDE", "left")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	m, err := loadManager(t)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "left", cfg.Layout.DefaultSide)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPEndpoint)
}

func TestManager_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "history limit", content: "[layout]\nhistory_limit = 0\n", wantErr: "layout.history_limit"},
		{name: "side", content: "[layout]\ndefault_side = \"diagonal\"\n", wantErr: "layout.default_side"},
		{name: "level", content: "[logging]\nlevel = \"loud\"\n", wantErr: "logging.level"},
		{name: "syntax", content: "[layout\n", wantErr: "valid TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir, _ := isolateXDG(t)
			writeConfig(t, configDir, tt.content)

			_, err := loadManager(t)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManager_Save_PersistsAcrossManagers(t *testing.T) {
	isolateXDG(t)
	m, err := loadManager(t)
	require.NoError(t, err)

	cfg := m.Get()
	cfg.Layout.DefaultSide = "up"
	cfg.Layout.Autosave = "session"
	require.NoError(t, m.Save(cfg))
	assert.Equal(t, "up", m.Get().Layout.DefaultSide)

	reloaded, err := loadManager(t)
	require.NoError(t, err)
	assert.Equal(t, "up", reloaded.Get().Layout.DefaultSide)
	assert.Equal(t, "session", reloaded.Get().Layout.Autosave)
}

func TestManager_Save_RejectsInvalidConfig(t *testing.T) {
	isolateXDG(t)
	m, err := loadManager(t)
	require.NoError(t, err)

	cfg := m.Get()
	cfg.Layout.HistoryLimit = -1

	require.Error(t, m.Save(cfg))
	require.Error(t, m.Save(nil))
	assert.Equal(t, defaultHistoryLimit, m.Get().Layout.HistoryLimit)
}

func TestManager_Get_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	m, err := loadManager(t)
	require.NoError(t, err)

	m.Get().Layout.DefaultSide = "left"

	assert.Equal(t, "right", m.Get().Layout.DefaultSide)
}

func TestManager_Reload_NotifiesCallbacks(t *testing.T) {
	configDir, _ := isolateXDG(t)
	m, err := loadManager(t)
	require.NoError(t, err)

	var got []*Config
	m.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })

	writeConfig(t, configDir, "[layout]\ndefault_side = \"left\"\nhistory_limit = 8\n")
	m.mu.Lock()
	require.NoError(t, m.reload())
	m.notifyCallbacksLocked()

	require.Len(t, got, 1)
	assert.Equal(t, "left", got[0].Layout.DefaultSide)
	assert.Equal(t, 8, m.Get().Layout.HistoryLimit)
}

func TestManager_Reload_KeepsPreviousOnError(t *testing.T) {
	configDir, _ := isolateXDG(t)
	m, err := loadManager(t)
	require.NoError(t, err)

	writeConfig(t, configDir, "[layout]\nhistory_limit = 5000\n")
	m.mu.Lock()
	err = m.reload()
	m.mu.Unlock()

	require.Error(t, err)
	assert.Equal(t, defaultHistoryLimit, m.Get().Layout.HistoryLimit)
}
