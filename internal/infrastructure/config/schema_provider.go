package config

import (
	"fmt"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging   = "Logging"
	SectionDatabase  = "Database"
	SectionLayout    = "Layout"
	SectionTelemetry = "Telemetry"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 8)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getTelemetryKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level (env: DUMBED_LOG_LEVEL)",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format (env: DUMBED_LOG_FORMAT)",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/dumbed/" + databaseName,
			Description: "SQLite file holding saved layouts",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.default_side",
			Type:        "string",
			Default:     defaults.Layout.DefaultSide,
			Description: "Side used for a split whose side is missing or invalid",
			Values:      []string{"left", "right", "up", "down"},
			Section:     SectionLayout,
		},
		{
			Key:         "layout.history_limit",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Layout.HistoryLimit),
			Description: "Previously active editors remembered per group",
			Range:       fmt.Sprintf("1-%d", maxHistoryLimit),
			Section:     SectionLayout,
		},
		{
			Key:         "layout.autosave",
			Type:        "string",
			Default:     defaults.Layout.Autosave,
			Description: "Layout name saved after every change (empty disables)",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getTelemetryKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "telemetry.otlp_endpoint",
			Type:        "string",
			Default:     defaults.Telemetry.OTLPEndpoint,
			Description: "OTLP/HTTP trace collector; tracing is off when empty (env: OTEL_EXPORTER_OTLP_ENDPOINT)",
			Section:     SectionTelemetry,
		},
		{
			Key:         "telemetry.service_name",
			Type:        "string",
			Default:     defaults.Telemetry.ServiceName,
			Description: "service.name resource attribute on exported spans",
			Section:     SectionTelemetry,
		},
	}
}
