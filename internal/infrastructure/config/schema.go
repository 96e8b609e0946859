package config

// Config represents the complete configuration for dumbed.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	// Layout controls how editor groups are created and persisted.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout"`
	// Telemetry configures OpenTelemetry trace export. Tracing is off without an endpoint.
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry" toml:"telemetry"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path to the layout database. Empty selects $XDG_DATA_HOME/dumbed/layouts.db.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LayoutConfig holds editor layout behaviour.
type LayoutConfig struct {
	// DefaultSide is used when a split has no explicit side.
	DefaultSide string `mapstructure:"default_side" yaml:"default_side" toml:"default_side" jsonschema:"enum=left,enum=right,enum=up,enum=down"`
	// HistoryLimit bounds how many previously active editors each group remembers.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit" toml:"history_limit" jsonschema:"minimum=1,maximum=1000"`
	// Autosave names a layout that is saved after every change. Empty disables autosave.
	Autosave string `mapstructure:"autosave" yaml:"autosave" toml:"autosave"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP/HTTP collector endpoint (host:port or URL).
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint" toml:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name" yaml:"service_name" toml:"service_name"`
}
