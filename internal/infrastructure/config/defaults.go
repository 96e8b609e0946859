package config

// Default configuration constants
const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultSide         = "right"
	defaultHistoryLimit = 32
	defaultServiceName  = "dumbed"

	maxHistoryLimit = 1000
)

// DefaultConfig returns the default configuration values.
// Database.Path is resolved at load time from the XDG data directory.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Layout: LayoutConfig{
			DefaultSide:  defaultSide,
			HistoryLimit: defaultHistoryLimit,
		},
		Telemetry: TelemetryConfig{
			ServiceName: defaultServiceName,
		},
	}
}
