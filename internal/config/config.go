package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ShutdownTimeout Duration
	Log             LogConfig
	Formatter       FormatterConfig
	Metrics         MetricsConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Formatter: loadFormatter(),
		Metrics:   loadMetrics(),
	}
}
