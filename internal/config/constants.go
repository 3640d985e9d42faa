package config

import "time"

const (
	envPort             = "PORT"
	envShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envDefaultPattern   = "DEFAULT_PATTERN"
	envMaxPatternLength = "MAX_PATTERN_LENGTH"
	envMaxBatchSize     = "MAX_BATCH_SIZE"

	defaultPort            = "4000"
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "datefmt-service"
	defaultPattern         = "YYYY-MM-DD"
	// Patterns are echoed back in responses; keep them bounded.
	defaultMaxPatternLength = 256
	defaultMaxBatchSize     = 100
)
