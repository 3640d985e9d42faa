package config

// FormatterConfig bounds the formatting endpoints.
type FormatterConfig struct {
	DefaultPattern   string
	MaxPatternLength int
	MaxBatchSize     int
}

func loadFormatter() FormatterConfig {
	return FormatterConfig{
		DefaultPattern:   envOrDefault(envDefaultPattern, defaultPattern),
		MaxPatternLength: intEnvOrDefault(envMaxPatternLength, defaultMaxPatternLength),
		MaxBatchSize:     intEnvOrDefault(envMaxBatchSize, defaultMaxBatchSize),
	}
}
