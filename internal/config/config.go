package config

// Config holds runtime configuration for the score box.
type Config struct {
	Provider string
	Sources  SourcesConfig
	Window   WindowConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider: envOrDefault(envProvider, defaultProvider),
		Sources:  loadSources(),
		Window:   loadWindow(),
		Metrics:  loadMetrics(),
	}
}
