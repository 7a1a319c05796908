package config

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	DataDir string
	Source  string
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		DataDir: envOrDefault(envDataDir, defaultDataDir),
		Source:  envOrDefault(envDatasetSource, SourceCSV),
		Metrics: loadMetrics(),
	}
}
