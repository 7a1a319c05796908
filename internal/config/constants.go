package config

const (
	envPort          = "PORT"
	envDataDir       = "DATA_DIR"
	envDatasetSource = "DATASET_SOURCE"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultDataDir     = "data"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-player-analytics"

	// SourceCSV loads the real flat files from DATA_DIR; SourceFixture serves
	// the built-in sample dataset.
	SourceCSV     = "csv"
	SourceFixture = "fixture"
)
