package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envESPNBaseURL  = "ESPN_BASE_URL"
	envESPNTimeout  = "ESPN_TIMEOUT"
	envESPNAgent    = "ESPN_USER_AGENT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"

	// ProviderESPN fetches live scoreboards; ProviderFixture serves canned payloads.
	ProviderESPN    = "espn"
	ProviderFixture = "fixture"
)
