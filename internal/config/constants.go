package config

const (
	envProvider      = "SCORE_PROVIDER"
	envScoreboardURL = "SCOREBOARD_URL"
	envLogoBaseURL   = "LOGO_BASE_URL"
	envLogoSize      = "LOGO_SIZE"
	envHTTPTimeout   = "HTTP_TIMEOUT"
	envUserAgent     = "USER_AGENT"
	envWindowWidth   = "WINDOW_WIDTH"
	envWindowHeight  = "WINDOW_HEIGHT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider      = "nbalive"
	defaultScoreboardURL = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	defaultLogoBaseURL   = "https://a.espncdn.com/i/teamlogos/nba/500"
	defaultLogoSize      = 100
	// Zero keeps requests unbounded; an unresponsive upstream stalls the refresh.
	defaultHTTPTimeout  = Duration(0)
	defaultUserAgent    = "nba-scorebox/1.0"
	defaultWindowWidth  = 1000
	defaultWindowHeight = 800
	defaultMetricsOn    = false
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nba-scorebox"
)
