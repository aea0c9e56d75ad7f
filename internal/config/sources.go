package config

import "time"

// SourcesConfig controls how we reach the scoreboard feed and the logo CDN.
type SourcesConfig struct {
	ScoreboardURL string
	LogoBaseURL   string
	LogoSize      int
	HTTPTimeout   time.Duration
	UserAgent     string
}

func loadSources() SourcesConfig {
	return SourcesConfig{
		ScoreboardURL: envOrDefault(envScoreboardURL, defaultScoreboardURL),
		LogoBaseURL:   envOrDefault(envLogoBaseURL, defaultLogoBaseURL),
		LogoSize:      intEnvOrDefault(envLogoSize, defaultLogoSize),
		HTTPTimeout:   durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		UserAgent:     envOrDefault(envUserAgent, defaultUserAgent),
	}
}
