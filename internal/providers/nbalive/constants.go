package nbalive

const (
	providerName     = "nbalive"
	defaultURL       = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	defaultUserAgent = "nba-scorebox/1.0"
	maxErrorBody     = 512
)
