package nbalive

type scoreboardEnvelope struct {
	Scoreboard *scoreboardResponse `json:"scoreboard"`
}

type scoreboardResponse struct {
	GameDate string         `json:"gameDate"`
	Games    []gameResponse `json:"games"`
}

type gameResponse struct {
	GameID         string       `json:"gameId"`
	GameStatus     int          `json:"gameStatus"`
	GameStatusText string       `json:"gameStatusText"`
	GameTimeUTC    string       `json:"gameTimeUTC"`
	HomeTeam       teamResponse `json:"homeTeam"`
	AwayTeam       teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	TeamCity    string `json:"teamCity"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}
