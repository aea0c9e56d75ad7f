package teams

import "strings"

// Team is the normalized team shape embedded in game summaries.
type Team struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// NormalizeCode upper-cases and trims a team tricode.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
