package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/domain/teams"
)

// SampleSummary returns a finished game between the given team codes.
// Team names default to the codes themselves.
func SampleSummary(awayCode string, awayScore int, homeCode string, homeScore int) games.Summary {
	return games.Summary{
		ID:         "test-" + awayCode + "-" + homeCode,
		Provider:   "test",
		AwayTeam:   teams.Team{Code: awayCode, Name: awayCode},
		HomeTeam:   teams.Team{Code: homeCode, Name: homeCode},
		Score:      games.Score{Home: homeScore, Away: awayScore},
		Status:     games.StatusFinal,
		StatusText: "Final",
	}
}

// HeatAtCeltics is the canonical Heat 98 vs Celtics 102 final.
func HeatAtCeltics() games.Summary {
	return games.Summary{
		ID:         "test-0022300001",
		Provider:   "test",
		AwayTeam:   teams.Team{Code: "MIA", Name: "Heat", City: "Miami"},
		HomeTeam:   teams.Team{Code: "BOS", Name: "Celtics", City: "Boston"},
		Score:      games.Score{Home: 102, Away: 98},
		Status:     games.StatusFinal,
		StatusText: "Final",
	}
}

// PNG encodes a solid w×h image; useful as a fake logo body.
func PNG(w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 0x00, G: 0x7a, B: 0x33, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
