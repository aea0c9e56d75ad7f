package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/preston-bernstein/nba-scorebox/internal/logos"
	"github.com/preston-bernstein/nba-scorebox/internal/scoreboard"
)

var errorColor = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}

// boardObjects turns a board into the list's children: one row per game or a single error line.
func boardObjects(board scoreboard.Board, logoSize float32) []fyne.CanvasObject {
	if board.Failed() {
		return []fyne.CanvasObject{errorLine(board.ErrorText())}
	}
	objects := make([]fyne.CanvasObject, 0, len(board.Rows))
	for _, row := range board.Rows {
		objects = append(objects, gameRow(row, logoSize))
	}
	return objects
}

// [away logo] [away name+score] vs [home name+score] [home logo] (status)
func gameRow(row scoreboard.Row, logoSize float32) *fyne.Container {
	g := row.Game
	return container.NewHBox(
		logoImage(row.AwayLogo, logoSize),
		widget.NewLabelWithStyle(fmt.Sprintf("%s %d", g.AwayTeam.Name, g.Score.Away), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("vs", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(fmt.Sprintf("%s %d", g.HomeTeam.Name, g.Score.Home), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		logoImage(row.HomeLogo, logoSize),
		widget.NewLabelWithStyle(fmt.Sprintf("(%s)", g.StatusText), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
}

func logoImage(logo logos.Logo, size float32) *canvas.Image {
	var img image.Image = logo.Image
	if img == nil {
		img = logos.Blank(int(size))
	}
	out := canvas.NewImageFromImage(img)
	out.FillMode = canvas.ImageFillContain
	out.SetMinSize(fyne.NewSize(size, size))
	return out
}

func errorLine(text string) *canvas.Text {
	t := canvas.NewText(text, errorColor)
	t.TextStyle = fyne.TextStyle{Bold: true}
	return t
}
