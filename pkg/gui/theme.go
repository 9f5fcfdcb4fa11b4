package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/queensterm/pkg/board"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name            string      `json:"name"`
	SquareOpen      tcell.Color `json:"squareOpen"`
	SquareScorched  tcell.Color `json:"squareScorched"`
	SquareHighlight tcell.Color `json:"squareHighlight"`
	White           tcell.Color `json:"white"`
	Black           tcell.Color `json:"black"`
	Rank            tcell.Color `json:"rank"`
	File            tcell.Color `json:"file"`
	Msg             tcell.Color `json:"msg"`
	Winner          tcell.Color `json:"winner"`
}

// ThemeHex is the serializable form of a Theme
type ThemeHex struct {
	Name            string `json:"name"`
	SquareOpen      string `json:"squareOpen"`
	SquareScorched  string `json:"squareScorched"`
	SquareHighlight string `json:"squareHighlight"`
	White           string `json:"white"`
	Black           string `json:"black"`
	Rank            string `json:"rank"`
	File            string `json:"file"`
	Msg             string `json:"msg"`
	Winner          string `json:"winner"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareOpen.Hex()),
		fmtHex(t.SquareScorched.Hex()),
		fmtHex(t.SquareHighlight.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Winner.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareOpen),
		tcell.GetColor(t.SquareScorched),
		tcell.GetColor(t.SquareHighlight),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Winner),
	}
}

// squareBg returns the theme's background for a cell status
func (t Theme) squareBg(s board.Status) tcell.Color {
	switch s {
	case board.Scorched:
		return t.SquareScorched
	case board.Highlighted:
		return t.SquareHighlight
	default:
		return t.SquareOpen
	}
}

// playerFg returns the theme's color for a player's pieces and name
func (t Theme) playerFg(c board.PlayerColor) tcell.Color {
	if c == board.White {
		return t.White
	}
	return t.Black
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color230, // SquareOpen
	tcell.Color240, // SquareScorched
	tcell.Color117, // SquareHighlight
	tcell.Color255, // White
	tcell.Color232, // Black
	tcell.Color247, // Rank
	tcell.Color247, // File
	tcell.Color160, // Msg
	tcell.Color226, // Winner
}

// ThemeNight is a darker theme
var ThemeNight = Theme{
	"night",          // Name
	tcell.Color59,    // SquareOpen
	tcell.Color16,    // SquareScorched
	tcell.Color25,    // SquareHighlight
	tcell.Color231,   // White
	tcell.Color208,   // Black
	tcell.Color245,   // Rank
	tcell.Color245,   // File
	tcell.Color203,   // Msg
	tcell.ColorGreen, // Winner
}

var Themes = []ThemeHex{ThemeBasic.Hex(), ThemeNight.Hex()}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}
