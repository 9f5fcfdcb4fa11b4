package gui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/qnkhuat/queensterm/pkg/board"
	"github.com/qnkhuat/queensterm/pkg/game"
)

const clearScreen = "\x1Bc"

var (
	headerColor = color.New(color.FgHiBlack)
	blackColor  = color.New(color.FgHiRed, color.Bold)
	whiteColor  = color.New(color.FgHiCyan, color.Bold)
	winnerColor = color.New(color.FgYellow, color.Bold)
)

// Plain writes every frame as text. Frames identical to the previous one are
// skipped.
type Plain struct {
	Out   io.Writer
	Clear bool // clear the screen before each frame
	Width int  // terminal width, warn when the frame does not fit; 0 disables

	mu   sync.Mutex
	prev string
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{Out: out}
}

func (p *Plain) Render(s game.Snapshot) {
	frame, width := render(s)

	p.mu.Lock()
	defer p.mu.Unlock()

	if frame == p.prev {
		return
	}
	p.prev = frame

	if p.Clear {
		io.WriteString(p.Out, clearScreen)
	}
	io.WriteString(p.Out, frame)

	if p.Width > 0 && width > p.Width {
		fmt.Fprintf(p.Out, "terminal is %d columns wide, %d needed\n", p.Width, width)
	}
}

// Frame renders the board with column and row names followed by the statistics.
func Frame(s game.Snapshot) string {
	frame, _ := render(s)
	return frame
}

// frameWriter tracks the display width of the widest line from the uncolored text.
type frameWriter struct {
	strings.Builder
	line   int
	widest int
}

func (w *frameWriter) write(text string, c *color.Color) {
	w.line += runewidth.StringWidth(text)
	if c != nil {
		text = c.Sprint(text)
	}
	w.WriteString(text)
}

func (w *frameWriter) newline() {
	if w.line > w.widest {
		w.widest = w.line
	}
	w.line = 0
	w.WriteByte('\n')
}

func render(s game.Snapshot) (string, int) {
	var w frameWriter

	label := 0
	for _, name := range s.RowNames {
		if n := runewidth.StringWidth(name); n > label {
			label = n
		}
	}

	w.write(strings.Repeat(" ", label+1), nil)
	for _, name := range s.ColumnNames {
		w.write(runewidth.FillRight(name, 2), headerColor)
	}
	w.newline()

	for y, row := range s.Cells {
		w.write(runewidth.FillLeft(s.RowNames[y], label), headerColor)
		w.write(" ", nil)
		for _, c := range row {
			w.write(runewidth.FillRight(c.Glyph, 2), cellColor(c))
		}
		w.newline()
	}
	w.newline()

	var stats *color.Color
	if s.State == game.Finished {
		stats = winnerColor
	}
	for _, l := range statistics(s) {
		w.write(l, stats)
		w.newline()
	}

	return w.String(), w.widest
}

func cellColor(c game.CellView) *color.Color {
	if !c.Occupied {
		return nil
	}
	if c.Owner == board.White {
		return whiteColor
	}
	return blackColor
}
