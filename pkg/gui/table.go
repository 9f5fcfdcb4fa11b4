package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/queensterm/pkg/game"
	"github.com/rivo/tview"
)

// TableView draws snapshots into a tview table with a stats panel next to it.
type TableView struct {
	App    *tview.Application
	Board  *tview.Table
	Stats  *tview.TextView
	Layout *tview.Grid
	Theme  Theme
}

func NewTableView(theme Theme) *TableView {
	app := tview.NewApplication()

	board := tview.NewTable().
		SetBorders(false)

	stats := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)

	layout := tview.NewGrid().
		SetRows(-1).
		SetColumns(-1, 40).
		AddItem(board, 0, 0, 1, 1, 0, 0, true).
		AddItem(stats, 0, 1, 1, 1, 0, 0, false)

	v := &TableView{
		App:    app,
		Board:  board,
		Stats:  stats,
		Layout: layout,
		Theme:  theme,
	}

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return ev
	})

	return v
}

// Render may be called from any goroutine.
func (v *TableView) Render(s game.Snapshot) {
	v.App.QueueUpdateDraw(func() {
		v.draw(s)
	})
}

// Run blocks until the user quits.
func (v *TableView) Run() error {
	return v.App.SetRoot(v.Layout, true).Run()
}

func (v *TableView) Stop() {
	v.App.Stop()
}

func (v *TableView) draw(s game.Snapshot) {
	v.drawBoard(s)
	v.drawStats(s)
}

func (v *TableView) drawBoard(s game.Snapshot) {
	t := v.Theme
	v.Board.Clear()

	// Column names on top, row names on the left
	for x, name := range s.ColumnNames {
		cell := tview.NewTableCell(fmt.Sprintf(" %s", name)).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File).
			SetSelectable(false)
		v.Board.SetCell(0, x+1, cell)
	}

	for y, row := range s.Cells {
		rank := tview.NewTableCell(s.RowNames[y]).
			SetAlign(tview.AlignRight).
			SetTextColor(t.Rank).
			SetSelectable(false)
		v.Board.SetCell(y+1, 0, rank)

		for x, c := range row {
			text := "  "
			if c.Occupied {
				text = c.Glyph
			}
			cell := tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetBackgroundColor(t.squareBg(c.Status)).
				SetSelectable(false)
			if c.Occupied {
				cell.SetTextColor(t.playerFg(c.Owner))
			}
			v.Board.SetCell(y+1, x+1, cell)
		}
	}
}

func (v *TableView) drawStats(s game.Snapshot) {
	t := v.Theme
	lines := statistics(s)

	color := t.Msg
	if s.State == game.Finished {
		color = t.Winner
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[#%06x]", color.Hex())
	for _, l := range lines {
		b.WriteString(tview.Escape(l))
		b.WriteByte('\n')
	}
	b.WriteString("[-]")
	if s.State != game.Finished {
		b.WriteString("\nPress q to quit\n")
	}

	v.Stats.SetText(b.String())
}
