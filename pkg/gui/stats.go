package gui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/qnkhuat/queensterm/pkg/game"
)

const divider = "===================="

// statistics lists players, the active player and the score table, or the winner
// once the game is over.
func statistics(s game.Snapshot) []string {
	if s.State == game.Finished {
		if s.Winner == nil {
			return []string{fmt.Sprintf("Game over after %d turns, nobody won", s.Turns)}
		}
		return []string{
			fmt.Sprintf("Winner is %s", s.Winner.Name),
			fmt.Sprintf("Score %d after %d turns", s.Winner.Score, s.Turns),
		}
	}

	names := make([]string, len(s.Players))
	width := len("Player")
	for i, p := range s.Players {
		names[i] = fmt.Sprintf("%s %s", p.Name, p.Color.Glyph())
		if w := runewidth.StringWidth(p.Name); w > width {
			width = w
		}
	}

	lines := []string{
		s.Rules,
		"Players: " + strings.Join(names, " | "),
		divider,
	}

	if p, ok := s.ActivePlayer(); ok {
		lines = append(lines, fmt.Sprintf("Active player: %s %s", p.Name, p.Color.Glyph()))
	} else {
		lines = append(lines, "Active player: -")
	}
	lines = append(lines, fmt.Sprintf("Turn: %d", s.Turns), divider)

	lines = append(lines, runewidth.FillRight("Player", width)+"  Score")
	for _, p := range s.Players {
		lines = append(lines, fmt.Sprintf("%s  %d", runewidth.FillRight(p.Name, width), p.Score))
	}

	return lines
}
