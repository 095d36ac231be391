package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"reversi/agent"
	"reversi/game"
)

// Status is what the panel needs to know about the game, decoupled from the
// engine type.
type Status struct {
	Black, White int
	Turn         game.Cell
	Human        game.Cell
	Difficulty   agent.Difficulty
	Thinking     bool
	Passed       game.Cell
	Over         bool
	Winner       game.Cell
}

// StatusPanel shows the score, whose move it is, and the key bindings.
type StatusPanel struct {
	View *tview.TextView
}

func NewStatusPanel() *StatusPanel {
	view := tview.NewTextView()
	view.SetBorder(true)
	view.SetBorderPadding(0, 0, 1, 1)
	view.SetTitle(" Status ")
	view.SetTitleAlign(tview.AlignLeft)
	return &StatusPanel{View: view}
}

// Update rewrites the panel from the given snapshot.
func (p *StatusPanel) Update(s Status) {
	score := fmt.Sprintf("  ● Black %2d   ○ White %2d\n", s.Black, s.White)
	level := fmt.Sprintf("  level: %s\n\n", s.Difficulty)

	var statusLine, turnLine, controlsLine string
	switch {
	case s.Over:
		statusLine = "───────── Game Over ─────────\n\n"
		switch s.Winner {
		case game.Empty:
			turnLine = "  Draw\n"
		case s.Human:
			turnLine = fmt.Sprintf("  You win (%s)\n", s.Winner)
		default:
			turnLine = fmt.Sprintf("  Computer wins (%s)\n", s.Winner)
		}
		controlsLine = "\n  r restart   q quit"
	case s.Thinking:
		turnLine = "  ◌ Thinking...\n"
	default:
		if s.Passed != game.Empty {
			statusLine = fmt.Sprintf("  %s passed\n\n", s.Passed)
		}
		marker := "●"
		if s.Turn == game.White {
			marker = "○"
		}
		if s.Turn == s.Human {
			turnLine = fmt.Sprintf("  %s Your move (%s)\n", marker, s.Turn)
		} else {
			turnLine = fmt.Sprintf("  %s Computer to move (%s)\n", marker, s.Turn)
		}
		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
  u undo   d level   r restart   q quit`
	}

	p.View.SetText(score + level + statusLine + turnLine + controlsLine)
}

// NewGameLayout centers the board beside the status panel.
func NewGameLayout(board *BoardView, panel *StatusPanel) *tview.Flex {
	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panel.View, 0, 1, false)
	return tview.NewFlex().
		AddItem(board.Box, game.Size*2+6, 0, true).
		AddItem(side, 0, 1, false)
}
