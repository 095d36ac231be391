// Package ui holds the tview widgets that draw the board and game status.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi/game"
)

const (
	blackDisc = '●'
	whiteDisc = '●'
	hintMark  = '·'
)

var (
	boardColor    = tcell.NewRGBColor(0, 102, 51)
	boardColorAlt = tcell.NewRGBColor(0, 82, 41)
	blackColor    = tcell.ColorBlack
	whiteColor    = tcell.ColorWhite
	hintColor     = tcell.NewRGBColor(170, 220, 170)
	cursorColor   = tcell.NewRGBColor(204, 153, 0)
	lastMoveColor = tcell.NewRGBColor(0, 51, 153)
)

// BoardView renders an 8x8 position with a movable cursor, legal-move hints
// for the human, and a marker on the last played square. It holds its own
// copy of the position; the application pushes updates with SetPosition.
type BoardView struct {
	Box   *tview.Box
	board game.Board
	hints [game.Size][game.Size]bool
	last  game.Move
	selRow, selCol int
}

// NewBoardView returns a board widget showing an empty position.
func NewBoardView() *BoardView {
	v := &BoardView{
		Box:    tview.NewBox(),
		last:   game.Move{Row: -1, Col: -1},
		selRow: -1,
		selCol: -1,
	}
	v.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		v.draw(screen, x, y)
		// 2 screen cells per square plus a coordinate gutter
		return x, y, game.Size*2 + 4, game.Size + 2
	})
	return v
}

// SetPosition replaces the rendered position. hints are the squares to mark
// as playable; last marks the most recent move, nil for none.
func (v *BoardView) SetPosition(b game.Board, hints []game.Move, last *game.Move) {
	v.board = b
	v.hints = [game.Size][game.Size]bool{}
	for _, m := range hints {
		v.hints[m.Row][m.Col] = true
	}
	if last != nil {
		v.last = *last
	} else {
		v.last = game.Move{Row: -1, Col: -1}
	}
}

// Selected returns the square under the cursor.
func (v *BoardView) Selected() (game.Move, bool) {
	if v.selRow == -1 && v.selCol == -1 {
		return game.Move{}, false
	}
	return game.Move{Row: v.selRow, Col: v.selCol}, true
}

// MoveSelection moves the cursor, clamping at the edges. The first movement
// places the cursor at the board center.
func (v *BoardView) MoveSelection(dRow, dCol int) {
	if _, ok := v.Selected(); !ok {
		v.selRow = game.Size / 2
		v.selCol = game.Size / 2
		return
	}
	if game.InBounds(v.selRow+dRow, v.selCol+dCol) {
		v.selRow += dRow
		v.selCol += dCol
	}
}

// ResetSelection hides the cursor.
func (v *BoardView) ResetSelection() {
	v.selRow = -1
	v.selCol = -1
}

func (v *BoardView) draw(screen tcell.Screen, x, y int) {
	left := x + 3
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			bg := boardColor
			if (row+col)%2 == 1 {
				bg = boardColorAlt
			}
			if row == v.last.Row && col == v.last.Col {
				bg = lastMoveColor
			}
			if row == v.selRow && col == v.selCol {
				bg = cursorColor
			}

			drawRune := ' '
			fg := hintColor
			switch v.board[row][col] {
			case game.Black:
				drawRune, fg = blackDisc, blackColor
			case game.White:
				drawRune, fg = whiteDisc, whiteColor
			default:
				if v.hints[row][col] {
					drawRune = hintMark
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(left+col*2, y+row, drawRune, nil, style)
			screen.SetContent(left+col*2+1, y+row, ' ', nil, style)
		}
	}
	v.drawCoordinates(screen, x, y, left)
}

func (v *BoardView) drawCoordinates(screen tcell.Screen, x, y, left int) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(cursorColor)
	for col := 0; col < game.Size; col++ {
		s := style
		if col == v.selCol {
			s = highlight
		}
		screen.SetContent(left+col*2, y+game.Size, rune('a'+col), nil, s)
		screen.SetContent(left+col*2+1, y+game.Size, ' ', nil, s)
	}
	for row := 0; row < game.Size; row++ {
		s := style
		if row == v.selRow {
			s = highlight
		}
		screen.SetContent(x+1, y+row, rune('1'+row), nil, s)
	}
}
