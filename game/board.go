package game

import "fmt"

// Cell is the occupancy of one board square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Opponent returns the other color. Calling it on Empty is meaningless.
func (c Cell) Opponent() Cell {
	if c == Black {
		return White
	}
	return Black
}

// Size is the board edge length. The rules below assume 8.
const Size = 8

// directions are the 8 unit vectors used to scan flip lines outward from a
// placed disc.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Move is a candidate or chosen placement. A Move is only meaningful relative
// to a specific board and mover: the same square can be legal for one color
// and not the other.
type Move struct {
	Row int
	Col int
}

// String renders the move in board notation, column letter first ("d3").
func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(m.Col), m.Row+1)
}

// Board is an 8x8 grid of cells addressed (row, col), row-major. It has value
// semantics: assigning a Board copies the whole grid, which is what the
// searcher relies on for its throwaway simulation copies.
type Board [Size][Size]Cell

// NewBoard returns a board seeded with the four center discs.
func NewBoard() *Board {
	b := &Board{}
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// CountFlips returns the number of opponent discs that would flip if player
// placed at (row, col). An occupied target counts zero. A direction only
// contributes when its run of opponent discs ends on one of player's own
// discs; runs that fall off the board or hit an empty square contribute
// nothing.
func (b *Board) CountFlips(row, col int, player Cell) int {
	if b[row][col] != Empty {
		return 0
	}
	opponent := player.Opponent()
	total := 0
	for _, dir := range directions {
		run := 0
		r, c := row+dir[0], col+dir[1]
		for InBounds(r, c) && b[r][c] == opponent {
			run++
			r += dir[0]
			c += dir[1]
		}
		if run > 0 && InBounds(r, c) && b[r][c] == player {
			total += run
		}
	}
	return total
}

// IsValidMove reports whether player may place at (row, col): the square is
// empty and at least one opponent disc flips.
func (b *Board) IsValidMove(row, col int, player Cell) bool {
	return b[row][col] == Empty && b.CountFlips(row, col, player) > 0
}

// ValidMoves returns every legal move for player in row-major order. The
// order is part of the contract: strategies resolve ties by keeping the
// first candidate seen.
func (b *Board) ValidMoves(player Cell) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsValidMove(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMove reports whether player has at least one legal move.
func (b *Board) HasMove(player Cell) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsValidMove(row, col, player) {
				return true
			}
		}
	}
	return false
}

// Apply places player's disc at (row, col) and flips every flanked run,
// mutating the board. It flips exactly the discs CountFlips counts. The
// caller must have validated the move first; applying to an occupied or
// zero-flip square is a contract violation and panics.
func (b *Board) Apply(row, col int, player Cell) {
	if !b.IsValidMove(row, col, player) {
		panic(fmt.Sprintf("apply of invalid move %s for %s", Move{Row: row, Col: col}, player))
	}
	b[row][col] = player
	opponent := player.Opponent()
	for _, dir := range directions {
		run := 0
		r, c := row+dir[0], col+dir[1]
		for InBounds(r, c) && b[r][c] == opponent {
			run++
			r += dir[0]
			c += dir[1]
		}
		if run == 0 || !InBounds(r, c) || b[r][c] != player {
			continue
		}
		r, c = row+dir[0], col+dir[1]
		for i := 0; i < run; i++ {
			b[r][c] = player
			r += dir[0]
			c += dir[1]
		}
	}
}

// Counts tallies the discs on the board.
func (b *Board) Counts() (black, white, total int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white, black + white
}
