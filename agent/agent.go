// Package agent provides the three interchangeable computer opponents.
package agent

import "reversi/game"

// Difficulty selects a computer opponent tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d names a known tier.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Agent picks one move for player on the given board. ok is false when the
// player has no legal move, which the controller handles as a pass.
type Agent interface {
	FindMove(b *game.Board, player game.Cell) (move game.Move, ok bool)
}

// New returns the agent for a difficulty tier. Unknown values fall back to
// medium.
func New(d Difficulty) Agent {
	switch d {
	case Easy:
		return easy{}
	case Hard:
		return hard{}
	default:
		return medium{}
	}
}
