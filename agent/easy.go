package agent

import (
	"golang.org/x/exp/rand"

	"reversi/game"
)

// easy picks uniformly at random among the legal moves.
type easy struct{}

func (easy) FindMove(b *game.Board, player game.Cell) (game.Move, bool) {
	moves := b.ValidMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	if len(moves) == 1 {
		return moves[0], true
	}
	return moves[rand.Intn(len(moves))], true
}
