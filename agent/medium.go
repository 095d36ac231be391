package agent

import "reversi/game"

// medium greedily takes the square with the highest positional weight:
// corners over edges over interior, with the squares next to corners scored
// below everything else. Ties keep the first candidate in generator order.
type medium struct{}

func (medium) FindMove(b *game.Board, player game.Cell) (game.Move, bool) {
	moves := b.ValidMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	best := moves[0]
	bestScore := game.CellWeight(best.Row, best.Col)
	for _, move := range moves[1:] {
		if score := game.CellWeight(move.Row, move.Col); score > bestScore {
			best, bestScore = move, score
		}
	}
	return best, true
}
