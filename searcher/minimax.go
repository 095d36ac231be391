// Package searcher implements the depth-limited minimax search with
// alpha-beta pruning behind the strongest difficulty tier.
package searcher

import (
	"math"

	"reversi/game"
)

// Stats records the work one search did, for diagnostics.
type Stats struct {
	Nodes  int
	Pruned int
}

// Search scores positions for one maximizing color at one game phase and
// accumulates node statistics across calls. It is pure over the boards it is
// given: every branch works on its own copy and nothing is shared, so a
// search always terminates and never touches the caller's board.
type Search struct {
	max   game.Cell
	min   game.Cell
	phase game.Phase
	stats Stats
}

// New returns a search that scores boards from max's perspective.
func New(max game.Cell, phase game.Phase) *Search {
	return &Search{max: max, min: max.Opponent(), phase: phase}
}

// Stats returns the statistics accumulated so far.
func (s *Search) Stats() Stats {
	return s.stats
}

// Score runs minimax to the given depth. maximizing selects whose turn it
// logically is: the maximizing color's when true, the opponent's when false.
// Candidates are explored in the generator's row-major order and a branch is
// cut as soon as beta <= alpha, so equal scores resolve to the earliest move
// upstream.
//
// A mover with no legal reply passes: the turn flips without consuming a
// move. When neither side can move the game is decided, and the disc
// difference times 1000 (signed for the maximizing color) is returned so a
// true game end dominates any heuristic score.
func (s *Search) Score(b *game.Board, depth int, alpha, beta float64, maximizing bool) float64 {
	s.stats.Nodes++

	if depth == 0 {
		return game.Evaluate(b, s.max, s.min, s.phase)
	}

	mover := s.max
	if !maximizing {
		mover = s.min
	}
	moves := b.ValidMoves(mover)
	if len(moves) == 0 {
		if !b.HasMove(mover.Opponent()) {
			black, white, _ := b.Counts()
			diff := black - white
			if s.max == game.White {
				diff = -diff
			}
			return float64(diff * 1000)
		}
		return s.Score(b, depth-1, alpha, beta, !maximizing)
	}

	if maximizing {
		maxEval := math.Inf(-1)
		for _, move := range moves {
			child := b.Copy()
			child.Apply(move.Row, move.Col, mover)
			eval := s.Score(child, depth-1, alpha, beta, false)
			maxEval = math.Max(maxEval, eval)
			alpha = math.Max(alpha, eval)
			if beta <= alpha {
				s.stats.Pruned++
				break
			}
		}
		return maxEval
	}

	minEval := math.Inf(1)
	for _, move := range moves {
		child := b.Copy()
		child.Apply(move.Row, move.Col, mover)
		eval := s.Score(child, depth-1, alpha, beta, true)
		minEval = math.Min(minEval, eval)
		beta = math.Min(beta, eval)
		if beta <= alpha {
			s.stats.Pruned++
			break
		}
	}
	return minEval
}
