package agent

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/game"
	"reversi/searcher"
)

// hard scores every candidate with a minimax search, except that an open
// corner is taken outright: a corner can never be flipped back, so no search
// result beats it.
type hard struct{}

func (hard) FindMove(b *game.Board, player game.Cell) (game.Move, bool) {
	moves := b.ValidMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	for _, move := range moves {
		if isCorner(move) {
			return move, true
		}
	}

	_, _, total := b.Counts()
	phase := game.PhaseOf(total)
	depth := searcher.DepthFor(phase, len(moves))

	start := time.Now()
	s := searcher.New(player, phase)
	best := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		child := b.Copy()
		child.Apply(move.Row, move.Col, player)
		// The candidate is already on the board, so the recursion starts at
		// the opponent's turn.
		score := s.Score(child, depth-1, math.Inf(-1), math.Inf(1), false)
		if score > bestScore {
			best, bestScore = move, score
		}
	}

	stats := s.Stats()
	log.Debug().
		Stringer("phase", phase).
		Int("depth", depth).
		Int("nodes", stats.Nodes).
		Int("pruned", stats.Pruned).
		Dur("took", time.Since(start)).
		Msgf("search picked %s", best)
	return best, true
}

func isCorner(m game.Move) bool {
	last := game.Size - 1
	return (m.Row == 0 || m.Row == last) && (m.Col == 0 || m.Col == last)
}
