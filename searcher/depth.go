package searcher

import "reversi/game"

// DepthFor picks a search depth from the game phase and the branching factor
// at the root. Wide positions get shallow searches to keep move time bounded;
// late game searches deeper because branching collapses and parity dominates,
// making near-exhaustive search affordable. Fewer moves never means a
// shallower search.
func DepthFor(phase game.Phase, branching int) int {
	if phase == game.LateGame {
		switch {
		case branching >= 8:
			return 3
		case branching >= 4:
			return 4
		default:
			return 5
		}
	}
	switch {
	case branching >= 10:
		return 2
	case branching >= 6:
		return 3
	default:
		return 4
	}
}
