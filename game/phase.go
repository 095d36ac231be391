package game

// Phase classifies the game by total disc count. It is derived, never stored,
// and only selects evaluator weight sets.
type Phase int

const (
	EarlyGame Phase = iota
	MidGame
	LateGame
)

func (p Phase) String() string {
	switch p {
	case EarlyGame:
		return "early"
	case MidGame:
		return "mid"
	}
	return "late"
}

// PhaseOf returns the phase for a total disc count: early below 20, mid from
// 20 through 49, late from 50 up.
func PhaseOf(totalDiscs int) Phase {
	switch {
	case totalDiscs < 20:
		return EarlyGame
	case totalDiscs < 50:
		return MidGame
	default:
		return LateGame
	}
}
