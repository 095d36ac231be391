package game

// Weights scales the six evaluator terms for one game phase.
type Weights struct {
	Parity            float64
	Mobility          float64
	Corner            float64
	Position          float64
	Edge              float64
	PotentialMobility float64
}

// phaseWeights tunes the evaluator per phase: early and mid game reward
// mobility and corner safety over raw disc count because discs still flip
// often; late game rewards parity because few reversals remain.
var phaseWeights = [3]Weights{
	EarlyGame: {Parity: 0.1, Mobility: 2.5, Corner: 4.0, Position: 1.0, Edge: 1.5, PotentialMobility: 1.0},
	MidGame:   {Parity: 0.8, Mobility: 2.0, Corner: 3.0, Position: 1.0, Edge: 1.0, PotentialMobility: 0.5},
	LateGame:  {Parity: 3.5, Mobility: 1.0, Corner: 2.0, Position: 0.5, Edge: 0.5, PotentialMobility: 0.0},
}

// PhaseWeights returns the evaluator weight set for a phase.
func PhaseWeights(p Phase) Weights {
	return phaseWeights[p]
}

// Corners lists the four corner squares.
var Corners = [4]Move{
	{Row: 0, Col: 0},
	{Row: 0, Col: Size - 1},
	{Row: Size - 1, Col: 0},
	{Row: Size - 1, Col: Size - 1},
}

// Evaluate scores the board from max's perspective as a weighted sum of disc
// parity, mobility, corner control, potential mobility, edge control and the
// positional weight table, with weights selected by phase. Pure function: no
// hidden state, identical inputs give identical scores.
func Evaluate(b *Board, max, min Cell, phase Phase) float64 {
	w := phaseWeights[phase]

	var parity, position int
	var maxPotential, minPotential int
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case max:
				parity++
				position += cellWeights[row][col]
			case min:
				parity--
				position -= cellWeights[row][col]
			default:
				// Empty squares next to enemy discs are future moves.
				if hasNeighbor(b, row, col, min) {
					maxPotential++
				}
				if hasNeighbor(b, row, col, max) {
					minPotential++
				}
			}
		}
	}

	mobility := len(b.ValidMoves(max)) - len(b.ValidMoves(min))

	corner := 0
	for _, m := range Corners {
		switch b[m.Row][m.Col] {
		case max:
			corner += 25
		case min:
			corner -= 25
		}
	}

	// The border scan counts the literal edge rows and columns, so the four
	// corner squares land in the edge sum as well as the corner term above.
	// The double count is baked into the tuned weights; keep it.
	edge := 0
	for i := 0; i < Size; i++ {
		edge += edgeValue(b[0][i], max, min)
		edge += edgeValue(b[Size-1][i], max, min)
		edge += edgeValue(b[i][0], max, min)
		edge += edgeValue(b[i][Size-1], max, min)
	}

	return w.Parity*float64(parity) +
		w.Mobility*float64(mobility) +
		w.Corner*float64(corner) +
		w.PotentialMobility*float64(maxPotential-minPotential) +
		w.Edge*float64(edge) +
		w.Position*float64(position)
}

func edgeValue(c, max, min Cell) int {
	switch c {
	case max:
		return 1
	case min:
		return -1
	}
	return 0
}

// hasNeighbor reports whether any of the 8 neighbors of (row, col) holds a
// disc of the given color.
func hasNeighbor(b *Board, row, col int, color Cell) bool {
	for _, dir := range directions {
		r, c := row+dir[0], col+dir[1]
		if InBounds(r, c) && b[r][c] == color {
			return true
		}
	}
	return false
}
