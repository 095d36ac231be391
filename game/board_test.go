package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// parseBoard builds a board from 8 strings of 8 runes: '.' empty, 'b' black,
// 'w' white.
func parseBoard(t *testing.T, rows [Size]string) *Board {
	t.Helper()
	b := &Board{}
	for r, row := range rows {
		require.Len(t, row, Size, "board row %d should have %d cells", r, Size)
		for c, ch := range row {
			switch ch {
			case 'b':
				b[r][c] = Black
			case 'w':
				b[r][c] = White
			case '.':
			default:
				t.Fatalf("unknown cell rune %q", ch)
			}
		}
	}
	return b
}

// randomBoards plays n games of random legal moves from the start position
// and collects every intermediate board.
func randomBoards(t *testing.T, n int, seed uint64) []*Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var boards []*Board
	for i := 0; i < n; i++ {
		b := NewBoard()
		mover := Black
		for {
			boards = append(boards, b.Copy())
			moves := b.ValidMoves(mover)
			if len(moves) == 0 {
				if !b.HasMove(mover.Opponent()) {
					break
				}
				mover = mover.Opponent()
				continue
			}
			m := moves[rng.Intn(len(moves))]
			b.Apply(m.Row, m.Col, mover)
			mover = mover.Opponent()
		}
	}
	return boards
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, White, b[3][3], "board should seed (3,3) white")
	require.Equal(t, Black, b[3][4], "board should seed (3,4) black")
	require.Equal(t, Black, b[4][3], "board should seed (4,3) black")
	require.Equal(t, White, b[4][4], "board should seed (4,4) white")

	black, white, total := b.Counts()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
	require.Equal(t, 4, total)
}

func TestInBounds(t *testing.T) {
	require.True(t, InBounds(0, 0))
	require.True(t, InBounds(7, 7))
	require.False(t, InBounds(-1, 0))
	require.False(t, InBounds(0, 8))
	require.False(t, InBounds(8, 3))
}

func TestValidMovesStartPosition(t *testing.T) {
	b := NewBoard()

	moves := b.ValidMoves(Black)

	want := []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
	require.Equal(t, want, moves, "black's opening moves should come back in row-major order")
}

func TestApplyOpeningMove(t *testing.T) {
	b := NewBoard()

	b.Apply(2, 3, Black)

	want := parseBoard(t, [Size]string{
		"........",
		"........",
		"...b....",
		"...bb...",
		"...bw...",
		"........",
		"........",
		"........",
	})
	require.Equal(t, want, b, "only (2,3) and the flipped (3,3) should change")
	black, white, _ := b.Counts()
	require.Equal(t, 4, black)
	require.Equal(t, 1, white)
}

func TestApplyLongLineFlip(t *testing.T) {
	b := parseBoard(t, [Size]string{
		"........",
		"........",
		"........",
		".wwwwwwb",
		"........",
		"........",
		"........",
		"........",
	})

	require.Equal(t, 6, b.CountFlips(3, 0, Black), "the full run of six should count")
	b.Apply(3, 0, Black)

	for col := 0; col < Size; col++ {
		require.Equal(t, Black, b[3][col], "cell (3,%d) should be black after the flip", col)
	}
}

func TestApplyPanicsOnInvalidMove(t *testing.T) {
	t.Run("occupied cell", func(t *testing.T) {
		b := NewBoard()
		require.Panics(t, func() { b.Apply(3, 3, Black) })
	})

	t.Run("zero-flip cell", func(t *testing.T) {
		b := NewBoard()
		require.Panics(t, func() { b.Apply(0, 0, Black) })
	})
}

func TestFlipCountMatchesApply(t *testing.T) {
	// CountFlips and Apply must agree on every legal placement: the discs
	// counted flippable are exactly the cells that change, besides the
	// placed one.
	for _, b := range randomBoards(t, 3, 1) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				for _, player := range []Cell{Black, White} {
					flips := b.CountFlips(row, col, player)
					if !b.IsValidMove(row, col, player) {
						continue
					}
					after := b.Copy()
					after.Apply(row, col, player)
					changed := 0
					for r := 0; r < Size; r++ {
						for c := 0; c < Size; c++ {
							if after[r][c] != b[r][c] && !(r == row && c == col) {
								changed++
							}
						}
					}
					require.Equal(t, flips, changed,
						"flips applied at %s for %s should match the count", Move{row, col}, player)
				}
			}
		}
	}
}

func TestLegalitySymmetry(t *testing.T) {
	for _, b := range randomBoards(t, 2, 7) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				for _, player := range []Cell{Black, White} {
					want := b[row][col] == Empty && b.CountFlips(row, col, player) > 0
					require.Equal(t, want, b.IsValidMove(row, col, player))
				}
			}
		}
	}
}

func TestValidMovesCompleteness(t *testing.T) {
	for _, b := range randomBoards(t, 2, 13) {
		for _, player := range []Cell{Black, White} {
			var want []Move
			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					if b.IsValidMove(row, col, player) {
						want = append(want, Move{Row: row, Col: col})
					}
				}
			}
			require.Equal(t, want, b.ValidMoves(player),
				"generation should equal the per-cell legality scan, row-major, no duplicates")
		}
	}
}

func TestNoMovesForEitherColor(t *testing.T) {
	t.Run("lone disc", func(t *testing.T) {
		b := &Board{}
		b[0][0] = Black

		require.False(t, b.HasMove(Black), "nothing to flip, black cannot move")
		require.False(t, b.HasMove(White), "no white discs to flank with")
	})

	t.Run("full board", func(t *testing.T) {
		b := &Board{}
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				b[row][col] = Black
			}
		}

		require.False(t, b.HasMove(Black))
		require.False(t, b.HasMove(White))
	})
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	c.Apply(2, 3, Black)

	require.Equal(t, Empty, b[2][3], "mutating the copy should not touch the original")
	require.Equal(t, White, b[3][3])
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "a1", Move{Row: 0, Col: 0}.String())
	require.Equal(t, "d3", Move{Row: 2, Col: 3}.String())
	require.Equal(t, "h8", Move{Row: 7, Col: 7}.String())
}
