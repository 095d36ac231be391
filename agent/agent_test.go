package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

// singleMoveBoard leaves white exactly one legal move, c1.
func singleMoveBoard() *game.Board {
	b := &game.Board{}
	b[0][0] = game.White
	b[0][1] = game.Black
	return b
}

// cornerChoiceBoard gives black two legal moves: the a1 corner and the
// near-neutral d5 interior square.
func cornerChoiceBoard() *game.Board {
	b := &game.Board{}
	b[0][1] = game.White
	b[0][2] = game.Black
	b[4][4] = game.White
	b[4][5] = game.Black
	return b
}

func TestNewDispatch(t *testing.T) {
	require.IsType(t, easy{}, New(Easy))
	require.IsType(t, medium{}, New(Medium))
	require.IsType(t, hard{}, New(Hard))
	require.IsType(t, medium{}, New("nonsense"), "unknown tiers fall back to medium")
}

func TestDifficultyValid(t *testing.T) {
	require.True(t, Easy.Valid())
	require.True(t, Medium.Valid())
	require.True(t, Hard.Valid())
	require.False(t, Difficulty("extreme").Valid())
}

func TestAgentsReportPass(t *testing.T) {
	b := &game.Board{}
	b[0][0] = game.Black // neither color can move

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		_, ok := New(d).FindMove(b, game.White)
		require.False(t, ok, "%s should report no legal move", d)
	}
}

func TestEasy(t *testing.T) {
	t.Run("single candidate needs no randomness", func(t *testing.T) {
		b := singleMoveBoard()
		move, ok := easy{}.FindMove(b, game.White)
		require.True(t, ok)
		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
	})

	t.Run("always picks a legal move", func(t *testing.T) {
		b := game.NewBoard()
		for i := 0; i < 20; i++ {
			move, ok := easy{}.FindMove(b, game.Black)
			require.True(t, ok)
			require.True(t, b.IsValidMove(move.Row, move.Col, game.Black),
				"pick %d should be legal", i)
		}
	})
}

func TestMedium(t *testing.T) {
	t.Run("prefers the corner over the interior", func(t *testing.T) {
		b := cornerChoiceBoard()
		require.ElementsMatch(t,
			[]game.Move{{Row: 0, Col: 0}, {Row: 4, Col: 3}}, b.ValidMoves(game.Black),
			"fixture should offer exactly the corner and an interior square")

		move, ok := medium{}.FindMove(b, game.Black)
		require.True(t, ok)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
	})

	t.Run("ties keep the first candidate", func(t *testing.T) {
		// All four opening moves sit on weight-1 squares.
		b := game.NewBoard()
		move, ok := medium{}.FindMove(b, game.Black)
		require.True(t, ok)
		require.Equal(t, game.Move{Row: 2, Col: 3}, move,
			"the first move in generator order should win the tie")
	})
}

func TestHard(t *testing.T) {
	t.Run("takes an open corner without searching", func(t *testing.T) {
		b := cornerChoiceBoard()
		move, ok := hard{}.FindMove(b, game.Black)
		require.True(t, ok)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
	})

	t.Run("returns a legal move from the start position", func(t *testing.T) {
		b := game.NewBoard()
		move, ok := hard{}.FindMove(b, game.Black)
		require.True(t, ok)
		require.True(t, b.IsValidMove(move.Row, move.Col, game.Black))
	})

	t.Run("is deterministic", func(t *testing.T) {
		b := game.NewBoard()
		b.Apply(2, 3, game.Black)

		first, _ := hard{}.FindMove(b, game.White)
		second, _ := hard{}.FindMove(b, game.White)
		require.Equal(t, first, second, "same position, same pick")
	})
}

func TestIsCorner(t *testing.T) {
	require.True(t, isCorner(game.Move{Row: 0, Col: 0}))
	require.True(t, isCorner(game.Move{Row: 7, Col: 7}))
	require.False(t, isCorner(game.Move{Row: 0, Col: 3}))
	require.False(t, isCorner(game.Move{Row: 3, Col: 3}))
}
