// Package engine drives a match between a human and a computer opponent:
// turn sequencing, passes, game-over detection, undo, and the deferred
// scheduling of the computer's reply. The rule engine and search stay free of
// game-flow state; everything mutable lives in the Engine.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/agent"
	"reversi/game"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrBusy          = errors.New("computer is thinking")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrInvalidMove   = errors.New("invalid move")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Outcome describes one applied move, for the rendering layer.
type Outcome struct {
	Move   game.Move
	Player game.Cell
	Passed game.Cell // color that had to pass afterwards, Empty if none
	Over   bool
}

// snapshot is a whole prior position; undo swaps one back in wholesale.
type snapshot struct {
	board game.Board
	turn  game.Cell
}

// Engine owns the canonical live board. The busy flag serializes the
// computer's deferred move against player input: while it is set every other
// operation is refused, so exactly one computation runs at a time.
type Engine struct {
	mu         sync.Mutex
	board      *game.Board
	turn       game.Cell
	human      game.Cell
	difficulty agent.Difficulty
	ai         agent.Agent
	history    []snapshot
	busy       bool
	over       bool
}

// New returns an engine for a fresh game. human is the color the player
// controls; the computer plays the other one.
func New(human game.Cell, d agent.Difficulty) *Engine {
	e := &Engine{human: human, difficulty: d, ai: agent.New(d)}
	e.reset()
	return e
}

// Play applies the human's move and advances the turn. A snapshot is pushed
// first so Undo can restore the position.
func (e *Engine) Play(row, col int) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.over:
		return Outcome{}, ErrGameOver
	case e.busy:
		return Outcome{}, ErrBusy
	case e.turn != e.human:
		return Outcome{}, ErrNotYourTurn
	case !e.board.IsValidMove(row, col, e.human):
		return Outcome{}, ErrInvalidMove
	}
	e.history = append(e.history, snapshot{board: *e.board, turn: e.turn})
	return e.apply(row, col), nil
}

// ScheduleAI runs the computer's move after a fixed thinking delay and
// delivers the outcome to done on the timer goroutine. The engine is busy
// from the call until done returns, so overlapping computations and
// interleaved player input are refused rather than queued.
func (e *Engine) ScheduleAI(delay time.Duration, done func(Outcome, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.over:
		return ErrGameOver
	case e.busy:
		return ErrBusy
	case e.turn == e.human:
		return ErrNotYourTurn
	}
	e.busy = true
	time.AfterFunc(delay, func() {
		done(e.playAI())
	})
	return nil
}

func (e *Engine) playAI() (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { e.busy = false }()

	move, ok := e.ai.FindMove(e.board, e.turn)
	if !ok {
		// Turn resolution never leaves the move on a blocked player.
		return Outcome{}, ErrInvalidMove
	}
	return e.apply(move.Row, move.Col), nil
}

// apply mutates the board and resolves who moves next: the opponent if they
// can answer, the same player again when the opponent must pass, or nobody
// when the game is decided. Callers hold the lock and have validated.
func (e *Engine) apply(row, col int) Outcome {
	player := e.turn
	e.board.Apply(row, col, player)
	out := Outcome{Move: game.Move{Row: row, Col: col}, Player: player}

	next := player.Opponent()
	switch {
	case e.board.HasMove(next):
		e.turn = next
	case e.board.HasMove(player):
		out.Passed = next
		log.Info().Msgf("%s has no reply, %s moves again", next, player)
	default:
		e.over = true
		out.Over = true
		black, white, _ := e.board.Counts()
		log.Info().Int("black", black).Int("white", white).Msg("game over")
	}
	return out
}

// Undo restores the snapshot taken before the most recent human move,
// discarding the computer's reply along with it.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return ErrBusy
	}
	if len(e.history) == 0 {
		return ErrNothingToUndo
	}
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.board = last.board.Copy()
	e.turn = last.turn
	e.over = false
	return nil
}

// Reset starts a fresh game, keeping the player's color and difficulty.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return ErrBusy
	}
	e.reset()
	return nil
}

func (e *Engine) reset() {
	e.board = game.NewBoard()
	e.turn = game.Black
	e.history = nil
	e.over = false
}

// Restore replaces the live position with a previously saved one. The
// history is cleared: undo cannot cross a restore.
func (e *Engine) Restore(b game.Board, turn game.Cell) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return ErrBusy
	}
	e.board = b.Copy()
	e.turn = turn
	e.history = nil
	e.over = !b.HasMove(game.Black) && !b.HasMove(game.White)
	return nil
}

// SetDifficulty swaps the computer opponent tier.
func (e *Engine) SetDifficulty(d agent.Difficulty) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return ErrBusy
	}
	e.difficulty = d
	e.ai = agent.New(d)
	return nil
}

// Board returns a copy of the live board.
func (e *Engine) Board() game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.board
}

// Turn returns whose move it is.
func (e *Engine) Turn() game.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turn
}

// Human returns the color the player controls.
func (e *Engine) Human() game.Cell {
	return e.human
}

// Difficulty returns the active computer tier.
func (e *Engine) Difficulty() agent.Difficulty {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.difficulty
}

// Busy reports whether a computer move is pending or running.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// Over reports whether neither color has a legal move.
func (e *Engine) Over() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.over
}

// Score returns the disc tally.
func (e *Engine) Score() (black, white int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	black, white, _ = e.board.Counts()
	return black, white
}

// Winner returns the leading color once the game is over, Empty on a draw or
// while play continues.
func (e *Engine) Winner() game.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.over {
		return game.Empty
	}
	black, white, _ := e.board.Counts()
	switch {
	case black > white:
		return game.Black
	case white > black:
		return game.White
	}
	return game.Empty
}

// ValidMoves returns the mover's legal squares, for highlighting.
func (e *Engine) ValidMoves() []game.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.ValidMoves(e.turn)
}
