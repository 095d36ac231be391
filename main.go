// reversi is a terminal application to play Reversi against a computer
// opponent with three difficulty tiers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/agent"
	"reversi/config"
	"reversi/engine"
	"reversi/game"
	"reversi/ui"
)

var (
	flagColor      = flag.String("color", "", "Player color (black or white)")
	flagDifficulty = flag.String("difficulty", "", "Computer level (easy, medium, hard)")
	flagNew        = flag.Bool("new", false, "Ignore the autosaved game and start fresh")
	flagDebug      = flag.Bool("debug", false, "Log search diagnostics")
)

var (
	app        *tview.Application
	boardView  *ui.BoardView
	statusView *ui.StatusPanel
	eng        *engine.Engine
	cfg        *config.Config
	lastPassed game.Cell
	lastMove   *game.Move
)

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %s\n", err)
		os.Exit(1)
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags()

	eng = engine.New(cfg.Human(), cfg.Difficulty)
	if !*flagNew {
		if saved, err := config.LoadSavedGame(); err == nil {
			b, turn := saved.Position()
			if err := eng.Restore(b, turn); err == nil {
				if err := eng.SetDifficulty(saved.Difficulty); err == nil {
					log.Info().Msg("restored autosaved game")
				}
			}
		}
	}

	app = tview.NewApplication()
	boardView = ui.NewBoardView()
	statusView = ui.NewStatusPanel()
	layout := ui.NewGameLayout(boardView, statusView)

	boardView.Box.SetInputCapture(handleKey)
	refresh()
	maybeScheduleAI()

	if err := app.SetRoot(layout, true).Run(); err != nil {
		panic(err)
	}
}

func setupLogging() error {
	logPath, err := xdg.StateFile("reversi/reversi.log")
	if err != nil {
		return err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0664)
	if err != nil {
		return err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

func applyFlags() {
	if *flagColor == "black" || *flagColor == "white" {
		cfg.HumanColor = *flagColor
	}
	if d := agent.Difficulty(*flagDifficulty); d.Valid() {
		cfg.Difficulty = d
	}
}

func handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		boardView.MoveSelection(-1, 0)
	case tcell.KeyDown:
		boardView.MoveSelection(1, 0)
	case tcell.KeyLeft:
		boardView.MoveSelection(0, -1)
	case tcell.KeyRight:
		boardView.MoveSelection(0, 1)
	case tcell.KeyEnter:
		playSelected()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			boardView.MoveSelection(0, -1)
		case 'j':
			boardView.MoveSelection(1, 0)
		case 'k':
			boardView.MoveSelection(-1, 0)
		case 'l':
			boardView.MoveSelection(0, 1)
		case 'u':
			undo()
		case 'd':
			cycleDifficulty()
		case 'r':
			restart()
		case 'q':
			saveConfig()
			app.Stop()
		}
	}
	refresh()
	return event
}

func playSelected() {
	sel, ok := boardView.Selected()
	if !ok {
		return
	}
	out, err := eng.Play(sel.Row, sel.Col)
	if err != nil {
		if !errors.Is(err, engine.ErrInvalidMove) {
			log.Debug().Msgf("move rejected: %s", err)
		}
		return
	}
	afterMove(out)
	maybeScheduleAI()
}

func undo() {
	if err := eng.Undo(); err != nil {
		return
	}
	lastPassed = game.Empty
	lastMove = nil
	autosave()
}

func restart() {
	if err := eng.Reset(); err != nil {
		return
	}
	lastPassed = game.Empty
	lastMove = nil
	boardView.ResetSelection()
	if err := config.ClearSavedGame(); err != nil {
		log.Warn().Msgf("could not clear autosave: %s", err)
	}
	maybeScheduleAI()
}

func cycleDifficulty() {
	next := agent.Medium
	switch eng.Difficulty() {
	case agent.Medium:
		next = agent.Hard
	case agent.Hard:
		next = agent.Easy
	}
	if err := eng.SetDifficulty(next); err != nil {
		return
	}
	cfg.Difficulty = next
}

// maybeScheduleAI hands the turn to the computer when it is to move. The
// done callback fires on the timer goroutine, so all UI work is marshalled
// back through QueueUpdateDraw.
func maybeScheduleAI() {
	if eng.Over() || eng.Turn() == eng.Human() {
		return
	}
	delay := time.Duration(cfg.MoveDelayMs) * time.Millisecond
	err := eng.ScheduleAI(delay, func(out engine.Outcome, err error) {
		app.QueueUpdateDraw(func() {
			if err != nil {
				log.Error().Msgf("computer move failed: %s", err)
				return
			}
			afterMove(out)
			// The human may have been forced to pass; keep the computer going.
			maybeScheduleAI()
		})
	})
	if err != nil {
		log.Debug().Msgf("not scheduling computer move: %s", err)
	}
}

func afterMove(out engine.Outcome) {
	log.Info().Msgf("%s played %s", out.Player, out.Move)
	m := out.Move
	lastMove = &m
	lastPassed = out.Passed
	if out.Over {
		if err := config.ClearSavedGame(); err != nil {
			log.Warn().Msgf("could not clear autosave: %s", err)
		}
	} else {
		autosave()
	}
	refresh()
}

func autosave() {
	saved := config.NewSavedGame(eng.Board(), eng.Turn(), eng.Difficulty())
	if err := saved.Save(); err != nil {
		log.Warn().Msgf("autosave failed: %s", err)
	}
}

func saveConfig() {
	if err := cfg.Save(); err != nil {
		log.Warn().Msgf("could not save config: %s", err)
	}
}

func refresh() {
	board := eng.Board()
	var hints []game.Move
	if !eng.Over() && !eng.Busy() && eng.Turn() == eng.Human() {
		hints = eng.ValidMoves()
	}
	black, white := eng.Score()
	statusView.Update(ui.Status{
		Black:      black,
		White:      white,
		Turn:       eng.Turn(),
		Human:      eng.Human(),
		Difficulty: eng.Difficulty(),
		Thinking:   eng.Busy(),
		Passed:     lastPassed,
		Over:       eng.Over(),
		Winner:     eng.Winner(),
	})
	boardView.SetPosition(board, hints, lastMove)
}
