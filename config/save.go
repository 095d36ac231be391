package config

import (
	"os"

	"github.com/adrg/xdg"

	"reversi/agent"
	"reversi/game"
)

var saveFile = "reversi/autosave.json"

// SavedGame round-trips an in-progress match: the board matrix plus the
// whose-turn and difficulty scalars. Cells are stored as their integer
// values to keep the file format independent of the Go type.
type SavedGame struct {
	Board      [game.Size][game.Size]int8 `json:"board"`
	Turn       int8                       `json:"turn"`
	Difficulty agent.Difficulty           `json:"difficulty"`
}

// NewSavedGame captures a position for writing.
func NewSavedGame(b game.Board, turn game.Cell, d agent.Difficulty) *SavedGame {
	s := &SavedGame{Turn: int8(turn), Difficulty: d}
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			s.Board[row][col] = int8(b[row][col])
		}
	}
	return s
}

// Position returns the saved board and mover.
func (s *SavedGame) Position() (game.Board, game.Cell) {
	var b game.Board
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			b[row][col] = game.Cell(s.Board[row][col])
		}
	}
	return b, game.Cell(s.Turn)
}

func (s *SavedGame) Validate() error {
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			if c := s.Board[row][col]; c < int8(game.Empty) || c > int8(game.White) {
				return &InvalidConfig{"saved board holds an unknown cell value"}
			}
		}
	}
	if t := game.Cell(s.Turn); t != game.Black && t != game.White {
		return &InvalidConfig{"saved game has no mover"}
	}
	if !s.Difficulty.Valid() {
		return &InvalidConfig{"saved game names an unknown difficulty"}
	}
	return nil
}

// Save writes the autosave file, replacing any previous one.
func (s *SavedGame) Save() error {
	absPath, err := xdg.DataFile(saveFile)
	if err != nil {
		return err
	}
	return writeJSONFile(absPath, s, 0664)
}

// LoadSavedGame reads the autosave file. It returns os.ErrNotExist when no
// game has been saved.
func LoadSavedGame() (*SavedGame, error) {
	absPath, err := xdg.SearchDataFile(saveFile)
	if err != nil {
		return nil, os.ErrNotExist
	}
	var s SavedGame
	if err := readJSONFile(absPath, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ClearSavedGame removes the autosave, if any.
func ClearSavedGame() error {
	absPath, err := xdg.SearchDataFile(saveFile)
	if err != nil {
		return nil
	}
	return os.Remove(absPath)
}
