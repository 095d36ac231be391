// Package config persists settings and in-progress games as JSON under the
// platform's XDG directories.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"reversi/agent"
	"reversi/game"
)

var cfgFile = "reversi/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type Config struct {
	Difficulty  agent.Difficulty `json:"difficulty"`
	HumanColor  string           `json:"human_color"`
	MoveDelayMs int              `json:"move_delay_ms"`
}

var DefaultConfig = Config{
	Difficulty:  agent.Medium,
	HumanColor:  "black",
	MoveDelayMs: 600,
}

// InitConfig loads the config file if one exists, falling back to defaults.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readJSONFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if !c.Difficulty.Valid() {
		return &InvalidConfig{fmt.Sprintf("unknown difficulty %q", c.Difficulty)}
	}
	if c.HumanColor != "black" && c.HumanColor != "white" {
		return &InvalidConfig{fmt.Sprintf("unknown color %q", c.HumanColor)}
	}
	if c.MoveDelayMs < 0 {
		return &InvalidConfig{"move delay must not be negative"}
	}
	return nil
}

// Human returns the color the player controls.
func (c *Config) Human() game.Cell {
	if c.HumanColor == "white" {
		return game.White
	}
	return game.Black
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return writeJSONFile(absPath, c, 0664)
}

func writeJSONFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readJSONFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, a)
}
