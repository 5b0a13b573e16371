// Package config provides YAML-based configuration loading for the
// gobblet game and its platform.
package config

import (
	"fmt"
	"strings"
)

// GobbletConfig contains all configuration for a gobblet match.
type GobbletConfig struct {
	Players PlayersConfig `yaml:"players"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// PlayersConfig names and colors the two seats.
type PlayersConfig struct {
	Player1 PlayerConfig `yaml:"player1"`
	Player2 PlayerConfig `yaml:"player2"`
}

// PlayerConfig defines how one seat is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // see core.ParseColor
}

// RulesConfig defines rule variants.
type RulesConfig struct {
	PiecesPerSize int `yaml:"pieces_per_size"` // 1 or 2 copies of each size per rack
}

// DisplayConfig defines presentation timings, in simulation ticks.
type DisplayConfig struct {
	NoticeTicks int  `yaml:"notice_ticks"` // how long a notice stays on screen
	BlinkTicks  int  `yaml:"blink_ticks"`  // half period of the hint blink
	ShowHints   bool `yaml:"show_hints"`   // blink cells that accept the next action
}

// Validate checks the values a match cannot start without.
func (c GobbletConfig) Validate() error {
	if c.Rules.PiecesPerSize < 1 || c.Rules.PiecesPerSize > 2 {
		return fmt.Errorf("config: rules.pieces_per_size must be 1 or 2, got %d", c.Rules.PiecesPerSize)
	}
	if c.Display.NoticeTicks < 0 || c.Display.BlinkTicks < 0 {
		return fmt.Errorf("config: display ticks must not be negative")
	}
	if strings.TrimSpace(c.Players.Player1.Name) == "" || strings.TrimSpace(c.Players.Player2.Name) == "" {
		return fmt.Errorf("config: player names must not be empty")
	}
	return nil
}

// withDefaults replaces keys a file set to blank or zero with the hardcoded
// default. Keys a file leaves out already keep their default (see decode).
func (c GobbletConfig) withDefaults() GobbletConfig {
	d := DefaultGobbletConfig()
	if c.Players.Player1.Name == "" {
		c.Players.Player1.Name = d.Players.Player1.Name
	}
	if c.Players.Player1.Color == "" {
		c.Players.Player1.Color = d.Players.Player1.Color
	}
	if c.Players.Player2.Name == "" {
		c.Players.Player2.Name = d.Players.Player2.Name
	}
	if c.Players.Player2.Color == "" {
		c.Players.Player2.Color = d.Players.Player2.Color
	}
	if c.Rules.PiecesPerSize == 0 {
		c.Rules.PiecesPerSize = d.Rules.PiecesPerSize
	}
	if c.Display.NoticeTicks == 0 {
		c.Display.NoticeTicks = d.Display.NoticeTicks
	}
	if c.Display.BlinkTicks == 0 {
		c.Display.BlinkTicks = d.Display.BlinkTicks
	}
	return c
}
