package config

import (
	_ "embed"
)

//go:embed defaults/gobblet.yaml
var defaultGobbletYAML []byte

// DefaultGobbletConfig returns the default gobblet configuration.
func DefaultGobbletConfig() GobbletConfig {
	return GobbletConfig{
		Players: PlayersConfig{
			Player1: PlayerConfig{Name: "Player1", Color: "bright_red"},
			Player2: PlayerConfig{Name: "Player2", Color: "bright_blue"},
		},
		Rules: RulesConfig{
			PiecesPerSize: 1,
		},
		Display: DisplayConfig{
			NoticeTicks: 90, // 3 seconds at 30fps
			BlinkTicks:  15,
			ShowHints:   true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gobblet":
		return defaultGobbletYAML
	default:
		return nil
	}
}
