package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the default Battleship configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		Pacing: PacingConfig{
			EnemyDelayTicks: 20,
		},
		Display: DisplayConfig{
			ShowCoordinates: true,
			RevealOnDefeat:  true,
		},
	}
}
