// Package config provides YAML-based game configuration loading for the
// battleship platform.
package config

// BattleshipConfig contains all tunable presentation/pacing settings.
// Game rules (board size, fleet composition, targeting) are fixed.
type BattleshipConfig struct {
	Pacing  PacingConfig  `yaml:"pacing"`
	Display DisplayConfig `yaml:"display"`
}

// PacingConfig controls the turn-handoff presentation delay. It has no
// effect on game-state ordering: turns stay strictly sequential.
type PacingConfig struct {
	// EnemyDelayTicks is how many simulation ticks the computer waits
	// before its reply lands.
	EnemyDelayTicks int `yaml:"enemy_delay_ticks"`
}

// DisplayConfig controls optional board decorations.
type DisplayConfig struct {
	// ShowCoordinates draws the A-J column letters and 1-10 row numbers.
	ShowCoordinates bool `yaml:"show_coordinates"`

	// RevealOnDefeat uncovers the remaining enemy ships after a loss.
	RevealOnDefeat bool `yaml:"reveal_on_defeat"`
}
