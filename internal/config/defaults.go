package config

import (
	_ "embed"
)

//go:embed defaults/picman.yaml
var defaultPicmanYAML []byte

// DefaultPicmanConfig returns the default configuration.
func DefaultPicmanConfig() PicmanConfig {
	return PicmanConfig{
		Gameplay: Gameplay{
			ItemReward:        10,
			EnemyMoveInterval: 10,
		},
		Player: Player{
			Start: Point{X: 10, Y: 10},
		},
		Enemies: []Point{
			{X: 1, Y: 1},
			{X: 7, Y: 5},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPicmanYAML
}
