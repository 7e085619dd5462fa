// Package config provides YAML-based game configuration loading and
// difficulty presets for PIC-MAN.
package config

import "fmt"

// PicmanConfig contains all configuration for a PIC-MAN game.
type PicmanConfig struct {
	Gameplay Gameplay `yaml:"gameplay"`
	Player   Player   `yaml:"player"`
	Enemies  []Point  `yaml:"enemies"`
}

// Gameplay defines scoring and pacing parameters.
type Gameplay struct {
	ItemReward        int `yaml:"item_reward"`
	EnemyMoveInterval int `yaml:"enemy_move_interval"` // Ticks between enemy moves
}

// Player defines player parameters.
type Player struct {
	Start Point `yaml:"start"`
}

// Point is a maze cell coordinate (column, row).
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ValidationError reports a config field with an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the values that do not depend on the maze.
// Positions are checked against the maze when the game is built.
func (c PicmanConfig) Validate() error {
	if c.Gameplay.EnemyMoveInterval < 1 {
		return &ValidationError{
			Field:   "gameplay.enemy_move_interval",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Gameplay.EnemyMoveInterval),
		}
	}
	if c.Gameplay.ItemReward < 0 {
		return &ValidationError{
			Field:   "gameplay.item_reward",
			Message: fmt.Sprintf("must not be negative, got %d", c.Gameplay.ItemReward),
		}
	}
	return nil
}
