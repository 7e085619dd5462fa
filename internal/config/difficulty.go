package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

// Difficulty presets.
const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Enemy move intervals for the non-default presets.
const (
	easyEnemyInterval = 15
	hardEnemyInterval = 5
)

// ParseDifficulty converts a flag value to a preset.
// An empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *PicmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.EnemyMoveInterval = easyEnemyInterval
	case DifficultyHard:
		cfg.Gameplay.EnemyMoveInterval = hardEnemyInterval
	}
}
