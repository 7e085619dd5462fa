package picman

import "github.com/vovakirdan/picman/internal/maze"

// IsPlayerCaught returns true if any enemy stands on the player's cell.
// Only exact cell equality counts: a player and enemy that swap cells
// within one tick pass through each other.
func IsPlayerCaught(player maze.Pos, enemies []Enemy) bool {
	for _, e := range enemies {
		if e.Pos == player {
			return true
		}
	}
	return false
}

// IsLevelCleared returns true when no Item cells remain.
func IsLevelCleared(m *maze.Maze) bool {
	return !m.HasRemainingItems()
}
