package picman

import "github.com/vovakirdan/picman/internal/maze"

// AttemptMove returns where an entity at from ends up after one step in
// direction d. A step into a wall is absorbed and from is returned.
func AttemptMove(m *maze.Maze, from maze.Pos, d Direction) maze.Pos {
	dx, dy := d.Delta()
	candidate := from.Add(dx, dy)
	if m.CellAt(candidate) == maze.Wall {
		return from
	}
	return candidate
}

// MovePlayer steps the player once and collects the item it lands on.
// Returns true if an item was collected.
func MovePlayer(s *State, d Direction) bool {
	next := AttemptMove(s.Maze, s.Player, d)
	if next == s.Player {
		return false
	}
	s.Player = next

	if s.Maze.CollectItemAt(next) {
		s.Score += s.Rules.ItemReward
		return true
	}
	return false
}
