package picman

import "github.com/vovakirdan/picman/internal/maze"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Phase     Phase
	Player    maze.Pos
	Enemies   []maze.Pos
	ItemsLeft int
	Paused    bool
	TooSmall  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.state.Score,
		Phase:     g.state.Phase,
		Player:    g.state.Player,
		Enemies:   g.state.EnemyPositions(),
		ItemsLeft: g.state.Maze.ItemCount(),
		Paused:    g.paused,
		TooSmall:  g.tooSmall,
	}
}
