// Package picman implements the PIC-MAN chase game: a player collects every
// item in a walled maze while enemies wander at random.
//
// The rules are free functions over an explicit State value. Game adapts
// them to the platform's Reset/Step/Render contract.
package picman

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/picman/internal/maze"
)

// ErrBlockedPosition is returned when an entity would start outside the
// maze or inside a wall.
var ErrBlockedPosition = errors.New("picman: start position is not walkable")

// Phase is the overall game outcome state.
type Phase int

// Game phases. Won and Lost are terminal.
const (
	Running Phase = iota // Player and enemies still moving
	Won                  // Every item collected
	Lost                 // An enemy caught the player
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}

// Enemy is one wandering enemy. The roster is fixed for a game.
type Enemy struct {
	ID  int
	Pos maze.Pos
}

// Rules holds the tunable parameters of a game.
type Rules struct {
	ItemReward        int // Score per collected item
	EnemyMoveInterval int // Ticks between enemy moves, at least 1
}

// DefaultRules returns the standard scoring and pacing.
func DefaultRules() Rules {
	return Rules{
		ItemReward:        10,
		EnemyMoveInterval: 10,
	}
}

// State is everything one play session mutates.
// A new game is a new State; nothing carries over.
type State struct {
	Maze    *maze.Maze
	Player  maze.Pos
	Enemies []Enemy
	Score   int
	Phase   Phase
	Rules   Rules

	enemyTicks int // Ticks since the last enemy move
}

// NewState validates the starting positions and rules and returns a
// Running state.
func NewState(m *maze.Maze, player maze.Pos, enemies []maze.Pos, rules Rules) (*State, error) {
	if rules.EnemyMoveInterval < 1 {
		return nil, fmt.Errorf("picman: enemy move interval must be at least 1, got %d", rules.EnemyMoveInterval)
	}
	if rules.ItemReward < 0 {
		return nil, fmt.Errorf("picman: item reward must not be negative, got %d", rules.ItemReward)
	}
	if err := checkWalkable(m, "player", player); err != nil {
		return nil, err
	}
	for i, p := range enemies {
		if err := checkWalkable(m, fmt.Sprintf("enemy %d", i), p); err != nil {
			return nil, err
		}
	}
	return newState(m, player, enemies, rules), nil
}

// newState builds a state from positions already known to be valid.
func newState(m *maze.Maze, player maze.Pos, enemies []maze.Pos, rules Rules) *State {
	roster := make([]Enemy, len(enemies))
	for i, p := range enemies {
		roster[i] = Enemy{ID: i, Pos: p}
	}
	return &State{
		Maze:    m,
		Player:  player,
		Enemies: roster,
		Phase:   Running,
		Rules:   rules,
	}
}

func checkWalkable(m *maze.Maze, who string, p maze.Pos) error {
	if !m.InBounds(p) || !m.CellAt(p).Walkable() {
		return fmt.Errorf("%w: %s at %v", ErrBlockedPosition, who, p)
	}
	return nil
}

// EnemyPositions returns the current enemy positions in roster order.
func (s *State) EnemyPositions() []maze.Pos {
	out := make([]maze.Pos, len(s.Enemies))
	for i, e := range s.Enemies {
		out[i] = e.Pos
	}
	return out
}
