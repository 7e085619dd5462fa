package picman

import (
	"testing"

	"github.com/vovakirdan/picman/internal/maze"
)

// scriptedSampler replays a fixed list of picks, cycling when exhausted.
type scriptedSampler struct {
	picks []int
	calls int
}

func always(ds ...Direction) *scriptedSampler {
	s := &scriptedSampler{}
	for _, d := range ds {
		s.picks = append(s.picks, int(d))
	}
	return s
}

func (s *scriptedSampler) Intn(n int) int {
	v := s.picks[s.calls%len(s.picks)]
	s.calls++
	return v % n
}

func mustMaze(t *testing.T, rows ...string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("maze.Parse: %v", err)
	}
	return m
}

func mustState(t *testing.T, m *maze.Maze, player maze.Pos, enemies []maze.Pos, rules Rules) *State {
	t.Helper()
	s, err := NewState(m, player, enemies, rules)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

// openRoom is an 8x8 walled room with a single item in the top-left corner.
func openRoom(t *testing.T) *maze.Maze {
	t.Helper()
	return mustMaze(t,
		"########",
		"#.     #",
		"#      #",
		"#      #",
		"#      #",
		"#      #",
		"#      #",
		"########",
	)
}
