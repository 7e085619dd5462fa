package picman

import (
	"testing"

	"github.com/vovakirdan/picman/internal/maze"
)

func TestScenarioCollectLastItemWins(t *testing.T) {
	m := mustMaze(t,
		"####",
		"#. #",
		"####",
	)
	s := mustState(t, m, maze.P(2, 1), nil, DefaultRules())

	phase := s.Tick([]Direction{DirLeft}, always(DirUp))

	if s.Player != maze.P(1, 1) {
		t.Errorf("Player = %v, expected (1,1)", s.Player)
	}
	if s.Score != 10 {
		t.Errorf("Score = %d, expected 10", s.Score)
	}
	if !IsLevelCleared(m) {
		t.Error("level should be cleared")
	}
	if phase != Won {
		t.Errorf("phase = %v, expected won", phase)
	}
}

func TestScenarioEnemyStepsOntoPlayer(t *testing.T) {
	s := mustState(t, openRoom(t), maze.P(5, 5), []maze.Pos{maze.P(5, 6)}, Rules{ItemReward: 10, EnemyMoveInterval: 1})

	phase := s.Tick(nil, always(DirUp))

	if s.Enemies[0].Pos != maze.P(5, 5) {
		t.Errorf("enemy at %v, expected (5,5)", s.Enemies[0].Pos)
	}
	if !IsPlayerCaught(s.Player, s.Enemies) {
		t.Error("collision check should report true")
	}
	if phase != Lost {
		t.Errorf("phase = %v, expected lost", phase)
	}
}

func TestScenarioNoItemsWinsOnFirstTick(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#   #",
		"#####",
	)
	s := mustState(t, m, maze.P(1, 1), []maze.Pos{maze.P(3, 1)}, DefaultRules())

	if phase := s.Tick(nil, always(DirUp)); phase != Won {
		t.Errorf("phase = %v, expected won without any move", phase)
	}
}

func TestLossTakesPrecedenceOverWin(t *testing.T) {
	// Player takes the last item while an enemy steps onto that cell.
	m := mustMaze(t,
		"####",
		"#. #",
		"#  #",
		"####",
	)
	s := mustState(t, m, maze.P(2, 1), []maze.Pos{maze.P(1, 2)}, Rules{ItemReward: 10, EnemyMoveInterval: 1})

	phase := s.Tick([]Direction{DirLeft}, always(DirUp))

	if !IsLevelCleared(m) {
		t.Fatal("level should be cleared")
	}
	if phase != Lost {
		t.Errorf("phase = %v, expected lost", phase)
	}
	if s.Score != 10 {
		t.Errorf("Score = %d, collected item should still count", s.Score)
	}
}

func TestPlayerAndEnemySwapWithoutCollision(t *testing.T) {
	m := mustMaze(t,
		"######",
		"#   .#",
		"######",
	)
	s := mustState(t, m, maze.P(2, 1), []maze.Pos{maze.P(3, 1)}, Rules{ItemReward: 10, EnemyMoveInterval: 1})

	phase := s.Tick([]Direction{DirRight}, always(DirLeft))

	if s.Player != maze.P(3, 1) || s.Enemies[0].Pos != maze.P(2, 1) {
		t.Fatalf("player %v enemy %v, expected a swap", s.Player, s.Enemies[0].Pos)
	}
	if phase != Running {
		t.Errorf("phase = %v, swapping cells should not count as caught", phase)
	}
}

func TestPlayerWalkingIntoEnemyIsCaught(t *testing.T) {
	s := mustState(t, openRoom(t), maze.P(3, 3), []maze.Pos{maze.P(4, 3)}, DefaultRules())

	if phase := s.Tick([]Direction{DirRight}, always(DirUp)); phase != Lost {
		t.Errorf("phase = %v, expected lost", phase)
	}
}

func TestEnemiesMoveOnInterval(t *testing.T) {
	s := mustState(t, openRoom(t), maze.P(6, 6), []maze.Pos{maze.P(1, 3)}, Rules{ItemReward: 10, EnemyMoveInterval: 3})
	rng := always(DirRight)

	wantX := []int{1, 1, 2, 2, 2, 3, 3, 3, 4}
	for i, x := range wantX {
		s.Tick(nil, rng)
		if got := s.Enemies[0].Pos; got != maze.P(x, 3) {
			t.Fatalf("tick %d: enemy at %v, expected (%d,3)", i+1, got, x)
		}
	}
	if rng.calls != 3 {
		t.Errorf("sampler called %d times, expected 3", rng.calls)
	}
}

func TestEachPressIsOneStep(t *testing.T) {
	s := mustState(t, openRoom(t), maze.P(2, 3), nil, DefaultRules())

	s.Tick([]Direction{DirRight, DirRight, DirDown}, always(DirUp))

	if s.Player != maze.P(4, 4) {
		t.Errorf("Player = %v, expected (4,4)", s.Player)
	}
}

func TestNoMovesKeepsPlayerStill(t *testing.T) {
	s := mustState(t, openRoom(t), maze.P(2, 3), nil, DefaultRules())

	for range 100 {
		s.Tick(nil, always(DirUp))
	}
	if s.Player != maze.P(2, 3) {
		t.Errorf("Player = %v, should not move without input", s.Player)
	}
}

func TestTerminalPhaseFreezesState(t *testing.T) {
	for _, phase := range []Phase{Won, Lost} {
		t.Run(phase.String(), func(t *testing.T) {
			s := mustState(t, openRoom(t), maze.P(2, 1), []maze.Pos{maze.P(5, 5)}, Rules{ItemReward: 10, EnemyMoveInterval: 1})
			s.Phase = phase

			for range 20 {
				if got := s.Tick([]Direction{DirLeft}, always(DirUp)); got != phase {
					t.Fatalf("phase changed to %v", got)
				}
			}
			if s.Player != maze.P(2, 1) || s.Enemies[0].Pos != maze.P(5, 5) || s.Score != 0 {
				t.Errorf("terminal state mutated: player %v enemy %v score %d", s.Player, s.Enemies[0].Pos, s.Score)
			}
			if !s.Maze.HasRemainingItems() {
				t.Error("terminal state collected an item")
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{Running: "running", Won: "won", Lost: "lost", Phase(9): "unknown"}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), p.String(), want)
		}
	}
	if Running.Terminal() || !Won.Terminal() || !Lost.Terminal() {
		t.Error("only Won and Lost are terminal")
	}
}
