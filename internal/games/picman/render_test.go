package picman

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/maze"
)

// recordingRenderer records the calls it receives.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recordingRenderer) DrawMaze(*maze.Maze) {
	r.calls = append(r.calls, "maze")
}

func (r *recordingRenderer) DrawEnemies(p []maze.Pos) {
	r.calls = append(r.calls, fmt.Sprintf("enemies %v", p))
}

func (r *recordingRenderer) DrawPlayer(p maze.Pos) {
	r.calls = append(r.calls, "player "+p.String())
}

func (r *recordingRenderer) DrawScore(n int) {
	r.calls = append(r.calls, fmt.Sprintf("score %d", n))
}

func (r *recordingRenderer) DrawTerminalMessage(p Phase) {
	r.calls = append(r.calls, "message "+p.String())
}

func (r *recordingRenderer) Present() {
	r.calls = append(r.calls, "present")
}

func TestDrawRunningOrder(t *testing.T) {
	s := mustState(t, openRoom(t), maze.P(3, 3), []maze.Pos{maze.P(5, 5)}, DefaultRules())
	s.Score = 40

	r := &recordingRenderer{}
	Draw(s, r)

	want := []string{"clear", "maze", "enemies [(5,5)]", "player (3,3)", "score 40", "present"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, expected %v", r.calls, want)
	}
}

func TestDrawTerminalOrder(t *testing.T) {
	for _, phase := range []Phase{Won, Lost} {
		t.Run(phase.String(), func(t *testing.T) {
			s := mustState(t, openRoom(t), maze.P(3, 3), nil, DefaultRules())
			s.Phase = phase

			r := &recordingRenderer{}
			Draw(s, r)

			want := []string{"clear", "message " + phase.String(), "present"}
			if !reflect.DeepEqual(r.calls, want) {
				t.Errorf("calls = %v, expected %v", r.calls, want)
			}
		})
	}
}

func TestScreenRendererPaintsCells(t *testing.T) {
	m := mustMaze(t,
		"####",
		"#. #",
		"####",
	)
	screen := core.NewScreen(8, 6)
	r := NewScreenRenderer(screen, m.Width(), m.Height())

	r.Clear()
	r.DrawMaze(m)
	r.DrawEnemies([]maze.Pos{maze.P(2, 1)})
	r.DrawPlayer(maze.P(1, 1))

	// 8 columns exactly fit 4 cells; maze starts below the HUD
	if c := screen.GetCell(0, 2); c.Rune != '█' || c.Color != core.ColorSlate {
		t.Errorf("wall cell = %+v, expected slate block", c)
	}
	if c := screen.GetCell(1, 2); c.Rune != '█' {
		t.Errorf("walls should be two columns wide, got %q", c.Rune)
	}
	if c := screen.GetCell(2, 3); c.Rune != 'C' || c.Color != core.ColorBrightYellow {
		t.Errorf("player cell = %+v, expected bright yellow C", c)
	}
	if c := screen.GetCell(4, 3); c.Rune != 'M' || c.Color != core.ColorRed {
		t.Errorf("enemy cell = %+v, expected red M", c)
	}
}

func TestScreenRendererItemGlyph(t *testing.T) {
	m := mustMaze(t,
		"####",
		"#. #",
		"####",
	)
	screen := core.NewScreen(8, 6)
	NewScreenRenderer(screen, m.Width(), m.Height()).DrawMaze(m)

	if c := screen.GetCell(2, 3); c.Rune != '·' || c.Color != core.ColorYellow {
		t.Errorf("item cell = %+v, expected yellow dot", c)
	}
	if c := screen.GetCell(4, 3); c.Rune != ' ' {
		t.Errorf("floor cell should be blank, got %q", c.Rune)
	}
}

func TestScreenRendererScore(t *testing.T) {
	screen := core.NewScreen(24, 15)
	r := NewScreenRenderer(screen, 12, 12)
	r.DrawScore(120)

	hud := screen.Row(0)
	if !strings.HasPrefix(hud, "PIC-MAN") {
		t.Errorf("HUD should start with title, got %q", hud)
	}
	if !strings.HasSuffix(hud, "Points: 120") {
		t.Errorf("HUD should end with points, got %q", hud)
	}
}

func TestScreenRendererTerminalMessage(t *testing.T) {
	tests := []struct {
		phase Phase
		text  string
	}{
		{Won, "WIN"},
		{Lost, "GAME OVER"},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			screen := core.NewScreen(40, 15)
			r := NewScreenRenderer(screen, 12, 12)
			r.Clear()
			r.DrawTerminalMessage(tt.phase)

			if !strings.Contains(screen.String(), tt.text) {
				t.Errorf("screen should show %q:\n%s", tt.text, screen.String())
			}
		})
	}
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(maze.Classic())
	if w != 24 || h != 15 {
		t.Errorf("RequiredSize = %dx%d, expected 24x15", w, h)
	}
}
