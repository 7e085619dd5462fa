package picman

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/picman/internal/config"
	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/maze"
)

// Game adapts State to the platform's Reset/Step/Render contract.
// It owns the RNG and the pause and window-size flags; the rules
// themselves live in State.
type Game struct {
	rules    Rules
	start    maze.Pos
	spawns   []maze.Pos
	rng      *rand.Rand
	state    *State
	tick     uint64
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// New builds a game from cfg and checks the start positions against the
// built-in maze.
func New(cfg config.PicmanConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		rules: Rules{
			ItemReward:        cfg.Gameplay.ItemReward,
			EnemyMoveInterval: cfg.Gameplay.EnemyMoveInterval,
		},
		start: maze.P(cfg.Player.Start.X, cfg.Player.Start.Y),
	}
	for _, e := range cfg.Enemies {
		g.spawns = append(g.spawns, maze.P(e.X, e.Y))
	}

	if _, err := NewState(maze.Classic(), g.start, g.spawns, g.rules); err != nil {
		return nil, err
	}

	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "picman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "PIC-MAN"
}

// Reset starts a new game with a fresh maze and state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.state = newState(maze.Classic(), g.start, g.spawns, g.rules)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	needW, needH := RequiredSize(g.state.Maze)
	g.tooSmall = w < needW || h < needH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.state.Phase.Terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Each press toggles, so two presses in one tick cancel out
	if g.state.Phase == Running && input.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.state.Phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	var moves []Direction
	for _, a := range input.Moves() {
		if d, ok := directionFor(a); ok {
			moves = append(moves, d)
		}
	}
	g.state.Tick(moves, g.rng)

	return core.StepResult{State: g.State()}
}

// Render draws the current frame to dst.
func (g *Game) Render(dst *core.Screen) {
	needW, needH := RequiredSize(g.state.Maze)
	if dst.Width() < needW || dst.Height() < needH {
		g.renderTooSmall(dst, needW, needH)
		return
	}

	// The footer row is left to the platform for key help
	Draw(g.state, NewScreenRenderer(dst, g.state.Maze.Width(), g.state.Maze.Height()))

	if g.paused && !g.state.Phase.Terminal() {
		box := dst.Bounds().Centered(16, 3)
		dst.DrawRect(box, ' ')
		dst.DrawBox(box, core.ColorCyan)
		dst.DrawTextCentered(box.Y+1, "Paused", core.ColorBrightWhite)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen, needW, needH int) {
	dst.Clear()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", needW, needH), core.ColorGray)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Have %dx%d", dst.Width(), dst.Height()), core.ColorGray)
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Phase.Terminal(),
		Won:      g.state.Phase == Won,
		Paused:   g.paused,
	}
}
