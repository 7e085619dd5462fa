package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game.
// Key presses are queued in arrival order and handed to the game on the
// next tick. Finished runs are recorded to the results ledger.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	clock      func() time.Time
	startedAt  time.Time
	lastResult *storage.Result
	lastRank   int  // Position of lastResult on the board, 0 if unknown
	exitOnBack bool // Standalone play has no menu to go back to
	recorded   bool // Whether the current game over has been recorded
	quitting   bool
	backToMenu bool
}

// NewGameModel resets game and wraps it in a model.
// store and logger may be nil.
func NewGameModel(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		clock:      time.Now,
	}

	game.Reset(cfg)
	m.gameState = game.State()
	m.startedAt = m.clock()
	m.logger.Info("game started", "game", game.ID(), "player", player, "seed", cfg.Seed)

	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when nothing is in progress
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	// The frame buffer is reused after the step
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.recorded:
		m.recordResult()
	case wasOver && !m.gameState.GameOver:
		// The game restarted itself
		m.recorded = false
		m.lastResult = nil
		m.lastRank = 0
		m.startedAt = m.clock()
		m.logger.Info("game started", "game", m.game.ID(), "player", m.player)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult logs the outcome and saves it to the ledger once.
func (m *GameModel) recordResult() {
	m.recorded = true

	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}
	elapsed := m.clock().Sub(m.startedAt)

	m.logger.Info("game over",
		"game", m.game.ID(),
		"player", m.player,
		"outcome", outcome,
		"score", m.gameState.Score,
		"duration", elapsed.Truncate(time.Second),
	)

	if m.store == nil {
		return
	}
	res, err := m.store.SaveResult(storage.Result{
		Player:   m.player,
		Score:    m.gameState.Score,
		Outcome:  outcome,
		Duration: elapsed,
	})
	if err != nil {
		m.logger.Error("could not record result", "error", err)
		return
	}
	m.lastResult = &res

	rank, err := m.store.Rank(res.RunID)
	if err != nil {
		m.logger.Warn("could not rank result", "run", res.RunID, "error", err)
		return
	}
	m.lastRank = rank
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawLastResult()

	// The bottom row carries the key help
	lines := strings.Split(RenderScreen(m.screen), "\n")
	keys := stateHelp{keys: m.keyMapper.Keys(), state: m.gameState}
	lines[len(lines)-1] = centerText(m.help.View(keys), m.screen.Width())
	return strings.Join(lines, "\n")
}

// drawLastResult notes the recorded run below the outcome message.
func (m GameModel) drawLastResult() {
	if !m.gameState.GameOver || m.lastResult == nil {
		return
	}

	text := "Saved as run " + shortRunID(m.lastResult.RunID)
	if m.lastRank > 0 {
		text = fmt.Sprintf("Rank #%d   run %s", m.lastRank, shortRunID(m.lastResult.RunID))
	}
	m.screen.DrawTextCentered(m.screen.Height()/2+4, text, core.ColorGray)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, logger, cfg, player)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
