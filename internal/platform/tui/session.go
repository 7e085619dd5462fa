package tui

import (
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	newGame    GameFactory
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	username   string
	seeds      *rand.Rand // Seeds each new game unless the seed is fixed
	fixedSeed  bool
	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model. store and logger may be nil.
// A non-zero cfg.Seed replays the same game on every Play; otherwise each
// game gets its own seed.
func NewSessionModel(newGame GameFactory, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, username string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return SessionModel{
		newGame:   newGame,
		store:     store,
		logger:    logger,
		config:    cfg,
		username:  username,
		seeds:     rand.New(rand.NewSource(seed)),
		fixedSeed: cfg.Seed != 0,
		menu:      NewMenuModel(store, cfg),
	}
}

// nextSeed returns the seed for the next game.
func (m SessionModel) nextSeed() int64 {
	if m.fixedSeed {
		return m.config.Seed
	}
	// 0 asks the game model for a time-based seed
	if seed := m.seeds.Int63(); seed != 0 {
		return seed
	}
	return 1
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		game, err := m.newGame()
		if err != nil {
			m.logger.Error("could not create game", "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		cfg := m.config
		cfg.Seed = m.nextSeed()
		gameModel := NewGameModel(game, m.store, m.logger, cfg, m.username)
		m.gameModel = &gameModel
		m.screen = screenGame
		return m, m.gameModel.Init()

	case ChoiceScores:
		sb := NewScoreboardModel(m.store, m.username, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the results board is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu drops the current screen and shows a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(newGame GameFactory, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, username string) error {
	p := tea.NewProgram(
		NewSessionModel(newGame, store, logger, cfg, username),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
