package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/storage"
)

func newTestSession(t *testing.T, factory GameFactory) SessionModel {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewSessionModel(factory, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "ann")
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionPlayAndBack(t *testing.T) {
	g := &stubGame{}
	m := newTestSession(t, func() (Game, error) { return g, nil })

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("Enter on Play should start a game, screen = %v", m.screen)
	}
	if cmd == nil {
		t.Fatal("starting a game should schedule a tick")
	}
	if _, ok := cmd().(tea.QuitMsg); ok {
		t.Fatal("selecting from the menu must not end the session")
	}

	g.next = &core.GameState{GameOver: true, Score: 10}
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenMenu {
		t.Errorf("back after game over should return to menu, screen = %v", m.screen)
	}
	if m.menu.best != 10 {
		t.Errorf("menu best = %d, expected the recorded 10", m.menu.best)
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	m := newTestSession(t, func() (Game, error) { return &stubGame{}, nil })

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatalf("expected scores screen, got %v", m.screen)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("back from scores should return to menu, got %v", m.screen)
	}
}

func TestSessionFactoryErrorStaysInMenu(t *testing.T) {
	m := newTestSession(t, func() (Game, error) { return nil, errors.New("boom") })

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Errorf("failed game creation should stay in menu, got %v", m.screen)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession(t, func() (Game, error) { return &stubGame{}, nil })

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

// playAndReturn starts a game from the menu, ends it and goes back.
func playAndReturn(t *testing.T, m SessionModel, g *stubGame) SessionModel {
	t.Helper()
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("expected game screen, got %v", m.screen)
	}
	g.next = &core.GameState{GameOver: true}
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("expected menu screen, got %v", m.screen)
	}
	return m
}

func TestSessionSeedsEveryGame(t *testing.T) {
	g := &stubGame{}
	m := newTestSession(t, func() (Game, error) { return g, nil })

	for range 3 {
		m = playAndReturn(t, m, g)
	}

	if len(g.seeds) != 3 {
		t.Fatalf("expected 3 resets, got %d", len(g.seeds))
	}
	seen := map[int64]bool{}
	for _, s := range g.seeds {
		if s == 0 {
			t.Error("games should get an explicit seed")
		}
		if seen[s] {
			t.Errorf("seed %d reused, games would replay the same enemy walk", s)
		}
		seen[s] = true
	}
}

func TestSessionFixedSeedReplays(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	m := NewSessionModel(func() (Game, error) { return g, nil }, store, nil, cfg, "ann")

	m = playAndReturn(t, m, g)
	m = playAndReturn(t, m, g)

	if len(g.seeds) != 2 || g.seeds[0] != 42 || g.seeds[1] != 42 {
		t.Errorf("a fixed seed should be used for every game, got %v", g.seeds)
	}
}

func TestSessionScoresToggleMine(t *testing.T) {
	m := newTestSession(t, func() (Game, error) { return &stubGame{}, nil })
	m.store.SaveResult(storage.Result{Player: "bob", Score: 90, Outcome: storage.OutcomeLost})
	m.store.SaveResult(storage.Result{Player: "ann", Score: 20, Outcome: storage.OutcomeLost})

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.scoreboard.results) != 2 {
		t.Fatalf("board should list everyone, got %d results", len(m.scoreboard.results))
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.scoreboard.results) != 1 || m.scoreboard.results[0].Player != "ann" {
		t.Errorf("tab should show only ann's games, got %+v", m.scoreboard.results)
	}
	if !strings.Contains(m.View(), "LATEST GAMES OF ANN") {
		t.Error("player view should be titled")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.scoreboard.results) != 2 {
		t.Errorf("second tab should show everyone again, got %d", len(m.scoreboard.results))
	}
}
