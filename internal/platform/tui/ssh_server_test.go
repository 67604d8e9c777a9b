package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lose-weight/internal/control"
	"github.com/vovakirdan/lose-weight/internal/core"
	"github.com/vovakirdan/lose-weight/internal/registry"
)

const sessionGameID = "session_fake"

func init() {
	registry.Register(sessionGameID, func() registry.Game { return &fakeGame{} })
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	m, err := NewSessionModel(nil, sessionGameID, core.DefaultConfig(), 0.2, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSessionModel: %v", err)
	}
	return m
}

func TestSessionUnknownGame(t *testing.T) {
	if _, err := NewSessionModel(nil, "missing", core.DefaultConfig(), 0.2, log.New(io.Discard)); err == nil {
		t.Error("expected an error for an unregistered game")
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if got := m.gameModel.opts.Preset; got != "normal" {
		t.Errorf("preset = %q, expected normal", got)
	}

	// Not started yet, so back returns to the menu without ending the program
	m, cmd = sessionUpdate(t, m, runeKey("b"))
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatal("back should return to the menu")
	}
	if cmd != nil {
		t.Error("returning to the menu should not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard should render")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || cmd != nil {
		t.Error("esc should return to the menu and keep the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	m, cmd := sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := newTestSession(t)
	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cfg := m.gameModel.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("game config = %dx%d, expected 100x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSessionUsesConfiguredKeyStep(t *testing.T) {
	m := newTestSession(t)
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	kb, ok := m.gameModel.opts.Control.(*control.Keyboard)
	if !ok {
		t.Fatalf("control = %T, expected keyboard", m.gameModel.opts.Control)
	}
	kb.Apply(core.ActionRight)
	if off, _ := kb.Sample(); off.X != 0.2 {
		t.Errorf("one key press moved %f, expected the configured 0.2", off.X)
	}
}
