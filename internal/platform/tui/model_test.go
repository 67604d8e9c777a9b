package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lose-weight/internal/control"
	"github.com/vovakirdan/lose-weight/internal/core"
	"github.com/vovakirdan/lose-weight/internal/storage"
)

// fakeGame records what the host hands it.
type fakeGame struct {
	resets  int
	resized [][2]int
	frames  []core.InputFrame
	state   core.GameState
	endNext bool // Report Ended on every step once set
	ready   bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(cols, rows int) { g.resized = append(g.resized, [2]int{cols, rows}) }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) SetControlStatus(r bool, _ string) { g.ready = r }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := in
	if in.Control != nil {
		off := *in.Control
		frame.Control = &off
	}
	frame.Actions = nil
	g.frames = append(g.frames, frame)

	if !g.endNext {
		return core.StepResult{State: g.state}
	}
	g.state.GameOver = true
	return core.StepResult{
		State: g.state,
		Ended: true,
		Summary: &core.RunSummary{
			GameID:   "fake",
			Title:    "Fake",
			Score:    42,
			Duration: 4200 * time.Millisecond,
			Spawned:  7,
			Dodged:   6,
		},
	}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func newTestModel(t *testing.T, g *fakeGame, opts GameOptions) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewGameModel(g, nil, cfg, opts)
}

func TestFrameClock(t *testing.T) {
	var c frameClock
	t0 := time.Unix(100, 0)

	if dt := c.Elapsed(t0); dt != 0 {
		t.Errorf("first tick should report 0, got %f", dt)
	}
	if dt := c.Elapsed(t0.Add(16 * time.Millisecond)); dt != 16 {
		t.Errorf("expected 16ms, got %f", dt)
	}
	if dt := c.Elapsed(t0); dt != 0 {
		t.Errorf("time going backwards should report 0, got %f", dt)
	}

	c.Reset()
	if dt := c.Elapsed(t0.Add(time.Hour)); dt != 0 {
		t.Errorf("first tick after reset should report 0, got %f", dt)
	}
}

func TestGameModelResetsOnCreate(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, GameOptions{})
	if g.resets != 1 {
		t.Errorf("expected one reset, got %d", g.resets)
	}
}

func TestGameModelMeasuresElapsed(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{})

	t0 := time.Unix(100, 0)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(20*time.Millisecond)))

	if len(g.frames) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.frames))
	}
	if g.frames[0].ElapsedMs != 0 || g.frames[1].ElapsedMs != 20 {
		t.Errorf("elapsed = %f, %f, expected 0, 20", g.frames[0].ElapsedMs, g.frames[1].ElapsedMs)
	}
	if !g.ready {
		t.Error("keyboard control should be reported ready")
	}
}

func TestGameModelSamplesControl(t *testing.T) {
	g := &fakeGame{}
	kb := control.NewKeyboard(0.1)
	m := newTestModel(t, g, GameOptions{Control: kb})

	m, _ = update(t, m, runeKey("d"))
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))

	if len(g.frames) != 1 || g.frames[0].Control == nil {
		t.Fatal("expected one step with a control offset")
	}
	if got := *g.frames[0].Control; got != (core.Offset{X: 0.1}) {
		t.Errorf("control = %v, expected (0.1, 0)", got)
	}
}

func TestGameModelPauseResetsClock(t *testing.T) {
	g := &fakeGame{state: core.GameState{Started: true}}
	m := newTestModel(t, g, GameOptions{})

	t0 := time.Unix(100, 0)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg(t0.Add(time.Second)))

	if len(g.frames) != 1 {
		t.Fatalf("paused ticks should not step the game, got %d steps", len(g.frames))
	}

	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Second)))
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Second+16*time.Millisecond)))

	if len(g.frames) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(g.frames))
	}
	if g.frames[1].ElapsedMs != 0 {
		t.Errorf("first tick after resume should be 0, got %f", g.frames[1].ElapsedMs)
	}
	if g.frames[2].ElapsedMs != 16 {
		t.Errorf("expected 16ms, got %f", g.frames[2].ElapsedMs)
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{state: core.GameState{Started: true}}
	m := newTestModel(t, g, GameOptions{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if len(g.resized) != 1 || g.resized[0] != [2]int{120, 40} {
		t.Errorf("resized = %v, expected [[120 40]]", g.resized)
	}
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Started: true}}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cardDir := filepath.Join(dir, "cards")
	m := NewGameModel(g, store, cfg, GameOptions{Preset: "hard", CardDir: cardDir})

	g.endNext = true
	t0 := time.Unix(100, 0)
	for i := range 3 {
		m, _ = update(t, m, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
	}

	runs, err := store.AllRuns("fake")
	if err != nil {
		t.Fatalf("AllRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 42 || r.Preset != "hard" || r.Control != "keyboard" || r.Dodged != 6 {
		t.Errorf("unexpected run %+v", r)
	}

	entries, err := os.ReadDir(cardDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 card, got %d", len(entries))
	}
	if m.highScore != 42 {
		t.Errorf("highScore = %d, expected 42", m.highScore)
	}
	if m.shareText != "I scored 42 in Fake! Can you beat me?" {
		t.Errorf("shareText = %q", m.shareText)
	}
}

func TestGameModelBack(t *testing.T) {
	g := &fakeGame{state: core.GameState{Started: true}}
	m := newTestModel(t, g, GameOptions{})

	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))
	m, cmd := update(t, m, runeKey("b"))
	if m.BackToMenu() || cmd != nil {
		t.Error("back should be ignored while a run is in progress")
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Unix(101, 0)))
	m, cmd = update(t, m, runeKey("b"))
	if !m.BackToMenu() || cmd == nil {
		t.Error("back after game over should leave the program")
	}
}

func TestGameModelEmbeddedBack(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, GameOptions{Embedded: true})

	m, cmd := update(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("back before start should return to the menu")
	}
	if cmd != nil {
		t.Error("embedded model should not end the program on back")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, GameOptions{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}
