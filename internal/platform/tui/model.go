package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/control"
	"github.com/vovakirdan/lose-weight/internal/core"
	"github.com/vovakirdan/lose-weight/internal/registry"
	"github.com/vovakirdan/lose-weight/internal/storage"
	"github.com/vovakirdan/lose-weight/internal/summary"
)

// controlAware is implemented by games that react to control readiness.
type controlAware interface {
	SetControlStatus(ready bool, hint string)
}

// GameOptions configures a play session.
type GameOptions struct {
	// Preset is recorded with saved runs.
	Preset string

	// Control steers the avatar. Nil means keyboard.
	Control control.Source

	// Hint is shown while the control source is not ready.
	Hint string

	// CardDir receives a PNG score card per finished run. Empty disables cards.
	CardDir string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Embedded is set when the model runs inside another program, such as
	// an SSH session. Going back to the menu then leaves the program running.
	Embedded bool
}

// GameModel runs one game: it measures frame time, samples the control
// source, steps the game and persists finished runs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	clock      *frameClock
	paused     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current finished run has been recorded
	highScore  int
	cardPath   string
	shareText  string
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Control == nil {
		opts.Control = control.NewKeyboard(config.DefaultSweetsConfig().Control.KeyStep)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		clock:      &frameClock{},
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.highScore = high
		}
	}

	// Reset here rather than in Init: Init has a value receiver and
	// could not keep the state.
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.opts.Logger.Info("game started", "game", m.game.ID(), "control", m.opts.Control.Name(), "preset", m.opts.Preset)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := m.opts.Control.(*control.Pointer); ok {
			p.Move(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Back to menu only when no run is in progress
		if m.gameState.GameOver || m.paused || !m.gameState.Started {
			m.backToMenu = true
			if m.opts.Embedded {
				return m, nil
			}
			return m, tea.Quit
		}
	case core.ActionPause:
		if m.gameState.Started && !m.gameState.GameOver {
			m.paused = !m.paused
			m.clock.Reset()
		}
		return m, nil
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionCenter:
		m.steer(action)
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// steer forwards direction keys to sources that use them.
func (m GameModel) steer(action core.Action) {
	switch src := m.opts.Control.(type) {
	case *control.Keyboard:
		src.Apply(action)
	case *control.Landmarks:
		if action == core.ActionCenter {
			src.Recenter()
		}
	}
}

// handleResize processes window resize events without restarting the run.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	if p, ok := m.opts.Control.(*control.Pointer); ok {
		p.SetBounds(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if g, ok := m.game.(controlAware); ok {
		g.SetControlStatus(m.opts.Control.Ready(), m.opts.Hint)
	}

	m.inputFrame.ElapsedMs = m.clock.Elapsed(now)
	m.inputFrame.Control = control.SampleOffset(m.opts.Control)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
		m.cardPath, m.shareText = "", ""
	}
	if result.Ended && result.Summary != nil && !m.scoreSaved {
		m.finishRun(result.Summary)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun records a run exactly once and writes its score card.
func (m *GameModel) finishRun(s *core.RunSummary) {
	m.scoreSaved = true
	m.shareText = summary.ShareText(*s)
	m.opts.Logger.Info("run ended", "score", s.Score, "duration", s.Duration, "dodged", s.Dodged)

	if m.store != nil {
		_, err := m.store.SaveRun(storage.Run{
			GameID:     s.GameID,
			Score:      s.Score,
			Preset:     m.opts.Preset,
			Control:    m.opts.Control.Name(),
			Duration:   s.Duration,
			Spawned:    s.Spawned,
			Dodged:     s.Dodged,
			Difficulty: s.Difficulty,
		})
		if err != nil {
			m.opts.Logger.Warn("could not save run", "error", err)
		}
	}
	m.highScore = max(m.highScore, s.Score)

	if m.opts.CardDir != "" {
		path, err := summary.Save(m.opts.CardDir, *s, time.Now())
		if err != nil {
			m.opts.Logger.Warn("could not write score card", "error", err)
			return
		}
		m.cardPath = path
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".sweets", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	m.drawStatus()
	return RenderScreen(m.screen)
}

// drawStatus adds platform information on top of the game frame.
func (m GameModel) drawStatus() {
	s := m.screen
	h := s.Height()

	s.DrawTextColored(1, 0, fmt.Sprintf("best %d", m.highScore), core.ColorGray)

	if m.paused {
		s.DrawTextCentered(h/2, " PAUSED  P: resume  B: menu ", core.ColorYellow)
	}
	if m.gameState.GameOver {
		if m.shareText != "" {
			s.DrawTextCentered(h-2, m.shareText, core.ColorPink)
		}
		if m.cardPath != "" {
			s.DrawTextCentered(h-1, "card saved to "+m.cardPath, core.ColorGray)
		}
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, updated by resizes.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays a game in the current terminal.
// It returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if _, ok := model.opts.Control.(*control.Pointer); ok {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	finalModel, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
