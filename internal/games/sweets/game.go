// Package sweets implements "Lose Weight", a game where the player steers
// an avatar away from sweets thrown in from the edges of the field.
//
// Engine is the simulation core. Game adapts it to the arcade registry:
// it maps terminal cells to field pixels, turns platform actions into
// lifecycle calls and draws snapshots into a screen buffer.
package sweets

import (
	"time"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/core"
	"github.com/vovakirdan/lose-weight/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "sweets"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the configured progression.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of Engine.
type Game struct {
	engine  *Engine
	cfg     config.SweetsConfig
	runtime core.RuntimeConfig
	cellW   float64 // Field pixels per terminal column
	cellH   float64 // Field pixels per terminal row
	last    Snapshot

	controlReady bool
	controlHint  string
}

// New creates a new game instance.
func New() *Game {
	return &Game{controlReady: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lose Weight"
}

// Reset loads the configuration and builds a fresh engine waiting for start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSweets(configPath)
	if err != nil {
		cfg = config.DefaultSweetsConfig()
	}
	preset := difficultyPreset
	if p, err := config.ParsePreset(runtime.Preset); err == nil && p != "" {
		preset = p
	}
	if preset != "" {
		config.ApplySweetsPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.cellW, g.cellH = cfg.Field.CellWidth, cfg.Field.CellHeight
	if runtime.CellW > 0 {
		g.cellW = runtime.CellW
	}
	if runtime.CellH > 0 {
		g.cellH = runtime.CellH
	}

	w, h := g.fieldSize(runtime.ScreenW, runtime.ScreenH)
	g.engine = NewEngine(cfg, NewRand(runtime.Seed), w, h)
	g.last = g.engine.Snapshot()
}

// Resize adapts the field to a new terminal size without resetting the run.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	if g.engine == nil {
		return
	}
	g.engine.Resize(g.fieldSize(cols, rows))
	g.last = g.engine.Snapshot()
}

func (g *Game) fieldSize(cols, rows int) (float64, float64) {
	return float64(max(cols, 0)) * g.cellW, float64(max(rows, 0)) * g.cellH
}

// Step handles lifecycle actions and advances the simulation by the
// frame's elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.engine.Phase() {
	case PhaseNotStarted:
		if in.Has(core.ActionConfirm) && g.controlReady && g.engine.Start() {
			g.last = g.engine.Snapshot()
		}
		return core.StepResult{State: g.State()}
	case PhaseEnded:
		if in.Has(core.ActionRestart) && g.engine.Restart() {
			g.last = g.engine.Snapshot()
		}
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Tick(in.ElapsedMs, in.Control)
	g.last = res.Snapshot

	out := core.StepResult{State: g.State()}
	if res.Ended != nil {
		out.Ended = true
		out.Summary = g.runSummary(res.Ended.Summary)
	}
	return out
}

func (g *Game) runSummary(s Summary) *core.RunSummary {
	return &core.RunSummary{
		GameID:     g.ID(),
		Title:      g.Title(),
		Score:      s.FinalScore,
		Difficulty: s.Difficulty,
		Duration:   time.Duration(s.ElapsedMs * float64(time.Millisecond)),
		Spawned:    s.Spawned,
		Dodged:     s.Dodged,
	}
}

// SetControlStatus tells the game whether its control source is usable.
// Runs cannot start while it is not; hint is shown on the start screen.
func (g *Game) SetControlStatus(ready bool, hint string) {
	g.controlReady = ready
	g.controlHint = hint
}

// Engine exposes the simulation core.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns the snapshot taken after the last step.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.engine.Phase()
	return core.GameState{
		Score:    g.last.DisplayScore(),
		Started:  phase != PhaseNotStarted,
		GameOver: phase == PhaseEnded,
		Phase:    phase.String(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
