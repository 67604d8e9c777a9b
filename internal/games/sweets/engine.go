package sweets

import (
	"math"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/core"
)

// Engine runs the sweet-dodging simulation.
//
// It is driven from a single goroutine: Start, Restart, Tick and Resize
// must not be called concurrently. The engine never blocks, never reads a
// clock and never fails; invalid input degrades to a no-op.
type Engine struct {
	cfg        config.SweetsConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	field      Field
	state      *RunState
	ended      *EndedEvent
}

// TickResult is what one tick hands to the presenter.
type TickResult struct {
	Snapshot Snapshot

	// Ended is non-nil only on the tick that ended the run.
	Ended *EndedEvent
}

// NewEngine creates an engine in the NotStarted phase for a field of
// width x height pixels.
func NewEngine(cfg config.SweetsConfig, rng Rand, width, height float64) *Engine {
	if rng == nil {
		rng = NewRand(1)
	}
	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		spawner:    NewSpawner(cfg.Sweets, rng),
	}
	if validSize(width) && validSize(height) {
		e.field = Field{W: width, H: height}
	}
	e.state = newRunState(e.field.Center())
	return e
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Start begins the first run. It is a no-op unless the engine has not
// started yet, and reports whether the run began.
func (e *Engine) Start() bool {
	if e.state.Phase != PhaseNotStarted {
		return false
	}
	e.begin()
	return true
}

// Restart begins a fresh run after the previous one ended and discards
// its summary. It is a no-op in any other phase.
func (e *Engine) Restart() bool {
	if e.state.Phase != PhaseEnded {
		return false
	}
	e.ended = nil
	e.begin()
	return true
}

func (e *Engine) begin() {
	e.state = newRunState(e.field.Center())
	e.state.Phase = PhaseRunning
}

// Resize changes the field dimensions. Negative or non-finite sizes are
// ignored. Existing sweets keep their positions; the avatar is moved back
// inside the new bounds.
func (e *Engine) Resize(width, height float64) {
	if !validSize(width) || !validSize(height) {
		return
	}
	e.field = Field{W: width, H: height}
	if e.state.Phase == PhaseNotStarted {
		e.state.Avatar.Pos = e.field.Center()
		return
	}
	e.state.Avatar.Pos = e.field.Inset(e.state.Avatar.Pos, e.cfg.Avatar.Radius)
}

// Tick advances a running simulation by dt milliseconds.
// ctrl is the latest control offset, or nil when no signal is available.
//
// Order within a tick: score and difficulty, spawning, avatar motion,
// sweet motion, collision, culling. A hit ends the run at once and the
// remaining steps are skipped.
func (e *Engine) Tick(dt float64, ctrl *core.Offset) TickResult {
	if e.state.Phase != PhaseRunning || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return TickResult{Snapshot: e.Snapshot()}
	}
	dt = max(dt, 0)
	ctrl = e.sanitizeControl(ctrl)

	if e.advanceClock(dt) {
		e.spawn()
	}
	e.moveAvatar(dt, ctrl)
	e.integrate(dt)

	if e.firstHit() >= 0 {
		ev := e.end()
		return TickResult{Snapshot: e.Snapshot(), Ended: &ev}
	}
	e.cull()

	return TickResult{Snapshot: e.Snapshot()}
}

// end freezes the run and records its summary.
func (e *Engine) end() EndedEvent {
	s := e.state
	s.Phase = PhaseEnded
	sum := Summary{
		FinalScore: int(math.Floor(s.Score)),
		Difficulty: s.Difficulty,
		ElapsedMs:  s.Elapsed,
		Spawned:    s.Spawned,
		Dodged:     s.Dodged,
	}
	ev := EndedEvent{FinalScore: sum.FinalScore, Phase: PhaseEnded, Summary: sum}
	e.ended = &ev
	return ev
}

// Ended returns the event of the last finished run, if the engine is in
// the Ended phase.
func (e *Engine) Ended() (EndedEvent, bool) {
	if e.ended == nil {
		return EndedEvent{}, false
	}
	return *e.ended, true
}

// Field returns the current field size.
func (e *Engine) Field() Field {
	return e.field
}

// Config returns the tunables the engine was built with.
func (e *Engine) Config() config.SweetsConfig {
	return e.cfg
}
