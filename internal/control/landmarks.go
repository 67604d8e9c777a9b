package control

import (
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/lose-weight/internal/core"
)

// Landmarks turns nose-tip positions from a face tracker into offsets.
//
// Positions are normalized to [0, 1] in a mirrored camera image, so a
// head moving to the player's left moves the landmark right. Updates
// arrive from network goroutines; Sample is called from the frame loop.
type Landmarks struct {
	mu          sync.Mutex
	sensitivity float64
	stale       time.Duration
	now         func() time.Time

	neutral   core.Vec2 // Landmark position that maps to the center
	last      core.Vec2
	updatedAt time.Time
	have      bool
	peers     int
}

// NewLandmarks creates a landmark source. Frames older than stale count
// as no signal.
func NewLandmarks(sensitivity float64, stale time.Duration) *Landmarks {
	return &Landmarks{
		sensitivity: sensitivity,
		stale:       stale,
		now:         time.Now,
		neutral:     core.V(0.5, 0.5),
	}
}

// Update records a new landmark. Non-finite positions are dropped.
func (l *Landmarks) Update(x, y float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = core.V(x, y)
	l.updatedAt = l.now()
	l.have = true
}

// Sample implements Source.
func (l *Landmarks) Sample() (core.Offset, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.have || l.now().Sub(l.updatedAt) > l.stale {
		return core.Offset{}, false
	}
	return core.Offset{
		X: (l.neutral.X - l.last.X) * l.sensitivity,
		Y: (l.last.Y - l.neutral.Y) * l.sensitivity,
	}, true
}

// Recenter makes the current head position the new neutral point.
func (l *Landmarks) Recenter() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.have {
		l.neutral = l.last
	}
}

// Ready implements Source. The feed is ready once a tracker is connected
// or has sent a frame.
func (l *Landmarks) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.peers > 0 || l.have
}

// Name implements Source.
func (l *Landmarks) Name() string {
	return "face"
}

// Peers returns the number of connected trackers.
func (l *Landmarks) Peers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.peers
}

func (l *Landmarks) connect() {
	l.mu.Lock()
	l.peers++
	l.mu.Unlock()
}

func (l *Landmarks) disconnect() {
	l.mu.Lock()
	l.peers--
	l.mu.Unlock()
}
