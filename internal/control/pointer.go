package control

import "github.com/vovakirdan/lose-weight/internal/core"

// Pointer follows the mouse. Until the first motion event it has no signal.
type Pointer struct {
	cols, rows int
	pos        core.Offset
	seen       bool
}

// NewPointer creates a pointer source for a screen of cols x rows cells.
func NewPointer(cols, rows int) *Pointer {
	return &Pointer{cols: cols, rows: rows}
}

// SetBounds updates the screen size after a resize.
func (p *Pointer) SetBounds(cols, rows int) {
	p.cols, p.rows = cols, rows
}

// Move records the mouse at cell (col, row).
func (p *Pointer) Move(col, row int) {
	if p.cols <= 0 || p.rows <= 0 {
		return
	}
	p.pos = core.Offset{
		X: (float64(col)+0.5)/float64(p.cols) - 0.5,
		Y: (float64(row)+0.5)/float64(p.rows) - 0.5,
	}
	p.seen = true
}

// Sample implements Source.
func (p *Pointer) Sample() (core.Offset, bool) {
	return p.pos, p.seen
}

// Ready implements Source.
func (p *Pointer) Ready() bool {
	return true
}

// Name implements Source.
func (p *Pointer) Name() string {
	return "mouse"
}
