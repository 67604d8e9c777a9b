// Package control provides the sources that steer the avatar.
//
// Every source reduces its input to a core.Offset: (0, 0) aims at the
// center of the field and ±0.5 reaches its edges. Sources are sampled
// once per host frame and never block.
package control

import (
	"fmt"

	"github.com/vovakirdan/lose-weight/internal/core"
)

// EdgeOffset is the offset that puts the avatar on the edge of the field.
const EdgeOffset = 0.5

// Source yields the latest control offset.
type Source interface {
	// Sample returns the current offset, or false when there is no signal.
	Sample() (core.Offset, bool)

	// Ready reports whether the source can steer a run.
	Ready() bool

	// Name identifies the source in logs and on the start screen.
	Name() string
}

// Kind selects a control source on the command line.
type Kind string

const (
	KindKeys  Kind = "keys"
	KindMouse Kind = "mouse"
	KindFace  Kind = "face"
)

// ParseKind converts a CLI value into a source kind. Empty means keys.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return KindKeys, nil
	case KindKeys, KindMouse, KindFace:
		return Kind(s), nil
	}
	return "", fmt.Errorf("control: unknown source %q (want keys, mouse or face)", s)
}

// SampleOffset adapts a source to the nil-means-no-signal form the engine takes.
func SampleOffset(src Source) *core.Offset {
	if src == nil {
		return nil
	}
	off, ok := src.Sample()
	if !ok {
		return nil
	}
	return &off
}
