package events

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/ecs"
)

// ContactKind distinguishes the start and the end of an overlap.
type ContactKind int

const (
	ContactStarted ContactKind = iota
	ContactStopped
)

func (k ContactKind) String() string {
	if k == ContactStarted {
		return "started"
	}
	return "stopped"
}

// ContactEvent is reported by the physics collaborator for a pair of bodies.
// The order of A and B carries no meaning.
type ContactEvent struct {
	Kind ContactKind
	A, B ecs.EntityID
}

// Other returns the member of the pair that is not id, and whether id is in
// the pair at all.
func (e ContactEvent) Other(id ecs.EntityID) (ecs.EntityID, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return 0, false
}

// EffectRequest asks for a debris burst at a world position.
type EffectRequest struct {
	Position mgl64.Vec3
}

// KeyState is the edge a key event reports.
type KeyState int

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// KeyEvent is a keyboard edge, or a pointer release. Key is the engine's key
// name and is only used for logging; state transitions accept any key.
type KeyEvent struct {
	Key   string
	State KeyState
}

// CueKind selects an audio cue.
type CueKind int

const (
	CueHit CueKind = iota
	CueMiss
)
