package systems

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/events"
)

// PhysicsSystem is the built-in physics collaborator: it integrates rigid
// bodies and reports contact started/stopped events between colliders.
//
// There is no collision response. A pair is tested only when at least one of
// its colliders reports contacts, and each collider is approximated by the
// axis-aligned box that encloses its oriented box.
type PhysicsSystem struct {
	em       *ecs.EntityManager
	gravity  float64
	contacts *events.Queue[events.ContactEvent]
	active   map[contactPair]struct{}
}

type contactPair struct {
	a, b ecs.EntityID
}

func newContactPair(a, b ecs.EntityID) contactPair {
	if b < a {
		a, b = b, a
	}
	return contactPair{a: a, b: b}
}

// NewPhysicsSystem creates the stepper.
//
// Parameters:
//   - em: entity manager holding bodies and colliders
//   - cfg: gravity along Y
//   - contacts: queue receiving the contact events of each step
func NewPhysicsSystem(em *ecs.EntityManager, cfg config.PhysicsConfig, contacts *events.Queue[events.ContactEvent]) *PhysicsSystem {
	return &PhysicsSystem{
		em:       em,
		gravity:  cfg.Gravity,
		contacts: contacts,
		active:   make(map[contactPair]struct{}),
	}
}

// Update advances every body by deltaTime, then reports contact changes.
// Started events come in slot order of the pair members, stopped events
// after them in handle order.
func (s *PhysicsSystem) Update(deltaTime float64) {
	s.integrate(deltaTime)
	s.detect()
}

// Reset forgets the overlapping pairs without reporting them.
func (s *PhysicsSystem) Reset() {
	clear(s.active)
}

func (s *PhysicsSystem) integrate(deltaTime float64) {
	for _, id := range s.em.GetEntitiesWith(ecs.HasTransform | ecs.HasBody) {
		rec, _ := s.em.Get(id)
		body := rec.Body
		if body.Kind == components.BodyDynamic {
			body.Velocity[1] += s.gravity * body.GravityScale * deltaTime
		}
		rec.Transform.Position = rec.Transform.Position.Add(body.Velocity.Mul(deltaTime))
	}
}

type collisionBox struct {
	id     ecs.EntityID
	center mgl64.Vec3
	half   mgl64.Vec3
	report bool
}

func (s *PhysicsSystem) detect() {
	ids := s.em.GetEntitiesWith(ecs.HasTransform | ecs.HasCollider)
	boxes := make([]collisionBox, 0, len(ids))
	for _, id := range ids {
		rec, _ := s.em.Get(id)
		boxes = append(boxes, collisionBox{
			id:     id,
			center: rec.Transform.Position,
			half:   enclosingHalfExtents(rec.Transform.Rotation, rec.Collider.HalfExtents),
			report: rec.Collider.ReportContacts,
		})
	}

	current := make(map[contactPair]struct{}, len(s.active))
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			a, b := &boxes[i], &boxes[j]
			if !a.report && !b.report {
				continue
			}
			if !overlaps(a, b) {
				continue
			}
			pair := newContactPair(a.id, b.id)
			current[pair] = struct{}{}
			if _, ok := s.active[pair]; !ok {
				s.contacts.Push(events.ContactEvent{Kind: events.ContactStarted, A: a.id, B: b.id})
			}
		}
	}

	stopped := make([]contactPair, 0)
	for pair := range s.active {
		if _, ok := current[pair]; !ok {
			stopped = append(stopped, pair)
		}
	}
	slices.SortFunc(stopped, func(x, y contactPair) int {
		if x.a != y.a {
			return cmpID(x.a, y.a)
		}
		return cmpID(x.b, y.b)
	})
	for _, pair := range stopped {
		s.contacts.Push(events.ContactEvent{Kind: events.ContactStopped, A: pair.a, B: pair.b})
	}
	s.active = current
}

func cmpID(x, y ecs.EntityID) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func overlaps(a, b *collisionBox) bool {
	for axis := 0; axis < 3; axis++ {
		if math.Abs(a.center[axis]-b.center[axis]) > a.half[axis]+b.half[axis] {
			return false
		}
	}
	return true
}

// enclosingHalfExtents returns the half size of the world axis-aligned box
// around an oriented box.
func enclosingHalfExtents(rot mgl64.Quat, half mgl64.Vec3) mgl64.Vec3 {
	m := rot.Normalize().Mat4()
	var out mgl64.Vec3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row] += math.Abs(m.At(row, col)) * half[col]
		}
	}
	return out
}
