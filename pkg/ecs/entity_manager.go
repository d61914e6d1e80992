// Package ecs stores the live entities of the play field.
//
// Entities live in an arena of typed records. An EntityID packs the slot index
// and the slot generation, so a handle kept after its entity was destroyed
// never resolves to the slot's next occupant.
package ecs

import (
	"github.com/gonewx/cardace/pkg/components"
)

// EntityID is a generational handle. Zero is never a valid entity.
type EntityID uint64

func makeID(slot uint32, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(slot+1))
}

func (id EntityID) slot() (uint32, bool) {
	low := uint32(id)
	if low == 0 {
		return 0, false
	}
	return low - 1, true
}

func (id EntityID) generation() uint32 {
	return uint32(id >> 32)
}

// Mask is a set of component kinds used by queries.
type Mask uint32

const (
	HasTransform Mask = 1 << iota
	HasBody
	HasCollider
	HasCard
	HasProjectile
	HasEffect
	HasShip
	HasCamera
	HasPrompt
)

// Record is one entity and its components. A nil field means the component
// is absent.
type Record struct {
	ID EntityID

	Transform  *components.TransformComponent
	Body       *components.BodyComponent
	Collider   *components.ColliderComponent
	Card       *components.CardComponent
	Projectile *components.ProjectileComponent
	Effect     *components.EffectComponent
	Ship       *components.ShipComponent
	Camera     *components.CameraComponent
	Prompt     *components.PromptComponent
}

// Mask reports which components the record carries.
func (r *Record) Mask() Mask {
	var m Mask
	if r.Transform != nil {
		m |= HasTransform
	}
	if r.Body != nil {
		m |= HasBody
	}
	if r.Collider != nil {
		m |= HasCollider
	}
	if r.Card != nil {
		m |= HasCard
	}
	if r.Projectile != nil {
		m |= HasProjectile
	}
	if r.Effect != nil {
		m |= HasEffect
	}
	if r.Ship != nil {
		m |= HasShip
	}
	if r.Camera != nil {
		m |= HasCamera
	}
	if r.Prompt != nil {
		m |= HasPrompt
	}
	return m
}

type slotState uint8

const (
	slotFree slotState = iota
	slotLive
	slotDoomed // destroyed this tick, waiting for RemoveMarkedEntities
)

type slot struct {
	gen    uint32
	state  slotState
	record *Record
}

// EntityManager owns every entity of the play field.
type EntityManager struct {
	slots             []slot
	free              []uint32
	entitiesToDestroy []EntityID
	live              int
}

// NewEntityManager creates an empty arena.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		slots:             make([]slot, 0, 128),
		free:              make([]uint32, 0),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a new entity with no components.
func (em *EntityManager) CreateEntity() EntityID {
	var idx uint32
	if n := len(em.free); n > 0 {
		idx = em.free[n-1]
		em.free = em.free[:n-1]
	} else {
		idx = uint32(len(em.slots))
		em.slots = append(em.slots, slot{})
	}
	s := &em.slots[idx]
	id := makeID(idx, s.gen)
	s.state = slotLive
	s.record = &Record{ID: id}
	em.live++
	return id
}

// Get returns the record of a live entity. Entities destroyed earlier in the
// same tick are no longer returned.
func (em *EntityManager) Get(id EntityID) (*Record, bool) {
	s, ok := em.lookup(id)
	if !ok || s.state != slotLive {
		return nil, false
	}
	return s.record, true
}

// IsAlive reports whether id refers to a live entity.
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.Get(id)
	return ok
}

// DestroyEntity removes the entity from every query at once. Its slot is
// reclaimed by RemoveMarkedEntities. Destroying a dead handle is a no-op.
func (em *EntityManager) DestroyEntity(id EntityID) {
	s, ok := em.lookup(id)
	if !ok || s.state != slotLive {
		return
	}
	s.state = slotDoomed
	em.live--
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities reclaims the slots of destroyed entities.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		idx, _ := id.slot()
		s := &em.slots[idx]
		s.record = nil
		s.state = slotFree
		s.gen++
		em.free = append(em.free, idx)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith returns the live entities carrying every component in mask,
// in slot order so that iteration is deterministic.
func (em *EntityManager) GetEntitiesWith(mask Mask) []EntityID {
	result := make([]EntityID, 0)
	for i := range em.slots {
		s := &em.slots[i]
		if s.state != slotLive {
			continue
		}
		if s.record.Mask()&mask == mask {
			result = append(result, s.record.ID)
		}
	}
	return result
}

// Count returns the number of live entities.
func (em *EntityManager) Count() int {
	return em.live
}

func (em *EntityManager) lookup(id EntityID) (*slot, bool) {
	idx, ok := id.slot()
	if !ok || int(idx) >= len(em.slots) {
		return nil, false
	}
	s := &em.slots[idx]
	if s.gen != id.generation() {
		return nil, false
	}
	return s, true
}
