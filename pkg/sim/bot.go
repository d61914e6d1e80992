package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/input"
	"github.com/gonewx/cardace/pkg/scenes"
	"github.com/gonewx/cardace/pkg/systems"
)

// Bot aims at the lowest falling card of the rank the run needs next and
// fires every Interval ticks.
type Bot struct {
	// Interval is the number of ticks between shots. Zero fires every tick.
	Interval int

	world *scenes.World
	ticks int
	shots int
}

// NewBot returns a bot that is bound to a world with Attach.
func NewBot(interval int) *Bot {
	return &Bot{Interval: interval}
}

// Attach binds the bot to the world it plays.
func (b *Bot) Attach(w *scenes.World) {
	b.world = w
}

// Shots returns the number of fire requests made so far.
func (b *Bot) Shots() int {
	return b.shots
}

// Aim turns the ship towards the predicted position of the target card.
// It reports false when there is nothing worth shooting at.
func (b *Bot) Aim(ship *ecs.Record) bool {
	if b.world == nil || b.world.State.Run == nil {
		return false
	}
	b.ticks++
	if b.Interval > 0 && b.ticks%b.Interval != 0 {
		return false
	}

	target, ok := b.target()
	if !ok {
		return false
	}
	aim := b.lead(ship.Transform.Position, target)
	if !input.OrientTowards(ship, aim) {
		return false
	}
	b.shots++
	return true
}

// target returns the lowest uncaptured card matching the next rank.
func (b *Bot) target() (*ecs.Record, bool) {
	want, ok := b.world.State.Run.Stack.Next()
	if !ok {
		return nil, false
	}
	var best *ecs.Record
	for _, id := range b.world.Entities.GetEntitiesWith(ecs.HasCard | ecs.HasTransform) {
		rec, _ := b.world.Entities.Get(id)
		if rec.Card.Captured || rec.Card.ID.RankLabel() != want {
			continue
		}
		if best == nil || rec.Transform.Position.Y() < best.Transform.Position.Y() {
			best = rec
		}
	}
	return best, best != nil
}

// lead extrapolates the card over the projectile's flight time.
func (b *Bot) lead(from mgl64.Vec3, card *ecs.Record) mgl64.Vec3 {
	pos := card.Transform.Position
	if card.Body == nil {
		return pos
	}
	t := pos.Sub(from).Len() / b.world.Config.Laser.Speed
	g := b.world.Config.Physics.Gravity * card.Body.GravityScale
	return pos.Add(card.Body.Velocity.Mul(t)).Add(mgl64.Vec3{0, 0.5 * g * t * t, 0})
}

var _ systems.Aimer = (*Bot)(nil)
