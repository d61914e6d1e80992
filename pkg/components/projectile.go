package components

// ProjectileComponent marks a laser shot fired by the ship.
type ProjectileComponent struct {
	Speed float64
}
