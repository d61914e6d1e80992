package components

// EffectComponent marks a cosmetic debris piece. Nothing in the game logic
// reads it apart from the reaper, which removes it when Lifetime finishes.
type EffectComponent struct {
	Lifetime TimerComponent
}
