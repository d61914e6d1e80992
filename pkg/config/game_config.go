package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// GameConfig holds every gameplay tuning value.
//
// Shipped defaults: data/game.yaml. A file only needs the keys it overrides;
// the rest keep the values of DefaultGameConfig.
type GameConfig struct {
	Ship    ShipConfig    `yaml:"ship"`
	Camera  CameraConfig  `yaml:"camera"`
	Laser   LaserConfig   `yaml:"laser"`
	Card    CardConfig    `yaml:"card"`
	Effect  EffectConfig  `yaml:"effect"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ShipConfig positions and steers the player ship.
type ShipConfig struct {
	Position mgl64.Vec3 `yaml:"position"`
	// Follow is the smoothing rate applied to steering input, per second.
	Follow float64 `yaml:"follow"`
	// TurnRate is radians per second at full input.
	TurnRate float64 `yaml:"turnRate"`
	// MaxAngle clamps yaw and pitch, radians.
	MaxAngle float64 `yaml:"maxAngle"`
}

// CameraConfig is the fixed viewpoint. The camera looks at the ship plus LookOffset.
type CameraConfig struct {
	Eye        mgl64.Vec3 `yaml:"eye"`
	LookOffset mgl64.Vec3 `yaml:"lookOffset"`
	FovY       float64    `yaml:"fovY"`
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
}

// LaserConfig controls projectile admission and flight.
type LaserConfig struct {
	// Max is the admission cap on live projectiles.
	Max int `yaml:"max"`
	// StrictCap admits while count < Max. The default admits while
	// count <= Max, which lets Max+1 projectiles live at once.
	StrictCap   bool       `yaml:"strictCap"`
	Speed       float64    `yaml:"speed"`
	MaxDistance float64    `yaml:"maxDistance"`
	Size        mgl64.Vec3 `yaml:"size"`
}

// CardConfig controls the falling cards and the trophy row.
type CardConfig struct {
	SpawnInterval float64 `yaml:"spawnInterval"`
	// LimitX bounds the random horizontal offset from the ship, both sides.
	LimitX       float64    `yaml:"limitX"`
	DropHeight   float64    `yaml:"dropHeight"`
	Depth        float64    `yaml:"depth"`
	FloorY       float64    `yaml:"floorY"`
	Width        float64    `yaml:"width"`
	Aspect       float64    `yaml:"aspect"`
	GravityScale float64    `yaml:"gravityScale"`
	TrophyOrigin mgl64.Vec3 `yaml:"trophyOrigin"`
	TrophyStep   float64    `yaml:"trophyStep"`
}

// EffectConfig controls the debris burst spawned on every hit.
// The grid spans [GridMin, GridMax) on each axis in steps of one piece.
type EffectConfig struct {
	Lifetime float64    `yaml:"lifetime"`
	Size     float64    `yaml:"size"`
	GridMin  [3]int     `yaml:"gridMin"`
	GridMax  [3]int     `yaml:"gridMax"`
	Impulse  float64    `yaml:"impulse"`
	Mass     float64    `yaml:"mass"`
	Lift     float64    `yaml:"lift"`
	Color    [3]float64 `yaml:"color"`
}

// PhysicsConfig tunes the built-in physics stepper.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// AudioConfig toggles the hit and miss cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
}

// DefaultGameConfig returns the shipped tuning, identical to data/game.yaml.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Ship: ShipConfig{
			Position: mgl64.Vec3{0, -1, -8},
			Follow:   1.6,
			TurnRate: 1.0,
			MaxAngle: 0.9,
		},
		Camera: CameraConfig{
			Eye:        mgl64.Vec3{0, 1, 0},
			LookOffset: mgl64.Vec3{0, 1, 0},
			FovY:       45,
			Near:       0.1,
			Far:        1000,
		},
		Laser: LaserConfig{
			Max:         10,
			StrictCap:   false,
			Speed:       48,
			MaxDistance: 50,
			Size:        mgl64.Vec3{0.1, 0.1, 1.6},
		},
		Card: CardConfig{
			SpawnInterval: 2.0,
			LimitX:        8,
			DropHeight:    8,
			Depth:         -16,
			FloorY:        -20,
			Width:         3.2,
			Aspect:        1.0,
			GravityScale:  0.5,
			TrophyOrigin:  mgl64.Vec3{-15, -12.5, -28},
			TrophyStep:    1,
		},
		Effect: EffectConfig{
			Lifetime: 2.0,
			Size:     0.1,
			GridMin:  [3]int{-2, 0, -2},
			GridMax:  [3]int{2, 2, 2},
			Impulse:  0.01,
			Mass:     0.001,
			Lift:     0.01,
			Color:    [3]float64{1.0, 0.5, 0.0},
		},
		Physics: PhysicsConfig{
			Gravity: -9.81,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
		},
	}
}

// LoadGameConfig reads a YAML file over the defaults.
//
// Parameters:
//   - path: config file path, e.g. "data/game.yaml"
//
// Returns:
//   - *GameConfig: the validated config
//   - error: read, parse or validation failure
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig decodes YAML bytes over the defaults and validates the result.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every value keeps the simulation well defined.
func (c *GameConfig) Validate() error {
	if c.Laser.Max <= 0 {
		return fmt.Errorf("laser.max must be positive, got %d", c.Laser.Max)
	}
	if c.Laser.Speed <= 0 {
		return fmt.Errorf("laser.speed must be positive, got %.2f", c.Laser.Speed)
	}
	if c.Laser.MaxDistance <= 0 {
		return fmt.Errorf("laser.maxDistance must be positive, got %.2f", c.Laser.MaxDistance)
	}
	for i, v := range c.Laser.Size {
		if v <= 0 {
			return fmt.Errorf("laser.size[%d] must be positive, got %.2f", i, v)
		}
	}

	if c.Card.SpawnInterval <= 0 {
		return fmt.Errorf("card.spawnInterval must be positive, got %.2f", c.Card.SpawnInterval)
	}
	if c.Card.LimitX < 0 {
		return fmt.Errorf("card.limitX must not be negative, got %.2f", c.Card.LimitX)
	}
	if c.Card.Width <= 0 || c.Card.Aspect <= 0 {
		return fmt.Errorf("card.width and card.aspect must be positive, got %.2f and %.2f",
			c.Card.Width, c.Card.Aspect)
	}
	// The floor must sit below the drop point or every card is reaped on spawn.
	if c.Card.FloorY >= c.Ship.Position.Y()+c.Card.DropHeight {
		return fmt.Errorf("card.floorY(%.1f) must be below the drop height(%.1f)",
			c.Card.FloorY, c.Ship.Position.Y()+c.Card.DropHeight)
	}

	if c.Effect.Lifetime <= 0 {
		return fmt.Errorf("effect.lifetime must be positive, got %.2f", c.Effect.Lifetime)
	}
	if c.Effect.Mass <= 0 {
		return fmt.Errorf("effect.mass must be positive, got %f", c.Effect.Mass)
	}
	for axis := 0; axis < 3; axis++ {
		if c.Effect.GridMin[axis] >= c.Effect.GridMax[axis] {
			return fmt.Errorf("effect grid axis %d invalid: min(%d) >= max(%d)",
				axis, c.Effect.GridMin[axis], c.Effect.GridMax[axis])
		}
	}

	if c.Ship.MaxAngle <= 0 {
		return fmt.Errorf("ship.maxAngle must be positive, got %.2f", c.Ship.MaxAngle)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%.2f far=%.2f", c.Camera.Near, c.Camera.Far)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// DebrisPerBurst returns the number of pieces in one effect burst.
func (c EffectConfig) DebrisPerBurst() int {
	n := 1
	for axis := 0; axis < 3; axis++ {
		n *= c.GridMax[axis] - c.GridMin[axis]
	}
	return n
}

// Admits reports whether a new projectile may spawn with count already live.
func (c LaserConfig) Admits(count int) bool {
	if c.StrictCap {
		return count < c.Max
	}
	return count <= c.Max
}
