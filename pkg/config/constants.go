package config

// Window and loop constants. These are fixed at build time; gameplay tuning
// lives in GameConfig.
const (
	// GameWindowWidth is the logical screen width in pixels.
	GameWindowWidth = 800

	// GameWindowHeight is the logical screen height in pixels.
	GameWindowHeight = 600

	// WindowTitle is shown in the window decoration.
	WindowTitle = "Card Ace"

	// DefaultTPS is the number of logic ticks per second. One tick per frame.
	DefaultTPS = 60

	// BestTimeSentinel is the best time before any run has been completed.
	BestTimeSentinel = 10000.0

	// DefaultConfigPath is the embedded gameplay configuration.
	DefaultConfigPath = "data/game.yaml"
)

// Control schemes for firing and steering.
const (
	ControlKeyboard = "keyboard"
	ControlPointer  = "pointer"
)
