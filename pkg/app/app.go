// Package app wraps the game world in an ebiten.Game.
//
// main builds the App through the play command; the world itself knows
// nothing about windows, fullscreen or the audio device.
package app

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/audio"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/input"
	"github.com/gonewx/cardace/pkg/logging"
	"github.com/gonewx/cardace/pkg/scenes"
	"github.com/gonewx/cardace/pkg/telemetry"
)

// Config defines how the application starts.
type Config struct {
	Game    *config.GameConfig
	Control string
	Seed    int64
	// TPS is the fixed tick rate; every tick advances the world by 1/TPS.
	TPS int
	Log zerolog.Logger
	// Ctx ends the game loop when done. Nil never ends it.
	Ctx context.Context
}

// App is the ebiten.Game driving one World.
type App struct {
	world *scenes.World
	ctx   context.Context
	keys  input.KeyCollector
	log   zerolog.Logger
	dt    float64

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp builds the world and, when enabled, the audio cue player.
func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil {
		cfg.Game = config.DefaultGameConfig()
	}
	if cfg.TPS <= 0 {
		cfg.TPS = config.DefaultTPS
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	log := logging.Component(cfg.Log, "App")

	metrics, err := telemetry.New()
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	var sound audio.Cues = audio.NopCues{}
	if cfg.Game.Audio.Enabled {
		p, err := audio.NewPlayer(cfg.Game.Audio)
		if err != nil {
			return nil, fmt.Errorf("init audio: %w", err)
		}
		sound = p
		log.Debug().Int("sample_rate", cfg.Game.Audio.SampleRate).Msg("audio cues ready")
	}

	w, err := scenes.NewWorld(scenes.Options{
		Config:  cfg.Game,
		Control: cfg.Control,
		Seed:    cfg.Seed,
		Log:     cfg.Log,
		Metrics: metrics,
		Sound:   sound,
	})
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	log.Info().Str("control", cfg.Control).Int64("seed", cfg.Seed).Int("tps", cfg.TPS).Msg("app started")
	return &App{world: w, ctx: cfg.Ctx, log: log, dt: 1.0 / float64(cfg.TPS)}, nil
}

// Update advances the world by one tick. An error from the world ends the
// game loop; so does the app context, with ebiten.Termination.
func (a *App) Update() error {
	if err := a.ctx.Err(); err != nil {
		a.log.Info().Err(err).Msg("shutting down")
		return ebiten.Termination
	}

	// Leaving fullscreen needs a few frames before the window size sticks.
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.log.Debug().Msg("window size reset")
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.keys.Collect(a.world.Keys)
	if err := a.world.Update(a.dt); err != nil {
		a.log.Error().Err(err).Str("state", a.world.Scenes.Current().String()).Msg("tick failed")
		return err
	}
	return nil
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.world.Scenes.Draw(screen)
}

// DrawFinalScreen letterboxes the logical screen in black when fullscreen.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// World exposes the simulated world.
func (a *App) World() *scenes.World {
	return a.world
}
