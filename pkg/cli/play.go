package cli

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gonewx/cardace/pkg/app"
	"github.com/gonewx/cardace/pkg/config"
)

func newPlayCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long: `Play opens the game window.

Keyboard controls: arrow keys steer, space fires.
Pointer controls: click a card to shoot at it.
F11 toggles fullscreen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, v)
		},
	}
}

func runPlay(cmd *cobra.Command, v *viper.Viper) error {
	s, cfg, log, err := setup(cmd, v)
	if err != nil {
		return err
	}

	game, err := app.NewApp(app.Config{
		Game:    cfg,
		Control: s.Control,
		Seed:    s.Seed,
		TPS:     s.TPS,
		Log:     log,
		Ctx:     cmd.Context(),
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.TPS)

	// RunGame returns nil when Update ends the loop with ebiten.Termination.
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
