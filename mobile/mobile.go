//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build with the mobile tag:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.cardace -o build/android/cardace.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Cardace.xcframework ./mobile
//
// Phones have no keyboard, so the game runs with the pointer scheme: tap a
// card to shoot at it, tap anywhere to leave the title and game over screens.
package mobile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/cardace/pkg/app"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/logging"
)

func init() {
	log := logging.New(true, nil)
	gameApp, err := app.NewApp(app.Config{
		Game:    config.DefaultGameConfig(),
		Control: config.ControlPointer,
		Seed:    time.Now().UnixNano(),
		Log:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init game")
	}
	mobile.SetGame(gameApp)
}

// Dummy makes the package visible to ebitenmobile.
func Dummy() {}
