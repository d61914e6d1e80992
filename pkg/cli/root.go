// Package cli holds the cardace command tree.
//
// Process settings come from flags, CARDACE_* environment variables or their
// defaults, in that order of precedence. Gameplay tuning comes from a YAML
// file, the embedded data/game.yaml when no file is given.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/embedded"
	"github.com/gonewx/cardace/pkg/logging"
)

// Setting keys shared by flags and environment variables.
const (
	keyVerbose = "verbose"
	keyConfig  = "config"
	keyControl = "control"
	keySeed    = "seed"
	keyTPS     = "tps"
)

// settings are the resolved process settings of one invocation.
type settings struct {
	Verbose bool
	Config  string
	Control string
	Seed    int64
	TPS     int
}

// NewRootCmd builds the command tree. Running the root command plays the game.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CARDACE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "cardace",
		Short: "Shoot the falling cards in rank order, two to ace",
		Long: `Cardace is an arcade game: cards fall one by one and you shoot them down
in ascending rank order, 2 through A, suits ignored. A wrong card costs you
the last captured one. Finish the run as fast as you can.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, v)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolP(keyVerbose, "v", false, "enable debug logging")
	pf.StringP(keyConfig, "c", "", "gameplay config file (default: embedded "+config.DefaultConfigPath+")")
	pf.String(keyControl, config.ControlKeyboard, "control scheme: keyboard or pointer")
	pf.Int64(keySeed, 1, "random seed for card spawning")
	pf.Int(keyTPS, config.DefaultTPS, "logic ticks per second")
	if err := v.BindPFlags(pf); err != nil {
		// only fails on a nil flag set
		panic(err)
	}

	root.AddCommand(newPlayCmd(v), newSimulateCmd(v))
	return root
}

// Execute runs the command tree with os.Args until ctx is done.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Verbose: v.GetBool(keyVerbose),
		Config:  v.GetString(keyConfig),
		Control: v.GetString(keyControl),
		Seed:    v.GetInt64(keySeed),
		TPS:     v.GetInt(keyTPS),
	}
	switch s.Control {
	case config.ControlKeyboard, config.ControlPointer:
	default:
		return s, fmt.Errorf("unknown control scheme %q (want %s or %s)", s.Control,
			config.ControlKeyboard, config.ControlPointer)
	}
	if s.TPS <= 0 {
		return s, fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	return s, nil
}

// loadGameConfig reads the file named by --config, else the embedded
// default, else the built-in defaults.
func loadGameConfig(s settings, log zerolog.Logger) (*config.GameConfig, error) {
	if s.Config != "" {
		log.Debug().Str("path", s.Config).Msg("loading game config")
		return config.LoadGameConfig(s.Config)
	}
	if embedded.Exists(config.DefaultConfigPath) {
		data, err := embedded.ReadFile(config.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("read embedded config: %w", err)
		}
		log.Debug().Str("path", config.DefaultConfigPath).Msg("loading embedded game config")
		return config.ParseGameConfig(data)
	}
	log.Debug().Msg("no config file, using defaults")
	return config.DefaultGameConfig(), nil
}

func setup(cmd *cobra.Command, v *viper.Viper) (settings, *config.GameConfig, zerolog.Logger, error) {
	s, err := loadSettings(v)
	if err != nil {
		return s, nil, zerolog.Nop(), err
	}
	log := logging.New(s.Verbose, cmd.ErrOrStderr())
	cfg, err := loadGameConfig(s, log)
	if err != nil {
		return s, nil, log, err
	}
	return s, cfg, log, nil
}
