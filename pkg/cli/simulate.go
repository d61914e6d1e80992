package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/sim"
	"github.com/gonewx/cardace/pkg/telemetry"
)

func newSimulateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the game headless with an auto-aiming bot",
		Long: `Simulate runs the game without a window. A bot shoots at the card the run
needs next, the bookkeeping is checked after every tick, and a summary is
printed at the end. The same seed always gives the same result.

Examples:
  cardace simulate --ticks 7200
  cardace simulate --seed 42 --restart --fire-interval 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, log, err := setup(cmd, v)
			if err != nil {
				return err
			}
			ticks, _ := cmd.Flags().GetInt("ticks")
			interval, _ := cmd.Flags().GetInt("fire-interval")
			restart, _ := cmd.Flags().GetBool("restart")

			metrics, err := telemetry.New()
			if err != nil {
				return fmt.Errorf("init metrics: %w", err)
			}

			runner, err := sim.NewRunner(sim.Options{
				Config:       cfg,
				Seed:         s.Seed,
				Ticks:        ticks,
				TPS:          s.TPS,
				FireInterval: interval,
				Restart:      restart,
				Log:          log,
				Metrics:      metrics,
			})
			if err != nil {
				return err
			}

			sum, runErr := runner.Run(cmd.Context())
			printSummary(cmd.OutOrStdout(), sum)
			return runErr
		},
	}

	cmd.Flags().Int("ticks", 60*60*5, "number of ticks to simulate")
	cmd.Flags().Int("fire-interval", 6, "ticks between bot shots")
	cmd.Flags().Bool("restart", false, "start a new run after each completed one")
	return cmd
}

func printSummary(w io.Writer, s sim.Summary) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite, color.Bold)

	title.Fprintln(w, "Simulation summary")
	row := func(name, format string, args ...any) {
		label.Fprintf(w, "  %-12s", name)
		fmt.Fprintf(w, format+"\n", args...)
	}

	state := color.YellowString(s.State.String())
	if s.State == game.StateGameOver {
		state = color.GreenString(s.State.String())
	}
	row("State:", "%s", state)
	row("Ticks:", "%d", s.Ticks)
	row("Runs:", "%d", s.Runs)
	row("Shots:", "%d", s.Shots)
	row("Time:", "%.1f", s.Elapsed)
	row("Best:", "%.1f", s.Best)
	row("Next card:", "%s", s.Next)

	captured := make([]string, len(s.Captured))
	for i, id := range s.Captured {
		captured[i] = id.RankLabel()
	}
	row("Captured:", "%d [%s]", s.Cursor, strings.Join(captured, " "))
	row("Deck:", "%d", s.DeckSize)
	row("Field:", "%d", s.FieldCards)
	row("Lasers:", "%d", s.Projectiles)
}
