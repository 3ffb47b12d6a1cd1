package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/trappedknight/internal/config"
	"github.com/papapumpkin/trappedknight/internal/spiral"
	"github.com/papapumpkin/trappedknight/internal/telemetry"
	"github.com/papapumpkin/trappedknight/internal/tui"
	"github.com/papapumpkin/trappedknight/internal/ui"
)

// tuiCmd launches the interactive board.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Watch the knight move on an interactive board",
	Long: `Opens a full-screen board centred on the knight. Press space to start or
stop the knight, n to take a single move, r to reset it to its start square,
+ and - to change how many moves are taken per tick, l to toggle labels, and
q to quit.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Int("start-x", 0, "x coordinate of the start square")
	tuiCmd.Flags().Int("start-y", 0, "y coordinate of the start square")
	tuiCmd.Flags().Int("steps-per-tick", 1, "moves taken per tick while running")
	tuiCmd.Flags().Int("tick-ms", 30, "milliseconds between ticks")
	tuiCmd.Flags().String("telemetry", "", "directory for the session's JSONL telemetry")
	rootCmd.AddCommand(tuiCmd)
}

// bindTUIFlags points the shared config keys at the tui command's flags.
func bindTUIFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("start_x", cmd.Flags().Lookup("start-x"))
	_ = viper.BindPFlag("start_y", cmd.Flags().Lookup("start-y"))
	_ = viper.BindPFlag("tui.steps_per_tick", cmd.Flags().Lookup("steps-per-tick"))
	_ = viper.BindPFlag("tui.tick_ms", cmd.Flags().Lookup("tick-ms"))
	_ = viper.BindPFlag("telemetry_dir", cmd.Flags().Lookup("telemetry"))
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("knight tui requires a TTY (terminal)")
	}

	bindTUIFlags(cmd)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	start := spiral.P(cfg.StartX, cfg.StartY)
	var em *telemetry.Emitter
	if cfg.TelemetryDir != "" {
		em, err = telemetry.OpenRun(cfg.TelemetryDir, telemetry.RunID(time.Now(), start.X, start.Y))
		if err != nil {
			return err
		}
		defer em.Close()
	}

	model := tui.NewModel(tui.Options{
		Start:        start,
		StepsPerTick: cfg.TUI.StepsPerTick,
		Tick:         time.Duration(cfg.TUI.TickMS) * time.Millisecond,
		Emitter:      em,
	})
	final, err := tui.Run(model)
	if err != nil {
		return err
	}

	printer := &ui.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	printer.Outcome(final.Path)
	if final.Err != nil {
		printer.Error(final.Err.Error())
	}
	return nil
}

func isStderrTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
