package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/trappedknight/internal/config"
	"github.com/papapumpkin/trappedknight/internal/knight"
	"github.com/papapumpkin/trappedknight/internal/report"
	"github.com/papapumpkin/trappedknight/internal/spiral"
	"github.com/papapumpkin/trappedknight/internal/telemetry"
	"github.com/papapumpkin/trappedknight/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Walk the knight until it is trapped and print the result",
	Long: `Walks the knight from its start square until no unvisited destination
remains (or --limit moves have been made), then prints the smallest spiral
lattice containing the trail followed by the trail itself.

  --start-x, --start-y   Start square (default origin, or KNIGHT_START_X/Y)
  --limit                Stop after this many moves; 0 means run until trapped
  --format               text (default), json or toml
  --telemetry            Directory for a JSONL event log of this run`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Int("start-x", 0, "x coordinate of the start square")
	runCmd.Flags().Int("start-y", 0, "y coordinate of the start square")
	runCmd.Flags().Int("limit", 0, "maximum number of moves (0 = until trapped)")
	runCmd.Flags().String("format", config.FormatText, "output format: text, json or toml")
	runCmd.Flags().String("telemetry", "", "directory for the run's JSONL telemetry")
	rootCmd.AddCommand(runCmd)
}

// bindRunFlags points the shared config keys at the run command's flags.
func bindRunFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("start_x", cmd.Flags().Lookup("start-x"))
	_ = viper.BindPFlag("start_y", cmd.Flags().Lookup("start-y"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("telemetry_dir", cmd.Flags().Lookup("telemetry"))
}

func runRun(cmd *cobra.Command, _ []string) error {
	bindRunFlags(cmd)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", limit)
	}

	printer := &ui.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	start := spiral.P(cfg.StartX, cfg.StartY)

	var em *telemetry.Emitter
	if cfg.TelemetryDir != "" {
		runID := telemetry.RunID(time.Now(), start.X, start.Y)
		em, err = telemetry.OpenRun(cfg.TelemetryDir, runID)
		if err != nil {
			return err
		}
		defer em.Close()
		if cfg.Verbose {
			printer.Info("telemetry run " + runID)
		}
	}

	path, err := walk(start, limit, em)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.Outcome(path)
	}

	if cfg.Format != config.FormatText {
		return report.Encode(cmd.OutOrStdout(), report.Build(path), cfg.Format)
	}
	printer.Lattice(path.ContainingRing().LabelLattice())
	printer.Path(path.Elements())
	return nil
}

// walk steps a fresh path from start, recording every move. A positive limit
// caps the number of moves.
func walk(start spiral.Point, limit int, em *telemetry.Emitter) (*knight.Path, error) {
	path := knight.New(knight.WithStart(start))
	record := func(kind string, e knight.Element) error {
		return em.Record(kind, telemetry.Move{Step: path.Len() - 1, Label: e.Label, X: e.Point.X, Y: e.Point.Y})
	}

	if err := record(telemetry.KindRunStart, path.Start()); err != nil {
		return nil, err
	}
	for limit == 0 || path.Len()-1 < limit {
		e, ok := path.Step()
		if !ok {
			if err := record(telemetry.KindTrapped, path.Last()); err != nil {
				return nil, err
			}
			break
		}
		if err := record(telemetry.KindStep, e); err != nil {
			return nil, err
		}
	}
	if err := record(telemetry.KindRunDone, path.Last()); err != nil {
		return nil, err
	}
	return path, nil
}
