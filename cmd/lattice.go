package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/trappedknight/internal/spiral"
	"github.com/papapumpkin/trappedknight/internal/ui"
)

var latticeCmd = &cobra.Command{
	Use:   "lattice <ring>",
	Short: "Print the spiral labels of a ring's bounding square",
	Args:  cobra.ExactArgs(1),
	RunE:  runLattice,
}

var labelCmd = &cobra.Command{
	Use:   "label <x> <y>",
	Short: "Print the spiral label of a square",
	Args:  cobra.ExactArgs(2),
	RunE:  runLabel,
}

var whereCmd = &cobra.Command{
	Use:   "where <label>",
	Short: "Print the square carrying a spiral label",
	Args:  cobra.ExactArgs(1),
	RunE:  runWhere,
}

func init() {
	rootCmd.AddCommand(latticeCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(whereCmd)
}

func runLattice(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("ring must be an integer: %w", err)
	}
	labels, err := spiral.LabelLattice(n)
	if err != nil {
		return err
	}
	printer := &ui.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	printer.Lattice(labels)
	return nil
}

func runLabel(cmd *cobra.Command, args []string) error {
	// Negative coordinates look like flags; "knight label -- -1 2" works too.
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("x must be an integer: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("y must be an integer: %w", err)
	}
	printer := &ui.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	printer.Label(spiral.P(x, y))
	return nil
}

func runWhere(cmd *cobra.Command, args []string) error {
	label, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("label must be an integer: %w", err)
	}
	pt, err := spiral.PointOf(label)
	if err != nil {
		return err
	}
	printer := &ui.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	printer.Label(pt)
	return nil
}
