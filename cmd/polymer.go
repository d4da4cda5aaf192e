package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/polymer"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

// polymerCmd represents the polymer command (day 5).
var polymerCmd = &cobra.Command{
	Use:   "polymer [file]",
	Short: "React a polymer and find the shortest one after removing a unit type (day 5)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPuzzle(args, func(r io.Reader, w io.Writer) error {
			return runPolymer(cfg, r, w)
		}); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(polymerCmd)
}

// runPolymer reads a single polymer line and prints its length after every
// reaction, and the shortest length reachable by removing one unit type.
func runPolymer(c *config.Config, r io.Reader, w io.Writer) error {
	lines, err := input.Lines(r)
	if err != nil {
		return err
	}
	switch len(lines) {
	case 0:
		return polymer.ErrEmpty
	case 1:
	default:
		return fmt.Errorf("expected a single polymer line, got %d", len(lines))
	}

	reduced, err := polymer.Reduce(lines[0])
	if err != nil {
		return err
	}
	unit, shortest, err := polymer.Shortest(lines[0])
	if err != nil {
		return err
	}
	log.Debug("polymer reacted", "units", len(lines[0]), "remaining", len(reduced), "removed", string(unit))

	p := ui.NewPrinter(w, ui.ColorEnabled(c.Output.Color, w))
	p.Result("Number of fragments", len(reduced))
	p.Result("Minimal possible sequence length", shortest)
	return nil
}
