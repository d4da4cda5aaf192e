package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/steps"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

var (
	workers      int
	baseDuration int
)

// stepsCmd represents the steps command (day 7).
var stepsCmd = &cobra.Command{
	Use:   "steps [file]",
	Short: "Order assembly steps and time them with a team of workers (day 7)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPuzzle(args, func(r io.Reader, w io.Writer) error {
			return runSteps(cfg, r, w)
		}); err != nil {
			fail(err)
		}
	},
}

func init() {
	stepsCmd.Flags().IntVar(&workers, "workers", 0, "Number of steps worked on at once")
	stepsCmd.Flags().IntVar(&baseDuration, "base-duration", 0, "Seconds added to every step")
	rootCmd.AddCommand(stepsCmd)
}

// runSteps prints the single-worker step order and the time the configured
// team needs to finish every step.
func runSteps(c *config.Config, r io.Reader, w io.Writer) error {
	edges, err := input.Parse(r, steps.Parse)
	if err != nil {
		return fmt.Errorf("invalid instruction: %w", err)
	}
	if len(edges) == 0 {
		return steps.ErrEmpty
	}

	g := steps.NewGraph(edges)
	order, err := g.Order()
	if err != nil {
		return err
	}
	timeline, err := g.Schedule(c.Steps.Workers, c.Steps.BaseDuration)
	if err != nil {
		return err
	}
	log.Debug("steps scheduled", "steps", g.Len(), "workers", c.Steps.Workers,
		"base_duration", c.Steps.BaseDuration, "completion_order", timeline.Order)

	p := ui.NewPrinter(w, ui.ColorEnabled(c.Output.Color, w))
	p.Result("Serial sequence", order)
	p.Result("Parallel completion time", timeline.Seconds)
	return nil
}
