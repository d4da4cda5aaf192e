package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/frequency"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

// maxPasses overrides frequency.max_passes from the config file.
var maxPasses int

// frequencyCmd represents the frequency command (day 1).
var frequencyCmd = &cobra.Command{
	Use:   "frequency [file]",
	Short: "Apply frequency changes and find the first repeat (day 1)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPuzzle(args, func(r io.Reader, w io.Writer) error {
			return runFrequency(cfg, r, w)
		}); err != nil {
			fail(err)
		}
	},
}

func init() {
	frequencyCmd.Flags().IntVar(&maxPasses, "max-passes", 0, "Give up after this many passes over the input")
	rootCmd.AddCommand(frequencyCmd)
}

// runFrequency prints the frequency after one pass and the first repeated frequency.
func runFrequency(c *config.Config, r io.Reader, w io.Writer) error {
	deltas, err := input.Parse(r, frequency.ParseDelta)
	if err != nil {
		return fmt.Errorf("invalid frequency change: %w", err)
	}

	repeat, err := frequency.FirstRepeat(deltas, c.Frequency.MaxPasses)
	if err != nil {
		return err
	}
	log.Debug("frequency solved", "changes", len(deltas), "repeat", repeat)

	p := ui.NewPrinter(w, ui.ColorEnabled(c.Output.Color, w))
	p.Result("Result value", frequency.Sum(deltas))
	p.Result("Repeated value", repeat)
	return nil
}
