package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/checksum"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

// checksumCmd represents the checksum command (day 2).
var checksumCmd = &cobra.Command{
	Use:   "checksum [file]",
	Short: "Checksum box ids and find the two prototype boxes (day 2)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPuzzle(args, func(r io.Reader, w io.Writer) error {
			return runChecksum(cfg, r, w)
		}); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}

func runChecksum(c *config.Config, r io.Reader, w io.Writer) error {
	ids, err := input.Lines(r)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(w, ui.ColorEnabled(c.Output.Color, w))
	p.Result("Checksum", checksum.Checksum(ids))
	if common, ok := checksum.CommonLetters(ids); ok {
		p.Result("Common sub-string", common)
	} else {
		log.Warn("no pair of ids differs by exactly one letter", "ids", len(ids))
		p.Missing("Common sub-string")
	}
	return nil
}
