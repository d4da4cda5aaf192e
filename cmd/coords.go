package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/coords"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

// safeDistance overrides coords.safe_distance from the config file.
var safeDistance int

// coordsCmd represents the coords command (day 6).
var coordsCmd = &cobra.Command{
	Use:   "coords [file]",
	Short: "Find the largest finite area and the safe region around coordinates (day 6)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPuzzle(args, func(r io.Reader, w io.Writer) error {
			return runCoords(cfg, r, w)
		}); err != nil {
			fail(err)
		}
	},
}

func init() {
	coordsCmd.Flags().IntVar(&safeDistance, "safe-distance", 0, "Exclusive limit on the summed distance to every coordinate")
	rootCmd.AddCommand(coordsCmd)
}

func runCoords(c *config.Config, r io.Reader, w io.Writer) error {
	points, err := input.Parse(r, coords.Parse)
	if err != nil {
		return fmt.Errorf("invalid coordinate: %w", err)
	}
	if len(points) == 0 {
		return coords.ErrEmpty
	}

	area, ok := coords.LargestArea(points)
	region := coords.SafeRegion(points, c.Coords.SafeDistance)
	log.Debug("coordinate areas measured", "coords", len(points), "safe_distance", c.Coords.SafeDistance)

	p := ui.NewPrinter(w, ui.ColorEnabled(c.Output.Color, w))
	if ok {
		p.Result("Max area is", area)
	} else {
		log.Warn("every area is infinite", "coords", len(points))
		p.Missing("Max area is")
	}
	p.Result("Region size", region)
	return nil
}
