package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/claim"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/internal/overlap"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

var (
	gridMode    string
	gridSize    int
	showRegions bool
)

// overlapCmd represents the overlap command (day 3).
var overlapCmd = &cobra.Command{
	Use:   "overlap [file]",
	Short: "Measure the fabric shared by overlapping claims (day 3)",
	Long: `overlap reads claims of the form "#<id> @ <x>,<y>: <width>x<height>", one per
line, and prints the number of cells claimed two or more times and the id of the
first claim that overlaps no other.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPuzzle(args, func(r io.Reader, w io.Writer) error {
			return runOverlap(cfg, r, w, showRegions)
		}); err != nil {
			fail(err)
		}
	},
}

func init() {
	overlapCmd.Flags().StringVar(&gridMode, "grid-mode", "", "Coverage grid: dense (bounded) or sparse (unbounded)")
	overlapCmd.Flags().IntVar(&gridSize, "grid-size", 0, "Side length of the dense grid")
	overlapCmd.Flags().BoolVar(&showRegions, "regions", false, "Also print the shared area as rectangular regions")
	rootCmd.AddCommand(overlapCmd)
}

// runOverlap parses every claim from r, intersects them on the configured
// coverage grid and prints the shared area and the untouched claim id to w.
// Nothing is printed if any claim fails to parse or fit the grid.
//
// Parameters:
//   - c: The resolved configuration.
//   - r: Claim lines.
//   - w: Destination for the results.
//   - withRegions: Print the shared cells merged into regions.
func runOverlap(c *config.Config, r io.Reader, w io.Writer, withRegions bool) error {
	claims, err := input.Parse(r, claim.Parse)
	if err != nil {
		return fmt.Errorf("invalid claim: %w", err)
	}

	cov, err := overlap.NewCoverage(overlap.Mode(c.Grid.Mode), c.Grid.Size)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := overlap.Solve(cov, claims, withRegions)
	if err != nil {
		return err
	}
	log.Debug("claims intersected", "claims", len(claims), "mode", c.Grid.Mode,
		"shared", res.SharedArea, "overlapping", len(res.Overlapping), "elapsed", time.Since(start))

	p := ui.NewPrinter(w, ui.ColorEnabled(c.Output.Color, w))
	p.Result("Total shared area", res.SharedArea)
	if res.HasUntouched {
		p.Result("Not overlapping rectangle's id", res.UntouchedID)
	} else {
		log.Warn("every claim overlaps another", "claims", len(claims))
		p.Missing("Not overlapping rectangle's id")
	}
	if withRegions {
		p.Header(fmt.Sprintf("Shared regions (%d)", len(res.Regions)))
		for _, reg := range res.Regions {
			p.Detail(reg.String())
		}
	}
	return nil
}
