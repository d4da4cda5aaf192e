package overlap

import (
	"errors"
	"fmt"

	"github.com/xll-gen/aoc2018/internal/claim"
	"github.com/xll-gen/aoc2018/pkg/algo"
)

const (
	// DefaultSize is the side length of the fabric in the puzzle.
	DefaultSize = 1000
	// MaxSize bounds the side length of a DenseGrid. A SparseGrid accepts
	// claims covering at most MaxSize×MaxSize cells.
	MaxSize = 1 << 15
)

// ErrGridTooLarge is returned for a dense grid wider than MaxSize.
var ErrGridTooLarge = errors.New("grid too large")

// Coverage records which cells are claimed by at least two claims.
// Marking is idempotent and never undone.
type Coverage interface {
	// Fits reports whether every cell of c can be recorded.
	Fits(c claim.Claim) bool
	// Mark records the cell (x, y) as shared. The cell must fit.
	Mark(x, y int)
	// Covered returns the number of distinct marked cells.
	Covered() int
	// Points returns the marked cells in row-major order.
	Points() []algo.Point
}

// DenseGrid is a fixed size×size matrix indexed directly by coordinate.
type DenseGrid struct {
	size  int
	cells []bool
	count int
}

// NewDenseGrid allocates the whole size×size domain up front.
func NewDenseGrid(size int) (*DenseGrid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: size %d exceeds %d", ErrGridTooLarge, size, MaxSize)
	}
	return &DenseGrid{size: size, cells: make([]bool, size*size)}, nil
}

// Size returns the side length of the grid.
func (g *DenseGrid) Size() int {
	return g.size
}

// Fits reports whether every cell of c lies within [0, size) on both axes.
// A zero-area claim may sit on the far edge.
func (g *DenseGrid) Fits(c claim.Claim) bool {
	return c.X >= 0 && c.Y >= 0 && c.EndX() <= g.size && c.EndY() <= g.size
}

func (g *DenseGrid) Mark(x, y int) {
	i := y*g.size + x
	if !g.cells[i] {
		g.cells[i] = true
		g.count++
	}
}

func (g *DenseGrid) Covered() int {
	return g.count
}

func (g *DenseGrid) Points() []algo.Point {
	points := make([]algo.Point, 0, g.count)
	for i, marked := range g.cells {
		if marked {
			points = append(points, algo.Point{X: i % g.size, Y: i / g.size})
		}
	}
	return points
}

// SparseGrid keeps only the marked cells, keyed by coordinate, with no upper
// bound on the origin. Each claim may cover at most MaxSize×MaxSize cells, so a
// single intersection never walks more cells than a full dense grid holds.
type SparseGrid struct {
	cells map[algo.Point]struct{}
}

func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cells: make(map[algo.Point]struct{})}
}

func (g *SparseGrid) Fits(c claim.Claim) bool {
	return c.X >= 0 && c.Y >= 0 && c.Area() <= MaxSize*MaxSize
}

func (g *SparseGrid) Mark(x, y int) {
	g.cells[algo.Point{X: x, Y: y}] = struct{}{}
}

func (g *SparseGrid) Covered() int {
	return len(g.cells)
}

func (g *SparseGrid) Points() []algo.Point {
	points := make([]algo.Point, 0, len(g.cells))
	for p := range g.cells {
		points = append(points, p)
	}
	algo.SortPoints(points)
	return points
}

// Mode selects a Coverage implementation.
type Mode string

const (
	ModeDense  Mode = "dense"
	ModeSparse Mode = "sparse"
)

// NewCoverage builds the coverage for mode. size is ignored in sparse mode.
func NewCoverage(mode Mode, size int) (Coverage, error) {
	switch mode {
	case ModeDense, "":
		g, err := NewDenseGrid(size)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ModeSparse:
		return NewSparseGrid(), nil
	default:
		return nil, fmt.Errorf("unknown grid mode: %s (allowed: dense, sparse)", mode)
	}
}
