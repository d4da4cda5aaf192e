// Package overlap finds the area shared between fabric claims and the
// claim that shares no cell with any other.
package overlap

import (
	"errors"
	"fmt"

	"github.com/xll-gen/aoc2018/internal/claim"
	"github.com/xll-gen/aoc2018/pkg/algo"
)

// ErrOutOfBounds is returned when a claim does not fit the coverage grid.
var ErrOutOfBounds = errors.New("claim outside grid")

// Accumulator holds the claims in input order and the per-claim overlap flags.
type Accumulator struct {
	claims   []claim.Claim
	overlaps []bool
	cov      Coverage
}

// New returns an empty accumulator writing shared cells to cov.
func New(cov Coverage) *Accumulator {
	return &Accumulator{cov: cov}
}

// Add appends a claim. Claims that do not fit the coverage are rejected.
func (a *Accumulator) Add(c claim.Claim) error {
	if !a.cov.Fits(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	a.claims = append(a.claims, c)
	a.overlaps = append(a.overlaps, false)
	return nil
}

// AddAll appends every claim, stopping at the first rejected one.
func (a *Accumulator) AddAll(claims []claim.Claim) error {
	for _, c := range claims {
		if err := a.Add(c); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of claims added.
func (a *Accumulator) Len() int {
	return len(a.claims)
}

// Run intersects every pair of claims (i < j) once.
func (a *Accumulator) Run() {
	for i := range a.claims {
		for j := i + 1; j < len(a.claims); j++ {
			a.Intersect(i, j)
		}
	}
}

// Intersect marks the cells shared by claims i and j and flags both
// claims when the intersection is not empty. It reports the shared area.
func (a *Accumulator) Intersect(i, j int) int {
	ci, cj := a.claims[i], a.claims[j]

	x0, x1 := max(ci.X, cj.X), min(ci.EndX(), cj.EndX())
	y0, y1 := max(ci.Y, cj.Y), min(ci.EndY(), cj.EndY())
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			a.cov.Mark(x, y)
		}
	}
	a.overlaps[i] = true
	a.overlaps[j] = true
	return (x1 - x0) * (y1 - y0)
}

// SharedArea returns the number of cells claimed two or more times.
func (a *Accumulator) SharedArea() int {
	return a.cov.Covered()
}

// Untouched returns the id of the first claim, in input order, that
// shares no cell with any other. ok is false when there is none.
func (a *Accumulator) Untouched() (id int, ok bool) {
	for i, c := range a.claims {
		if !a.overlaps[i] {
			return c.ID, true
		}
	}
	return 0, false
}

// Overlapping returns the ids of every claim that shares a cell, in input order.
func (a *Accumulator) Overlapping() []int {
	var ids []int
	for i, c := range a.claims {
		if a.overlaps[i] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Regions returns the shared cells packed into disjoint rectangles.
func (a *Accumulator) Regions() []algo.Region {
	return algo.Merge(a.cov.Points())
}

// Result is the outcome of a full overlap run.
type Result struct {
	SharedArea   int
	UntouchedID  int
	HasUntouched bool
	Overlapping  []int
	Regions      []algo.Region
}

// Solve adds claims to a fresh accumulator over cov, runs every pairwise
// intersection and collects the results. Regions are only computed when
// withRegions is set.
func Solve(cov Coverage, claims []claim.Claim, withRegions bool) (Result, error) {
	a := New(cov)
	if err := a.AddAll(claims); err != nil {
		return Result{}, err
	}
	a.Run()

	res := Result{SharedArea: a.SharedArea()}
	res.UntouchedID, res.HasUntouched = a.Untouched()
	res.Overlapping = a.Overlapping()
	if withRegions {
		res.Regions = a.Regions()
	}
	return res, nil
}
