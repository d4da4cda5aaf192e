// Package coords measures Manhattan-distance areas around a list of coordinates.
package coords

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/pkg/algo"
)

var (
	// ErrMalformed is returned for a line that is not "<x>, <y>".
	ErrMalformed = errors.New("malformed coordinate")
	// ErrEmpty is returned when there are no coordinates.
	ErrEmpty = errors.New("no coordinates")
)

// DefaultSafeDistance is the puzzle's limit on the summed distance.
const DefaultSafeDistance = 10000

// Parse reads a coordinate such as "1, 6". Both values must be non-negative.
func Parse(line string) (algo.Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return algo.Point{}, fmt.Errorf("%w: missing ','", ErrMalformed)
	}
	x, err := parseAxis("x", xs)
	if err != nil {
		return algo.Point{}, err
	}
	y, err := parseAxis("y", ys)
	if err != nil {
		return algo.Point{}, err
	}
	return algo.Point{X: x, Y: y}, nil
}

func parseAxis(name, s string) (int, error) {
	v, err := input.ParseInt[int](s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %d", ErrMalformed, name, v)
	}
	return v, nil
}

// Distance returns the Manhattan distance between a and b.
func Distance(a, b algo.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Closest returns the index of the coordinate nearest to p, or -1 when two or
// more coordinates tie for nearest.
func Closest(p algo.Point, points []algo.Point) int {
	best, bestDist := -1, math.MaxInt
	for i, q := range points {
		switch d := Distance(p, q); {
		case d < bestDist:
			best, bestDist = i, d
		case d == bestDist:
			best = -1
		}
	}
	return best
}

// LargestArea returns the size of the largest finite area, counting for each
// coordinate the cells closer to it than to any other. An area that reaches
// the bounding box of the coordinates grows without limit outside it and is
// ignored. ok is false when every area is infinite.
func LargestArea(points []algo.Point) (area int, ok bool) {
	if len(points) == 0 {
		return 0, false
	}
	b := boundsOf(points)
	inner := algo.Region{X: b.X + 1, Y: b.Y + 1, Width: b.Width - 2, Height: b.Height - 2}
	areas := make([]int, len(points))
	infinite := make([]bool, len(points))
	for y := b.Y; y < b.EndY(); y++ {
		for x := b.X; x < b.EndX(); x++ {
			p := algo.Point{X: x, Y: y}
			i := Closest(p, points)
			if i < 0 {
				continue
			}
			areas[i]++
			if !inner.Contains(p) {
				infinite[i] = true
			}
		}
	}

	for i, n := range areas {
		if !infinite[i] && (!ok || n > area) {
			area, ok = n, true
		}
	}
	return area, ok
}

// SafeRegion counts the cells whose summed distance to every coordinate is
// below limit.
func SafeRegion(points []algo.Point, limit int) int {
	if len(points) == 0 || limit <= 0 {
		return 0
	}
	// A cell d columns outside the bounding box is at least d away from every
	// coordinate, so safe cells lie within limit/len(points) of the box.
	margin := limit / len(points)
	b := boundsOf(points)

	count := 0
	for y := b.Y - margin; y < b.EndY()+margin; y++ {
		for x := b.X - margin; x < b.EndX()+margin; x++ {
			if totalDistance(algo.Point{X: x, Y: y}, points, limit) < limit {
				count++
			}
		}
	}
	return count
}

// totalDistance sums the distances from p, stopping once the sum reaches limit.
func totalDistance(p algo.Point, points []algo.Point, limit int) int {
	sum := 0
	for _, q := range points {
		sum += Distance(p, q)
		if sum >= limit {
			break
		}
	}
	return sum
}

// boundsOf returns the smallest region holding every point.
func boundsOf(points []algo.Point) algo.Region {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return algo.Region{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
