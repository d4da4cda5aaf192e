package algo

import (
	"fmt"
	"sort"
)

// Point is a single unit cell on the fabric, addressed by column (X) and row (Y).
type Point struct {
	X int
	Y int
}

// Region is a rectangle of cells with an inclusive origin and exclusive end.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Area returns the number of cells in the region.
func (r Region) Area() int {
	return r.Width * r.Height
}

// EndX returns the exclusive right bound.
func (r Region) EndX() int {
	return r.X + r.Width
}

// EndY returns the exclusive bottom bound.
func (r Region) EndY() int {
	return r.Y + r.Height
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.EndX() && p.Y >= r.Y && p.Y < r.EndY()
}

func (r Region) String() string {
	return fmt.Sprintf("%d,%d: %dx%d", r.X, r.Y, r.Width, r.Height)
}

// SortPoints orders points row by row, then by column.
func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
}

// Merge packs a set of cells into non-overlapping rectangular regions.
// The algorithm is greedy:
// 1. Sorts cells by row, then column.
// 2. From each unvisited cell, extends right as far as possible, then down
//    while every cell of the next row span is present.
// 3. Marks the covered cells visited and continues.
// Duplicate points are tolerated. The input slice is reordered.
func Merge(points []Point) []Region {
	if len(points) == 0 {
		return nil
	}

	SortPoints(points)

	present := make(map[Point]bool, len(points))
	for _, p := range points {
		present[p] = true
	}

	var regions []Region
	visited := make(map[Point]bool, len(points))
	free := func(p Point) bool {
		return present[p] && !visited[p]
	}

	for _, p := range points {
		if visited[p] {
			continue
		}

		width := 1
		for free(Point{X: p.X + width, Y: p.Y}) {
			width++
		}

		height := 1
		for {
			row := p.Y + height
			grow := true
			for x := p.X; x < p.X+width; x++ {
				if !free(Point{X: x, Y: row}) {
					grow = false
					break
				}
			}
			if !grow {
				break
			}
			height++
		}

		for y := p.Y; y < p.Y+height; y++ {
			for x := p.X; x < p.X+width; x++ {
				visited[Point{X: x, Y: y}] = true
			}
		}

		regions = append(regions, Region{X: p.X, Y: p.Y, Width: width, Height: height})
	}
	return regions
}
