// Package frequency applies a list of frequency changes to a device that starts at zero.
package frequency

import (
	"errors"

	"github.com/xll-gen/aoc2018/internal/input"
)

var (
	// ErrEmpty is returned when there are no changes to apply.
	ErrEmpty = errors.New("no frequency changes")
	// ErrNoRepeat is returned when no frequency repeats within the pass limit.
	ErrNoRepeat = errors.New("no repeated frequency")
)

// DefaultMaxPasses bounds FirstRepeat when no limit is configured.
const DefaultMaxPasses = 1000

// ParseDelta parses a signed change such as "+3" or "-12".
func ParseDelta(line string) (int, error) {
	return input.ParseInt[int](line)
}

// Sum returns the frequency reached after applying every change once.
func Sum(deltas []int) int {
	total := 0
	for _, d := range deltas {
		total += d
	}
	return total
}

// FirstRepeat cycles through deltas, starting from 0, and returns the first
// frequency reached twice. Only frequencies reached after a change count, so
// the starting 0 repeats only once a change lands on it again.
// It gives up after maxPasses complete passes; maxPasses <= 0 means DefaultMaxPasses.
func FirstRepeat(deltas []int, maxPasses int) (int, error) {
	if len(deltas) == 0 {
		return 0, ErrEmpty
	}
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	current := 0
	seen := make(map[int]struct{})
	for pass := 0; pass < maxPasses; pass++ {
		for _, d := range deltas {
			current += d
			if _, ok := seen[current]; ok {
				return current, nil
			}
			seen[current] = struct{}{}
		}
	}
	return 0, ErrNoRepeat
}
