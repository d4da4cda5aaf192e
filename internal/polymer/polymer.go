// Package polymer reacts polymers: two adjacent units of the same type and
// opposite polarity (case) destroy each other.
package polymer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	lane "gopkg.in/oleiade/lane.v1"
)

var (
	// ErrEmpty is returned when there is no polymer to react.
	ErrEmpty = errors.New("empty polymer")
	// ErrInvalidUnit is returned for a unit that is not an ASCII letter.
	ErrInvalidUnit = errors.New("invalid polymer unit")
)

// Units returns the units of s in order, leaving out every unit of type skip
// regardless of polarity. A zero skip keeps every unit.
func Units(s string, skip rune) (*lane.Deque, error) {
	seq := lane.NewDeque()
	skip = unicode.ToLower(skip)
	for i, u := range s {
		if !isUnit(u) {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidUnit, u, i)
		}
		if skip != 0 && unicode.ToLower(u) == skip {
			continue
		}
		seq.Append(u)
	}
	return seq, nil
}

// React drains seq and returns the units left once every reacting pair is gone.
func React(seq *lane.Deque) *lane.Deque {
	out := lane.NewDeque()
	for item := seq.Shift(); item != nil; item = seq.Shift() {
		u := item.(rune)
		if last := out.Last(); last != nil && reacts(u, last.(rune)) {
			out.Pop()
			continue
		}
		out.Append(u)
	}
	return out
}

// Reduce fully reacts s and returns the remaining polymer.
func Reduce(s string) (string, error) {
	seq, err := Units(s, 0)
	if err != nil {
		return "", err
	}
	return drain(React(seq)), nil
}

// Shortest removes one unit type at a time from s and reacts what is left.
// It returns the type whose removal gives the shortest polymer and that
// length; unit is 0 when no removal beats the fully reacted polymer.
func Shortest(s string) (unit rune, length int, err error) {
	reduced, err := Reduce(s)
	if err != nil {
		return 0, 0, err
	}

	// Reactions commute, so removing a type from the reduced polymer gives
	// the same result as removing it from s.
	length = len(reduced)
	for t := 'a'; t <= 'z'; t++ {
		seq, err := Units(reduced, t)
		if err != nil {
			return 0, 0, err
		}
		if n := React(seq).Size(); n < length {
			unit, length = t, n
		}
	}
	return unit, length, nil
}

func reacts(a, b rune) bool {
	return a != b && unicode.ToLower(a) == unicode.ToLower(b)
}

func isUnit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func drain(d *lane.Deque) string {
	var b strings.Builder
	b.Grow(d.Size())
	for item := d.Shift(); item != nil; item = d.Shift() {
		b.WriteRune(item.(rune))
	}
	return b.String()
}
