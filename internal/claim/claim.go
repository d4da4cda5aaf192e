// Package claim parses fabric claim lines of the form "#<id> @ <x>,<y>: <w>x<h>".
package claim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a claim line is missing one of its delimiters.
var ErrMalformed = errors.New("malformed claim")

// Claim is an axis-aligned rectangle with an identifier.
// X and Y are the top-left corner; Width and Height may be zero.
type Claim struct {
	ID     int
	X      int
	Y      int
	Width  int
	Height int
}

// EndX returns the exclusive right bound.
func (c Claim) EndX() int {
	return c.X + c.Width
}

// EndY returns the exclusive bottom bound.
func (c Claim) EndY() int {
	return c.Y + c.Height
}

// Area returns the number of cells the claim covers.
func (c Claim) Area() int {
	return c.Width * c.Height
}

func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.X, c.Y, c.Width, c.Height)
}

// ParseError describes which field of a claim line failed to parse.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a single claim line into a Claim.
// Whitespace around each token is ignored.
func Parse(line string) (Claim, error) {
	var c Claim

	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#")
	if !ok {
		return c, &ParseError{Field: "id", Err: fmt.Errorf("%w: missing '#'", ErrMalformed)}
	}
	id, rest, ok := strings.Cut(rest, "@")
	if !ok {
		return c, &ParseError{Field: "id", Err: fmt.Errorf("%w: missing '@'", ErrMalformed)}
	}
	origin, size, ok := strings.Cut(rest, ":")
	if !ok {
		return c, &ParseError{Field: "origin", Err: fmt.Errorf("%w: missing ':'", ErrMalformed)}
	}
	x, y, ok := strings.Cut(origin, ",")
	if !ok {
		return c, &ParseError{Field: "origin", Err: fmt.Errorf("%w: missing ','", ErrMalformed)}
	}
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return c, &ParseError{Field: "size", Err: fmt.Errorf("%w: missing 'x'", ErrMalformed)}
	}

	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"id", id, &c.ID},
		{"x", x, &c.X},
		{"y", y, &c.Y},
		{"width", w, &c.Width},
		{"height", h, &c.Height},
	}
	for _, f := range fields {
		v, err := parseField(f.raw)
		if err != nil {
			return Claim{}, &ParseError{Field: f.name, Value: strings.TrimSpace(f.raw), Err: err}
		}
		*f.dst = v
	}
	return c, nil
}

// parseField accepts only unsigned decimal digits; signs are rejected.
func parseField(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty field", ErrMalformed)
	}
	if s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("%w: sign not allowed", ErrMalformed)
	}
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
