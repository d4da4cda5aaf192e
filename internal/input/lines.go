// Package input supplies puzzle input lines and converts them into records.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// maxLineSize bounds a single input line. Puzzle lines are short; this only
// guards against pathological input.
const maxLineSize = 1 << 20

// LineError reports a record that could not be parsed, with its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Lines reads every non-blank line from r with surrounding whitespace trimmed.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	err := scan(r, func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// Parse reads r line by line and converts each non-blank line with parse.
// The first failure aborts the read; no partial result is returned.
func Parse[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T
	err := scan(r, func(n int, line string) error {
		v, err := parse(line)
		if err != nil {
			return &LineError{Line: n, Text: line, Err: err}
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseInt parses a base-10 integer of type T, accepting an explicit leading '+'.
func ParseInt[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	bits := 8 * int(unsafe.Sizeof(zero))
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, err
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
	if err != nil {
		return zero, err
	}
	return T(v), nil
}

// Open returns a reader for the named file, or stdin when name is empty or "-".
// The returned close function is always safe to call.
func Open(name string) (io.Reader, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, f.Close, nil
}

func scan(r io.Reader, fn func(n int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}
