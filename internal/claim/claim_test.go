package claim

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Claim
	}{
		{
			name: "canonical",
			line: "#1 @ 1,3: 4x4",
			want: Claim{ID: 1, X: 1, Y: 3, Width: 4, Height: 4},
		},
		{
			name: "no spaces",
			line: "#123@3,2:5x4",
			want: Claim{ID: 123, X: 3, Y: 2, Width: 5, Height: 4},
		},
		{
			name: "extra whitespace",
			line: "  # 7  @  10 , 20 :  3 x 9  ",
			want: Claim{ID: 7, X: 10, Y: 20, Width: 3, Height: 9},
		},
		{
			name: "zero area",
			line: "#2 @ 0,0: 0x5",
			want: Claim{ID: 2, X: 0, Y: 0, Width: 0, Height: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		field     string
		malformed bool
	}{
		{name: "missing colon", line: "#1 @ 1,3 4x4", field: "origin", malformed: true},
		{name: "missing hash", line: "1 @ 1,3: 4x4", field: "id", malformed: true},
		{name: "missing at", line: "#1 1,3: 4x4", field: "id", malformed: true},
		{name: "missing comma", line: "#1 @ 1 3: 4x4", field: "origin", malformed: true},
		{name: "missing x", line: "#1 @ 1,3: 4*4", field: "size", malformed: true},
		{name: "empty id", line: "# @ 1,3: 4x4", field: "id", malformed: true},
		{name: "negative x", line: "#1 @ -1,3: 4x4", field: "x", malformed: true},
		{name: "non numeric height", line: "#1 @ 1,3: 4xfour", field: "height", malformed: false},
		{name: "extra token", line: "#1 @ 1,3: 4x4x4", field: "height", malformed: false},
		{name: "empty line", line: "", field: "id", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
			assert.Equal(t, tt.field, pe.Field)
			if tt.malformed {
				assert.ErrorIs(t, err, ErrMalformed)
			} else {
				assert.ErrorIs(t, err, strconv.ErrSyntax)
			}
		})
	}
}

func TestClaimGeometry(t *testing.T) {
	c := Claim{ID: 1, X: 1, Y: 3, Width: 4, Height: 2}
	assert.Equal(t, 5, c.EndX())
	assert.Equal(t, 5, c.EndY())
	assert.Equal(t, 8, c.Area())

	empty := Claim{ID: 2, X: 1, Y: 1, Width: 0, Height: 3}
	assert.Zero(t, empty.Area())
}

func TestClaimStringRoundTrip(t *testing.T) {
	c := Claim{ID: 9, X: 100, Y: 7, Width: 12, Height: 30}
	assert.Equal(t, "#9 @ 100,7: 12x30", c.String())

	got, err := Parse(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
