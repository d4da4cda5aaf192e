package polymer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aA", ""},
		{"abBA", ""},
		{"abAB", "abAB"},
		{"aabAAB", "aabAAB"},
		{"dabAcCaCBAcCcaDA", "dabCBAcaDA"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Reduce(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReduceRejectsNonLetters(t *testing.T) {
	_, err := Reduce("abc1D")
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.ErrorContains(t, err, "offset 3")
}

func TestUnitsSkipsBothPolarities(t *testing.T) {
	seq, err := Units("dabAcCaCBAcCcaDA", 'A')
	require.NoError(t, err)
	assert.Equal(t, "dbcCCBcCcD", drain(seq))

	seq, err = Units("aA", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Size())
}

func TestShortest(t *testing.T) {
	unit, n, err := Shortest("dabAcCaCBAcCcaDA")
	require.NoError(t, err)
	assert.Equal(t, 'c', unit)
	assert.Equal(t, 4, n)
}

func TestShortestWithoutImprovement(t *testing.T) {
	unit, n, err := Shortest("")
	require.NoError(t, err)
	assert.Zero(t, unit)
	assert.Zero(t, n)
}

func TestReactDrainsInput(t *testing.T) {
	seq, err := Units("aBbA", 0)
	require.NoError(t, err)
	out := React(seq)
	assert.True(t, seq.Empty())
	assert.True(t, out.Empty())
}
