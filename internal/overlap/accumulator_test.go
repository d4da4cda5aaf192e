package overlap

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/aoc2018/internal/claim"
	"github.com/xll-gen/aoc2018/internal/input"
	"github.com/xll-gen/aoc2018/pkg/algo"
)

func parseClaims(t *testing.T, lines ...string) []claim.Claim {
	t.Helper()
	claims, err := input.Parse(strings.NewReader(strings.Join(lines, "\n")), claim.Parse)
	require.NoError(t, err)
	return claims
}

func dense(t *testing.T) Coverage {
	t.Helper()
	g, err := NewDenseGrid(DefaultSize)
	require.NoError(t, err)
	return g
}

func run(t *testing.T, cov Coverage, claims []claim.Claim) *Accumulator {
	t.Helper()
	a := New(cov)
	require.NoError(t, a.AddAll(claims))
	a.Run()
	return a
}

func TestSampleClaims(t *testing.T) {
	claims := parseClaims(t,
		"#1 @ 1,3: 4x4",
		"#2 @ 3,1: 4x4",
		"#3 @ 5,5: 2x2",
	)

	for name, cov := range map[string]Coverage{"dense": dense(t), "sparse": NewSparseGrid()} {
		t.Run(name, func(t *testing.T) {
			a := run(t, cov, claims)
			assert.Equal(t, 4, a.SharedArea())

			id, ok := a.Untouched()
			require.True(t, ok)
			assert.Equal(t, 3, id)
			assert.Equal(t, []int{1, 2}, a.Overlapping())

			want := []algo.Region{{X: 3, Y: 3, Width: 2, Height: 2}}
			if diff := cmp.Diff(want, a.Regions()); diff != "" {
				t.Errorf("Regions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSingleClaim(t *testing.T) {
	a := run(t, dense(t), parseClaims(t, "#1 @ 0,0: 3x3"))
	assert.Zero(t, a.SharedArea())
	id, ok := a.Untouched()
	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Empty(t, a.Regions())
}

func TestNoClaims(t *testing.T) {
	a := run(t, dense(t), nil)
	assert.Zero(t, a.SharedArea())
	_, ok := a.Untouched()
	assert.False(t, ok)
}

func TestDisjointClaimsAreAllUntouched(t *testing.T) {
	claims := parseClaims(t,
		"#1 @ 0,0: 2x2",
		"#2 @ 2,0: 2x2",
		"#3 @ 0,2: 4x1",
		"#4 @ 10,10: 5x5",
	)
	a := run(t, dense(t), claims)
	assert.Zero(t, a.SharedArea())
	assert.Empty(t, a.Overlapping())

	id, ok := a.Untouched()
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestSquareOverlap(t *testing.T) {
	for k := 1; k <= 5; k++ {
		claims := []claim.Claim{
			{ID: 1, X: 10, Y: 10, Width: 10, Height: 10},
			{ID: 2, X: 20 - k, Y: 20 - k, Width: 10, Height: 10},
		}
		a := run(t, dense(t), claims)
		assert.Equal(t, k*k, a.SharedArea(), "k=%d", k)
	}
}

func TestAllOverlapping(t *testing.T) {
	claims := parseClaims(t,
		"#1 @ 0,0: 3x3",
		"#2 @ 1,1: 3x3",
		"#3 @ 2,2: 3x3",
	)
	a := run(t, dense(t), claims)
	_, ok := a.Untouched()
	assert.False(t, ok)
	// (1,1)-(2,2) from #1/#2, (2,2)-(3,3) from #2/#3; they share (2,2).
	assert.Equal(t, 7, a.SharedArea())
}

func TestIntersectIsIdempotent(t *testing.T) {
	claims := parseClaims(t, "#1 @ 1,3: 4x4", "#2 @ 3,1: 4x4")
	a := New(dense(t))
	require.NoError(t, a.AddAll(claims))

	assert.Equal(t, 4, a.Intersect(0, 1))
	first := a.SharedArea()
	assert.Equal(t, 4, a.Intersect(0, 1))
	assert.Equal(t, 4, a.Intersect(1, 0))
	assert.Equal(t, first, a.SharedArea())
}

func TestOrderIndependence(t *testing.T) {
	claims := parseClaims(t,
		"#1 @ 1,3: 4x4",
		"#2 @ 3,1: 4x4",
		"#3 @ 5,5: 2x2",
		"#4 @ 20,20: 6x2",
		"#5 @ 24,21: 3x3",
		"#6 @ 40,40: 1x1",
		"#7 @ 0,0: 1x1",
	)
	base := run(t, dense(t), claims)
	wantArea := base.SharedArea()
	wantSet := toSet(base.Overlapping())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]claim.Claim(nil), claims...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		a := run(t, dense(t), shuffled)
		assert.Equal(t, wantArea, a.SharedArea())
		assert.Equal(t, wantSet, toSet(a.Overlapping()))

		id, ok := a.Untouched()
		require.True(t, ok)
		for _, c := range shuffled {
			if !wantSet[c.ID] {
				assert.Equal(t, c.ID, id, "untouched must be the first untouched in input order")
				break
			}
		}
	}
}

func TestZeroAreaClaims(t *testing.T) {
	claims := parseClaims(t,
		"#1 @ 2,2: 0x5",
		"#2 @ 0,0: 10x10",
		"#3 @ 3,3: 4x0",
	)
	a := run(t, dense(t), claims)
	assert.Zero(t, a.SharedArea())
	assert.Empty(t, a.Overlapping())
	id, ok := a.Untouched()
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestDenseBounds(t *testing.T) {
	g, err := NewDenseGrid(10)
	require.NoError(t, err)
	a := New(g)

	assert.NoError(t, a.Add(claim.Claim{ID: 1, X: 5, Y: 5, Width: 5, Height: 5}), "end bound is exclusive")
	assert.NoError(t, a.Add(claim.Claim{ID: 2, X: 10, Y: 0, Width: 0, Height: 3}), "zero width on the edge")

	err = a.Add(claim.Claim{ID: 3, X: 6, Y: 0, Width: 5, Height: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Contains(t, err.Error(), "#3 @ 6,0: 5x1")

	assert.ErrorIs(t, a.Add(claim.Claim{ID: 4, X: 0, Y: 10, Width: 1, Height: 1}), ErrOutOfBounds)
	assert.ErrorIs(t, a.Add(claim.Claim{ID: 5, X: -1, Y: 0, Width: 1, Height: 1}), ErrOutOfBounds)
	assert.Equal(t, 2, a.Len())
}

func TestSparseAcceptsLargeCoordinates(t *testing.T) {
	claims := []claim.Claim{
		{ID: 1, X: 1500, Y: 2000, Width: 4, Height: 4},
		{ID: 2, X: 1502, Y: 2002, Width: 4, Height: 4},
		{ID: 3, X: 0, Y: 0, Width: 1, Height: 1},
	}
	res, err := Solve(NewSparseGrid(), claims, true)
	require.NoError(t, err)
	assert.Equal(t, 4, res.SharedArea)
	assert.True(t, res.HasUntouched)
	assert.Equal(t, 3, res.UntouchedID)
	assert.Equal(t, []int{1, 2}, res.Overlapping)
	assert.Equal(t, []algo.Region{{X: 1502, Y: 2002, Width: 2, Height: 2}}, res.Regions)

	_, err = Solve(dense(t), claims, false)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSparseRejectsHugeClaims(t *testing.T) {
	g := NewSparseGrid()
	assert.True(t, g.Fits(claim.Claim{ID: 1, X: 2000000000, Y: 0, Width: MaxSize, Height: MaxSize}))
	assert.False(t, g.Fits(claim.Claim{ID: 2, X: 0, Y: 0, Width: MaxSize + 1, Height: MaxSize}))

	huge := []claim.Claim{
		{ID: 1, X: 0, Y: 0, Width: 2000000000, Height: 2000000000},
		{ID: 2, X: 1, Y: 1, Width: 2000000000, Height: 2000000000},
	}
	_, err := Solve(g, huge, false)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDenseAndSparseAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var claims []claim.Claim
	for id := 1; id <= 60; id++ {
		claims = append(claims, claim.Claim{
			ID:     id,
			X:      rng.Intn(80),
			Y:      rng.Intn(80),
			Width:  rng.Intn(20),
			Height: rng.Intn(20),
		})
	}

	d, err := Solve(dense(t), claims, true)
	require.NoError(t, err)
	s, err := Solve(NewSparseGrid(), claims, true)
	require.NoError(t, err)

	if diff := cmp.Diff(d, s); diff != "" {
		t.Errorf("dense and sparse results differ (-dense +sparse):\n%s", diff)
	}

	area := 0
	for _, r := range d.Regions {
		area += r.Area()
	}
	assert.Equal(t, d.SharedArea, area)
}

func TestNewCoverage(t *testing.T) {
	cov, err := NewCoverage(ModeDense, 50)
	require.NoError(t, err)
	assert.IsType(t, &DenseGrid{}, cov)
	assert.Equal(t, 50, cov.(*DenseGrid).Size())

	cov, err = NewCoverage(ModeSparse, 0)
	require.NoError(t, err)
	assert.IsType(t, &SparseGrid{}, cov)

	_, err = NewCoverage(ModeDense, 0)
	assert.Error(t, err)

	for _, size := range []int{MaxSize + 1, 3037000500, 1 << 32} {
		cov, err = NewCoverage(ModeDense, size)
		assert.ErrorIs(t, err, ErrGridTooLarge, "size %d", size)
		assert.Nil(t, cov)
	}

	_, err = NewCoverage("quadtree", 10)
	assert.ErrorContains(t, err, "unknown grid mode")
}

func toSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
