package params

import (
	"bytes"
	"errors"
	"testing"

	"github.com/consensys/gnark/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestBuiltinShapes(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5}, Builtin.Widths())
	for _, width := range Builtin.Widths() {
		p, err := New(width)
		require.NoError(t, err, "width %d", width)
		require.Equal(t, uint64(Alpha), p.Alpha)
		require.Equal(t, FullRounds+PartialRounds, p.Rounds())
		require.Len(t, p.RoundConstants, width*p.Rounds())
		require.Len(t, p.MDS, width)
		for _, row := range p.MDS {
			require.Len(t, row, width)
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	for _, width := range Builtin.Widths() {
		a, err := New(width)
		require.NoError(t, err)
		b, err := New(width)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("width %d: parameters differ (-first +second):\n%s", width, diff)
		}
	}
}

func TestUnsupportedWidth(t *testing.T) {
	for _, width := range []int{6, 100} {
		_, err := New(width)
		require.True(t, errors.Is(err, ErrUnsupportedWidth), "width %d: %v", width, err)
	}
	_, err := New(0)
	require.Error(t, err)
	_, err = New(-3)
	require.Error(t, err)
}

func TestMalformedConstantPanics(t *testing.T) {
	tbl := &Table{
		RoundConstants: map[int][]string{1: make([]string, FullRounds+PartialRounds)},
		MDS:            map[int][][]string{1: {{"1"}}},
	}
	for i := range tbl.RoundConstants[1] {
		tbl.RoundConstants[1][i] = "7"
	}
	tbl.RoundConstants[1][3] = "not-a-number"

	require.Panics(t, func() { _, _ = Load(tbl, 1) })
}

func TestShortTableRejected(t *testing.T) {
	tbl := &Table{
		RoundConstants: map[int][]string{2: Builtin.RoundConstants[2][:2*PartialRounds]},
		MDS:            map[int][][]string{2: Builtin.MDS[2]},
	}
	_, err := Load(tbl, 2)
	require.True(t, errors.Is(err, ErrRoundConstantsLength), "%v", err)
}

func TestMDSShapeRejected(t *testing.T) {
	tbl := &Table{
		RoundConstants: map[int][]string{2: Builtin.RoundConstants[2]},
		MDS:            map[int][][]string{2: {{"1", "2"}, {"3"}}},
	}
	_, err := Load(tbl, 2)
	require.ErrorContains(t, err, "mds row 1")

	_, err = LoadTruncated(tbl, 2)
	require.ErrorContains(t, err, "mds row 1")
}

func TestLoadTruncated(t *testing.T) {
	full, err := New(3)
	require.NoError(t, err)
	p, err := LoadTruncated(Builtin, 3)
	require.NoError(t, err)

	require.Len(t, p.RoundConstants, 3)
	require.Equal(t, full.RoundConstants[:3], p.RoundConstants)
	require.Equal(t, full.MDS, p.MDS)
	require.True(t, errors.Is(Validate(p), ErrRoundConstantsLength))
}

func TestValidate(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)
	require.NoError(t, Validate(p))

	bad := *p
	bad.Alpha = 3
	require.ErrorContains(t, Validate(&bad), "alpha")

	bad = *p
	bad.MDS = p.MDS[:1]
	require.ErrorContains(t, Validate(&bad), "mds has 1 rows")

	bad = *p
	bad.RoundConstants = p.RoundConstants[:len(p.RoundConstants)-1]
	require.True(t, errors.Is(Validate(&bad), ErrRoundConstantsLength))
}

func TestForWidthCaches(t *testing.T) {
	a, err := ForWidth(4)
	require.NoError(t, err)
	b, err := ForWidth(4)
	require.NoError(t, err)
	require.Same(t, a, b)

	fresh, err := New(4)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(fresh, a))

	_, err = ForWidth(42)
	require.True(t, errors.Is(err, ErrUnsupportedWidth))
}

func TestForWidthLogsFirstLoad(t *testing.T) {
	prev := logger.Logger()
	t.Cleanup(func() { logger.Set(prev) })

	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf).Level(zerolog.DebugLevel))

	cache.Lock()
	delete(cache.byWidth, 5)
	cache.Unlock()

	_, err := ForWidth(5)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"width":5`)
	require.Contains(t, buf.String(), "parameters loaded")

	buf.Reset()
	_, err = ForWidth(5)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestBuiltinMatchesGenerator(t *testing.T) {
	generated := Generate(Builtin.Widths(), FullRounds, PartialRounds)
	if diff := cmp.Diff(Builtin, generated); diff != "" {
		t.Fatalf("builtin table is stale, run go generate (-builtin +generated):\n%s", diff)
	}
}

func TestGrainIsDeterministic(t *testing.T) {
	a := newGrain(3, FullRounds, PartialRounds)
	b := newGrain(3, FullRounds, PartialRounds)
	for i := range 512 {
		require.Equal(t, a.next(), b.next(), "bit %d", i)
	}

	c := newGrain(4, FullRounds, PartialRounds)
	d := newGrain(3, FullRounds, PartialRounds)
	same := true
	for range 256 {
		if c.next() != d.next() {
			same = false
		}
	}
	require.False(t, same, "width must be part of the seed")
}

func TestRoundSchedules(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)

	var threshold, sandwich []int
	for r := range p.Rounds() {
		if p.FullRound(r) {
			threshold = append(threshold, r)
		}
		if p.SandwichFullRound(r) {
			sandwich = append(sandwich, r)
		}
	}
	// PartialRounds/2 = 4, PartialRounds/2+FullRounds = 61.
	require.Equal(t, []int{0, 1, 2, 3, 62, 63, 64}, threshold)
	require.Len(t, sandwich, FullRounds)
	require.True(t, p.SandwichFullRound(FullRounds/2-1))
	require.False(t, p.SandwichFullRound(FullRounds/2))
	require.False(t, p.SandwichFullRound(FullRounds/2+PartialRounds-1))
	require.True(t, p.SandwichFullRound(FullRounds/2+PartialRounds))
}
