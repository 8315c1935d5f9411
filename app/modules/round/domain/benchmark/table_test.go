package benchmark

import (
	"errors"
	"testing"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltInTable(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pga_tour", table.Name())

	tests := []struct {
		lie      roundtypes.Lie
		distance int
		want     float64
	}{
		{roundtypes.LieTee, 170, 3.085},
		{roundtypes.LieTee, 300, 3.714},
		{roundtypes.LieTee, 400, 3.99},
		{roundtypes.LieFairway, 130, 2.88},
		{roundtypes.LieGreen, 1, 1.04},
		{roundtypes.LieGreen, 15, 1.78},
		{roundtypes.LieGreen, 20, 1.87},
	}
	for _, tt := range tests {
		got, err := table.ExpectedStrokes(tt.lie, tt.distance)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%s %d", tt.lie, tt.distance)
	}
}

func TestBuiltInTableCoversEveryLie(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	for _, lie := range roundtypes.ValidLies {
		min, max, ok := table.Range(lie)
		require.True(t, ok, "lie %s", lie)
		assert.Equal(t, 1, min, "lie %s", lie)
		for d := min; d <= max; d++ {
			_, err := table.ExpectedStrokes(lie, d)
			require.NoError(t, err, "lie %s distance %d", lie, d)
		}
	}
}

func TestPenaltyAliasesRecovery(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	for _, d := range []int{1, 75, 150, 320} {
		penalty, err := table.ExpectedStrokes(roundtypes.LiePenalty, d)
		require.NoError(t, err)
		recovery, err := table.ExpectedStrokes(roundtypes.LieRecovery, d)
		require.NoError(t, err)
		assert.Equal(t, recovery, penalty)
	}
}

func TestExpectedStrokesMissing(t *testing.T) {
	table := New("tiny", map[roundtypes.Lie]map[int]float64{
		roundtypes.LieGreen: {1: 1.0},
	})

	_, err := table.ExpectedStrokes(roundtypes.LieGreen, 2)
	assert.True(t, errors.Is(err, ErrBenchmarkMissing))

	_, err = table.ExpectedStrokes(roundtypes.LieTee, 1)
	assert.True(t, errors.Is(err, ErrBenchmarkMissing))
}

func TestNewCopiesInput(t *testing.T) {
	src := map[roundtypes.Lie]map[int]float64{roundtypes.LieGreen: {1: 1.0}}
	table := New("copy", src)
	src[roundtypes.LieGreen][1] = 9

	v, err := table.ExpectedStrokes(roundtypes.LieGreen, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestParseInterpolatesAndRounds(t *testing.T) {
	table, err := Parse([]byte(`
name: test
curves:
  fairway:
    10: 2.0
    13: 3.0
`))
	require.NoError(t, err)

	want := map[int]float64{10: 2.0, 11: 2.333, 12: 2.667, 13: 3.0}
	for d, v := range want {
		got, err := table.ExpectedStrokes(roundtypes.LieFairway, d)
		require.NoError(t, err)
		assert.Equal(t, v, got, "distance %d", d)
	}
	_, err = table.ExpectedStrokes(roundtypes.LieFairway, 9)
	assert.ErrorIs(t, err, ErrBenchmarkMissing)
}

func TestParseRejectsBadTables(t *testing.T) {
	tests := map[string]string{
		"unknown lie":   "curves:\n  cart_path:\n    1: 2.0\n",
		"penalty curve": "curves:\n  penalty:\n    1: 2.0\n",
		"zero distance": "curves:\n  green:\n    0: 1.0\n",
		"below one":     "curves:\n  green:\n    1: 0.5\n",
		"no curves":     "name: empty\n",
		"bad yaml":      "curves: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
