package sched

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFootprints returns a constant footprint source with a small map for
// every band.
func testFootprints() *ConstantFootprint {
	fp := NewConstantFootprint()
	for _, filtername := range []string{"u", "g", "r", "i", "z", "y"} {
		fp.SetFootprint(filtername, []float64{1, 1, 0, 0.5})
	}
	return fp
}

// countLabelPrefix counts basis terms whose label starts with prefix.
func countLabelPrefix(bfs []BasisWeight, prefix string) int {
	n := 0
	for _, bw := range bfs {
		if strings.HasPrefix(bw.BF.Label(), prefix) {
			n++
		}
	}
	return n
}

// weightsByPrefix returns the weights of the basis terms whose label starts
// with prefix, in construction order.
func weightsByPrefix(bfs []BasisWeight, prefix string) []float64 {
	var out []float64
	for _, bw := range bfs {
		if strings.HasPrefix(bw.BF.Label(), prefix) {
			out = append(out, bw.Weight)
		}
	}
	return out
}

func assertMasksZeroWeight(t *testing.T, bfs []BasisWeight) {
	t.Helper()
	for _, bw := range bfs {
		if IsMask(bw.BF) {
			assert.Zerof(t, bw.Weight, "mask %s must carry zero weight", bw.BF.Label())
		}
	}
}

func TestGenGreedySurveys_OnePerFilter(t *testing.T) {
	p := DefaultGreedyParams()
	p.Footprints = testFootprints()

	surveys := GenGreedySurveys(p)
	require.Len(t, surveys, len(p.Filters))
	for i, s := range surveys {
		assert.Equal(t, p.Filters[i], s.FilterName)
		assert.Contains(t, s.SurveyName, p.Filters[i])
	}
}

func TestGenGreedySurveys_BasisShape(t *testing.T) {
	p := DefaultGreedyParams()
	p.Footprints = testFootprints()

	surveys := GenGreedySurveys(p)
	for _, s := range surveys {
		// 5 scoring terms plus 4 masks
		require.Len(t, s.Basis, 9)
		assert.Equal(t, []float64{p.M5Weight}, weightsByPrefix(s.Basis, "m5_diff"))
		assert.Equal(t, []float64{p.FootprintWeight}, weightsByPrefix(s.Basis, "footprint"))
		assert.Equal(t, []float64{p.SlewtimeWeight}, weightsByPrefix(s.Basis, "slewtime"))
		assert.Equal(t, []float64{p.StayFilterWeight}, weightsByPrefix(s.Basis, "strict_filter"))
		assert.Equal(t, []float64{p.RepeatWeight}, weightsByPrefix(s.Basis, "visit_repeat"))
		assertMasksZeroWeight(t, s.Basis)
	}
}

func TestGenGreedySurveys_FixedParams(t *testing.T) {
	p := DefaultGreedyParams()
	p.Footprints = testFootprints()

	for _, s := range GenGreedySurveys(p) {
		assert.Equal(t, 1, s.BlockSize)
		assert.Equal(t, int64(42), s.Seed)
		assert.Equal(t, "LSST", s.Camera)
		assert.True(t, s.Dither)
		assert.Equal(t, []string{"DD", "twilight_neo"}, s.IgnoreObs)
		require.Len(t, s.Detailers, 2)
		assert.Equal(t, "camera_rot", s.Detailers[0].Label())
	}
}
