package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTwiBlobs_Shape(t *testing.T) {
	p := DefaultTwiBlobParams()
	p.Footprints = testFootprints()
	p.NightPattern = []bool{false, true}

	surveys, err := GenerateTwiBlobs(p)
	require.NoError(t, err)
	require.Len(t, surveys, len(TwiBlobFilter1s))

	for _, s := range surveys {
		assert.True(t, s.InTwilight)
		assert.Equal(t, 10.0, s.MinPairTime)
		// twilight blobs are keyed to the NEO-off nights
		assert.Equal(t, 1, countLabelPrefix(s.Basis, "night_modulo"))
		// they run through twilight, so no not_twilight veto
		assert.Equal(t, 0, countLabelPrefix(s.Basis, "not_twilight"))
		assertMasksZeroWeight(t, s.Basis)
	}
}

func TestGenerateTwiBlobs_TwilightAltLimit(t *testing.T) {
	p := DefaultTwiBlobParams()
	p.Footprints = testFootprints()

	surveys, err := GenerateTwiBlobs(p)
	require.NoError(t, err)
	for _, s := range surveys {
		found := false
		for _, bw := range s.Basis {
			if b, ok := bw.BF.(TimeToTwilightBasisFunction); ok {
				assert.Equal(t, 12.0, b.AltLimit)
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestGenerateTwiBlobs_RepeatNightWeight(t *testing.T) {
	p := DefaultTwiBlobParams()
	p.Footprints = testFootprints()
	p.WFDFootprint = []float64{1, 1, 0}

	surveys, err := GenerateTwiBlobs(p)
	require.NoError(t, err)
	for _, s := range surveys {
		assert.Equal(t, 0, countLabelPrefix(s.Basis, "avoid_long_gaps"))
	}

	w := -5.0
	p.RepeatNightWeight = &w
	surveys, err = GenerateTwiBlobs(p)
	require.NoError(t, err)
	for _, s := range surveys {
		assert.Equal(t, []float64{w}, weightsByPrefix(s.Basis, "avoid_long_gaps"))
	}
}

func TestGenerateTwilightNEO_OnePerFilter(t *testing.T) {
	p := DefaultTwilightNEOParams()
	p.NightPattern = []bool{true, false, false, false}

	surveys := GenerateTwilightNEO(p)
	require.Len(t, surveys, 3)

	for i, filtername := range []string{"r", "i", "z"} {
		s := surveys[i]
		assert.Equal(t, filtername, s.FilterName1)
		assert.Equal(t, "", s.FilterName2)
		assert.Equal(t, "twilight_neo", s.SurveyNote)
		assert.Equal(t, []string{"DD", "greedy", "blob"}, s.IgnoreObs)
		assert.Equal(t, 1, s.Nexp)
		assert.Equal(t, 180.0, s.AzRange)
	}
}

func TestGenerateTwilightNEO_BasisShape(t *testing.T) {
	p := DefaultTwilightNEOParams()
	p.NightPattern = []bool{true}

	for _, s := range GenerateTwilightNEO(p) {
		require.Len(t, s.Basis, 11)
		assert.Equal(t, []float64{p.FootprintWeight}, weightsByPrefix(s.Basis, "footprint"))
		assert.Equal(t, 1, countLabelPrefix(s.Basis, "near_sun_twilight"))
		assert.Equal(t, 1, countLabelPrefix(s.Basis, "solar_elongation_mask"))
		assert.Equal(t, 1, countLabelPrefix(s.Basis, "sun_alt_high_limit"))
		assertMasksZeroWeight(t, s.Basis)
	}
}

func TestGenerateTwilightNEO_Detailers(t *testing.T) {
	p := DefaultTwilightNEOParams()
	p.NRepeat = 4

	for _, s := range GenerateTwilightNEO(p) {
		labels := detailerLabels(s.Detailers)
		assert.Equal(t, []string{"camera_rot", "close_alt", "twilight_triple"}, labels)
		triple := s.Detailers[2].(TwilightTripleDetailer)
		assert.Equal(t, 4, triple.NRepeat)
		assert.Equal(t, 4.5, triple.SlewEstimate)
	}
}

func TestGenerateTwilightNEO_MaskZeroesFootprint(t *testing.T) {
	p := DefaultTwilightNEOParams()
	p.FootprintMask = make([]float64, 12*32*32) // all masked out

	for _, s := range GenerateTwilightNEO(p) {
		fpBF := s.Basis[0].BF.(FootprintBasisFunction)
		fp, err := fpBF.Footprint.GetFootprint(s.FilterName1)
		require.NoError(t, err)
		for _, v := range fp {
			assert.Zero(t, v)
		}
	}
}
