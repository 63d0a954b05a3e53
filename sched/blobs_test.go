package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBlobs_OnePerPair(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)
	require.Len(t, surveys, len(p.Filter1s))
	for i, s := range surveys {
		assert.Equal(t, p.Filter1s[i], s.FilterName1)
		assert.Equal(t, p.Filter2s[i], s.FilterName2)
		assert.True(t, s.Paired())
	}
}

// A paired blob carries two half-weight M5-difference, footprint and
// template terms; an unpaired blob carries one at full weight.
func TestGenerateBlobs_PairedHalvesWeights(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()
	p.Filter1s = []string{"z", "z"}
	p.Filter2s = []string{"y", ""}
	p.GoodSeeing = nil

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)
	require.Len(t, surveys, 2)

	paired, unpaired := surveys[0], surveys[1]

	assert.Equal(t, []float64{p.M5Weight / 2, p.M5Weight / 2}, weightsByPrefix(paired.Basis, "m5_diff"))
	assert.Equal(t, []float64{p.M5Weight}, weightsByPrefix(unpaired.Basis, "m5_diff"))

	assert.Equal(t, []float64{p.FootprintWeight / 2, p.FootprintWeight / 2}, weightsByPrefix(paired.Basis, "footprint"))
	assert.Equal(t, []float64{p.FootprintWeight}, weightsByPrefix(unpaired.Basis, "footprint"))

	assert.Equal(t, []float64{p.TemplateWeight / 2, p.TemplateWeight / 2}, weightsByPrefix(paired.Basis, "n_obs_per_year"))
	assert.Equal(t, []float64{p.TemplateWeight}, weightsByPrefix(unpaired.Basis, "n_obs_per_year"))

	// Paired blobs need room for both halves before twilight.
	assert.Equal(t, []float64{0, 0}, []float64{
		weightsByPrefix(paired.Basis, "time_to_twilight")[0],
		weightsByPrefix(unpaired.Basis, "time_to_twilight")[0],
	})
	assert.Equal(t, 2*p.PairTime, timeToTwilightNeeded(t, paired.Basis))
	assert.Equal(t, p.PairTime, timeToTwilightNeeded(t, unpaired.Basis))
}

func timeToTwilightNeeded(t *testing.T, bfs []BasisWeight) float64 {
	t.Helper()
	for _, bw := range bfs {
		if b, ok := bw.BF.(TimeToTwilightBasisFunction); ok {
			return b.TimeNeeded
		}
	}
	t.Fatal("no time_to_twilight term")
	return 0
}

func TestGenerateBlobs_UBandTemplateWeight(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()
	p.Filter1s = []string{"u"}
	p.Filter2s = []string{""}

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)
	assert.Equal(t, []float64{p.UTemplateWeight}, weightsByPrefix(surveys[0].Basis, "n_obs_per_year"))
}

func TestGenerateBlobs_GoodSeeingTerms(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()
	p.Filter1s = []string{"g", "z"}
	p.Filter2s = []string{"r", "y"}

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)
	// g and r are both in the good-seeing map, z and y are not.
	assert.Equal(t, 2, countLabelPrefix(surveys[0].Basis, "n_good_seeing"))
	assert.Equal(t, 0, countLabelPrefix(surveys[1].Basis, "n_good_seeing"))
	assert.Equal(t, []float64{p.GoodSeeingWeight, p.GoodSeeingWeight},
		weightsByPrefix(surveys[0].Basis, "n_good_seeing"))
}

func TestGenerateBlobs_Detailers(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()
	p.Filter1s = []string{"r", "r"}
	p.Filter2s = []string{"i", ""}

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)

	paired, unpaired := surveys[0], surveys[1]
	assert.Contains(t, detailerLabels(paired.Detailers), "take_as_pairs i")
	assert.NotContains(t, detailerLabels(unpaired.Detailers), "take_as_pairs ")
	// u_nexp1 detailer is always appended when enabled
	assert.Contains(t, detailerLabels(paired.Detailers), "filter_nexp u")
}

func TestGenerateBlobs_MasksZeroWeight(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)
	for _, s := range surveys {
		assertMasksZeroWeight(t, s.Basis)
	}
}

func TestGenerateBlobs_BlobGeometry(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = testFootprints()

	surveys, err := GenerateBlobs(p)
	require.NoError(t, err)
	for _, s := range surveys {
		assert.Equal(t, 7.5, s.SlewApprox)
		assert.Equal(t, 140.0, s.FilterChangeApprox)
		assert.Equal(t, 15.0, s.MinPairTime)
		assert.False(t, s.InTwilight)
		assert.Equal(t, p.PairTime, s.IdealPairTime)
	}
}

func TestGenerateBlobs_MissingFootprintFails(t *testing.T) {
	p := DefaultBlobParams()
	p.Footprints = NewConstantFootprint() // no maps at all

	_, err := GenerateBlobs(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no footprint for filter")
}
