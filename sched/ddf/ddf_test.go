package ddf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInSeason(t *testing.T) {
	// Field opposite the sun is at season peak regardless of the fraction.
	assert.True(t, inSeason(0, 180, 0.01))
	// Field at the sun's RA is out of season even with a wide window.
	assert.False(t, inSeason(180, 180, 0.9))
	// frac=1 schedules the whole year.
	assert.True(t, inSeason(42, 42, 1))
	// Wraparound: 350 vs 10 is a 20 degree separation, nowhere near opposition.
	assert.False(t, inSeason(350, 10, 0.2))
}

func TestGenerateDDFScheduledObs_Shape(t *testing.T) {
	p := DefaultParams()
	p.SurveyLengthDays = 365
	obs := GenerateDDFScheduledObs(p)
	require.NotEmpty(t, obs)

	names := map[string]bool{}
	for _, o := range obs {
		assert.True(t, strings.HasPrefix(o.Note, "DD:"))
		assert.Equal(t, p.ExpTime, o.ExpTime)
		assert.Equal(t, p.Nexp, o.Nexp)
		assert.Equal(t, o.MJD+p.FlushDays, o.FlushByMJD)
		assert.GreaterOrEqual(t, o.MJD, p.MJDStart)
		assert.Less(t, o.MJD, p.MJDStart+p.SurveyLengthDays)
		names[o.Note] = true
	}
	// Every field gets a season within one year.
	for _, f := range Fields {
		assert.True(t, names["DD:"+f.Name], "no visits for %s", f.Name)
	}
}

func TestGenerateDDFScheduledObs_SequenceCounts(t *testing.T) {
	p := DefaultParams()
	p.SurveyLengthDays = 365
	obs := GenerateDDFScheduledObs(p)

	// Pick the first scheduled night of the first field and count per filter.
	first := obs[0]
	counts := map[string]int{}
	for _, o := range obs {
		if o.Note == first.Note && o.MJD == first.MJD {
			counts[o.FilterName]++
		}
	}
	assert.Equal(t, sequenceNvis, counts)
}

func TestGenerateDDFScheduledObs_Cadence(t *testing.T) {
	p := DefaultParams()
	p.SurveyLengthDays = 365
	p.CadenceDays = 3
	obs := GenerateDDFScheduledObs(p)

	nights := map[float64]bool{}
	for _, o := range obs {
		if o.Note == "DD:ELAISS1" {
			nights[o.MJD] = true
		}
	}
	require.NotEmpty(t, nights)
	for mjd := range nights {
		offset := int(mjd - p.MJDStart)
		assert.Zero(t, offset%p.CadenceDays)
	}
}

func TestGenerateDDFScheduledObs_SeasonFracWidensWindow(t *testing.T) {
	p := DefaultParams()
	p.SurveyLengthDays = 365

	p.SeasonFrac = 0.2
	narrow := len(GenerateDDFScheduledObs(p))
	p.SeasonFrac = 0.6
	wide := len(GenerateDDFScheduledObs(p))

	assert.Greater(t, wide, narrow)
}
