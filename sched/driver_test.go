package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testSurveyTiers(t *testing.T) [][]Survey {
	t.Helper()
	p := DefaultGreedyParams()
	p.Footprints = testFootprints()
	return [][]Survey{asTestSurveys(GenGreedySurveys(p))}
}

func asTestSurveys[S Survey](in []S) []Survey {
	out := make([]Survey, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func TestBuildManifest_YearsAndOutputFile(t *testing.T) {
	scheduler := NewCoreScheduler(testSurveyTiers(t), 32)
	fs := FilterScheduler{IllumLimit: 40}

	m := BuildManifest(scheduler, fs, RunParams{
		SurveyLength: 365.25 * 10,
		Nside:        32,
		FileRoot:     "baselinev2.99_",
		IllumLimit:   40,
	})
	assert.Equal(t, "baselinev2.99_10yrs.db", m.OutputFile)
	assert.Equal(t, 32, m.Nside)
	assert.Equal(t, 40.0, m.IllumLimit)
	require.Len(t, m.Tiers, 1)
	assert.Len(t, m.Tiers[0], 4)
}

func TestRunSched_WritesManifest(t *testing.T) {
	dir := t.TempDir()
	path, err := RunSched(testSurveyTiers(t), RunParams{
		SurveyLength: 365.25,
		Nside:        32,
		FileRoot:     filepath.Join(dir, "baselinev2.99_"),
		IllumLimit:   40,
		ExtraInfo:    map[string]string{"exec command": "survey-sim baseline"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "baselinev2.99_1yrs.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m RunManifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, filepath.Join(dir, "baselinev2.99_1yrs.db"), m.OutputFile)
	assert.Equal(t, 365.25, m.SurveyLengthDays)
	assert.Equal(t, "survey-sim baseline", m.ExtraInfo["exec command"])
	require.Len(t, m.Tiers, 1)
	for _, s := range m.Tiers[0] {
		assert.Equal(t, "greedy", s.Type)
		assert.NotEmpty(t, s.Basis)
	}
}

func TestRunSched_MissingDriver(t *testing.T) {
	dir := t.TempDir()
	_, err := RunSched(testSurveyTiers(t), RunParams{
		SurveyLength: 365.25,
		Nside:        32,
		FileRoot:     filepath.Join(dir, "baselinev2.99_"),
		DriverPath:   filepath.Join(dir, "no_such_driver"),
	})
	require.Error(t, err)
}

func TestSummarize_LongGap(t *testing.T) {
	p := DefaultLongGapsParams()
	p.Footprints = testFootprints()
	p.NightPattern = []bool{true, false}
	surveys, err := GenLongGapsSurvey(p)
	require.NoError(t, err)
	require.NotEmpty(t, surveys)

	s := Summarize(surveys[0])
	assert.Equal(t, "long_gap", s.Type)
	assert.Equal(t, []float64{2, 7}, s.GapRange)
	assert.NotEmpty(t, s.Basis)
}

func TestExtraInfo_Keys(t *testing.T) {
	info := ExtraInfo()
	assert.Contains(t, info, "exec command")
	assert.Contains(t, info, "git hash")
	assert.NotEmpty(t, info["exec command"])
	assert.NotEmpty(t, info["git hash"])
}
