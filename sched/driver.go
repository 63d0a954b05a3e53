package sched

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// RunParams groups the simulation-run knobs handed to the external driver
// alongside the assembled surveys.
type RunParams struct {
	SurveyLength float64 // days
	Nside        int
	FileRoot     string // output path prefix, version tag included
	Verbose      bool
	ExtraInfo    map[string]string
	IllumLimit   float64 // filter scheduler moon illumination limit (percent)
	DriverPath   string  // external simulator executable; empty = manifest only
}

// RunManifest is the full configuration the external driver consumes. Its
// output database format and schema are owned by the driver.
type RunManifest struct {
	OutputFile       string            `yaml:"output_file"`
	SurveyLengthDays float64           `yaml:"survey_length_days"`
	Nside            int               `yaml:"nside"`
	IllumLimit       float64           `yaml:"illum_limit"`
	Verbose          bool              `yaml:"verbose"`
	ExtraInfo        map[string]string `yaml:"extra_info"`
	Tiers            [][]SurveySummary `yaml:"tiers"`
}

// SurveySummary is the manifest record for one survey.
type SurveySummary struct {
	Type       string        `yaml:"type"`
	Name       string        `yaml:"name"`
	Filters    []string      `yaml:"filters,omitempty"`
	Basis      []BasisWeight `yaml:"basis,omitempty"`
	Detailers  []string      `yaml:"detailers,omitempty"`
	NScripted  int           `yaml:"n_scripted,omitempty"`
	GapRange   []float64     `yaml:"gap_range,omitempty"`
	IgnoreObs  []string      `yaml:"ignore_obs,omitempty"`
	Nexp       int           `yaml:"nexp,omitempty"`
	ExpTime    float64       `yaml:"exptime,omitempty"`
	InTwilight bool          `yaml:"in_twilight,omitempty"`
}

func detailerLabels(ds []Detailer) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Label()
	}
	return out
}

// Summarize flattens a survey into its manifest record.
func Summarize(s Survey) SurveySummary {
	switch sv := s.(type) {
	case *GreedySurvey:
		return SurveySummary{
			Type:      "greedy",
			Name:      sv.SurveyName,
			Filters:   []string{sv.FilterName},
			Basis:     sv.Basis,
			Detailers: detailerLabels(sv.Detailers),
			IgnoreObs: sv.IgnoreObs,
			Nexp:      sv.Nexp,
			ExpTime:   sv.ExpTime,
		}
	case *BlobSurvey:
		return SurveySummary{
			Type:       "blob",
			Name:       sv.SurveyName,
			Filters:    pairFilters(sv.FilterName1, sv.FilterName2),
			Basis:      sv.Basis,
			Detailers:  detailerLabels(sv.Detailers),
			IgnoreObs:  sv.IgnoreObs,
			Nexp:       sv.Nexp,
			ExpTime:    sv.ExpTime,
			InTwilight: sv.InTwilight,
		}
	case *ScriptedSurvey:
		return SurveySummary{
			Type:      "scripted",
			Name:      sv.SurveyName,
			Detailers: detailerLabels(sv.Detailers),
			NScripted: len(sv.Script()),
		}
	case *LongGapSurvey:
		summary := Summarize(sv.Blob)
		summary.Type = "long_gap"
		summary.GapRange = sv.GapRange[:]
		return summary
	default:
		return SurveySummary{Type: "unknown", Name: s.Name(), Basis: s.BasisWeights()}
	}
}

// BuildManifest assembles the run manifest from the scheduler configuration.
func BuildManifest(scheduler *CoreScheduler, fs FilterScheduler, p RunParams) RunManifest {
	years := int(math.Round(p.SurveyLength / 365.25))
	tiers := make([][]SurveySummary, len(scheduler.Tiers))
	for i, tier := range scheduler.Tiers {
		tiers[i] = make([]SurveySummary, len(tier))
		for j, s := range tier {
			tiers[i][j] = Summarize(s)
		}
	}
	return RunManifest{
		OutputFile:       fmt.Sprintf("%s%dyrs.db", p.FileRoot, years),
		SurveyLengthDays: p.SurveyLength,
		Nside:            scheduler.Nside,
		IllumLimit:       fs.IllumLimit,
		Verbose:          p.Verbose,
		ExtraInfo:        p.ExtraInfo,
		Tiers:            tiers,
	}
}

// RunSched serializes the run manifest next to the intended output database
// and, when a driver executable is configured, launches it on the manifest.
// Returns the manifest path.
func RunSched(surveys [][]Survey, p RunParams) (string, error) {
	scheduler := NewCoreScheduler(surveys, p.Nside)
	fs := FilterScheduler{IllumLimit: p.IllumLimit}

	manifest := BuildManifest(scheduler, fs, p)
	manifestPath := strings.TrimSuffix(manifest.OutputFile, ".db") + ".yaml"

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return "", fmt.Errorf("marshal run manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write run manifest: %w", err)
	}
	logrus.Infof("Wrote run manifest with %d surveys to %s", scheduler.NumSurveys(), manifestPath)

	if p.DriverPath == "" {
		return manifestPath, nil
	}

	logrus.Infof("Launching driver %s", p.DriverPath)
	cmd := exec.Command(p.DriverPath, manifestPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("driver %s: %w", p.DriverPath, err)
	}
	return manifestPath, nil
}
