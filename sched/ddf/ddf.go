// Package ddf generates the pre-scheduled observation sequences for the
// deep-drilling fields. The sequences are consumed verbatim by scripted
// surveys; no selection logic runs over them.
package ddf

import (
	"fmt"
	"math"
)

// ScheduledObservation is one pre-planned visit in a scripted survey script.
type ScheduledObservation struct {
	MJD        float64 `yaml:"mjd"`
	RA         float64 `yaml:"ra"`  // degrees
	Dec        float64 `yaml:"dec"` // degrees
	FilterName string  `yaml:"filter"`
	ExpTime    float64 `yaml:"exptime"` // seconds
	Nexp       int     `yaml:"nexp"`
	Note       string  `yaml:"note"`
	FlushByMJD float64 `yaml:"flush_by_mjd"` // drop the visit if not taken by then
}

// Field is a deep-drilling field pointing.
type Field struct {
	Name string
	RA   float64 // degrees
	Dec  float64 // degrees
}

// Fields lists the standard deep-drilling fields, Euclid double field last.
var Fields = []Field{
	{Name: "ELAISS1", RA: 9.45, Dec: -44.0},
	{Name: "XMM_LSS", RA: 35.708333, Dec: -4.75},
	{Name: "ECDFS", RA: 53.125, Dec: -28.1},
	{Name: "COSMOS", RA: 150.1, Dec: 2.1819},
	{Name: "EDFS_a", RA: 58.90, Dec: -49.315},
	{Name: "EDFS_b", RA: 63.6, Dec: -47.60},
}

// sequenceNvis is the per-night visit count for each filter in a DDF sequence.
var sequenceNvis = map[string]int{"u": 8, "g": 10, "r": 20, "i": 20, "z": 24, "y": 18}

// sequenceFilters fixes the filter order within a night's sequence.
var sequenceFilters = []string{"u", "g", "r", "i", "z", "y"}

// Params groups the schedule-generation knobs.
type Params struct {
	MJDStart         float64
	SunRAStart       float64 // degrees
	SurveyLengthDays float64
	SeasonFrac       float64 // fraction of each season to schedule, centered on peak
	CadenceDays      int     // nights between sequences while in season
	ExpTime          float64
	Nexp             int
	FlushDays        float64 // how long a visit stays valid
}

// DefaultParams returns the standard DDF schedule knobs.
func DefaultParams() Params {
	return Params{
		MJDStart:         60218, // Oct 1 2023, placeholder start used throughout
		SunRAStart:       188.3,
		SurveyLengthDays: 365.25 * 10,
		SeasonFrac:       0.2,
		CadenceDays:      3,
		ExpTime:          30,
		Nexp:             2,
		FlushDays:        2,
	}
}

// inSeason reports whether the field is within the scheduled fraction of its
// observing season on the given night. A field's season peaks when its RA is
// opposite the sun's; seasonFrac trims the window symmetrically around that
// peak, so frac=1 schedules the whole year and frac=0 schedules nothing.
func inSeason(fieldRA, sunRA, seasonFrac float64) bool {
	sep := math.Mod(fieldRA-sunRA+720, 360)
	if sep > 180 {
		sep = 360 - sep
	}
	halfWindow := seasonFrac * 180
	return sep >= 180-halfWindow
}

// GenerateDDFScheduledObs builds the full pre-scheduled visit list for all
// deep-drilling fields over the survey.
func GenerateDDFScheduledObs(p Params) []ScheduledObservation {
	var obs []ScheduledObservation
	nNights := int(p.SurveyLengthDays)
	for _, field := range Fields {
		for night := 0; night < nNights; night += p.CadenceDays {
			mjd := p.MJDStart + float64(night)
			sunRA := math.Mod(p.SunRAStart+360/365.25*float64(night), 360)
			if !inSeason(field.RA, sunRA, p.SeasonFrac) {
				continue
			}
			for _, filtername := range sequenceFilters {
				for v := 0; v < sequenceNvis[filtername]; v++ {
					obs = append(obs, ScheduledObservation{
						MJD:        mjd,
						RA:         field.RA,
						Dec:        field.Dec,
						FilterName: filtername,
						ExpTime:    p.ExpTime,
						Nexp:       p.Nexp,
						Note:       fmt.Sprintf("DD:%s", field.Name),
						FlushByMJD: mjd + p.FlushDays,
					})
				}
			}
		}
	}
	return obs
}
