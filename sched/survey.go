package sched

import "github.com/survey-sim/survey-sim/sched/ddf"

// Survey is a named observing strategy the core scheduler chooses between.
// Concrete surveys are configuration records consumed once by the driver.
type Survey interface {
	Name() string
	// BasisWeights returns the (basis function, weight) pairs in construction
	// order. Scripted surveys return nil.
	BasisWeights() []BasisWeight
}

// GreedySurvey proposes single pointings one at a time, always taking the
// current best-scoring pixel.
type GreedySurvey struct {
	SurveyName  string
	FilterName  string
	Basis       []BasisWeight
	Detailers   []Detailer
	ExpTime     float64
	Nexp        int
	Nside       int
	IgnoreObs   []string
	BlockSize   int
	Seed        int64
	Camera      string
	Dither      bool
}

func (s *GreedySurvey) Name() string                { return s.SurveyName }
func (s *GreedySurvey) BasisWeights() []BasisWeight { return s.Basis }

// BlobSurvey proposes contiguous blocks of pointings, optionally repeated in
// a second filter to collect pairs.
type BlobSurvey struct {
	SurveyName    string
	SurveyNote    string
	FilterName1   string
	FilterName2   string // empty = unpaired
	Basis         []BasisWeight
	Detailers     []Detailer
	ExpTime       float64
	Nexp          int
	IdealPairTime float64 // minutes
	IgnoreObs     []string

	// Fixed blob geometry and overheads forwarded to the driver.
	SlewApprox         float64
	FilterChangeApprox float64
	ReadApprox         float64
	MinPairTime        float64
	SearchRadius       float64
	AltMax             float64
	AzRange            float64
	FlushTime          float64
	Nside              int
	Seed               int64
	Dither             bool
	TwilightScale      bool
	InTwilight         bool
	AreaRequired       float64
}

func (s *BlobSurvey) Name() string                { return s.SurveyName }
func (s *BlobSurvey) BasisWeights() []BasisWeight { return s.Basis }

// Paired reports whether the blob collects two-filter pairs.
func (s *BlobSurvey) Paired() bool { return s.FilterName2 != "" }

// ScriptedSurvey executes a pre-computed list of observations verbatim.
type ScriptedSurvey struct {
	SurveyName string
	Basis      []BasisWeight
	Detailers  []Detailer

	script []ddf.ScheduledObservation
}

func (s *ScriptedSurvey) Name() string                { return s.SurveyName }
func (s *ScriptedSurvey) BasisWeights() []BasisWeight { return s.Basis }

// SetScript installs the observation list, replacing any previous script.
func (s *ScriptedSurvey) SetScript(obs []ddf.ScheduledObservation) {
	s.script = obs
}

// Script returns the installed observation list.
func (s *ScriptedSurvey) Script() []ddf.ScheduledObservation { return s.script }

// LongGapSurvey couples a blob survey with a scripted follow-up so the driver
// can revisit the blob's area after a multi-hour gap.
type LongGapSurvey struct {
	Blob          *BlobSurvey
	Scripted      *ScriptedSurvey
	GapRange      [2]float64 // hours
	AvoidZenith   bool
	NightsDelayed int
}

func (s *LongGapSurvey) Name() string                { return s.Blob.SurveyName }
func (s *LongGapSurvey) BasisWeights() []BasisWeight { return s.Blob.Basis }
