package sched

// Detailer is a post-selection adjustment the driver applies to a chosen
// observation (camera rotation, dithering, pairing). Like basis functions,
// detailers here are parameter records only.
type Detailer interface {
	Label() string
}

// CameraRotDetailer dithers the camera rotation angle within limits.
type CameraRotDetailer struct {
	MinRot float64 `yaml:"min_rot"` // degrees
	MaxRot float64 `yaml:"max_rot"` // degrees
}

func (d CameraRotDetailer) Label() string { return "camera_rot" }

// Rottep2RotspDesiredDetailer converts telescope-frame rotation to the
// desired sky-frame rotation.
type Rottep2RotspDesiredDetailer struct{}

func (d Rottep2RotspDesiredDetailer) Label() string { return "rottep2rotsp_desired" }

// CloseAltDetailer reorders a blob to start near the current altitude.
type CloseAltDetailer struct{}

func (d CloseAltDetailer) Label() string { return "close_alt" }

// FlushForSchedDetailer flushes queued blob observations before a
// pre-scheduled observation is due.
type FlushForSchedDetailer struct{}

func (d FlushForSchedDetailer) Label() string { return "flush_for_sched" }

// TakeAsPairsDetailer repeats the blob in the second filter of the pair.
type TakeAsPairsDetailer struct {
	FilterName string `yaml:"filter"`
}

func (d TakeAsPairsDetailer) Label() string { return "take_as_pairs " + d.FilterName }

// FilterNexpDetailer forces a fixed exposure count for one filter,
// typically u-band snaps to a single exposure.
type FilterNexpDetailer struct {
	FilterName string `yaml:"filter"`
	Nexp       int    `yaml:"nexp"`
}

func (d FilterNexpDetailer) Label() string { return "filter_nexp " + d.FilterName }

// DitherDetailer applies spatial dithering, optionally re-drawn per night.
type DitherDetailer struct {
	PerNight  bool    `yaml:"per_night"`
	MaxDither float64 `yaml:"max_dither"` // degrees
}

func (d DitherDetailer) Label() string { return "dither" }

// EuclidDitherDetailer applies the Euclid double-field dither geometry for
// the EDFS deep-drilling fields.
type EuclidDitherDetailer struct{}

func (d EuclidDitherDetailer) Label() string { return "euclid_dither" }

// TwilightTripleDetailer trims a near-sun twilight blob to the repeats that
// fit in the available twilight time.
type TwilightTripleDetailer struct {
	SlewEstimate float64 `yaml:"slew_estimate"` // seconds
	NRepeat      int     `yaml:"n_repeat"`
}

func (d TwilightTripleDetailer) Label() string { return "twilight_triple" }
