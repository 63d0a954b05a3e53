package sched

import "fmt"

// FootprintSource provides per-filter target coverage maps to the footprint
// basis function.
type FootprintSource interface {
	// GetFootprint returns the target map for a filter, or an error if the
	// filter has no map.
	GetFootprint(filterName string) ([]float64, error)
}

// ConstantFootprint is a FootprintSource whose maps never change over the
// survey. Used by the twilight NEO surveys for the ecliptic target band.
type ConstantFootprint struct {
	maps map[string][]float64
}

func NewConstantFootprint() *ConstantFootprint {
	return &ConstantFootprint{maps: make(map[string][]float64)}
}

// SetFootprint installs the target map for a filter, replacing any previous one.
func (c *ConstantFootprint) SetFootprint(filterName string, target []float64) {
	c.maps[filterName] = target
}

func (c *ConstantFootprint) GetFootprint(filterName string) ([]float64, error) {
	fp, ok := c.maps[filterName]
	if !ok {
		return nil, fmt.Errorf("no footprint for filter %q", filterName)
	}
	return fp, nil
}

// RollingFootprints holds the per-filter base maps plus the inputs forwarded
// to the external rolling-cadence engine. The rolling algorithm itself
// (alternating emphasis between declination slices over the survey) is owned
// by the driver; this type records its parameters.
type RollingFootprints struct {
	Nside      int
	MJDStart   float64
	SunRAStart float64
	NSlice     int
	Scale      float64
	WFDIndx    []int
	OrderRoll  int
	NCycles    int

	maps map[string][]float64
}

// MakeRollingFootprints captures the base healpix maps and rolling-cadence
// parameters for the external footprint engine.
func MakeRollingFootprints(fpHP map[string][]float64, mjdStart, sunRAStart float64,
	nslice int, scale float64, nside int, wfdIndx []int, orderRoll, nCycles int) *RollingFootprints {
	maps := make(map[string][]float64, len(fpHP))
	for filtername, m := range fpHP {
		maps[filtername] = m
	}
	return &RollingFootprints{
		Nside:      nside,
		MJDStart:   mjdStart,
		SunRAStart: sunRAStart,
		NSlice:     nslice,
		Scale:      scale,
		WFDIndx:    wfdIndx,
		OrderRoll:  orderRoll,
		NCycles:    nCycles,
		maps:       maps,
	}
}

func (r *RollingFootprints) GetFootprint(filterName string) ([]float64, error) {
	fp, ok := r.maps[filterName]
	if !ok {
		return nil, fmt.Errorf("no footprint for filter %q", filterName)
	}
	return fp, nil
}

// Filters returns the filter names with maps, in no particular order.
func (r *RollingFootprints) Filters() []string {
	out := make([]string, 0, len(r.maps))
	for filtername := range r.maps {
		out = append(out, filtername)
	}
	return out
}
