package skyarea

import "math"

// BandFilters is the filter order used in every ratio map.
var BandFilters = []string{"u", "g", "r", "i", "z", "y"}

// Ratios maps filter name to the desired relative visit density of a sky
// region. By convention the low-dust r-band ratio is 1 and everything else
// reads relative to it.
type Ratios map[string]float64

// Default per-region filter ratios.
var (
	MagellanicRatios = Ratios{"u": 0.32, "g": 0.4, "r": 1.0, "i": 1.0, "z": 0.9, "y": 0.9}
	LowDustRatios    = Ratios{"u": 0.32, "g": 0.4, "r": 1.0, "i": 1.0, "z": 0.9, "y": 0.9}
	VirgoRatios      = Ratios{"u": 0.32, "g": 0.4, "r": 1.0, "i": 1.0, "z": 0.9, "y": 0.9}
	SCPRatios        = Ratios{"u": 0.08, "g": 0.15, "r": 0.08, "i": 0.15, "z": 0.08, "y": 0.06}
	NESRatios        = Ratios{"g": 0.23, "r": 0.33, "i": 0.33, "z": 0.23}
	BulgeRatios      = Ratios{"u": 0.19, "g": 0.57, "r": 1.15, "i": 1.05, "z": 0.78, "y": 0.57}
	DustyPlaneRatios = Ratios{"u": 0.07, "g": 0.13, "r": 0.28, "i": 0.28, "z": 0.25, "y": 0.18}
	EuclidRatios     = Ratios{"u": 0.32, "g": 0.4, "r": 1.0, "i": 1.0, "z": 0.9, "y": 0.9}
)

// Magellanic cloud centers.
const (
	lmcRA, lmcDec = 80.89, -69.76
	smcRA, smcDec = 13.19, -72.83
)

// Generator builds the labeled per-filter sky-area ratio maps for the survey
// footprint. Pixels are claimed region by region; once a pixel is labeled,
// later regions do not override it, so the add order matters.
type Generator struct {
	Nside     int
	SMCRadius float64 // degrees
	LMCRadius float64 // degrees

	ra, dec    []float64 // pixel centers, degrees
	galB, galL []float64
	eclipLat   []float64

	healMaps  map[string][]float64
	pixLabels []string
}

// NewGenerator precomputes the pixel-center coordinate frames.
func NewGenerator(nside int, smcRadius, lmcRadius float64) *Generator {
	g := &Generator{Nside: nside, SMCRadius: smcRadius, LMCRadius: lmcRadius}
	g.ra, g.dec = PixRADec(nside)
	npix := Npix(nside)
	g.galB = make([]float64, npix)
	g.galL = make([]float64, npix)
	g.eclipLat = make([]float64, npix)
	for p := 0; p < npix; p++ {
		g.galB[p], g.galL[p] = GalacticLatLon(g.ra[p], g.dec[p])
		g.eclipLat[p] = EclipticLat(g.ra[p], g.dec[p])
	}
	return g
}

// reset clears the label and ratio maps before a ReturnMaps pass.
func (g *Generator) reset() {
	npix := Npix(g.Nside)
	g.pixLabels = make([]string, npix)
	g.healMaps = make(map[string][]float64, len(BandFilters))
	for _, filtername := range BandFilters {
		g.healMaps[filtername] = make([]float64, npix)
	}
}

// claim assigns label and ratios to every unlabeled pixel the predicate
// selects.
func (g *Generator) claim(label string, ratios Ratios, pred func(p int) bool) {
	for p := range g.pixLabels {
		if g.pixLabels[p] != "" || !pred(p) {
			continue
		}
		g.pixLabels[p] = label
		for filtername, ratio := range ratios {
			g.healMaps[filtername][p] = ratio
		}
	}
}

func (g *Generator) addMagellanicClouds(ratios Ratios) {
	g.claim("LMC_SMC", ratios, func(p int) bool {
		return AngularSeparation(g.ra[p], g.dec[p], lmcRA, lmcDec) < g.LMCRadius ||
			AngularSeparation(g.ra[p], g.dec[p], smcRA, smcDec) < g.SMCRadius
	})
}

func (g *Generator) addLowDustWFD(ratios Ratios) {
	// Galactic latitude as the dust proxy, dec limits matching the site's
	// useful airmass range.
	g.claim("lowdust", ratios, func(p int) bool {
		return math.Abs(g.galB[p]) > 15 && g.dec[p] > -62.5 && g.dec[p] < 12.5
	})
}

func (g *Generator) addVirgoCluster(ratios Ratios) {
	g.claim("virgo", ratios, func(p int) bool {
		return AngularSeparation(g.ra[p], g.dec[p], 186.75, 12.72) < 8.75
	})
}

func (g *Generator) addBulge(ratios Ratios) {
	g.claim("bulgy", ratios, func(p int) bool {
		l := g.galL[p]
		if l > 180 {
			l -= 360
		}
		return math.Abs(g.galB[p]) < 15 && math.Abs(l) < 20
	})
}

func (g *Generator) addNES(ratios Ratios) {
	g.claim("nes", ratios, func(p int) bool {
		return math.Abs(g.eclipLat[p]) < 16.5 && g.dec[p] > 0
	})
}

func (g *Generator) addDustyPlane(ratios Ratios) {
	g.claim("dusty_plane", ratios, func(p int) bool {
		return math.Abs(g.galB[p]) < 15
	})
}

func (g *Generator) addSCP(ratios Ratios) {
	g.claim("scp", ratios, func(p int) bool {
		return g.dec[p] < -60
	})
}

// ReturnMaps builds the per-filter ratio maps and the pixel region labels.
func (g *Generator) ReturnMaps() (map[string][]float64, []string) {
	g.reset()
	g.addMagellanicClouds(MagellanicRatios)
	g.addLowDustWFD(LowDustRatios)
	g.addVirgoCluster(VirgoRatios)
	g.addBulge(BulgeRatios)
	g.addNES(NESRatios)
	g.addDustyPlane(DustyPlaneRatios)
	g.addSCP(SCPRatios)
	return g.healMaps, g.pixLabels
}

// WFDIndices returns the pixel indices belonging to the wide-fast-deep
// footprint: the low-dust area plus the Magellanic clouds and Virgo.
func WFDIndices(labels []string) []int {
	var indx []int
	for p, label := range labels {
		if label == "lowdust" || label == "LMC_SMC" || label == "virgo" {
			indx = append(indx, p)
		}
	}
	return indx
}

// WFDFootprint returns a 0/1 map over the WFD indices.
func WFDFootprint(npix int, wfdIndx []int) []float64 {
	fp := make([]float64, npix)
	for _, p := range wfdIndx {
		fp[p] = 1
	}
	return fp
}

// FootprintMask returns a 0/1 map that is set wherever the reference map has
// any coverage.
func FootprintMask(ref []float64) []float64 {
	mask := make([]float64, len(ref))
	for p, v := range ref {
		if v > 0 {
			mask[p] = 1
		}
	}
	return mask
}
