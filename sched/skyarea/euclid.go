package skyarea

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Point is an RA/Dec vertex of a survey contour, RA wrapped to [-180, 180).
type Point struct {
	RA  float64
	Dec float64
}

// DefaultEuclidContour is a coarse outline of the Euclid wide-survey
// southern-galactic-cap region, used when no contour file is supplied. Its
// southern reach extends past the low-dust dec limit, which is the point of
// the overlap: the claimed pixels stretch the footprint toward the Euclid
// deep fields.
var DefaultEuclidContour = []Point{
	{RA: -45, Dec: -68},
	{RA: -15, Dec: -70},
	{RA: 15, Dec: -67},
	{RA: 40, Dec: -55},
	{RA: 58, Dec: -35},
	{RA: 60, Dec: -15},
	{RA: 40, Dec: -6},
	{RA: 5, Dec: -8},
	{RA: -30, Dec: -20},
	{RA: -48, Dec: -45},
}

// LoadContour reads a two-column RA/Dec contour file (degrees, whitespace
// separated, '#' comments).
func LoadContour(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open contour: %w", err)
	}
	defer f.Close()

	var contour []Point
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("contour line %q: want two columns", line)
		}
		ra, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("contour RA %q: %w", fields[0], err)
		}
		dec, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("contour dec %q: %w", fields[1], err)
		}
		contour = append(contour, Point{RA: wrapRA180(ra), Dec: dec})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read contour: %w", err)
	}
	if len(contour) < 3 {
		return nil, fmt.Errorf("contour has %d vertices, want at least 3", len(contour))
	}
	return contour, nil
}

// pointInPolygon runs a standard even-odd ray cast in the wrapped RA/Dec
// plane. Good enough for a mid-latitude contour that stays away from the
// poles and the RA wrap point.
func pointInPolygon(x, y float64, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		xi, yi := poly[i].RA, poly[i].Dec
		xj, yj := poly[j].RA, poly[j].Dec
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// EuclidOverlapFootprint is the sky-area generator with the Euclid
// wide-survey overlap folded in ahead of the south celestial pole pass.
type EuclidOverlapFootprint struct {
	*Generator
	Contour []Point
}

// NewEuclidOverlapFootprint wraps a generator with a Euclid contour; a nil
// contour falls back to the built-in coarse outline.
func NewEuclidOverlapFootprint(g *Generator, contour []Point) *EuclidOverlapFootprint {
	if contour == nil {
		contour = DefaultEuclidContour
	}
	return &EuclidOverlapFootprint{Generator: g, Contour: contour}
}

func (e *EuclidOverlapFootprint) addEuclidOverlap(ratios Ratios) {
	e.claim("euclid_overlap", ratios, func(p int) bool {
		return pointInPolygon(wrapRA180(e.ra[p]), e.dec[p], e.Contour)
	})
}

// ReturnMaps builds the ratio maps with the Euclid overlap claimed between
// the dusty plane and the south celestial pole.
func (e *EuclidOverlapFootprint) ReturnMaps() (map[string][]float64, []string) {
	e.reset()
	e.addMagellanicClouds(MagellanicRatios)
	e.addLowDustWFD(LowDustRatios)
	e.addVirgoCluster(VirgoRatios)
	e.addBulge(BulgeRatios)
	e.addNES(NESRatios)
	e.addDustyPlane(DustyPlaneRatios)
	e.addEuclidOverlap(EuclidRatios)
	e.addSCP(SCPRatios)
	return e.healMaps, e.pixLabels
}
