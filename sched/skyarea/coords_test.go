package skyarea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngularSeparation(t *testing.T) {
	assert.InDelta(t, 0, AngularSeparation(10, -20, 10, -20), 1e-9)
	assert.InDelta(t, 90, AngularSeparation(0, 0, 0, 90), 1e-9)
	assert.InDelta(t, 10, AngularSeparation(10, 0, 20, 0), 1e-9)
	// Separation along a parallel shrinks with cos(dec).
	assert.InDelta(t, 10*math.Cos(60*math.Pi/180), AngularSeparation(10, 60, 20, 60), 0.1)
}

func TestGalacticLatLon(t *testing.T) {
	// North galactic pole.
	b, _ := GalacticLatLon(ngpRA, ngpDec)
	assert.InDelta(t, 90, b, 0.01)

	// Galactic center (Sgr A*).
	b, l := GalacticLatLon(266.405, -28.936)
	assert.InDelta(t, 0, b, 0.1)
	assert.Less(t, math.Min(l, 360-l), 0.1)
}

func TestEclipticLat(t *testing.T) {
	// The vernal equinox is on the ecliptic.
	assert.InDelta(t, 0, EclipticLat(0, 0), 1e-9)
	// On the equator at RA 270 the ecliptic is one obliquity away.
	assert.InDelta(t, eclipObl, EclipticLat(270, 0), 1e-6)
	// North ecliptic pole.
	assert.InDelta(t, 90, EclipticLat(270, 90-eclipObl), 1e-6)
}

func TestWrapRA180(t *testing.T) {
	assert.Equal(t, 10.0, wrapRA180(10))
	assert.Equal(t, -10.0, wrapRA180(350))
	assert.Equal(t, 180.0, wrapRA180(180))
}
