package skyarea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNpix(t *testing.T) {
	assert.Equal(t, 12288, Npix(32))
	assert.Equal(t, 196608, Npix(128))
}

func TestPixRADec_Bounds(t *testing.T) {
	ra, dec := PixRADec(16)
	require.Len(t, ra, Npix(16))
	require.Len(t, dec, Npix(16))
	for p := range ra {
		assert.GreaterOrEqual(t, ra[p], 0.0)
		assert.Less(t, ra[p], 360.0)
		assert.Greater(t, dec[p], -90.0)
		assert.Less(t, dec[p], 90.0)
	}
}

func TestPixRADec_PolarRings(t *testing.T) {
	ra, dec := PixRADec(32)

	// The first ring has four pixels centered at RA 45, 135, 225, 315.
	assert.InDelta(t, 45, ra[0], 1e-9)
	assert.InDelta(t, 135, ra[1], 1e-9)
	assert.InDelta(t, 225, ra[2], 1e-9)
	assert.InDelta(t, 315, ra[3], 1e-9)
	assert.Greater(t, dec[0], 88.0)
	for i := 1; i < 4; i++ {
		assert.InDelta(t, dec[0], dec[i], 1e-9)
	}

	// The south cap mirrors the north cap.
	npix := Npix(32)
	assert.InDelta(t, -dec[0], dec[npix-1], 1e-9)
	assert.InDelta(t, 360-ra[0], ra[npix-1], 1e-9)
}

func TestPixRADec_EqualArea(t *testing.T) {
	// Pixels are equal-area, so the mean of sin(dec) over the sphere is 0.
	_, dec := PixRADec(32)
	sum := 0.0
	for _, d := range dec {
		sum += math.Sin(d * math.Pi / 180)
	}
	assert.InDelta(t, 0, sum/float64(len(dec)), 1e-9)
}
