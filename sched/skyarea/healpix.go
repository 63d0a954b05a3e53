// Package skyarea builds the per-filter HEALPix target maps the footprint
// basis functions consume: labeled sky-area ratio maps, the Euclid contour
// overlap variant, and the ecliptic target band for the NEO hunt. These are
// numeric utility routines, not a scheduling subsystem.
package skyarea

import "math"

// Npix returns the pixel count of a HEALPix map at the given nside.
func Npix(nside int) int { return 12 * nside * nside }

// PixRADec returns the RA/Dec centers (degrees) of every pixel of a
// ring-ordered HEALPix map.
func PixRADec(nside int) (ra, dec []float64) {
	npix := Npix(nside)
	ra = make([]float64, npix)
	dec = make([]float64, npix)
	for p := 0; p < npix; p++ {
		ra[p], dec[p] = pixCenter(nside, p)
	}
	return ra, dec
}

// pixCenter returns the RA/Dec center (degrees) of ring-ordered pixel p.
// Standard ring-scheme geometry: polar caps have 4i pixels on ring i, the
// equatorial belt has 4*nside per ring.
func pixCenter(nside, p int) (ra, dec float64) {
	npix := Npix(nside)
	ncap := 2 * nside * (nside - 1)

	var z, phi float64
	switch {
	case p < ncap: // north polar cap
		i := int((1 + math.Sqrt(1+2*float64(p))) / 2)
		j := p - 2*i*(i-1)
		z = 1 - float64(i*i)/(3*float64(nside*nside))
		phi = (float64(j) + 0.5) * math.Pi / (2 * float64(i))
	case p < npix-ncap: // equatorial belt
		pp := p - ncap
		i := pp/(4*nside) + nside // ring index counted from the north pole
		j := pp % (4 * nside)
		z = (2*float64(nside) - float64(i)) * 2 / (3 * float64(nside))
		fodd := 0.5
		if (i+nside)%2 == 1 {
			fodd = 1.0
		}
		phi = (float64(j) + fodd) * math.Pi / (2 * float64(nside))
	default: // south polar cap, mirror of the north
		p4 := npix - 1 - p
		i := int((1 + math.Sqrt(1+2*float64(p4))) / 2)
		j := p4 - 2*i*(i-1)
		z = -(1 - float64(i*i)/(3*float64(nside*nside)))
		phi = 2*math.Pi - (float64(j)+0.5)*math.Pi/(2*float64(i))
	}

	ra = phi * 180 / math.Pi
	dec = math.Asin(z) * 180 / math.Pi
	return ra, dec
}
