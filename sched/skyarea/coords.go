package skyarea

import "math"

const deg = math.Pi / 180

// J2000 north galactic pole and the galactic longitude of the north
// celestial pole.
const (
	ngpRA    = 192.85948
	ngpDec   = 27.12825
	lNCP     = 122.93192
	eclipObl = 23.4392911 // mean obliquity of the ecliptic
)

// AngularSeparation returns the great-circle separation in degrees between
// two RA/Dec points given in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	sinD := math.Sin((dec2 - dec1) / 2 * deg)
	sinR := math.Sin((ra2 - ra1) / 2 * deg)
	a := sinD*sinD + math.Cos(dec1*deg)*math.Cos(dec2*deg)*sinR*sinR
	return 2 * math.Asin(math.Sqrt(a)) / deg
}

// GalacticLatLon converts equatorial RA/Dec (degrees) to galactic latitude
// and longitude (degrees).
func GalacticLatLon(ra, dec float64) (b, l float64) {
	sinB := math.Sin(ngpDec*deg)*math.Sin(dec*deg) +
		math.Cos(ngpDec*deg)*math.Cos(dec*deg)*math.Cos((ra-ngpRA)*deg)
	b = math.Asin(sinB) / deg

	y := math.Cos(dec*deg) * math.Sin((ra-ngpRA)*deg)
	x := math.Cos(ngpDec*deg)*math.Sin(dec*deg) -
		math.Sin(ngpDec*deg)*math.Cos(dec*deg)*math.Cos((ra-ngpRA)*deg)
	l = lNCP - math.Atan2(y, x)/deg
	l = math.Mod(l+720, 360)
	return b, l
}

// EclipticLat converts equatorial RA/Dec (degrees) to ecliptic latitude
// (degrees).
func EclipticLat(ra, dec float64) float64 {
	sinBeta := math.Sin(dec*deg)*math.Cos(eclipObl*deg) -
		math.Cos(dec*deg)*math.Sin(eclipObl*deg)*math.Sin(ra*deg)
	return math.Asin(sinBeta) / deg
}

// wrapRA180 maps an RA in [0, 360) onto [-180, 180).
func wrapRA180(ra float64) float64 {
	if ra > 180 {
		return ra - 360
	}
	return ra
}
