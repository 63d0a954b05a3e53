package skyarea

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EclipticTarget generates a target map for the band around the ecliptic:
// 1 where the pixel is within distToEclip degrees of the ecliptic plane and
// below the dec ceiling, 0 elsewhere. A non-nil mask is multiplied in.
func EclipticTarget(nside int, distToEclip, decMax float64, mask []float64) []float64 {
	ra, dec := PixRADec(nside)
	result := make([]float64, len(ra))
	for p := range ra {
		if math.Abs(EclipticLat(ra[p], dec[p])) < distToEclip && dec[p] < decMax {
			result[p] = 1
		}
	}
	if mask != nil {
		floats.Mul(result, mask)
	}
	return result
}
