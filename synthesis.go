// ./synthesis.go
package igrf

/*
Schmidt quasi-normalized spherical harmonic synthesis of the geomagnetic
field, adapted from the 13th generation IGRF synthesis routine agreed in
December 2019 by IAGA Working Group V-MOD.

Uses the WGS84 spheroid instead of the International Astronomical Union 1966
spheroid as recommended by IAGA in July 2003. The reference radius remains
6371.2 km - it is NOT the mean radius (= 6371.0 km), but 6371.2 km is what
was used in determining the coefficients.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.
*/

import "math"

// Synthesize computes the magnetic field components for a resolved Gauss
// coefficient set at the given position.
//
// Parameters:
//   - coeffs: coefficient set from ResolveCoefficients or Table.Coefficients.
//   - system: Geodetic or Geocentric interpretation of the position.
//   - alt: height in km above the WGS84 ellipsoid when system is Geodetic;
//     distance from the Earth's center in km (> MinGeocentricRadius) when
//     system is Geocentric.
//   - lat: latitude in decimal degrees (-90 to 90).
//   - lon: east-longitude in decimal degrees (0 to 360).
//
// Returns the North, East and vertical (positive down) components of the
// field in nT. The computation is pure and deterministic: identical inputs
// produce bit-identical results.
func Synthesize(coeffs GaussCoefficients, system CoordinateSystem, alt, lat, lon float64) (x, y, z float64) {
	nmx := coeffs.Degree()
	kmx := (nmx + 1) * (nmx + 2) / 2

	// Scratch buffers for the recurrences, local to this call: Legendre
	// values p, their colatitude derivatives q, and the longitude
	// multiple-angle values cos(m*lon), sin(m*lon).
	p := make([]float64, kmx)
	q := make([]float64, kmx)
	cl := make([]float64, nmx)
	sl := make([]float64, nmx)

	colat := 90.0 - lat
	st, ct := sinAndCos(radians(colat))
	sl[0], cl[0] = sinAndCos(radians(lon))

	r := alt
	cd, sd := 1.0, 0.0
	if system == Geodetic {
		// Geodetic to geocentric conversion on the WGS84 spheroid:
		// yields the geocentric radius r and a rotation (cd, sd) of
		// the colatitude frame. The inverse rotation is applied to
		// the x and z accumulators after synthesis.
		const a2 = wgs84EquatorialRadiusSq
		const b2 = wgs84PolarRadiusSq
		as := a2 * st * st
		bc := b2 * ct * ct
		den := as + bc
		rho := math.Sqrt(den)
		r = math.Sqrt(alt*(alt+2.0*rho) + (a2*as+b2*bc)/den)
		cd = (alt + rho) / r
		sd = (a2 - b2) / rho * ct * st / r
		ctg := ct
		ct = ct*cd - st*sd
		st = st*cd + ctg*sd
	}

	ratio := referenceRadius / r
	rr := ratio * ratio

	// Seed values for (n,m) = (0,0) and (1,1); everything else follows
	// from the recurrences below.
	p[0] = 1.0
	p[2] = st
	q[2] = ct

	m, n := 1, 0
	fn, gn := 0.0, -1.0
	for k := 2; k <= kmx; k++ {
		if n < m {
			m = 0
			n++
			rr *= ratio // rr holds ratio^(n+2)
			fn = float64(n)
			gn = float64(n - 1)
		}
		fm := float64(m)
		if m != n {
			// Off-diagonal step: combine the values at (n-1, m)
			// and (n-2, m), tracked through flat indices i and j.
			norm := math.Sqrt(fn*fn - fm*fm)
			w1 := (fn + gn) / norm
			w2 := math.Sqrt(gn*gn-fm*fm) / norm
			i := k - n
			j := i - n + 1
			p[k-1] = w1*ct*p[i-1] - w2*p[j-1]
			q[k-1] = w1*(ct*q[i-1]-st*p[i-1]) - w2*q[j-1]
		} else if k != 3 {
			// Diagonal step from (n-1, n-1); the multiple-angle
			// longitude terms advance together with the order.
			norm := math.Sqrt(1.0 - 0.5/fm)
			j := k - n - 1
			p[k-1] = norm * st * p[j-1]
			q[k-1] = norm * (st*q[j-1] + ct*p[j-1])
			cl[m-1] = cl[m-2]*cl[0] - sl[m-2]*sl[0]
			sl[m-1] = sl[m-2]*cl[0] + cl[m-2]*sl[0]
		}

		gr := coeffs.G(n, m) * rr
		if m == 0 {
			x += gr * q[k-1]
			z -= (fn + 1.0) * gr * p[k-1]
		} else {
			hr := coeffs.H(n, m) * rr
			term := gr*cl[m-1] + hr*sl[m-1]
			x += term * q[k-1]
			z -= (fn + 1.0) * term * p[k-1]
			if st == 0 {
				// Exact pole: the 1/sin(colat) form below is
				// singular there, so fall back to the
				// derivative form.
				y += (gr*sl[m-1] - hr*cl[m-1]) * q[k-1] * ct
			} else {
				y += (gr*sl[m-1] - hr*cl[m-1]) * fm * p[k-1] / st
			}
		}
		m++
	}

	// Rotate x and z back from the geocentric frame to the frame of the
	// input coordinates; y is unaffected by the rotation.
	xg := x
	x = x*cd + z*sd
	z = z*cd - xg*sd
	return x, y, z
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// degrees converts radians to degrees.
func degrees(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// sinAndCos computes the sine and cosine of an angle in radians together.
func sinAndCos(rad float64) (sin, cos float64) {
	return math.Sin(rad), math.Cos(rad)
}
