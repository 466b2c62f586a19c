// ./synthesis_test.go
package igrf

import (
	"math"
	"testing"
)

// makeCoeffs builds a coefficient set directly, for synthesizing known
// analytic fields.
func makeCoeffs(degree int, g, h func(n, m int) float64) GaussCoefficients {
	c := GaussCoefficients{
		degree: degree,
		g:      make([]float64, (degree+1)*(degree+2)/2),
		h:      make([]float64, degree*(degree+1)/2),
	}
	for n := 1; n <= degree; n++ {
		for m := 0; m <= n; m++ {
			c.g[n*(n+1)/2+m] = g(n, m)
			if m >= 1 {
				c.h[n*(n-1)/2+m-1] = h(n, m)
			}
		}
	}
	return c
}

func dipoleCoeffs(g10, g11, h11 float64) GaussCoefficients {
	return makeCoeffs(13,
		func(n, m int) float64 {
			switch {
			case n == 1 && m == 0:
				return g10
			case n == 1 && m == 1:
				return g11
			}
			return 0
		},
		func(n, m int) float64 {
			if n == 1 && m == 1 {
				return h11
			}
			return 0
		})
}

// An axial dipole has the closed form
//
//	X = -g10 (a/r)^3 sin(colat)
//	Y = 0
//	Z = -2 g10 (a/r)^3 cos(colat)
//
// in geocentric coordinates, which pins down the synthesis normalization,
// the radial scaling and the sign conventions at once.
func TestSynthesizeAxialDipole(t *testing.T) {
	const g10 = -29404.8
	coeffs := dipoleCoeffs(g10, 0, 0)

	for _, lat := range []float64{-80, -45, -10, 0, 20, 45, 89} {
		for _, lon := range []float64{0, 45, 133.7, 278} {
			for _, r := range []float64{referenceRadius, 6871.2, 10000} {
				x, y, z := Synthesize(coeffs, Geocentric, r, lat, lon)

				colat := radians(90 - lat)
				cube := math.Pow(referenceRadius/r, 3)
				wantX := -g10 * cube * math.Sin(colat)
				wantZ := -2 * g10 * cube * math.Cos(colat)

				if !almostEqual(x, wantX, 1e-6) {
					t.Errorf("lat=%v lon=%v r=%v: X = %v, want %v", lat, lon, r, x, wantX)
				}
				if !almostEqual(y, 0, 1e-9) {
					t.Errorf("lat=%v lon=%v r=%v: Y = %v, want 0", lat, lon, r, y)
				}
				if !almostEqual(z, wantZ, 1e-6) {
					t.Errorf("lat=%v lon=%v r=%v: Z = %v, want %v", lat, lon, r, z, wantZ)
				}
			}
		}
	}
}

// For a tilted dipole the total intensity has the closed form
//
//	F = |m| (a/r)^3 sqrt(1 + 3 cos²Θ)
//
// where m = (g11, h11, g10) and Θ is the angle between the position vector
// and the dipole axis. This exercises the m=1 diagonal recurrence and the
// longitude terms independently of the implementation's own formulas.
func TestSynthesizeTiltedDipoleIntensity(t *testing.T) {
	const g10, g11, h11 = -29404.8, -1450.9, 4652.5
	coeffs := dipoleCoeffs(g10, g11, h11)
	mmag := math.Sqrt(g10*g10 + g11*g11 + h11*h11)

	for _, lat := range []float64{-75, -30, 0, 12.5, 47, 85} {
		for _, lon := range []float64{0, 19.04, 90, 187.5, 300} {
			for _, r := range []float64{referenceRadius, 7000} {
				x, y, z := Synthesize(coeffs, Geocentric, r, lat, lon)
				gotF := math.Sqrt(x*x + y*y + z*z)

				colat := radians(90 - lat)
				phi := radians(lon)
				cosT := (math.Sin(colat)*math.Cos(phi)*g11 +
					math.Sin(colat)*math.Sin(phi)*h11 +
					math.Cos(colat)*g10) / mmag
				cube := math.Pow(referenceRadius/r, 3)
				wantF := mmag * cube * math.Sqrt(1+3*cosT*cosT)

				if !almostEqual(gotF, wantF, 1e-5*wantF) {
					t.Errorf("lat=%v lon=%v r=%v: F = %v, want %v", lat, lon, r, gotF, wantF)
				}
			}
		}
	}
}

// At the exact north pole sin(colat) is exactly zero and the east component
// must come from the alternate formula, staying finite and continuous with
// nearby latitudes.
func TestSynthesizePole(t *testing.T) {
	coeffs := dipoleCoeffs(-29404.8, -1450.9, 4652.5)

	for _, lon := range []float64{0, 77, 191.25} {
		x, y, z := Synthesize(coeffs, Geocentric, referenceRadius, 90, lon)
		for _, v := range []float64{x, y, z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("lon=%v: non-finite component in (%v, %v, %v)", lon, x, y, z)
			}
		}

		// Continuity: a point 1e-4 degrees off the pole must agree to
		// a fraction of a nanotesla.
		xn, yn, zn := Synthesize(coeffs, Geocentric, referenceRadius, 90-1e-4, lon)
		if !almostEqual(y, yn, 0.5) {
			t.Errorf("lon=%v: pole Y = %v, near-pole Y = %v", lon, y, yn)
		}
		if !almostEqual(x, xn, 0.5) || !almostEqual(z, zn, 0.5) {
			t.Errorf("lon=%v: pole (X,Z) = (%v, %v), near-pole (%v, %v)", lon, x, z, xn, zn)
		}
	}

	// South pole: sin(180°) in floating point is tiny but nonzero, which
	// takes the regular branch; the result must still be finite and
	// continuous.
	for _, lon := range []float64{0, 240} {
		x, y, z := Synthesize(coeffs, Geocentric, referenceRadius, -90, lon)
		xn, yn, zn := Synthesize(coeffs, Geocentric, referenceRadius, -90+1e-4, lon)
		if !almostEqual(x, xn, 0.5) || !almostEqual(y, yn, 0.5) || !almostEqual(z, zn, 0.5) {
			t.Errorf("lon=%v: south pole (%v, %v, %v) vs near (%v, %v, %v)", lon, x, y, z, xn, yn, zn)
		}
	}
}

// At the equator and at the poles the WGS84 geodetic frame is not rotated
// with respect to the geocentric frame, so geodetic input must reduce
// exactly to geocentric input at the corresponding radius.
func TestSynthesizeGeodeticReducesToGeocentric(t *testing.T) {
	coeffs := dipoleCoeffs(-29404.8, -1450.9, 4652.5)
	equatorial := math.Sqrt(wgs84EquatorialRadiusSq)
	polar := math.Sqrt(wgs84PolarRadiusSq)

	// Comparisons are tight but not bit-exact: the geodetic branch derives
	// the radius and rotation through square roots that differ in the last
	// ulp from the directly supplied geocentric radius.
	const tol = 1e-6
	for _, alt := range []float64{0, 2, 100} {
		gx, gy, gz := Synthesize(coeffs, Geodetic, alt, 0, 19.04)
		cx, cy, cz := Synthesize(coeffs, Geocentric, equatorial+alt, 0, 19.04)
		if !almostEqual(gx, cx, tol) || !almostEqual(gy, cy, tol) || !almostEqual(gz, cz, tol) {
			t.Errorf("equator alt=%v: geodetic (%v, %v, %v) != geocentric (%v, %v, %v)",
				alt, gx, gy, gz, cx, cy, cz)
		}

		gx, gy, gz = Synthesize(coeffs, Geodetic, alt, 90, 0)
		cx, cy, cz = Synthesize(coeffs, Geocentric, polar+alt, 90, 0)
		if !almostEqual(gx, cx, tol) || !almostEqual(gy, cy, tol) || !almostEqual(gz, cz, tol) {
			t.Errorf("pole alt=%v: geodetic (%v, %v, %v) != geocentric (%v, %v, %v)",
				alt, gx, gy, gz, cx, cy, cz)
		}
	}
}

// At mid latitudes the geodetic conversion must place the geocentric radius
// between the polar and equatorial radii and leave the field magnitude
// within the dipole bounds for that shell.
func TestSynthesizeGeodeticMidLatitude(t *testing.T) {
	const g10 = -29404.8
	coeffs := dipoleCoeffs(g10, 0, 0)

	x, y, z := Synthesize(coeffs, Geodetic, 0, 47.498, 19.04)
	f := math.Sqrt(x*x + y*y + z*z)

	lo := math.Abs(g10) * math.Pow(referenceRadius/math.Sqrt(wgs84EquatorialRadiusSq), 3)
	hi := 2 * math.Abs(g10) * math.Pow(referenceRadius/math.Sqrt(wgs84PolarRadiusSq), 3)
	if f < lo || f > hi {
		t.Errorf("F = %v outside dipole bounds [%v, %v]", f, lo, hi)
	}
	if y != 0 {
		t.Errorf("axial dipole east component = %v, want 0", y)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	coeffs := dipoleCoeffs(-29404.8, -1450.9, 4652.5)

	x1, y1, z1 := Synthesize(coeffs, Geodetic, 1.5, 47.498, 19.04)
	x2, y2, z2 := Synthesize(coeffs, Geodetic, 1.5, 47.498, 19.04)
	if math.Float64bits(x1) != math.Float64bits(x2) ||
		math.Float64bits(y1) != math.Float64bits(y2) ||
		math.Float64bits(z1) != math.Float64bits(z2) {
		t.Errorf("repeated synthesis not bit-identical: (%v, %v, %v) vs (%v, %v, %v)",
			x1, y1, z1, x2, y2, z2)
	}
}
