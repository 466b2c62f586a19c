// ./coefficients.go
package igrf

/*
Coefficient table storage and Gauss coefficient resolution.

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

import (
	"fmt"
	"math"
)

// Table is an immutable flat coefficient table: a concatenation of
// per-snapshot blocks of (g, h) values, one block per 5-year model epoch,
// terminated by a single sentinel value. The first 19 blocks (epochs 1900
// through 1990) hold 120 values each (degree-10 models); every block from
// 1995 on holds 195 values (degree-13 models), the last of them being the
// secular-variation column used for extrapolation.
//
// The year bounds are derived from the table's snapshot count rather than
// hardcoded, so a 14th or 15th generation file extends the range without
// code changes.
type Table struct {
	values  []float64
	minYear float64
	maxYear float64
}

// NewTable constructs a Table from a flat value sequence produced by
// ParseCoefficients. The length must equal 19*120 + K*195 + 1 for some K >= 2
// (at least one degree-13 snapshot plus the secular-variation column); any
// other length indicates a corrupted loader and causes a panic, since the
// table is built once by trusted code and is not a runtime input.
func NewTable(values []float64) *Table {
	n := len(values) - degree10Snapshots*degree10BlockLen - 1
	if n < 2*degree13BlockLen || n%degree13BlockLen != 0 {
		panic(fmt.Sprintf("igrf: invalid coefficient table length %d", len(values)))
	}
	k := n / degree13BlockLen
	// The last 195-value column is secular variation, so the final data
	// snapshot sits at 1995 + (k-2)*5; the model stays usable for ten
	// more years of extrapolation beyond it.
	lastEpoch := degree13FirstEpoch + float64(k-2)*epochStep
	return &Table{
		values:  values,
		minYear: firstEpoch,
		maxYear: lastEpoch + extrapolationYears,
	}
}

// MinYear returns the first fractional year the table covers.
func (t *Table) MinYear() float64 { return t.minYear }

// MaxYear returns the last fractional year the table covers.
func (t *Table) MaxYear() float64 { return t.maxYear }

// Len returns the number of values in the table, sentinel included.
func (t *Table) Len() int { return len(t.values) }

// Coefficients resolves the table to a Gauss coefficient set for the given
// fractional year.
//
// Returns:
//   - GaussCoefficients: the (g, h) set for the date.
//   - error: ErrDateOutOfRange if date lies outside [MinYear, MaxYear].
func (t *Table) Coefficients(date float64) (GaussCoefficients, error) {
	return ResolveCoefficients(t.values, t.minYear, t.maxYear, date)
}

// GaussCoefficients holds one resolved set of spherical-harmonic Gauss
// coefficients, indexed by degree n and order m with 0 <= m <= n <= Degree().
// Both triangles are stored flat behind two-index accessors. Order-zero h
// terms do not exist in the expansion and are not stored at all.
type GaussCoefficients struct {
	degree int
	g      []float64 // n*(n+1)/2 + m, for 0 <= m <= n
	h      []float64 // n*(n-1)/2 + m - 1, for 1 <= m <= n
}

// Degree returns the maximum spherical-harmonic degree of the set
// (10 for dates before 1995.0, 13 from 1995.0 on).
func (c GaussCoefficients) Degree() int { return c.degree }

// G returns the g coefficient of degree n and order m, in nT.
// Valid for 1 <= n <= Degree() and 0 <= m <= n.
func (c GaussCoefficients) G(n, m int) float64 {
	return c.g[n*(n+1)/2+m]
}

// H returns the h coefficient of degree n and order m, in nT.
// Valid for 1 <= n <= Degree() and 1 <= m <= n; order-zero terms have no
// sine coefficient and are not addressable.
func (c GaussCoefficients) H(n, m int) float64 {
	return c.h[n*(n-1)/2+m-1]
}

// ResolveCoefficients computes the Gauss coefficient set for an arbitrary
// fractional year from a flat coefficient table, by linear interpolation
// between the two adjacent 5-year snapshots, or by linear extrapolation from
// the last definitive snapshot using the secular-variation column when the
// date falls in the final ten years of the range.
//
// Parameters:
//   - table: flat value sequence as held by Table.
//   - minYear, maxYear: the valid year bounds of the table.
//   - date: fractional year to resolve.
//
// Returns:
//   - GaussCoefficients: the resolved (g, h) set.
//   - error: ErrDateOutOfRange if date < minYear or date > maxYear; the
//     table is not touched in that case.
func ResolveCoefficients(table []float64, minYear, maxYear, date float64) (GaussCoefficients, error) {
	if date < minYear || date > maxYear {
		return GaussCoefficients{}, fmt.Errorf("%w: %.3f not in [%.1f, %.1f]",
			ErrDateOutOfRange, date, minYear, maxYear)
	}

	// Models before 1995.0 extend only to degree 10.
	nmx := degree13
	if date < degree13FirstEpoch {
		nmx = degree10
	}
	nc := nmx * (nmx + 2)

	threshold := maxYear - extrapolationYears

	var tt, tc float64
	var offset int
	if date >= threshold {
		// Extrapolate forward from the last definitive snapshot; the
		// block nc values further on is the secular-variation column.
		tt = date - threshold
		tc = 1.0
		offset = degree10Snapshots*degree10BlockLen +
			nc*int((threshold-degree13FirstEpoch)/epochStep)
	} else {
		tt = (date - minYear) / epochStep
		step := math.Floor(tt)
		tt -= step
		tc = 1.0 - tt
		if date < degree13FirstEpoch {
			offset = nc * int(step)
		} else {
			offset = degree10Snapshots*degree10BlockLen +
				nc*int((date-degree13FirstEpoch)/epochStep)
		}
	}

	coeffs := GaussCoefficients{
		degree: nmx,
		g:      make([]float64, (nmx+1)*(nmx+2)/2),
		h:      make([]float64, nmx*(nmx+1)/2),
	}

	// Walk the snapshot block in the canonical order: n increasing from 1,
	// m from 0 to n within each n, one value for g[n][0] and a (g, h) pair
	// for every m >= 1. The matching value of the next snapshot sits nc
	// positions further on. A degree-13 block lists all n <= 10 nodes
	// before any n > 10 node, so the first 120 values line up with a
	// degree-10 block and interpolation across the 1995 boundary works on
	// the shared prefix.
	idx := offset
	for n := 1; n <= nmx; n++ {
		gi := n * (n + 1) / 2
		hi := n * (n - 1) / 2
		coeffs.g[gi] = tc*table[idx] + tt*table[idx+nc]
		idx++
		for m := 1; m <= n; m++ {
			coeffs.g[gi+m] = tc*table[idx] + tt*table[idx+nc]
			coeffs.h[hi+m-1] = tc*table[idx+1] + tt*table[idx+1+nc]
			idx += 2
		}
	}

	return coeffs, nil
}
