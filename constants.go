// ./constants.go
package igrf

/*
Numeric constants of the IGRF coefficient table layout and of the
spherical harmonic synthesis.

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

// Coefficient table layout. The IGRF is published as a grid of Gauss
// coefficients with one column per 5-year model epoch: degree-10 models for
// the 19 epochs 1900 through 1990, degree-13 models from 1995 on, closed by
// a secular-variation column covering the decade past the last epoch.
const (
	degree10 = 10 // maximum degree of models before 1995.0
	degree13 = 13 // maximum degree of models from 1995.0 on

	degree10BlockLen = degree10 * (degree10 + 2) // 120 values per degree-10 snapshot
	degree13BlockLen = degree13 * (degree13 + 2) // 195 values per degree-13 snapshot

	degree10Snapshots = 19 // epochs 1900, 1905, ..., 1990

	firstEpoch         = 1900.0
	degree13FirstEpoch = 1995.0
	epochStep          = 5.0
	extrapolationYears = 10.0 // validity past the last definitive snapshot
)

// Synthesis constants.
const (
	// referenceRadius is the conventional geomagnetic reference radius in
	// km. It is NOT the mean Earth radius (6371.0 km): 6371.2 km is what
	// was used in determining the coefficients.
	referenceRadius = 6371.2

	// WGS84 spheroid squared semi-axes in km², used for the geodetic to
	// geocentric conversion.
	wgs84EquatorialRadiusSq = 40680631.6
	wgs84PolarRadiusSq      = 40408296.0

	// MinGeocentricRadius is the smallest geocentric distance, in km, at
	// which the model is meaningful: roughly the core-mantle boundary.
	MinGeocentricRadius = 3485.0
)
