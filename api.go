// ./api.go

/*
Package igrf evaluates the International Geomagnetic Reference Field (IGRF) model.

Given a date, a geographic position and a table of spherical-harmonic Gauss
coefficients, the package computes the Earth's magnetic field vector at that
point: the North, East and vertical (positive down) components in nanotesla,
plus the derived quantities (declination, inclination, horizontal and total
intensity).

Key Features:
  - Interpolation of the quinquennial IGRF coefficient snapshots to an
    arbitrary fractional year, with linear extrapolation beyond the last
    definitive epoch via the secular-variation column.
  - Schmidt quasi-normalized spherical harmonic synthesis with geodetic
    (WGS84) or geocentric input coordinates.
  - Date-bound evaluators that resolve coefficients once and reuse them
    across many position evaluations.
  - A loader for the standard IGRF text coefficient format and a
    version-keyed registry for sharing parsed models.
  - Robust error handling with standard Go error types.

Usage:
To use this package, you need an IGRF coefficient file (e.g., igrf13.txt as
published by IAGA Working Group V-MOD).

 1. Load a model:
    ```go
    model, err := igrf.LoadModel("igrf13.txt")
    if err != nil {
        log.Fatal(err)
    }
    ```

 2. Evaluate the field at a position and date:
    ```go
    vec, err := model.Evaluate(47.498, 19.04, 0, 2021.97)
    if err != nil {
        log.Fatal(err)
    }
    fmt.Printf("declination: %.3f°\n", vec.Declination())
    fmt.Printf("total intensity: %.0f nT\n", vec.TotalIntensity())
    ```

 3. Bind a date once when sampling many positions:
    ```go
    bound := model.AtTime(time.Now())
    for _, pt := range grid {
        vec, err := bound.Evaluate(pt.Lat, pt.Lon, pt.AltMeters)
        ...
    }
    ```

License:
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

// Package igrf evaluates the International Geomagnetic Reference Field model.
package igrf

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrDateOutOfRange is returned when the requested date lies outside the
// model's valid year range.
var ErrDateOutOfRange = errors.New("date is outside the model's valid year range")

// ErrUnsupportedVersion is returned by a Registry when no coefficient file
// exists for the requested model version.
var ErrUnsupportedVersion = errors.New("unsupported model version")

// ErrBadCoefficientFile is returned when a coefficient file cannot be parsed.
var ErrBadCoefficientFile = errors.New("malformed coefficient file")

// CoordinateSystem selects how Synthesize interprets the input position.
type CoordinateSystem int

const (
	// Geodetic positions reference the WGS84 spheroid: latitude and
	// longitude in degrees, altitude in kilometers above the ellipsoid.
	Geodetic CoordinateSystem = iota + 1
	// Geocentric positions reference a sphere centered at the Earth's
	// center of mass: the altitude argument is the distance from the
	// center in kilometers and must exceed 3485 km (the approximate
	// core-mantle boundary).
	Geocentric
)

// MagneticVector represents the magnetic field vector at a point, in nanotesla.
type MagneticVector struct {
	// North is the North component of the vector in nT.
	North float64
	// East is the East component of the vector in nT.
	East float64
	// Down is the vertical component of the vector in nT (positive points down).
	Down float64
}

// Declination returns the angle of the horizontal field from true North,
// in degrees (positive points East).
func (v MagneticVector) Declination() float64 {
	return degrees(math.Atan2(v.East, v.North))
}

// Inclination returns the angle of the field vector from the horizontal,
// in degrees (positive points down).
func (v MagneticVector) Inclination() float64 {
	return degrees(math.Atan2(v.Down, v.HorizontalIntensity()))
}

// HorizontalIntensity returns the magnitude of the horizontal field in nT.
func (v MagneticVector) HorizontalIntensity() float64 {
	return math.Hypot(v.North, v.East)
}

// TotalIntensity returns the magnitude of the full field vector in nT.
func (v MagneticVector) TotalIntensity() float64 {
	return math.Sqrt(v.North*v.North + v.East*v.East + v.Down*v.Down)
}

// Model is a wrapper struct holding a parsed coefficient table.
// It provides methods to evaluate the geomagnetic field at arbitrary
// positions and dates within the table's year range.
type Model struct {
	table *Table
}

// NewModel wraps an already constructed coefficient table in a Model.
// Most callers obtain a Model from LoadModel, ReadModel or a Registry instead.
func NewModel(table *Table) *Model {
	return &Model{table: table}
}

// Table returns the model's underlying coefficient table.
func (m *Model) Table() *Table {
	return m.table
}

// MinYear returns the first fractional year covered by the model.
func (m *Model) MinYear() float64 { return m.table.MinYear() }

// MaxYear returns the last fractional year covered by the model.
func (m *Model) MaxYear() float64 { return m.table.MaxYear() }

// Evaluate computes the magnetic field vector at the given position and date,
// resolving the Gauss coefficients anew on every call. Use At or AtTime when
// evaluating many positions at the same date.
//
// Parameters:
//   - lat: geodetic latitude in decimal degrees (North is positive).
//   - lon: east-longitude in decimal degrees.
//   - altMeters: altitude above the WGS84 ellipsoid, in meters.
//   - date: fractional year (e.g. 2021.97).
//
// Returns:
//   - MagneticVector: the field vector in nT.
//   - error: ErrDateOutOfRange if the date lies outside [MinYear, MaxYear].
func (m *Model) Evaluate(lat, lon, altMeters, date float64) (MagneticVector, error) {
	coeffs, err := m.table.Coefficients(date)
	if err != nil {
		return MagneticVector{}, err
	}
	x, y, z := Synthesize(coeffs, Geodetic, altMeters/1000.0, lat, lon)
	return MagneticVector{North: x, East: y, Down: z}, nil
}

// EvaluateAtTime is Evaluate with the date given as a calendar timestamp.
func (m *Model) EvaluateAtTime(lat, lon, altMeters float64, t time.Time) (MagneticVector, error) {
	return m.Evaluate(lat, lon, altMeters, FractionalYear(t))
}

// At binds the model to a fractional year and returns a DateBoundModel that
// resolves the Gauss coefficients at most once, amortizing the table walk
// across many position evaluations (field-line tracing, grid sampling).
func (m *Model) At(date float64) *DateBoundModel {
	return &DateBoundModel{model: m, date: date}
}

// AtTime is At with the date given as a calendar timestamp.
func (m *Model) AtTime(t time.Time) *DateBoundModel {
	return m.At(FractionalYear(t))
}

// Now binds the model to the current date.
func (m *Model) Now() *DateBoundModel {
	return m.AtTime(time.Now())
}

// DateBoundModel is a Model bound to a fixed fractional year. The Gauss
// coefficients for that year are resolved lazily on the first Evaluate call
// and reused afterwards; the resolution is guarded so a DateBoundModel is
// safe for concurrent use.
type DateBoundModel struct {
	model *Model
	date  float64

	once   sync.Once
	coeffs GaussCoefficients
	err    error
}

// Date returns the fractional year the model is bound to.
func (b *DateBoundModel) Date() float64 {
	return b.date
}

// Evaluate computes the magnetic field vector at the given position using the
// bound date. The position parameters and the result match Model.Evaluate.
func (b *DateBoundModel) Evaluate(lat, lon, altMeters float64) (MagneticVector, error) {
	b.once.Do(func() {
		b.coeffs, b.err = b.model.table.Coefficients(b.date)
	})
	if b.err != nil {
		return MagneticVector{}, fmt.Errorf("resolving coefficients for %.3f: %w", b.date, b.err)
	}
	x, y, z := Synthesize(b.coeffs, Geodetic, altMeters/1000.0, lat, lon)
	return MagneticVector{North: x, East: y, Down: z}, nil
}
