// ./variation.go
package igrf

/*
Annual (secular) variation of the geomagnetic field.

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

// SecularVariation holds the annual rates of change of the field at a point,
// obtained by central difference over a two-year window.
type SecularVariation struct {
	// Declination is the change of declination in degrees per year.
	Declination float64
	// Inclination is the change of inclination in degrees per year.
	Inclination float64
	// HorizontalIntensity is the change of the horizontal intensity in nT per year.
	HorizontalIntensity float64
	// North, East and Down are the component changes in nT per year.
	North, East, Down float64
	// TotalIntensity is the change of the total intensity in nT per year.
	TotalIntensity float64
}

// AnnualVariation estimates the secular variation of the field at a position
// by evaluating the model one year before and one year after the given
// fractional year and differencing. Both evaluation dates must lie within
// the model's year range.
func AnnualVariation(m *Model, lat, lon, altMeters, year float64) (SecularVariation, error) {
	before, err := m.Evaluate(lat, lon, altMeters, year-1)
	if err != nil {
		return SecularVariation{}, err
	}
	after, err := m.Evaluate(lat, lon, altMeters, year+1)
	if err != nil {
		return SecularVariation{}, err
	}

	x := (before.North + after.North) / 2
	y := (before.East + after.East) / 2
	z := (before.Down + after.Down) / 2
	f := (before.TotalIntensity() + after.TotalIntensity()) / 2

	dx := (after.North - before.North) / 2
	dy := (after.East - before.East) / 2
	dz := (after.Down - before.Down) / 2

	h := MagneticVector{North: x, East: y, Down: z}.HorizontalIntensity()
	dh := (x*dx + y*dy) / h

	return SecularVariation{
		Declination:         degrees((x*dy - y*dx) / (h * h)),
		Inclination:         degrees((h*dz - z*dh) / (f * f)),
		HorizontalIntensity: dh,
		North:               dx,
		East:                dy,
		Down:                dz,
		TotalIntensity:      (h*dh + z*dz) / f,
	}, nil
}
