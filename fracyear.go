// ./fracyear.go
package igrf

/*
Conversion of calendar timestamps to fractional years.

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

import "time"

// FractionalYear converts a calendar timestamp to a fractional year: the
// integer part is the calendar year, the fractional part the elapsed whole
// days of that year divided by the year's day count. Leap years are handled
// because the day count is computed per year.
func FractionalYear(t time.Time) float64 {
	year := t.Year()
	days := time.Date(year, time.December, 31, 0, 0, 0, 0, t.Location()).YearDay()
	return float64(year) + float64(t.YearDay()-1)/float64(days)
}
