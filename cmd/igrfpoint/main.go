// ./cmd/igrfpoint/main.go
package main

/*
igrfpoint evaluates the IGRF geomagnetic field model at a single position
and date and prints the field components and derived quantities.

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
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/geomaglab/igrf"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <coefficient_file> <lat> <lon>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Evaluates the IGRF model at the given geodetic position.\n\n")
	flag.PrintDefaults()
}

// parseDate accepts either a fractional year ("2021.97") or a calendar date
// ("2021-12-22").
func parseDate(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, fmt.Errorf("date must be a fractional year or YYYY-MM-DD: %q", s)
	}
	return igrf.FractionalYear(t), nil
}

func main() {
	altMeters := flag.Float64("alt", 0, "altitude above the WGS84 ellipsoid, in meters")
	dateArg := flag.String("date", "", "evaluation date (fractional year or YYYY-MM-DD, default: today)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(1)
	}

	model, err := igrf.LoadModel(flag.Arg(0))
	if err != nil {
		fmt.Printf("Failed to load model: %v\n", err)
		os.Exit(1)
	}

	lat, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		fmt.Printf("Invalid latitude: %v\n", err)
		os.Exit(1)
	}
	lon, err := strconv.ParseFloat(flag.Arg(2), 64)
	if err != nil {
		fmt.Printf("Invalid longitude: %v\n", err)
		os.Exit(1)
	}

	date := igrf.FractionalYear(time.Now())
	if *dateArg != "" {
		date, err = parseDate(*dateArg)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	fmt.Printf("=== Model ===\n")
	fmt.Printf("Year range: %.1f to %.1f\n", model.MinYear(), model.MaxYear())
	fmt.Printf("Position: lat %.4f°, lon %.4f°, alt %.0f m\n", lat, lon, *altMeters)
	fmt.Printf("Date: %.4f\n", date)

	vec, err := model.Evaluate(lat, lon, *altMeters, date)
	if err != nil {
		fmt.Printf("Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Field Components ===\n")
	fmt.Printf("  North (X): %10.1f nT\n", vec.North)
	fmt.Printf("  East  (Y): %10.1f nT\n", vec.East)
	fmt.Printf("  Down  (Z): %10.1f nT\n", vec.Down)

	fmt.Printf("\n=== Derived Quantities ===\n")
	fmt.Printf("  Declination:          %8.3f°\n", vec.Declination())
	fmt.Printf("  Inclination:          %8.3f°\n", vec.Inclination())
	fmt.Printf("  Horizontal intensity: %8.1f nT\n", vec.HorizontalIntensity())
	fmt.Printf("  Total intensity:      %8.1f nT\n", vec.TotalIntensity())

	sv, err := igrf.AnnualVariation(model, lat, lon, *altMeters, date)
	if err == nil {
		fmt.Printf("\n=== Annual Variation ===\n")
		fmt.Printf("  Declination:          %8.3f°/yr\n", sv.Declination)
		fmt.Printf("  Inclination:          %8.3f°/yr\n", sv.Inclination)
		fmt.Printf("  Horizontal intensity: %8.1f nT/yr\n", sv.HorizontalIntensity)
		fmt.Printf("  Total intensity:      %8.1f nT/yr\n", sv.TotalIntensity)
	}
}
