// ./cmd/igrfgrid/main.go
package main

/*
igrfgrid evaluates the IGRF geomagnetic field model at every location listed
in a YAML run file, binding the date once so the Gauss coefficients are
resolved a single time for the whole batch.

Run file format:

	date: 2021-12-22        # or a fractional year, e.g. 2021.97
	locations:
	  - name: Budapest
	    lat: 47.498
	    lon: 19.04
	    alt_meters: 0
	  - name: Genova
	    lat: 44.414
	    lon: 8.942
	    alt_meters: 2000

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
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/geomaglab/igrf"
)

// Location is one evaluation point in the run file.
type Location struct {
	Name      string  `yaml:"name"`
	Lat       float64 `yaml:"lat"`
	Lon       float64 `yaml:"lon"`
	AltMeters float64 `yaml:"alt_meters"`
}

// RunConfig is the top-level structure of the run file.
type RunConfig struct {
	Date      string     `yaml:"date"`
	Locations []Location `yaml:"locations"`
}

func loadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse run file: %w", err)
	}
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("run file lists no locations")
	}
	return &cfg, nil
}

// resolveDate turns the run file's date field into a fractional year.
// An empty field means today.
func resolveDate(s string) (float64, error) {
	if s == "" {
		return igrf.FractionalYear(time.Now()), nil
	}
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
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <coefficient_file> <run_file.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	model, err := igrf.LoadModel(os.Args[1])
	if err != nil {
		fmt.Printf("Failed to load model: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadRunConfig(os.Args[2])
	if err != nil {
		fmt.Printf("Failed to load run file: %v\n", err)
		os.Exit(1)
	}

	date, err := resolveDate(cfg.Date)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	bound := model.At(date)
	fmt.Printf("IGRF evaluation at %.4f (%d locations)\n\n", bound.Date(), len(cfg.Locations))
	fmt.Printf("%-20s %10s %10s %10s %10s %10s %10s\n",
		"Location", "X (nT)", "Y (nT)", "Z (nT)", "D (°)", "I (°)", "F (nT)")

	for _, loc := range cfg.Locations {
		vec, err := bound.Evaluate(loc.Lat, loc.Lon, loc.AltMeters)
		if err != nil {
			fmt.Printf("%-20s error: %v\n", loc.Name, err)
			continue
		}
		fmt.Printf("%-20s %10.1f %10.1f %10.1f %10.3f %10.3f %10.1f\n",
			loc.Name, vec.North, vec.East, vec.Down,
			vec.Declination(), vec.Inclination(), vec.TotalIntensity())
	}
}
