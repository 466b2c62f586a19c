// ./loader.go
package igrf

/*
Loading of IGRF coefficient files and the version-keyed model registry.

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ParseCoefficients reads the standard IGRF text coefficient format and
// returns the flat value table consumed by NewTable.
//
// The format is line oriented: lines beginning with "g " or "h " carry one
// coefficient series across all model epochs, in the canonical n/m order;
// everything else (comments, the header rows) is ignored. The columns are
// transposed into per-epoch blocks, the first 19 epoch columns truncated to
// the 120 degree-10 values, and a single sentinel value appended.
//
// Returns:
//   - []float64: the flat coefficient table.
//   - error: ErrBadCoefficientFile (wrapped with detail) if the input does
//     not have the expected shape or a value fails to parse.
func ParseCoefficients(r io.Reader) ([]float64, error) {
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(line, "g ") && !strings.HasPrefix(line, "h ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line %d: too few columns", ErrBadCoefficientFile, lineNo)
		}
		row := make([]float64, 0, len(fields)-3)
		for _, field := range fields[3:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrBadCoefficientFile, lineNo, field)
			}
			row = append(row, v)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d: %d columns, expected %d",
				ErrBadCoefficientFile, lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading coefficient file: %w", err)
	}

	if len(rows) != degree13BlockLen {
		return nil, fmt.Errorf("%w: %d coefficient rows, expected %d",
			ErrBadCoefficientFile, len(rows), degree13BlockLen)
	}
	epochs := len(rows[0])
	if epochs < degree10Snapshots+2 {
		return nil, fmt.Errorf("%w: %d epoch columns, expected at least %d",
			ErrBadCoefficientFile, epochs, degree10Snapshots+2)
	}

	table := make([]float64, 0, degree10Snapshots*degree10BlockLen+
		(epochs-degree10Snapshots)*degree13BlockLen+1)
	for col := 0; col < epochs; col++ {
		limit := len(rows)
		if col < degree10Snapshots {
			limit = degree10BlockLen
		}
		for r := 0; r < limit; r++ {
			table = append(table, rows[r][col])
		}
	}
	table = append(table, 0) // sentinel

	return table, nil
}

// ReadModel parses a coefficient file from r and returns the Model over it.
func ReadModel(r io.Reader) (*Model, error) {
	values, err := ParseCoefficients(r)
	if err != nil {
		return nil, err
	}
	return NewModel(NewTable(values)), nil
}

// LoadModel parses the coefficient file at the given path and returns the
// Model over it.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open coefficient file: %w", err)
	}
	defer f.Close()
	model, err := ReadModel(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// Registry is a version-keyed cache of parsed models backed by a file system
// containing coefficient files named "igrf<version>.txt". Models are loaded
// lazily on first request and shared afterwards; a Registry is safe for
// concurrent use, and the Model instances it hands out are immutable.
type Registry struct {
	fsys fs.FS

	mu     sync.Mutex
	models map[int]*Model
}

// NewRegistry creates a Registry over the given file system. Pass an
// embed.FS of bundled data files or os.DirFS of a data directory.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys, models: make(map[int]*Model)}
}

// Get returns the model for an IGRF generation number (e.g. 13), loading and
// caching it on first use.
//
// Returns:
//   - *Model: the shared parsed model.
//   - error: ErrUnsupportedVersion if no coefficient file exists for the
//     version; parse errors from the underlying file otherwise.
func (r *Registry) Get(version int) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if model, ok := r.models[version]; ok {
		return model, nil
	}

	name := fmt.Sprintf("igrf%d.txt", version)
	f, err := r.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
		}
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	model, err := ReadModel(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.models[version] = model
	return model, nil
}
