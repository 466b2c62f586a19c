// ./loader_test.go
package igrf

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
)

// igrfText renders a coefficient table in the published IGRF text format:
// header rows, then one "g"/"h" line per coefficient series with a value per
// epoch column. Degree >10 rows carry zeros in the pre-1995 columns, exactly
// as the real files do; the parser must discard those.
func igrfText(value func(year float64, n, m int, isH bool) float64, sv func(n, m int, isH bool) float64) string {
	var years []float64
	for i := 0; i < degree10Snapshots; i++ {
		years = append(years, firstEpoch+epochStep*float64(i))
	}
	for j := 0; j < 6; j++ {
		years = append(years, degree13FirstEpoch+epochStep*float64(j))
	}

	var b strings.Builder
	b.WriteString("# 13th Generation International Geomagnetic Reference Field\n")
	b.WriteString("c/s deg ord")
	for _, y := range years {
		b.WriteString(" " + strconv.FormatFloat(y, 'f', 1, 64))
	}
	b.WriteString(" 2020-25\n")

	writeLine := func(kind string, n, m int, isH bool) {
		b.WriteString(kind + " " + strconv.Itoa(n) + " " + strconv.Itoa(m))
		for _, y := range years {
			v := 0.0
			if n <= degree10 || y >= degree13FirstEpoch {
				v = value(y, n, m, isH)
			}
			b.WriteString(" " + strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString(" " + strconv.FormatFloat(sv(n, m, isH), 'g', -1, 64))
		b.WriteString("\n")
	}
	for n := 1; n <= degree13; n++ {
		writeLine("g", n, 0, false)
		for m := 1; m <= n; m++ {
			writeLine("g", n, m, false)
			writeLine("h", n, m, true)
		}
	}
	return b.String()
}

func TestParseCoefficients(t *testing.T) {
	svFn := func(n, m int, isH bool) float64 { return linRate(n, m, isH) * epochStep }
	text := igrfText(linValue, svFn)

	got, err := ParseCoefficients(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	want := buildTable(7, linValue, svFn)

	if len(got) != len(want) {
		t.Fatalf("table length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("table[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseCoefficientsErrors(t *testing.T) {
	svFn := func(n, m int, isH bool) float64 { return 0 }
	good := igrfText(linValue, svFn)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no coefficient rows", "# header only\nc/s deg ord 1900.0\n"},
		{"bad number", strings.Replace(good, "g 1 0 ", "g 1 0 abc ", 1)},
		{"short row", "g 1 0\n"},
		{"column mismatch", good + "g 14 0 1 2 3 4\n"},
		{"missing rows", strings.Join(strings.SplitAfter(good, "\n")[:50], "")},
	}
	for _, tc := range tests {
		_, err := ParseCoefficients(strings.NewReader(tc.text))
		if !errors.Is(err, ErrBadCoefficientFile) {
			t.Errorf("%s: err = %v, want ErrBadCoefficientFile", tc.name, err)
		}
	}
}

func TestReadModel(t *testing.T) {
	svFn := func(n, m int, isH bool) float64 { return linRate(n, m, isH) * epochStep }
	m, err := ReadModel(strings.NewReader(igrfText(linValue, svFn)))
	if err != nil {
		t.Fatal(err)
	}
	if m.MinYear() != 1900 || m.MaxYear() != 2030 {
		t.Errorf("year range = [%v, %v], want [1900, 2030]", m.MinYear(), m.MaxYear())
	}
	if _, err := m.Evaluate(47.498, 19.04, 0, 2021.97); err != nil {
		t.Errorf("Evaluate: %v", err)
	}
}

func TestRegistry(t *testing.T) {
	svFn := func(n, m int, isH bool) float64 { return linRate(n, m, isH) * epochStep }
	fsys := fstest.MapFS{
		"igrf13.txt": &fstest.MapFile{Data: []byte(igrfText(linValue, svFn))},
		"igrf12.txt": &fstest.MapFile{Data: []byte("not a coefficient file\n")},
	}
	reg := NewRegistry(fsys)

	m1, err := reg.Get(13)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := reg.Get(13)
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Error("Get(13) twice returned different instances")
	}

	if _, err := reg.Get(777777); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Get(777777): err = %v, want ErrUnsupportedVersion", err)
	}

	if _, err := reg.Get(12); !errors.Is(err, ErrBadCoefficientFile) {
		t.Errorf("Get(12): err = %v, want ErrBadCoefficientFile", err)
	}
}
