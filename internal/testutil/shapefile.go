// Package testutil writes small shapefile fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
)

// PlaceColumns is the attribute layout of the municipalities shapefile.
var PlaceColumns = []string{"PROVINCE", "SCN", "ITA", "LOCAL", "IPA", "DEMONYM"}

// ProvinceColumns is the attribute layout of the provinces shapefile.
var ProvinceColumns = []string{"PROVINCE", "SCN"}

// Feature is one fixture record. Values are keyed by column name; missing
// columns are written empty.
type Feature struct {
	Values map[string]any
	Rings  [][]shp.Point
}

// Square returns a closed clockwise ring with its lower-left corner at (x, y).
func Square(x, y, size float64) []shp.Point {
	return []shp.Point{
		{X: x, Y: y},
		{X: x, Y: y + size},
		{X: x + size, Y: y + size},
		{X: x + size, Y: y},
		{X: x, Y: y},
	}
}

// Reverse returns the ring in the opposite winding order.
func Reverse(ring []shp.Point) []shp.Point {
	out := make([]shp.Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// WriteShapefile writes a polygon shapefile (.shp, .shx, .dbf) at path.
func WriteShapefile(t testing.TB, path string, columns []string, features []Feature) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatalf("creating shapefile %s: %v", path, err)
	}

	fields := make([]shp.Field, len(columns))
	for i, c := range columns {
		if c == "PROVINCE" {
			fields[i] = shp.NumberField(c, 10)
		} else {
			fields[i] = shp.StringField(c, 80)
		}
	}
	if err := w.SetFields(fields); err != nil {
		t.Fatalf("setting fields: %v", err)
	}

	for _, f := range features {
		rings := f.Rings
		if len(rings) == 0 {
			rings = [][]shp.Point{Square(13, 37, 0.1)}
		}
		poly := shp.Polygon(*shp.NewPolyLine(rings))
		row := int(w.Write(&poly))
		for i, c := range columns {
			v, ok := f.Values[c]
			if !ok {
				v = ""
			}
			if err := w.WriteAttribute(row, i, v); err != nil {
				t.Fatalf("writing attribute %s row %d: %v", c, row, err)
			}
		}
	}
	w.Close()

	// go-shp's writer names the table "<base>dbf" without the dot.
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
		t.Fatalf("renaming dbf for %s: %v", path, err)
	}
}

// WriteCodepage writes a .cpg sidecar next to the shapefile at path.
func WriteCodepage(t testing.TB, path, codepage string) {
	t.Helper()
	cpg := path[:len(path)-len(filepath.Ext(path))] + ".cpg"
	if err := os.WriteFile(cpg, []byte(codepage), 0o644); err != nil {
		t.Fatalf("writing %s: %v", cpg, err)
	}
}

// Place builds a municipality feature with one default square.
func Place(code int, scn, ita, local, ipa, demonym string) Feature {
	return Feature{Values: map[string]any{
		"PROVINCE": code,
		"SCN":      scn,
		"ITA":      ita,
		"LOCAL":    local,
		"IPA":      ipa,
		"DEMONYM":  demonym,
	}}
}

// Province builds a province feature with one default square.
func Province(code int, name string) Feature {
	return Feature{Values: map[string]any{
		"PROVINCE": code,
		"SCN":      name,
	}}
}
