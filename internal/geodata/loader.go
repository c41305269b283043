package geodata

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
)

// ErrMissingColumn is returned when a shapefile lacks a required attribute.
var ErrMissingColumn = errors.New("missing required column")

// Attribute column names shared by both shapefiles.
const (
	ColProvince = "PROVINCE"
	ColSCN      = "SCN"
	ColITA      = "ITA"
	ColLocal    = "LOCAL"
	ColIPA      = "IPA"
	ColDemonym  = "DEMONYM"
)

// Loader reads the municipality and province shapefiles.
type Loader struct {
	// Encoding overrides the .cpg sidecar when set.
	Encoding string
	Logger   *slog.Logger
}

// NewLoader returns a Loader that honours each file's .cpg sidecar unless
// encodingOverride is non-empty.
func NewLoader(encodingOverride string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Encoding: encodingOverride, Logger: logger}
}

// LoadPlaces reads every municipality row from the shapefile at path.
func (l *Loader) LoadPlaces(path string) ([]Place, error) {
	var places []Place
	err := l.scan(path, []string{ColProvince, ColSCN}, func(row int, attrs rowAttrs, g shp.Shape) error {
		geom, err := toGeometry(g)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		places = append(places, Place{
			Row:      row,
			Province: l.provinceCode(path, row, attrs.get(ColProvince)),
			SCN:      attrs.get(ColSCN),
			ITA:      attrs.get(ColITA),
			Local:    attrs.get(ColLocal),
			IPA:      attrs.get(ColIPA),
			Demonym:  attrs.get(ColDemonym),
			Geometry: geom,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.Logger.Info("loaded places", "path", path, "count", len(places))
	return places, nil
}

// LoadProvinces reads every province row from the shapefile at path.
func (l *Loader) LoadProvinces(path string) ([]Province, error) {
	var provinces []Province
	err := l.scan(path, []string{ColProvince, ColSCN}, func(row int, attrs rowAttrs, g shp.Shape) error {
		geom, err := toGeometry(g)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		provinces = append(provinces, Province{
			Row:      row,
			Code:     l.provinceCode(path, row, attrs.get(ColProvince)),
			Name:     attrs.get(ColSCN),
			Geometry: geom,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.Logger.Info("loaded provinces", "path", path, "count", len(provinces))
	return provinces, nil
}

// rowAttrs holds one decoded DBF record keyed by upper-case column name.
type rowAttrs map[string]string

func (a rowAttrs) get(col string) string {
	return a[col]
}

func (l *Loader) scan(path string, required []string, fn func(row int, attrs rowAttrs, g shp.Shape) error) error {
	if !strings.EqualFold(filepath.Ext(path), ".shp") {
		return fmt.Errorf("%s: not a .shp file", path)
	}
	// The reader drops attribute-table open errors and reports no columns.
	dbf := strings.TrimSuffix(path, filepath.Ext(path)) + ".dbf"
	if _, err := os.Stat(dbf); err != nil {
		return fmt.Errorf("opening dbf for %s: %w", path, err)
	}

	dec, err := l.decoderFor(path)
	if err != nil {
		return err
	}

	r, err := shp.Open(path)
	if err != nil {
		return fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	columns := make(map[string]int)
	for i, f := range r.Fields() {
		columns[strings.ToUpper(strings.TrimSpace(f.String()))] = i
	}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return fmt.Errorf("%s: %w %s", path, ErrMissingColumn, col)
		}
	}

	for r.Next() {
		row, shape := r.Shape()
		attrs := make(rowAttrs, len(columns))
		for name, idx := range columns {
			raw := strings.Trim(r.ReadAttribute(row, idx), " \x00")
			val, err := dec.decode(raw)
			if err != nil {
				return fmt.Errorf("%s: row %d column %s: %w", path, row, name, err)
			}
			attrs[name] = strings.TrimSpace(val)
		}
		if err := fn(row, attrs, shape); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return nil
}

func (l *Loader) decoderFor(path string) (decoder, error) {
	name := l.Encoding
	if name == "" {
		var err error
		name, err = sidecarEncoding(path)
		if err != nil {
			return decoder{}, err
		}
	}
	enc, err := resolveEncoding(name)
	if err != nil {
		return decoder{}, fmt.Errorf("%s: %w", path, err)
	}
	return decoder{enc: enc}, nil
}

// provinceCode parses a DBF numeric field. Unparsable values degrade to 0.
func (l *Loader) provinceCode(path string, row int, raw string) int {
	if raw == "" {
		l.Logger.Warn("missing province code", "path", path, "row", row)
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) {
		return int(f)
	}
	l.Logger.Warn("unparsable province code", "path", path, "row", row, "value", raw)
	return 0
}
