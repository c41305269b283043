// Package province maps province codes to display names and colours.
package province

import (
	"fmt"

	"github.com/Zachdehooge/sicily-map/internal/geodata"
)

// DefaultColor is used for codes missing from the colour table.
const DefaultColor = "#2F4F4F"

var colors = map[int]string{
	81:  "#FFB400", // Tràpani
	84:  "#FF6F61", // Girgenti
	85:  "#9370DB", // Nissa
	86:  "#E9967A", // Castruggiuvanni
	88:  "#708090", // Ragusa
	89:  "#D9534F", // Saragusa
	280: "#00A86B",
	282: "#4682B4", // Palermu
	283: "#40E0D0", // Missina
	287: "#9932CC", // Catania
}

// Color returns the display colour for a province code.
func Color(code int) string {
	if c, ok := colors[code]; ok {
		return c
	}
	return DefaultColor
}

// Index resolves province codes to names.
type Index struct {
	names map[int]string
}

// NewIndex builds an Index from the province rows. Later rows win on
// duplicate codes.
func NewIndex(provinces []geodata.Province) *Index {
	names := make(map[int]string, len(provinces))
	for _, p := range provinces {
		names[p.Code] = p.Name
	}
	return &Index{names: names}
}

// Name returns the province's display name, or "Province <code>" when the
// code is unknown or has no name.
func (ix *Index) Name(code int) string {
	if n := ix.names[code]; n != "" {
		return n
	}
	return fmt.Sprintf("Province %d", code)
}

// Len returns the number of indexed provinces.
func (ix *Index) Len() int {
	return len(ix.names)
}
