package geodata

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Place is one municipality row of the places shapefile.
type Place struct {
	Row      int
	Province int
	SCN      string
	ITA      string
	Local    string
	IPA      string
	Demonym  string
	Geometry orb.Geometry
}

// LayerID is the synthetic key joining the place's map layer to its sidebar
// entry. It is derived from the source row only.
func (p Place) LayerID() string {
	return fmt.Sprintf("layer_%d", p.Row)
}

// HasDistinctLocal reports whether the local name differs from the canonical one.
func (p Place) HasDistinctLocal() bool {
	return p.Local != "" && p.Local != p.SCN
}

// Province is one row of the provinces shapefile.
type Province struct {
	Row      int
	Code     int
	Name     string
	Geometry orb.Geometry
}
