package generator

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/Zachdehooge/sicily-map/internal/aggregate"
	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/geodata"
	"github.com/Zachdehooge/sicily-map/internal/province"
)

var square = orb.Polygon{{{13, 37}, {13, 37.1}, {13.1, 37.1}, {13.1, 37}, {13, 37}}}

func fixtureGroups() []aggregate.Group {
	places := []geodata.Place{
		{Row: 0, Province: 282, SCN: "Palermu", ITA: "Palermo", Geometry: square},
		{Row: 1, Province: 81, SCN: "Tràpani", ITA: "Trapani", Geometry: square},
		{Row: 2, Province: 282, SCN: "Bagarìa", ITA: "Bagheria", Local: "Baarìa", Geometry: square},
		{Row: 3, Province: 999, SCN: "", Geometry: nil},
	}
	ix := province.NewIndex([]geodata.Province{
		{Code: 282, Name: "Palermu"},
		{Code: 81, Name: "Tràpani"},
	})
	return aggregate.ByProvince(places, ix)
}

type countingReporter struct {
	total, updates int
	finished       bool
}

func (r *countingReporter) Start(total int)    { r.total = total }
func (r *countingReporter) Update(int, string) { r.updates++ }
func (r *countingReporter) Finish()            { r.finished = true }

func TestEmitJoinKeyConsistency(t *testing.T) {
	rep := &countingReporter{}
	em := NewEmitter(config.DefaultConfig().Style, rep)
	if err := em.Emit(fixtureGroups()); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	layerIDs := make(map[string]int)
	for _, l := range em.Layers() {
		layerIDs[l.ID]++
	}
	entryIDs := make(map[string]int)
	for _, b := range em.Blocks() {
		for _, e := range b.Entries {
			entryIDs[e.ID]++
		}
	}

	if len(layerIDs) != 4 || len(entryIDs) != 4 || em.Registry().Len() != 4 {
		t.Fatalf("layers=%d entries=%d registry=%d, want 4 each", len(layerIDs), len(entryIDs), em.Registry().Len())
	}
	for id, n := range layerIDs {
		if n != 1 {
			t.Errorf("layer %s emitted %d times", id, n)
		}
		if entryIDs[id] != 1 {
			t.Errorf("layer %s has %d sidebar entries", id, entryIDs[id])
		}
		if _, ok := em.Registry().Get(id); !ok {
			t.Errorf("layer %s has no info panel", id)
		}
	}

	if rep.total != 4 || rep.updates != 4 || !rep.finished {
		t.Errorf("reporter = %+v", rep)
	}
}

func TestEmitOrderFollowsGroups(t *testing.T) {
	em := NewEmitter(config.DefaultConfig().Style, nil)
	if err := em.Emit(fixtureGroups()); err != nil {
		t.Fatal(err)
	}

	var order []string
	for _, l := range em.Layers() {
		order = append(order, l.ID)
	}
	// Palermu (Bagarìa, Palermu), Province 999, Tràpani.
	if got := strings.Join(order, ","); got != "layer_2,layer_0,layer_3,layer_1" {
		t.Errorf("layer order = %s", got)
	}

	blocks := em.Blocks()
	if len(blocks) != 3 || blocks[0].Name != "Palermu" || blocks[1].Name != "Province 999" || blocks[2].Name != "Tràpani" {
		t.Errorf("unexpected blocks: %+v", blocks)
	}
}

func TestEmitStyleUsesProvinceColor(t *testing.T) {
	style := config.DefaultConfig().Style
	em := NewEmitter(style, nil)
	if err := em.Emit(fixtureGroups()); err != nil {
		t.Fatal(err)
	}
	for _, l := range em.Layers() {
		var want string
		switch l.ID {
		case "layer_0", "layer_2":
			want = province.Color(282)
		case "layer_1":
			want = province.Color(81)
		default:
			want = province.DefaultColor
		}
		if l.Style != StyleFor(want, style) {
			t.Errorf("%s style = %+v, want colour %s", l.ID, l.Style, want)
		}
		if l.Style.FillOpacity != style.IdleOpacity || l.Style.Weight != style.Weight {
			t.Errorf("%s not at idle style: %+v", l.ID, l.Style)
		}
	}
}

func TestEmitSidebarEntries(t *testing.T) {
	em := NewEmitter(config.DefaultConfig().Style, nil)
	if err := em.Emit(fixtureGroups()); err != nil {
		t.Fatal(err)
	}

	palermu := em.Blocks()[0]
	bagaria := palermu.Entries[0]
	if bagaria.Label != "Bagarìa" {
		t.Errorf("label = %q", bagaria.Label)
	}
	if bagaria.SearchKey != "bagaria bagheria baaria" {
		t.Errorf("search key = %q", bagaria.SearchKey)
	}

	unnamed := em.Blocks()[1].Entries[0]
	if unnamed.Label != Placeholder {
		t.Errorf("unnamed label = %q, want placeholder", unnamed.Label)
	}
}

func TestEmitDuplicateRow(t *testing.T) {
	groups := []aggregate.Group{{
		Code:  81,
		Name:  "Tràpani",
		Color: province.Color(81),
		Places: []geodata.Place{
			{Row: 5, SCN: "A"},
			{Row: 5, SCN: "B"},
		},
	}}
	em := NewEmitter(config.DefaultConfig().Style, nil)
	if err := em.Emit(groups); err == nil {
		t.Fatal("expected duplicate layer error")
	}
}
