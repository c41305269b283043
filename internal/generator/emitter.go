package generator

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/Zachdehooge/sicily-map/internal/aggregate"
	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/geodata"
	"github.com/Zachdehooge/sicily-map/internal/progress"
)

// LayerBinding is one municipality layer and the id its event handlers use.
type LayerBinding struct {
	ID      string
	Tooltip string
	Style   LayerStyle
	GeoJSON template.JS
}

// SidebarEntry is one place in the sidebar list; ID matches its LayerBinding.
type SidebarEntry struct {
	ID        string
	Label     string
	SearchKey string
}

// ProvinceBlock is a collapsible province section of the sidebar.
type ProvinceBlock struct {
	Code    int
	Name    string
	Color   string
	Entries []SidebarEntry
}

// Emitter turns aggregated places into layers, sidebar entries and info
// panels. Output only grows; nothing emitted is revisited.
type Emitter struct {
	style    config.StyleConfig
	registry *Registry
	reporter progress.Reporter

	layers []LayerBinding
	blocks []ProvinceBlock
}

// NewEmitter returns an Emitter drawing layers with the given style.
func NewEmitter(style config.StyleConfig, reporter progress.Reporter) *Emitter {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Emitter{
		style:    style,
		registry: NewRegistry(),
		reporter: reporter,
	}
}

// Emit appends every place of every group, in group order.
func (e *Emitter) Emit(groups []aggregate.Group) error {
	total := aggregate.Count(groups)
	e.reporter.Start(total)
	defer e.reporter.Finish()

	done := 0
	for _, g := range groups {
		block := ProvinceBlock{Code: g.Code, Name: g.Name, Color: g.Color}
		for _, p := range g.Places {
			entry, err := e.emitPlace(p, g.Color)
			if err != nil {
				return err
			}
			block.Entries = append(block.Entries, entry)
			done++
			e.reporter.Update(done, orPlaceholder(p.SCN))
		}
		e.blocks = append(e.blocks, block)
	}
	return nil
}

func (e *Emitter) emitPlace(p geodata.Place, color string) (SidebarEntry, error) {
	id := p.LayerID()

	panel, err := InfoPanel(p)
	if err != nil {
		return SidebarEntry{}, fmt.Errorf("rendering info for %s: %w", id, err)
	}
	if err := e.registry.Put(id, panel); err != nil {
		return SidebarEntry{}, err
	}

	geom, err := geodata.GeoJSON(p.Geometry)
	if err != nil {
		return SidebarEntry{}, fmt.Errorf("%s: %w", id, err)
	}

	label := orPlaceholder(p.SCN)
	e.layers = append(e.layers, LayerBinding{
		ID:      id,
		Tooltip: html.EscapeString(label),
		Style:   StyleFor(color, e.style),
		GeoJSON: template.JS(geom),
	})

	return SidebarEntry{
		ID:        id,
		Label:     label,
		SearchKey: searchKey(p),
	}, nil
}

// searchKey folds every name of a place into one normalized string that the
// sidebar filter matches against.
func searchKey(p geodata.Place) string {
	names := []string{p.SCN}
	for _, n := range []string{p.ITA, p.Local} {
		if n != "" && n != p.SCN {
			names = append(names, n)
		}
	}
	return aggregate.Normalize(strings.Join(names, " "))
}

// Layers returns the emitted layers in draw order.
func (e *Emitter) Layers() []LayerBinding { return e.layers }

// Blocks returns the emitted sidebar blocks in display order.
func (e *Emitter) Blocks() []ProvinceBlock { return e.blocks }

// Registry returns the info panel registry filled by Emit.
func (e *Emitter) Registry() *Registry { return e.registry }
