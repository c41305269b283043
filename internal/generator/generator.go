package generator

import (
	"fmt"
	"log/slog"

	"github.com/Zachdehooge/sicily-map/internal/aggregate"
	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/geodata"
	"github.com/Zachdehooge/sicily-map/internal/logger"
	"github.com/Zachdehooge/sicily-map/internal/progress"
	"github.com/Zachdehooge/sicily-map/internal/province"
)

// Summary describes one completed generation pass.
type Summary struct {
	Output    string
	Provinces int
	Places    int
	Bytes     int
}

// Collect loads both shapefiles and groups the places in render order.
func Collect(cfg *config.Config, log *slog.Logger) ([]aggregate.Group, []geodata.Province, error) {
	loader := geodata.NewLoader(cfg.Encoding, log)

	places, err := loader.LoadPlaces(cfg.PlacesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading places: %w", err)
	}
	provinces, err := loader.LoadProvinces(cfg.ProvincesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading provinces: %w", err)
	}

	groups := aggregate.ByProvince(places, province.NewIndex(provinces))
	return groups, provinces, nil
}

// Run executes the whole pipeline once: load, index, aggregate, emit,
// assemble and write cfg.Output. Nothing is written on error.
func Run(cfg *config.Config, reporter progress.Reporter) (*Summary, error) {
	log := logger.L()

	groups, provinces, err := Collect(cfg, log)
	if err != nil {
		return nil, err
	}

	em := NewEmitter(cfg.Style, reporter)
	if err := em.Emit(groups); err != nil {
		return nil, fmt.Errorf("emitting places: %w", err)
	}
	log.Debug("emitted layers", "layers", len(em.Layers()), "provinces", len(em.Blocks()))

	doc, err := NewDocument(cfg, em)
	if err != nil {
		return nil, err
	}
	if doc.Intro, err = RenderIntro(cfg.Intro); err != nil {
		return nil, err
	}
	if cfg.Map.ProvinceOutlines {
		if err := doc.SetOutlines(provinces); err != nil {
			return nil, err
		}
	}

	size, err := doc.WriteFile(cfg.Output)
	if err != nil {
		return nil, err
	}
	log.Info("map written", "path", cfg.Output, "bytes", size)

	return &Summary{
		Output:    cfg.Output,
		Provinces: len(em.Blocks()),
		Places:    len(em.Layers()),
		Bytes:     size,
	}, nil
}
