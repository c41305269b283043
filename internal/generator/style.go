package generator

import "github.com/Zachdehooge/sicily-map/internal/config"

// LayerStyle is the idle Leaflet path style of one municipality layer.
type LayerStyle struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// StyleFor builds the idle style for a layer drawn in the given province colour.
func StyleFor(color string, cfg config.StyleConfig) LayerStyle {
	return LayerStyle{
		Color:       color,
		Weight:      cfg.Weight,
		FillOpacity: cfg.IdleOpacity,
	}
}
