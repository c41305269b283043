package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "SICILYMAP_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SICILYMAP_*). A double underscore in the
// variable name descends into a nested section: SICILYMAP_MAP__ZOOM -> map.zoom.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.PlacesPath == "" {
		return fmt.Errorf("places_path is required")
	}
	if c.ProvincesPath == "" {
		return fmt.Errorf("provinces_path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	for key, p := range map[string]string{"places_path": c.PlacesPath, "provinces_path": c.ProvincesPath} {
		if !strings.EqualFold(filepath.Ext(p), ".shp") {
			return fmt.Errorf("%s %q must point to a .shp file", key, p)
		}
	}

	m := c.Map
	if m.Zoom < 0 || m.Zoom > 22 {
		return fmt.Errorf("map.zoom %d out of range 0-22", m.Zoom)
	}
	if m.MinLat >= m.MaxLat {
		return fmt.Errorf("map.min_lat (%g) must be below map.max_lat (%g)", m.MinLat, m.MaxLat)
	}
	if m.MinLon >= m.MaxLon {
		return fmt.Errorf("map.min_lon (%g) must be below map.max_lon (%g)", m.MinLon, m.MaxLon)
	}
	if m.CenterLat < m.MinLat || m.CenterLat > m.MaxLat || m.CenterLon < m.MinLon || m.CenterLon > m.MaxLon {
		return fmt.Errorf("map centre (%g, %g) lies outside the map bounds", m.CenterLat, m.CenterLon)
	}
	if m.TileURL == "" {
		return fmt.Errorf("map.tile_url is required")
	}

	s := c.Style
	if s.Weight <= 0 {
		return fmt.Errorf("style.weight must be positive")
	}
	for name, v := range map[string]float64{
		"idle_opacity":     s.IdleOpacity,
		"hover_opacity":    s.HoverOpacity,
		"selected_opacity": s.SelectedOpacity,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("style.%s %g out of range 0-1", name, v)
		}
	}

	return nil
}
