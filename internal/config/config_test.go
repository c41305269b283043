package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output != "mappa.html" {
		t.Errorf("expected default output %q, got %q", "mappa.html", cfg.Output)
	}
	if cfg.Map.Zoom != 8 {
		t.Errorf("expected default zoom 8, got %d", cfg.Map.Zoom)
	}
	if cfg.Style.IdleOpacity != 0.3 || cfg.Style.HoverOpacity != 0.6 || cfg.Style.SelectedOpacity != 0.8 {
		t.Errorf("unexpected default opacities: %+v", cfg.Style)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sicily-map.yml")

	original := DefaultConfig()
	original.PlacesPath = "data/cumuna.shp"
	original.Output = "out/map.html"
	original.Map.Zoom = 9
	original.Style.HighlightColor = "#000000"
	original.Stylesheets = []string{"a.css", "b.css"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.PlacesPath != original.PlacesPath {
		t.Errorf("places_path: got %q, want %q", loaded.PlacesPath, original.PlacesPath)
	}
	if loaded.Output != original.Output {
		t.Errorf("output: got %q, want %q", loaded.Output, original.Output)
	}
	if loaded.Map.Zoom != 9 {
		t.Errorf("map.zoom: got %d, want 9", loaded.Map.Zoom)
	}
	if loaded.Style.HighlightColor != "#000000" {
		t.Errorf("style.highlight_color: got %q", loaded.Style.HighlightColor)
	}
	if len(loaded.Stylesheets) != 2 || loaded.Stylesheets[1] != "b.css" {
		t.Errorf("stylesheets: got %v", loaded.Stylesheets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.PlacesPath != DefaultConfig().PlacesPath {
		t.Errorf("expected default places_path, got %q", cfg.PlacesPath)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	content := "output: custom.html\nmap:\n  zoom: 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "custom.html" {
		t.Errorf("output: got %q", cfg.Output)
	}
	if cfg.Map.Zoom != 10 {
		t.Errorf("map.zoom: got %d", cfg.Map.Zoom)
	}
	if cfg.Map.CenterLat != 37.2 {
		t.Errorf("map.center_lat should keep default, got %g", cfg.Map.CenterLat)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SICILYMAP_OUTPUT", "env.html")
	t.Setenv("SICILYMAP_MAP__ZOOM", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "env.html" {
		t.Errorf("output: got %q, want env.html", cfg.Output)
	}
	if cfg.Map.Zoom != 7 {
		t.Errorf("map.zoom: got %d, want 7", cfg.Map.Zoom)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("map: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing places", func(c *Config) { c.PlacesPath = "" }, "places_path"},
		{"missing provinces", func(c *Config) { c.ProvincesPath = "" }, "provinces_path"},
		{"missing output", func(c *Config) { c.Output = "" }, "output"},
		{"short places path", func(c *Config) { c.PlacesPath = "ab" }, "places_path"},
		{"places not shp", func(c *Config) { c.PlacesPath = "data/cumuna.dbf" }, "places_path"},
		{"provinces no extension", func(c *Config) { c.ProvincesPath = "data/pruvinci" }, "provinces_path"},
		{"zoom too high", func(c *Config) { c.Map.Zoom = 30 }, "zoom"},
		{"inverted lat", func(c *Config) { c.Map.MinLat, c.Map.MaxLat = 40, 30 }, "min_lat"},
		{"inverted lon", func(c *Config) { c.Map.MinLon = 20 }, "min_lon"},
		{"centre outside", func(c *Config) { c.Map.CenterLat = 50 }, "outside"},
		{"no tiles", func(c *Config) { c.Map.TileURL = "" }, "tile_url"},
		{"zero weight", func(c *Config) { c.Style.Weight = 0 }, "weight"},
		{"opacity above one", func(c *Config) { c.Style.HoverOpacity = 1.5 }, "hover_opacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
