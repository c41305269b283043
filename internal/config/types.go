package config

// Config is the top-level sicily-map configuration, corresponding to sicily-map.yml.
type Config struct {
	PlacesPath    string      `yaml:"places_path" koanf:"places_path"`
	ProvincesPath string      `yaml:"provinces_path" koanf:"provinces_path"`
	Output        string      `yaml:"output" koanf:"output"`
	Title         string      `yaml:"title" koanf:"title"`
	Intro         string      `yaml:"intro" koanf:"intro"`
	Encoding      string      `yaml:"encoding" koanf:"encoding"`
	OpenBrowser   bool        `yaml:"open_browser" koanf:"open_browser"`
	Stylesheets   []string    `yaml:"stylesheets" koanf:"stylesheets"`
	Map           MapConfig   `yaml:"map" koanf:"map"`
	Style         StyleConfig `yaml:"style" koanf:"style"`
}

// MapConfig holds the base map viewport and tile source.
type MapConfig struct {
	CenterLat        float64 `yaml:"center_lat" koanf:"center_lat"`
	CenterLon        float64 `yaml:"center_lon" koanf:"center_lon"`
	Zoom             int     `yaml:"zoom" koanf:"zoom"`
	MinLat           float64 `yaml:"min_lat" koanf:"min_lat"`
	MaxLat           float64 `yaml:"max_lat" koanf:"max_lat"`
	MinLon           float64 `yaml:"min_lon" koanf:"min_lon"`
	MaxLon           float64 `yaml:"max_lon" koanf:"max_lon"`
	TileURL          string  `yaml:"tile_url" koanf:"tile_url"`
	Attribution      string  `yaml:"attribution" koanf:"attribution"`
	ProvinceOutlines bool    `yaml:"province_outlines" koanf:"province_outlines"`
}

// StyleConfig controls how municipality layers are drawn in each interaction state.
type StyleConfig struct {
	Weight          float64 `yaml:"weight" koanf:"weight"`
	IdleOpacity     float64 `yaml:"idle_opacity" koanf:"idle_opacity"`
	HoverOpacity    float64 `yaml:"hover_opacity" koanf:"hover_opacity"`
	SelectedOpacity float64 `yaml:"selected_opacity" koanf:"selected_opacity"`
	HighlightColor  string  `yaml:"highlight_color" koanf:"highlight_color"`
}
