package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "sicily-map.yml"

// DefaultStylesheets are linked into the head of every generated document.
var DefaultStylesheets = []string{
	"https://cdn.jsdelivr.net/npm/bootstrap@5.2.2/dist/css/bootstrap.min.css",
}

// DefaultConfig returns a Config matching the published Sicily map.
func DefaultConfig() *Config {
	return &Config{
		PlacesPath:    "../finaiti/cumuna/cumuna.shp",
		ProvincesPath: "../finaiti/pruvinci/pruvinci.shp",
		Output:        "mappa.html",
		Title:         "Mappa dî cumuna dâ Sicilia",
		OpenBrowser:   true,
		Stylesheets:   append([]string(nil), DefaultStylesheets...),
		Map: MapConfig{
			CenterLat:   37.2,
			CenterLon:   15.0,
			Zoom:        8,
			MinLat:      34.7,
			MaxLat:      39.7,
			MinLon:      12.0,
			MaxLon:      17.5,
			TileURL:     "https://server.arcgisonline.com/ArcGIS/rest/services/World_Shaded_Relief/MapServer/tile/{z}/{y}/{x}",
			Attribution: "Tiles &copy; Esri &mdash; Source: Esri",
		},
		Style: StyleConfig{
			Weight:          1.5,
			IdleOpacity:     0.3,
			HoverOpacity:    0.6,
			SelectedOpacity: 0.8,
			HighlightColor:  "#1E90FF",
		},
	}
}
