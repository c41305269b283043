package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/testutil"
)

func writeFixtures(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.PlacesPath = filepath.Join(dir, "cumuna", "cumuna.shp")
	cfg.ProvincesPath = filepath.Join(dir, "pruvinci", "pruvinci.shp")
	cfg.Output = filepath.Join(dir, "mappa.html")
	cfg.OpenBrowser = false

	testutil.WriteShapefile(t, cfg.PlacesPath, testutil.PlaceColumns, []testutil.Feature{
		testutil.Place(81, "Alcamu", "Alcamo", "Arcamu", "", "arcamisi"),
		testutil.Place(84, "Sciacca", "Sciacca", "Sciacca", "", ""),
		testutil.Place(81, "Tràpani", "Trapani", "Tràpani", "", "trapanisi"),
	})
	testutil.WriteShapefile(t, cfg.ProvincesPath, testutil.ProvinceColumns, []testutil.Feature{
		testutil.Province(81, "Tràpani"),
		testutil.Province(84, "Girgenti"),
	})
	return cfg
}

func TestRun(t *testing.T) {
	cfg := writeFixtures(t)

	sum, err := Run(cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Places != 3 || sum.Provinces != 2 {
		t.Errorf("summary = %+v", sum)
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)
	if len(data) != sum.Bytes {
		t.Errorf("summary bytes %d, file %d", sum.Bytes, len(data))
	}
	if n := strings.Count(html, `registerLayer("layer_`); n != 3 {
		t.Errorf("layer bindings = %d, want 3", n)
	}

	// Girgenti sorts before Tràpani; Alcamu before Tràpani.
	g := strings.Index(html, ">Girgenti<")
	tp := strings.Index(html, ">Tràpani</span>")
	if g < 0 || tp < 0 || g > tp {
		t.Errorf("province order wrong: Girgenti %d, Tràpani %d", g, tp)
	}
	alc := strings.Index(html, `data-layer="layer_0"`)
	trp := strings.Index(html, `data-layer="layer_2"`)
	if alc < 0 || trp < 0 || alc > trp {
		t.Errorf("place order wrong: Alcamu %d, Tràpani %d", alc, trp)
	}
}

func TestRunWithIntroAndOutlines(t *testing.T) {
	cfg := writeFixtures(t)
	cfg.Intro = filepath.Join(t.TempDir(), "intro.md")
	cfg.Map.ProvinceOutlines = true
	if err := os.WriteFile(cfg.Intro, []byte("Mappa **sicula**"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(cfg, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if !strings.Contains(html, "<strong>sicula</strong>") {
		t.Error("intro not rendered")
	}
	if !strings.Contains(html, "interactive: false") {
		t.Error("province outlines not drawn")
	}
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	cfg := writeFixtures(t)
	cfg.ProvincesPath = filepath.Join(t.TempDir(), "missing.shp")

	_, err := Run(cfg, nil)
	if err == nil {
		t.Fatal("expected error for missing provinces file")
	}
	if !strings.Contains(err.Error(), cfg.ProvincesPath) {
		t.Errorf("error %q should name %s", err, cfg.ProvincesPath)
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Errorf("output should not exist after failure, stat err = %v", err)
	}
}

func TestRunIsReproducible(t *testing.T) {
	cfg := writeFixtures(t)

	if _, err := Run(cfg, nil); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(cfg.Output)
	if _, err := Run(cfg, nil); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(cfg.Output)

	if string(first) != string(second) {
		t.Error("regenerating from unchanged input should be byte-identical")
	}
}

func TestCollect(t *testing.T) {
	cfg := writeFixtures(t)
	groups, provinces, err := Collect(cfg, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(provinces) != 2 || len(groups) != 2 {
		t.Fatalf("groups=%d provinces=%d", len(groups), len(provinces))
	}
	if groups[0].Name != "Girgenti" {
		t.Errorf("first group = %s", groups[0].Name)
	}
}
