package generator

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/geodata"
)

var page = template.Must(template.New("page").Parse(pageTemplate))

// Document is everything the page template needs.
type Document struct {
	Title       string
	Stylesheets []string
	Map         config.MapConfig
	Style       config.StyleConfig
	Intro       template.HTML
	Outlines    template.JS
	Layers      []LayerBinding
	Info        template.JS
	Provinces   []ProvinceBlock
}

// NewDocument assembles a Document from the emitter's output.
func NewDocument(cfg *config.Config, e *Emitter) (*Document, error) {
	info, err := e.Registry().JSON()
	if err != nil {
		return nil, err
	}
	return &Document{
		Title:       cfg.Title,
		Stylesheets: cfg.Stylesheets,
		Map:         cfg.Map,
		Style:       cfg.Style,
		Layers:      e.Layers(),
		Info:        info,
		Provinces:   e.Blocks(),
	}, nil
}

// SetOutlines draws the province boundaries as a non-interactive overlay.
func (d *Document) SetOutlines(provinces []geodata.Province) error {
	b, err := geodata.FeatureCollection(provinces)
	if err != nil {
		return err
	}
	d.Outlines = template.JS(b)
	return nil
}

// Render writes the HTML document to w.
func (d *Document) Render(w io.Writer) error {
	if err := page.Execute(w, d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// WriteFile renders the document and atomically replaces outputPath with it,
// so a browser never sees a half-written page. It returns the size written.
func (d *Document) WriteFile(outputPath string) (int, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return 0, err
	}
	size := buf.Len()

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := atomic.WriteFile(outputPath, &buf); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return size, nil
}

// RenderIntro converts the Markdown file at path into the sidebar intro.
// An empty path yields no intro.
func RenderIntro(path string) (template.HTML, error) {
	if path == "" {
		return "", nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading intro %s: %w", path, err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Typographer, extension.Linkify))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering intro %s: %w", path, err)
	}
	return template.HTML(buf.String()), nil
}
