package generator

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/Zachdehooge/sicily-map/internal/geodata"
)

// Placeholder stands in for missing names and demonyms.
const Placeholder = "?"

var infoTemplate = template.Must(template.New("info").Parse(
	`<div class="info-box">` +
		`<span class="info-name">{{.Name}}</span>` +
		`{{if .Italian}}<span class="info-italian">&#127470;&#127481; {{.Italian}}</span>{{end}}` +
		`{{if .Local}}<span class="info-location">&#128205; {{.Local}}</span>{{end}}` +
		`{{if .IPA}}<span class="info-ipa">/{{.IPA}}/</span>{{end}}` +
		`<span class="info-demonym">&#129489; {{.Demonym}}</span>` +
		`</div>`))

// InfoPanel renders the sidebar info panel of a place.
func InfoPanel(p geodata.Place) (template.HTML, error) {
	data := struct {
		Name    string
		Italian string
		Local   string
		IPA     string
		Demonym string
	}{
		Name:    orPlaceholder(p.SCN),
		Italian: p.ITA,
		IPA:     strings.Trim(p.IPA, "/"),
		Demonym: orPlaceholder(p.Demonym),
	}
	if p.HasDistinctLocal() {
		data.Local = p.Local
	}

	var buf bytes.Buffer
	if err := infoTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
