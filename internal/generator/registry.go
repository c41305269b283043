package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
)

// ErrDuplicateLayer is returned when two places claim the same layer id.
var ErrDuplicateLayer = errors.New("duplicate layer id")

// Registry maps layer ids to their pre-rendered info panels. It is embedded
// in the page as the client-side lookup table.
type Registry struct {
	ids  []string
	info map[string]template.HTML
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{info: make(map[string]template.HTML)}
}

// Put stores the info panel for id. Each id may be stored once.
func (r *Registry) Put(id string, panel template.HTML) error {
	if _, ok := r.info[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLayer, id)
	}
	r.ids = append(r.ids, id)
	r.info[id] = panel
	return nil
}

// Get returns the info panel for id.
func (r *Registry) Get(id string) (template.HTML, bool) {
	p, ok := r.info[id]
	return p, ok
}

// Len returns the number of registered layers.
func (r *Registry) Len() int {
	return len(r.ids)
}

// IDs returns the registered ids in insertion order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// JSON encodes the registry as a JavaScript object literal. Keys are sorted
// and markup characters are \u-escaped, so the result is stable and safe
// inside a script element.
func (r *Registry) JSON() (template.JS, error) {
	m := make(map[string]string, len(r.info))
	for id, p := range r.info {
		m[id] = string(p)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding layer info: %w", err)
	}
	return template.JS(b), nil
}
