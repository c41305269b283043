package geodata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// decoder turns raw DBF attribute bytes into UTF-8 text.
type decoder struct {
	enc encoding.Encoding // nil means UTF-8
}

func (d decoder) decode(raw string) (string, error) {
	if d.enc == nil {
		if !utf8.ValidString(raw) {
			// Undeclared legacy DBFs are almost always Latin-1.
			return charmap.ISO8859_1.NewDecoder().String(raw)
		}
		return raw, nil
	}
	return d.enc.NewDecoder().String(raw)
}

// resolveEncoding maps a codepage name as found in a .cpg sidecar or in the
// config to an encoding. Empty and UTF-8 names resolve to nil.
func resolveEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	switch strings.ToUpper(strings.ReplaceAll(name, "-", "")) {
	case "", "UTF8", "65001":
		return nil, nil
	}

	// ESRI writes bare Windows codepage numbers ("1252") or "ANSI 1252".
	upper := strings.ToUpper(name)
	upper = strings.TrimPrefix(upper, "ANSI ")
	if isDigits(upper) {
		if len(upper) == 4 && strings.HasPrefix(upper, "125") {
			name = "windows-" + upper
		} else if upper == "88591" {
			name = "ISO-8859-1"
		}
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown codepage %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported codepage %q", name)
	}
	return enc, nil
}

// sidecarEncoding reads the .cpg file next to a shapefile, if any.
func sidecarEncoding(shpPath string) (string, error) {
	cpg := strings.TrimSuffix(shpPath, filepath.Ext(shpPath)) + ".cpg"
	b, err := os.ReadFile(cpg)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", cpg, err)
	}
	return strings.TrimSpace(string(b)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
