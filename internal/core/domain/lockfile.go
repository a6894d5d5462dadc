package domain

import (
	"encoding/json"
	"sort"
)

// ImportMap is the lockfile document: a mapping from import specifier to the
// resolved, canonical module URL. It is the build artifact consumed by the
// downstream bundler and is read-only once written.
type ImportMap struct {
	Imports map[string]string `json:"imports"`
}

// NewImportMap creates an empty import map.
func NewImportMap() *ImportMap {
	return &ImportMap{Imports: make(map[string]string)}
}

// Pin returns the recorded URL for a specifier, if one exists.
func (m *ImportMap) Pin(specifier string) (string, bool) {
	if m == nil || m.Imports == nil {
		return "", false
	}
	url, ok := m.Imports[specifier]
	return url, ok
}

// SetPin records the resolved URL for a specifier, replacing any previous
// entry.
func (m *ImportMap) SetPin(specifier, url string) {
	if m.Imports == nil {
		m.Imports = make(map[string]string)
	}
	m.Imports[specifier] = url
}

// Specifiers returns the map's keys in sorted order.
func (m *ImportMap) Specifiers() []string {
	keys := make([]string, 0, len(m.Imports))
	for k := range m.Imports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalIndent renders the import map as an indented JSON document.
// encoding/json emits map keys in sorted order, so the output bytes are
// deterministic for a given key set.
func (m *ImportMap) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
