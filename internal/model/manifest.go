package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fixed positions of the numeric features. Location indicators start at
// FirstLocation.
const (
	IndexSquareFeet = 0
	IndexBathrooms  = 1
	IndexBedrooms   = 2
	FirstLocation   = 3
)

// ManifestKey is the JSON key holding the ordered feature names.
const ManifestKey = "data_columns"

// Manifest is the ordered list of feature names that defines the model's
// input layout. It is immutable once parsed.
type Manifest struct {
	columns   []string
	locations map[string]int
}

type manifestFile struct {
	DataColumns []string `json:"data_columns"`
}

// ParseManifest decodes a columns.json document.
func ParseManifest(b []byte) (*Manifest, error) {
	var f manifestFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if f.DataColumns == nil {
		return nil, fmt.Errorf("manifest: missing %q", ManifestKey)
	}
	return NewManifest(f.DataColumns)
}

// NewManifest builds a manifest from column names. Names are lower-cased; for
// duplicate location names the first position wins.
func NewManifest(columns []string) (*Manifest, error) {
	if len(columns) < FirstLocation {
		return nil, fmt.Errorf("manifest: need at least %d columns, got %d", FirstLocation, len(columns))
	}
	m := &Manifest{
		columns:   make([]string, len(columns)),
		locations: make(map[string]int, len(columns)-FirstLocation),
	}
	for i, c := range columns {
		m.columns[i] = strings.ToLower(c)
		if i < FirstLocation {
			continue
		}
		if _, dup := m.locations[m.columns[i]]; !dup {
			m.locations[m.columns[i]] = i
		}
	}
	return m, nil
}

// Len is the feature vector length the model expects.
func (m *Manifest) Len() int { return len(m.columns) }

// Columns returns a copy of the feature names.
func (m *Manifest) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Locations returns the location names in manifest order.
func (m *Manifest) Locations() []string {
	return append([]string(nil), m.columns[FirstLocation:]...)
}

// LocationIndex returns the vector position for name. Matching ignores case
// and surrounding whitespace.
func (m *Manifest) LocationIndex(name string) (int, bool) {
	idx, ok := m.locations[NormalizeLocation(name)]
	return idx, ok
}

// NormalizeLocation maps a user-supplied location to its manifest spelling.
func NormalizeLocation(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
