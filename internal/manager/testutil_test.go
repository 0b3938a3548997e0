package manager

import (
	"context"
	"fmt"
	"testing"
)

// mapSource serves artifacts from memory.
type mapSource map[string][]byte

func (s mapSource) ReadAll(_ context.Context, location string) ([]byte, error) {
	b, ok := s[location]
	if !ok {
		return nil, fmt.Errorf("%s: not found", location)
	}
	return b, nil
}

const (
	testManifest = `{"data_columns":["total_sqft","bath","bhk","indiranagar","whitefield"]}`
	// 10 + 0.1*sqft + 5*bath + 10*bhk + 40*indiranagar + 20*whitefield
	testModel = `{"coef":[0.1,5,10,40,20],"intercept":10}`
)

func testSource() mapSource {
	return mapSource{
		"columns.json": []byte(testManifest),
		"model.json":   []byte(testModel),
		"data.csv":     []byte("total_sqft,bhk,bath\n1200,2,2\n300,1,1\n5000,4,3\n"),
		"bg.png":       []byte("\x89PNG\r\n\x1a\nfake"),
	}
}

func newLoaded(t *testing.T, mutate func(*ManagerConfig)) (*Manager, *MemoryPublisher) {
	t.Helper()
	pub := NewMemoryPublisher()
	cfg := ManagerConfig{
		Source:    testSource(),
		Manifest:  "columns.json",
		Model:     "model.json",
		Publisher: pub,
		UI: UIOptions{
			Bedrooms:          []int{2, 3, 4},
			Bathrooms:         []int{2, 3},
			SquareFeet:        []int{2000, 3000, 4000},
			DefaultBedrooms:   2,
			DefaultBathrooms:  3,
			DefaultSquareFeet: 2000,
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	m := NewWithConfig(cfg)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return m, pub
}
