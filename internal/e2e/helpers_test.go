package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"houseprice/internal/artifact"
	"houseprice/internal/httpapi"
	"houseprice/internal/manager"
	"houseprice/internal/web"
)

const (
	manifestJSON = `{"data_columns":["total_sqft","bath","bhk","1st phase jp nagar","indiranagar","whitefield"]}`
	// 10 + 0.1*sqft + 5*bath + 10*bhk + 30*jp + 40*indiranagar + 20*whitefield
	modelYAML  = "coef: [0.1, 5, 10, 30, 40, 20]\nintercept: 10\n"
	datasetCSV = "location,total_sqft,bath,bhk\nindiranagar,1200,2,2\nwhitefield,350,1,1\nindiranagar,5200,4,4\n"
)

// writeArtifacts creates the files a deployment would ship. The manifest is
// stored zstd-compressed.
func writeArtifacts(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd: %v", err)
	}
	files := map[string][]byte{
		"columns.json.zst": enc.EncodeAll([]byte(manifestJSON), nil),
		"model.yaml":       []byte(modelYAML),
		"data.csv":         []byte(datasetCSV),
		"bg.png":           []byte("\x89PNG\r\n\x1a\nnot-really"),
	}
	_ = enc.Close()
	for name, b := range files {
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func newServer(t *testing.T, mutate func(*manager.ManagerConfig)) (*httptest.Server, *manager.Manager) {
	t.Helper()
	dir := writeArtifacts(t)
	cfg := manager.ManagerConfig{
		Source:     artifact.NewOpener(artifact.S3Options{}),
		Manifest:   filepath.Join(dir, "columns.json.zst"),
		Model:      filepath.Join(dir, "model.yaml"),
		Dataset:    filepath.Join(dir, "data.csv"),
		Background: filepath.Join(dir, "bg.png"),
		UI: manager.UIOptions{
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
	mgr := manager.NewWithConfig(cfg)
	if err := mgr.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	pages, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	srv := httptest.NewServer(httpapi.NewMux(mgr, pages))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func httpGet(t *testing.T, url string, header ...string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	return do(t, req)
}

func httpPostJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

func do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, b
}
