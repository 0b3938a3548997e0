package manager

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"houseprice/internal/common/fsutil"
	"houseprice/internal/dataset"
	"houseprice/internal/estimator"
	"houseprice/internal/model"
)

// Load reads every configured artifact concurrently and binds the estimator.
// It is meant to run once at startup; on failure the manager stays in
// StateError and the error is returned.
func (m *Manager) Load(ctx context.Context) error {
	cfg := m.cfg
	if cfg.Source == nil {
		return m.fail(fmt.Errorf("no artifact source configured"))
	}
	cfg.Publisher.Publish(Event{Name: EventLoadStart})

	var (
		manifest *model.Manifest
		linear   *model.Linear
		data     *dataset.Summary
		bg       *Image
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := m.read(gctx, cfg.Manifest)
		if err != nil {
			return err
		}
		manifest, err = model.ParseManifest(b)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.Manifest, err)
		}
		m.loaded(cfg.Manifest, map[string]any{"columns": manifest.Len()})
		return nil
	})
	g.Go(func() error {
		b, err := m.read(gctx, cfg.Model)
		if err != nil {
			return err
		}
		linear, err = model.ParseLinear(b, fsutil.Ext(cfg.Model))
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.Model, err)
		}
		m.loaded(cfg.Model, map[string]any{"features": linear.NumFeatures()})
		return nil
	})
	if cfg.Dataset != "" {
		g.Go(func() error {
			b, err := m.read(gctx, cfg.Dataset)
			if err != nil {
				return err
			}
			data, err = dataset.Load(bytes.NewReader(b), fsutil.Ext(cfg.Dataset), cfg.SqftThreshold)
			if err != nil {
				return fmt.Errorf("%s: %w", cfg.Dataset, err)
			}
			m.loaded(cfg.Dataset, map[string]any{"rows": data.Rows})
			return nil
		})
	}
	if cfg.Background != "" {
		g.Go(func() error {
			b, err := m.read(gctx, cfg.Background)
			if err != nil {
				return err
			}
			bg = &Image{
				MIME:   http.DetectContentType(b),
				Base64: base64.StdEncoding.EncodeToString(b),
			}
			m.loaded(cfg.Background, map[string]any{"bytes": len(b), "mime": bg.MIME})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return m.fail(err)
	}

	est, err := estimator.New(manifest, linear, estimator.WithScale(cfg.Scale))
	if err != nil {
		return m.fail(err)
	}

	m.mu.Lock()
	m.est = est
	m.data = data
	m.background = bg
	m.state = StateReady
	m.err = ""
	m.loadedAt = timeNow()
	m.mu.Unlock()

	cfg.Publisher.Publish(Event{Name: EventReady, Fields: map[string]any{
		"features":  manifest.Len(),
		"locations": len(manifest.Locations()),
	}})
	return nil
}

func (m *Manager) read(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, fmt.Errorf("artifact location not configured")
	}
	b, err := m.cfg.Source.ReadAll(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", location, err)
	}
	return b, nil
}

func (m *Manager) loaded(location string, fields map[string]any) {
	m.cfg.Publisher.Publish(Event{Name: EventArtifactLoaded, Artifact: location, Fields: fields})
}

func (m *Manager) fail(err error) error {
	m.mu.Lock()
	m.state = StateError
	m.err = err.Error()
	m.mu.Unlock()
	m.cfg.Publisher.Publish(Event{Name: EventLoadFailed, Fields: map[string]any{"error": err.Error()}})
	return err
}
