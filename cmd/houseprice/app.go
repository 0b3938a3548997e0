package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"houseprice/internal/artifact"
	"houseprice/internal/config"
	"houseprice/internal/manager"
	"houseprice/internal/telemetry"
)

// app holds the loaded pieces shared by the subcommands.
type app struct {
	cfg config.Config
	log zerolog.Logger
	tel *telemetry.Provider
	mgr *manager.Manager
}

// newApp sets up tracing and loads every artifact. The returned app must be
// closed.
func newApp(ctx context.Context, cfg config.Config, log zerolog.Logger) (*app, error) {
	tel, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	opener := artifact.NewOpener(artifact.S3Options{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	})
	mlog := log.With().Str("component", "manager").Logger()
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Source:        opener,
		Manifest:      cfg.Artifacts.Manifest,
		Model:         cfg.Artifacts.Model,
		Dataset:       cfg.Artifacts.Dataset,
		Background:    cfg.Artifacts.Background,
		Scale:         cfg.UI.Scale,
		SqftThreshold: cfg.UI.SqftThreshold,
		UI: manager.UIOptions{
			Bedrooms:          cfg.UI.Bedrooms,
			Bathrooms:         cfg.UI.Bathrooms,
			SquareFeet:        cfg.UI.SquareFeet,
			DefaultBedrooms:   cfg.UI.DefaultBedrooms,
			DefaultBathrooms:  cfg.UI.DefaultBathrooms,
			DefaultSquareFeet: cfg.UI.DefaultSquareFeet,
			SqftSlider:        cfg.UI.SqftSlider,
			SqftStep:          cfg.UI.SqftStep,
			UnitLabel:         cfg.UI.UnitLabel,
		},
		Tracer:    tel.Tracer(),
		Logger:    &mlog,
		Publisher: manager.LogPublisher{Logger: mlog},
	})
	if err := mgr.Load(ctx); err != nil {
		_ = tel.Shutdown(ctx)
		return nil, fmt.Errorf("load artifacts: %w", err)
	}
	return &app{cfg: cfg, log: log, tel: tel, mgr: mgr}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.tel.Shutdown(ctx); err != nil {
		a.log.Warn().Err(err).Msg("telemetry shutdown")
	}
}
