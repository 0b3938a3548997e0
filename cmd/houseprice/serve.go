package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"houseprice/internal/config"
	"houseprice/internal/httpapi"
	"houseprice/internal/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the web dashboard and JSON API",
		Example: "  houseprice serve --config houseprice.yaml --addr :8080",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g)
			if err != nil {
				return err
			}
			log := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("startup failed")
				return err
			}
			defer a.close(context.Background())
			return serve(cmd.Context(), a)
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "HTTP listen address (defaults HOUSEPRICE_ADDR or :8080)")
	return cmd
}

func serve(ctx context.Context, a *app) error {
	pages, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	cfg := a.cfg
	httpapi.SetLogger(a.log.With().Str("component", "http").Logger())
	httpapi.SetMaxBodyBytes(cfg.HTTP.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.HTTP.CORSEnabled, cfg.HTTP.CORSOrigins, cfg.HTTP.CORSMethods, cfg.HTTP.CORSHeaders)
	httpapi.SetRateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	httpapi.SetPageOptions(cfg.UI.Title, cfg.UI.BannerHTML)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(a.mgr, pages),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", cfg.Addr).Str("manifest", cfg.Artifacts.Manifest).Msg("houseprice listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		a.log.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
