package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"houseprice/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "houseprice",
		Short:         "Bengaluru house price estimates: web dashboard, terminal dashboard and CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults HOUSEPRICE_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: console|json")

	serve := newServeCmd(g)
	root.AddCommand(serve, newEstimateCmd(g), newTUICmd(g))
	// Bare `houseprice` serves.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// resolveConfig layers file, environment and flags, then fills defaults.
func resolveConfig(cmd *cobra.Command, g *globalFlags) (config.Config, error) {
	var cfg config.Config
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.logFormat != "" {
		cfg.LogFormat = g.logFormat
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("svc", "houseprice").Logger()
}
