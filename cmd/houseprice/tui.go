package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"houseprice/internal/tui"
)

func newTUICmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g)
			if err != nil {
				return err
			}
			// Log lines would corrupt the alternate screen.
			a, err := newApp(cmd.Context(), cfg, zerolog.Nop())
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())
			return tui.Run(cmd.Context(), a.mgr, cfg.UI.Title)
		},
	}
}
