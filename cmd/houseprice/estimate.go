package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"houseprice/pkg/types"
)

type estimateFlags struct {
	location  string
	bedrooms  int
	bathrooms int
	sqft      float64
	asJSON    bool
}

func newEstimateCmd(g *globalFlags) *cobra.Command {
	f := &estimateFlags{}
	cmd := &cobra.Command{
		Use:     "estimate",
		Short:   "Print one price estimate",
		Example: "  houseprice estimate --location Indiranagar --bedrooms 3 --bathrooms 2 --sqft 2000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			opts, err := a.mgr.Options()
			if err != nil {
				return err
			}
			req := types.EstimateRequest{
				Location:   opts.Defaults.Location,
				Bedrooms:   opts.Defaults.Bedrooms,
				Bathrooms:  opts.Defaults.Bathrooms,
				SquareFeet: float64(opts.Defaults.SquareFeet),
			}
			fl := cmd.Flags()
			if fl.Changed("location") {
				req.Location = f.location
			}
			if fl.Changed("bedrooms") {
				req.Bedrooms = f.bedrooms
			}
			if fl.Changed("bathrooms") {
				req.Bathrooms = f.bathrooms
			}
			if fl.Changed("sqft") {
				req.SquareFeet = f.sqft
			}
			res, err := a.mgr.Estimate(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintln(out, res.Formatted)
			if !res.LocationMatched {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: location %q not recognized; estimate ignores location\n", req.Location)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.location, "location", "", "Location name (case-insensitive)")
	cmd.Flags().IntVar(&f.bedrooms, "bedrooms", 0, "Bedrooms (BHK)")
	cmd.Flags().IntVar(&f.bathrooms, "bathrooms", 0, "Bathrooms")
	cmd.Flags().Float64Var(&f.sqft, "sqft", 0, "Total area in square feet")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the full estimate as JSON")
	return cmd
}
