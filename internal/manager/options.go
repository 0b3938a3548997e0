package manager

import (
	"houseprice/pkg/types"
)

// Options lists the dashboard choices. Locations come from the manifest; the
// square-footage slider range comes from the dataset when one is loaded.
func (m *Manager) Options() (types.OptionsResponse, error) {
	est, err := m.boundEstimator()
	if err != nil {
		return types.OptionsResponse{}, err
	}
	m.mu.RLock()
	data := m.data
	m.mu.RUnlock()

	ui := m.cfg.UI
	locs := est.Manifest().Locations()
	resp := types.OptionsResponse{
		Locations:  locs,
		Bedrooms:   append([]int(nil), ui.Bedrooms...),
		Bathrooms:  append([]int(nil), ui.Bathrooms...),
		SquareFeet: append([]int(nil), ui.SquareFeet...),
		Unit:       ui.UnitLabel,
		Defaults: types.Selection{
			Bedrooms:   ui.DefaultBedrooms,
			Bathrooms:  ui.DefaultBathrooms,
			SquareFeet: ui.DefaultSquareFeet,
		},
	}
	if len(locs) > 0 {
		resp.Defaults.Location = locs[0]
	}
	if data != nil {
		resp.Dataset = &types.DatasetSummary{
			Rows:          data.Rows,
			SquareFeet:    append([]int(nil), data.SquareFeet...),
			Bedrooms:      append([]int(nil), data.Bedrooms...),
			Bathrooms:     append([]int(nil), data.Bathrooms...),
			MinSquareFeet: data.MinSquareFeet,
			MaxSquareFeet: data.MaxSquareFeet,
		}
		if ui.SqftSlider && data.MaxSquareFeet > 0 {
			resp.SquareFeetRange = &types.Range{
				Min:  data.MinSquareFeet,
				Max:  data.MaxSquareFeet,
				Step: ui.SqftStep,
			}
			resp.Defaults.SquareFeet = snap(resp.Defaults.SquareFeet, data.MinSquareFeet, data.MaxSquareFeet, ui.SqftStep)
		}
	}
	return resp, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// snap clamps v into [lo, hi] and moves it to the nearest lo+k*step that does
// not exceed hi. Halves round up.
func snap(v, lo, hi, step int) int {
	v = clamp(v, lo, hi)
	if step <= 0 {
		return v
	}
	v = lo + (v-lo+step/2)/step*step
	if v > hi {
		v -= step
	}
	return v
}
