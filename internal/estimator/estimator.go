// Package estimator turns dashboard selections into a price estimate.
//
// The estimator is a pure function of its inputs and the two immutable
// startup artifacts (manifest and model); it holds no other state and is safe
// for concurrent use.
package estimator

import (
	"fmt"
	"math"

	"houseprice/internal/model"
)

// DefaultScale converts the model's output (lakh) into the displayed unit
// (crore).
const DefaultScale = 100

// Request carries the four dashboard inputs.
type Request struct {
	Location   string
	Bedrooms   int
	Bathrooms  int
	SquareFeet float64
}

// Result is a single estimate. An unknown location is not an error: the
// estimate proceeds without a location indicator and LocationMatched is false.
type Result struct {
	// Price is the displayed value: Raw divided by the scale, two decimals.
	Price float64
	// Raw is the model output rounded to two decimals.
	Raw float64
	// Location is the normalized location name.
	Location string
	// LocationIndex is the vector position set to 1, or -1.
	LocationIndex   int
	LocationMatched bool
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithScale overrides the display divisor. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(e *Estimator) {
		if scale > 0 {
			e.scale = scale
		}
	}
}

// Estimator maps the four inputs to a price via the loaded model.
type Estimator struct {
	manifest  *model.Manifest
	predictor model.Predictor
	scale     float64
}

// New binds a manifest and a model. Their widths must agree.
func New(m *model.Manifest, p model.Predictor, opts ...Option) (*Estimator, error) {
	if m == nil || p == nil {
		return nil, fmt.Errorf("estimator: manifest and model are required")
	}
	if m.Len() != p.NumFeatures() {
		return nil, fmt.Errorf("estimator: manifest has %d columns, model expects %d features", m.Len(), p.NumFeatures())
	}
	e := &Estimator{manifest: m, predictor: p, scale: DefaultScale}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// Manifest returns the bound manifest.
func (e *Estimator) Manifest() *model.Manifest { return e.manifest }

// Scale returns the display divisor.
func (e *Estimator) Scale() float64 { return e.scale }

// Features builds the model input for req. The returned index is the location
// position, or -1 when the location is not in the manifest.
func (e *Estimator) Features(req Request) ([]float64, int) {
	x := make([]float64, e.manifest.Len())
	x[model.IndexSquareFeet] = req.SquareFeet
	x[model.IndexBathrooms] = float64(req.Bathrooms)
	x[model.IndexBedrooms] = float64(req.Bedrooms)
	idx, ok := e.manifest.LocationIndex(req.Location)
	if !ok {
		return x, -1
	}
	x[idx] = 1
	return x, idx
}

// Estimate runs the model on the single-row feature vector for req.
func (e *Estimator) Estimate(req Request) (Result, error) {
	x, idx := e.Features(req)
	out, err := e.predictor.Predict([][]float64{x})
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	if len(out) == 0 {
		return Result{}, fmt.Errorf("predict: empty output")
	}
	raw := Round2(out[0])
	return Result{
		Price:           Round2(raw / e.scale),
		Raw:             raw,
		Location:        model.NormalizeLocation(req.Location),
		LocationIndex:   idx,
		LocationMatched: idx >= 0,
	}, nil
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
