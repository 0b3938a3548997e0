package model

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Predictor is the only operation the estimator needs from a trained model.
type Predictor interface {
	// Predict returns one output per row.
	Predict(rows [][]float64) ([]float64, error)
	// NumFeatures is the expected row length.
	NumFeatures() int
}

// Linear is an ordinary least squares model: y = intercept + coef . x.
type Linear struct {
	coef      *mat.VecDense
	intercept float64
}

var _ Predictor = (*Linear)(nil)

// linearFile mirrors the coef_/intercept_ attributes of a fitted
// scikit-learn LinearRegression.
type linearFile struct {
	Coef      []float64 `json:"coef" yaml:"coef" toml:"coef"`
	Intercept float64   `json:"intercept" yaml:"intercept" toml:"intercept"`
}

// NewLinear builds a model from its parameters.
func NewLinear(coef []float64, intercept float64) (*Linear, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("linear model: no coefficients")
	}
	c := make([]float64, len(coef))
	copy(c, coef)
	return &Linear{coef: mat.NewVecDense(len(c), c), intercept: intercept}, nil
}

// ParseLinear decodes model parameters; ext selects the encoding
// (.json, .yaml/.yml, .toml).
func ParseLinear(b []byte, ext string) (*Linear, error) {
	var f linearFile
	var err error
	switch ext {
	case ".json":
		err = json.Unmarshal(b, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".toml":
		err = toml.Unmarshal(b, &f)
	default:
		return nil, fmt.Errorf("unsupported model encoding: %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return NewLinear(f.Coef, f.Intercept)
}

// NumFeatures implements Predictor.
func (l *Linear) NumFeatures() int { return l.coef.Len() }

// Intercept returns the bias term.
func (l *Linear) Intercept() float64 { return l.intercept }

// Predict implements Predictor.
func (l *Linear) Predict(rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	n := l.coef.Len()
	flat := make([]float64, 0, len(rows)*n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("row %d: got %d features, want %d", i, len(r), n)
		}
		flat = append(flat, r...)
	}
	x := mat.NewDense(len(rows), n, flat)
	var y mat.VecDense
	y.MulVec(x, l.coef)
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = y.AtVec(i) + l.intercept
	}
	return out, nil
}
