package manager

import (
	"context"
	"math"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"houseprice/internal/estimator"
	"houseprice/pkg/types"
)

var estimatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "houseprice",
		Subsystem: "estimator",
		Name:      "estimates_total",
		Help:      "Total number of price estimates by whether the location was recognized",
	},
	[]string{"location_matched"},
)

func init() {
	prometheus.MustRegister(estimatesTotal)
}

// Estimate computes a price for req. An unrecognized location still yields an
// estimate; the response reports LocationMatched=false.
func (m *Manager) Estimate(ctx context.Context, req types.EstimateRequest) (types.EstimateResponse, error) {
	est, err := m.boundEstimator()
	if err != nil {
		return types.EstimateResponse{}, err
	}
	if err := validate(req); err != nil {
		return types.EstimateResponse{}, err
	}

	_, span := m.cfg.Tracer.Start(ctx, "estimate", oteltrace.WithAttributes(
		attribute.String("location", req.Location),
		attribute.Int("bedrooms", req.Bedrooms),
		attribute.Int("bathrooms", req.Bathrooms),
		attribute.Float64("square_feet", req.SquareFeet),
	))
	defer span.End()

	res, err := est.Estimate(estimator.Request{
		Location:   req.Location,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		SquareFeet: req.SquareFeet,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return types.EstimateResponse{}, err
	}
	span.SetAttributes(
		attribute.Bool("location.matched", res.LocationMatched),
		attribute.Float64("price", res.Price),
	)

	m.estimatesTotal.Add(1)
	estimatesTotal.WithLabelValues(strconv.FormatBool(res.LocationMatched)).Inc()
	if !res.LocationMatched {
		m.unmatchedTotal.Add(1)
		m.log.Debug().Str("location", req.Location).Msg("location not in manifest; estimating without location signal")
	}

	unit := m.cfg.UI.UnitLabel
	return types.EstimateResponse{
		Price:           res.Price,
		Unit:            unit,
		Formatted:       FormatPrice(res.Price, unit),
		RawPrediction:   res.Raw,
		Location:        res.Location,
		LocationMatched: res.LocationMatched,
		LocationIndex:   res.LocationIndex,
	}, nil
}

// FormatPrice renders "{value} {unit}" with the shortest exact decimal.
func FormatPrice(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

func validate(req types.EstimateRequest) error {
	switch {
	case req.Bedrooms < 0:
		return ErrInvalidInput("bedrooms must not be negative")
	case req.Bathrooms < 0:
		return ErrInvalidInput("bathrooms must not be negative")
	case math.IsNaN(req.SquareFeet) || math.IsInf(req.SquareFeet, 0):
		return ErrInvalidInput("square_feet must be a finite number")
	case req.SquareFeet < 0:
		return ErrInvalidInput("square_feet must not be negative")
	}
	return nil
}
