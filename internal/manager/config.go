package manager

import (
	"context"

	"github.com/rs/zerolog"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"houseprice/internal/estimator"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultSqftThreshold = 400
	defaultSqftStep      = 100
	defaultUnit          = "Crore Rupees"
)

// Source reads an artifact by location. *artifact.Opener satisfies it.
type Source interface {
	ReadAll(ctx context.Context, location string) ([]byte, error)
}

// UIOptions are the dashboard choices not derived from artifacts.
type UIOptions struct {
	Bedrooms          []int
	Bathrooms         []int
	SquareFeet        []int
	DefaultBedrooms   int
	DefaultBathrooms  int
	DefaultSquareFeet int
	SqftSlider        bool
	SqftStep          int
	UnitLabel         string
}

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Source Source
	// Artifact locations. Dataset and Background are optional.
	Manifest   string
	Model      string
	Dataset    string
	Background string

	Scale         float64
	SqftThreshold int
	UI            UIOptions

	Tracer    oteltrace.Tracer
	Logger    *zerolog.Logger
	Publisher EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig. Call Load before
// serving estimates.
func NewWithConfig(cfg ManagerConfig) *Manager {
	if cfg.Scale <= 0 {
		cfg.Scale = estimator.DefaultScale
	}
	if cfg.SqftThreshold <= 0 {
		cfg.SqftThreshold = defaultSqftThreshold
	}
	if cfg.UI.SqftStep <= 0 {
		cfg.UI.SqftStep = defaultSqftStep
	}
	if cfg.UI.UnitLabel == "" {
		cfg.UI.UnitLabel = defaultUnit
	}
	if cfg.Tracer == nil {
		cfg.Tracer = noop.NewTracerProvider().Tracer("houseprice")
	}
	if cfg.Publisher == nil {
		cfg.Publisher = noopPublisher{}
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Manager{
		cfg:       cfg,
		state:     StateLoading,
		log:       log,
		startTime: timeNow(),
	}
}
