package config

import "os"

// Defaults applied when corresponding Config fields are unset.
const (
	DefaultAddr          = ":8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultManifest      = "./columns.json"
	DefaultModel         = "./banglore_home_prices_model.json"
	DefaultTitle         = "Housing Price Prediction Model"
	DefaultUnitLabel     = "Crore Rupees"
	DefaultScale         = 100
	DefaultSqftStep      = 100
	DefaultSqftThreshold = 400
	DefaultServiceName   = "houseprice"
	defaultMaxBodyBytes  = 1 << 20
)

// Environment overrides. Flags still win over both.
const (
	EnvAddr     = "HOUSEPRICE_ADDR"
	EnvLogLevel = "HOUSEPRICE_LOG_LEVEL"
	EnvOTLP     = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Default returns a Config with every default applied.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.Artifacts.Manifest == "" {
		c.Artifacts.Manifest = DefaultManifest
	}
	if c.Artifacts.Model == "" {
		c.Artifacts.Model = DefaultModel
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.HTTP.RateLimitRPS > 0 && c.HTTP.RateLimitBurst <= 0 {
		c.HTTP.RateLimitBurst = int(c.HTTP.RateLimitRPS) + 1
	}
	u := &c.UI
	if u.Title == "" {
		u.Title = DefaultTitle
	}
	if u.UnitLabel == "" {
		u.UnitLabel = DefaultUnitLabel
	}
	if u.Scale <= 0 {
		u.Scale = DefaultScale
	}
	if len(u.Bedrooms) == 0 {
		u.Bedrooms = []int{2, 3, 4}
	}
	if len(u.Bathrooms) == 0 {
		u.Bathrooms = []int{2, 3}
	}
	if len(u.SquareFeet) == 0 {
		u.SquareFeet = []int{2000, 3000, 4000}
	}
	if u.DefaultBedrooms == 0 {
		u.DefaultBedrooms = 2
	}
	if u.DefaultBathrooms == 0 {
		u.DefaultBathrooms = 3
	}
	if u.DefaultSquareFeet == 0 {
		if u.SqftSlider {
			u.DefaultSquareFeet = 3000
		} else {
			u.DefaultSquareFeet = 2000
		}
	}
	if u.SqftStep <= 0 {
		u.SqftStep = DefaultSqftStep
	}
	if u.SqftThreshold <= 0 {
		u.SqftThreshold = DefaultSqftThreshold
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = DefaultServiceName
	}
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvOTLP); v != "" && c.Telemetry.OTLPEndpoint == "" {
		c.Telemetry.OTLPEndpoint = v
	}
}
