package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the dashboard.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr      string          `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel  string          `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat string          `json:"log_format" yaml:"log_format" toml:"log_format"`
	Artifacts ArtifactsConfig `json:"artifacts" yaml:"artifacts" toml:"artifacts"`
	S3        S3Config        `json:"s3" yaml:"s3" toml:"s3"`
	HTTP      HTTPConfig      `json:"http" yaml:"http" toml:"http"`
	UI        UIConfig        `json:"ui" yaml:"ui" toml:"ui"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry" toml:"telemetry"`
}

// ArtifactsConfig locates the files read once at startup. Each entry is a
// local path or an s3://bucket/key URI, optionally suffixed .zst or .lz4.
type ArtifactsConfig struct {
	Manifest   string `json:"manifest" yaml:"manifest" toml:"manifest"`
	Model      string `json:"model" yaml:"model" toml:"model"`
	Dataset    string `json:"dataset" yaml:"dataset" toml:"dataset"`
	Background string `json:"background" yaml:"background" toml:"background"`
}

// S3Config configures the S3-compatible client used for s3:// artifacts.
type S3Config struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	Region    string `json:"region" yaml:"region" toml:"region"`
	AccessKey string `json:"access_key" yaml:"access_key" toml:"access_key"`
	SecretKey string `json:"secret_key" yaml:"secret_key" toml:"secret_key"`
	UseSSL    bool   `json:"use_ssl" yaml:"use_ssl" toml:"use_ssl"`
}

// HTTPConfig tunes the HTTP layer.
type HTTPConfig struct {
	MaxBodyBytes   int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	RateLimitRPS   float64  `json:"rate_limit_rps" yaml:"rate_limit_rps" toml:"rate_limit_rps"`
	RateLimitBurst int      `json:"rate_limit_burst" yaml:"rate_limit_burst" toml:"rate_limit_burst"`
	CORSEnabled    bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	CORSMethods    []string `json:"cors_methods" yaml:"cors_methods" toml:"cors_methods"`
	CORSHeaders    []string `json:"cors_headers" yaml:"cors_headers" toml:"cors_headers"`
}

// UIConfig controls the choices and labels shown by the dashboard views.
type UIConfig struct {
	Title             string  `json:"title" yaml:"title" toml:"title"`
	BannerHTML        string  `json:"banner_html" yaml:"banner_html" toml:"banner_html"`
	UnitLabel         string  `json:"unit_label" yaml:"unit_label" toml:"unit_label"`
	Scale             float64 `json:"scale" yaml:"scale" toml:"scale"`
	Bedrooms          []int   `json:"bedrooms" yaml:"bedrooms" toml:"bedrooms"`
	Bathrooms         []int   `json:"bathrooms" yaml:"bathrooms" toml:"bathrooms"`
	SquareFeet        []int   `json:"square_feet" yaml:"square_feet" toml:"square_feet"`
	DefaultBedrooms   int     `json:"default_bedrooms" yaml:"default_bedrooms" toml:"default_bedrooms"`
	DefaultBathrooms  int     `json:"default_bathrooms" yaml:"default_bathrooms" toml:"default_bathrooms"`
	DefaultSquareFeet int     `json:"default_square_feet" yaml:"default_square_feet" toml:"default_square_feet"`
	SqftSlider        bool    `json:"sqft_slider" yaml:"sqft_slider" toml:"sqft_slider"`
	SqftStep          int     `json:"sqft_step" yaml:"sqft_step" toml:"sqft_step"`
	SqftThreshold     int     `json:"sqft_threshold" yaml:"sqft_threshold" toml:"sqft_threshold"`
}

// TelemetryConfig enables OTLP trace export when Endpoint is set.
type TelemetryConfig struct {
	OTLPEndpoint string `json:"otlp_endpoint" yaml:"otlp_endpoint" toml:"otlp_endpoint"`
	ServiceName  string `json:"service_name" yaml:"service_name" toml:"service_name"`
	Insecure     bool   `json:"insecure" yaml:"insecure" toml:"insecure"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse json %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
