package config

import (
	"github.com/kbukum/tabkit/validation"
)

// ServiceName is the name used to resolve config files (./cmd/tabkit/config.yml).
const ServiceName = "tabkit"

// EnvPrefix marks environment variables that override config keys.
const EnvPrefix = "TABKIT"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultMinMarks is the student demo threshold when none is configured.
const DefaultMinMarks = 75

// AppConfig is the full tabkit configuration.
type AppConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Students StudentsConfig `yaml:"students" mapstructure:"students"`
	Tracing  TracingConfig  `yaml:"tracing" mapstructure:"tracing"`
	Datasets DatasetsConfig `yaml:"datasets" mapstructure:"datasets"`
}

// OutputConfig controls how demo results are rendered.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=text json yaml"`
	// Locale drives number grouping in text output, e.g. "en-US" or "de-DE".
	Locale string `yaml:"locale" mapstructure:"locale" validate:"omitempty,bcp47_language_tag"`
}

// StudentsConfig configures the student demo.
type StudentsConfig struct {
	MinMarks int `yaml:"min_marks" mapstructure:"min_marks" validate:"min=0,max=100"`
}

// TracingConfig enables OTLP export of pipeline spans and metrics.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"min=0,max=1"`
}

// DatasetsConfig points demos at record files instead of the built-in samples.
// Empty paths keep the samples.
type DatasetsConfig struct {
	Employees string `yaml:"employees" mapstructure:"employees"`
	Products  string `yaml:"products" mapstructure:"products"`
	Students  string `yaml:"students" mapstructure:"students"`
}

// Defaults returns the viper defaults for keys whose zero value is meaningful.
func Defaults() map[string]any {
	return map[string]any{
		"students.min_marks":  DefaultMinMarks,
		"tracing.sample_rate": 1.0,
		"tracing.insecure":    true,
	}
}

// ApplyDefaults fills unset fields.
func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Locale == "" {
		c.Output.Locale = "en-US"
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = "localhost:4318"
	}
}

// Validate validates the whole configuration.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// Load resolves, reads and defaults the tabkit configuration.
// It does not validate, so callers can apply flag overrides first.
func Load(opts ...LoaderOption) (*AppConfig, error) {
	opts = append([]LoaderOption{WithEnvPrefix(EnvPrefix), WithDefaults(Defaults())}, opts...)

	var cfg AppConfig
	if err := LoadConfig(ServiceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
