package fixture

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/fixture/generator"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the generator and CLI settings.
// The zero-value is not valid; start from DefaultConfig.
type Config struct {
	Generate GenerateConfig `json:"generate" yaml:"generate"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing"`
}

type GenerateConfig struct {
	Function string `json:"function" yaml:"function"`
	Count    int    `json:"count" yaml:"count"`
}

// MaxLogLevel is the highest logr verbosity; zap levels are int8.
const MaxLogLevel = 127

type LogConfig struct {
	Level   int    `json:"level" yaml:"level"`
	Dev     bool   `json:"dev" yaml:"dev"`
	Encoder string `json:"encoder" yaml:"encoder"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	// OutputFile receives stdout exporter traces; empty means os.Stdout.
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with default values. Callers may
// modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Function: generator.TeamNameFunc,
			Count:    1,
		},
		Log: LogConfig{
			Encoder: "console",
		},
		Tracing: TracingConfig{
			ServiceName:    "fixture",
			ServiceVersion: "0.1.0",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Generate.Function == "" {
		return fmt.Errorf("generate.function was empty")
	}
	if c.Generate.Count <= 0 {
		return fmt.Errorf("generate.count must be > 0")
	}
	if c.Log.Level < 0 || c.Log.Level > MaxLogLevel {
		return fmt.Errorf("log.level must be within [0, %d], was %d", MaxLogLevel, c.Log.Level)
	}
	switch c.Log.Encoder {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoder must be console or json, was %q", c.Log.Encoder)
	}
	return nil
}

// LoadConfig overlays the YAML document at URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
