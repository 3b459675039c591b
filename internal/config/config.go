package config

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendsim/internal/dynamo"
)

//go:embed default.yaml
var defaultYAML string

type Config struct {
	Mass      float64 `yaml:"mass"`
	Length    float64 `yaml:"length"`
	Theta     float64 `yaml:"theta"`
	V0        float64 `yaml:"v0"`
	Gravity   float64 `yaml:"gravity"`
	Dt        float64 `yaml:"dt"`
	TimeLimit float64 `yaml:"time_limit"`
}

// Default returns the compiled-in release condition. It panics only if
// the embedded document is malformed.
func Default() *Config {
	cfg, err := decode(strings.NewReader(defaultYAML), &Config{})
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load decodes a YAML document on top of the defaults. Unknown keys are
// rejected.
func Load(r io.Reader) (*Config, error) {
	return decode(r, Default())
}

func decode(r io.Reader, cfg *Config) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects values the integrator cannot step with. Defaults
// always pass.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"mass", c.Mass},
		{"length", c.Length},
		{"theta", c.Theta},
		{"v0", c.V0},
		{"gravity", c.Gravity},
		{"dt", c.Dt},
		{"time_limit", c.TimeLimit},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &dynamo.ParamError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	if c.Length <= 0 {
		return &dynamo.ParamError{Field: "length", Value: c.Length, Reason: "must be positive"}
	}
	if c.Dt <= 0 {
		return &dynamo.ParamError{Field: "dt", Value: c.Dt, Reason: "must be positive"}
	}
	if c.TimeLimit <= 0 {
		return &dynamo.ParamError{Field: "time_limit", Value: c.TimeLimit, Reason: "must be positive"}
	}
	return nil
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{
		Mass:    c.Mass,
		Length:  c.Length,
		Theta:   c.Theta,
		V0:      c.V0,
		Gravity: c.Gravity,
	}
}

func (c *Config) SimConfig() dynamo.Config {
	return dynamo.Config{
		Dt:        c.Dt,
		TimeLimit: c.TimeLimit,
	}
}
