// SPDX-License-Identifier: MIT

// Package config decodes and validates the YAML run configuration.
//
// A minimal file:
//
//	max_order: 5
//	prime:
//	  starting_value: 2
//	  spacing_strategy: step_1
//	datasets:
//	  - name: codex-s
//	    path: data/codex-s
//
// Every omitted field keeps its Default value. Command-line flags override
// the decoded values before Validate is called.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primepath/kg"
	"github.com/katalvlaran/primepath/power"
	"github.com/katalvlaran/primepath/prime"
)

// ErrInvalidConfig is returned for a configuration that cannot be run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Precision names the arithmetic used for matrix cells.
type Precision string

const (
	// PrecisionInt64 uses checked 64-bit integers; overflow aborts the run.
	PrecisionInt64 Precision = "int64"
	// PrecisionBig uses arbitrary precision integers.
	PrecisionBig Precision = "big"
)

// Prime holds the prime assignment parameters.
type Prime struct {
	StartingValue   uint64         `yaml:"starting_value"`
	SpacingStrategy prime.Strategy `yaml:"spacing_strategy"`
}

// Dataset is one dataset entry.
type Dataset struct {
	Name   string    `yaml:"name"`
	Path   string    `yaml:"path"`
	Layout kg.Layout `yaml:"layout"`
	Header *bool     `yaml:"header"`
}

// Source converts d into a loader source.
func (d Dataset) Source() kg.Source {
	return kg.Source{Name: d.Name, Path: d.Path, Layout: d.Layout, Header: d.Header}
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Output configures result sinks besides the summary table.
type Output struct {
	JSONL string `yaml:"jsonl"`
}

// Config is the whole run configuration.
type Config struct {
	MaxOrder  int       `yaml:"max_order"`
	Prime     Prime     `yaml:"prime"`
	Precision Precision `yaml:"precision"`
	Verify    bool      `yaml:"verify"`
	Datasets  []Dataset `yaml:"datasets"`
	Log       Log       `yaml:"log"`
	Output    Output    `yaml:"output"`
}

// Default returns the configuration used for omitted fields.
func Default() Config {
	return Config{
		MaxOrder: 5,
		Prime: Prime{
			StartingValue:   2,
			SpacingStrategy: prime.Step1,
		},
		Precision: PrecisionInt64,
		Log:       Log{Level: "info"},
	}
}

// Load reads and decodes the file at path on top of Default. The result is
// not validated.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Decode(bytes.NewReader(b))
}

// Decode decodes YAML from r on top of Default. Unknown keys are rejected.
// An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks every field that a run depends on. Order errors wrap
// power.ErrOrder and prime errors wrap the prime sentinels, all of them
// alongside ErrInvalidConfig.
func (c Config) Validate() error {
	if c.MaxOrder < 1 {
		return fmt.Errorf("%w: max_order %d: %w", ErrInvalidConfig, c.MaxOrder, power.ErrOrder)
	}
	if c.Prime.StartingValue < 2 {
		return fmt.Errorf("%w: prime.starting_value %d: %w",
			ErrInvalidConfig, c.Prime.StartingValue, prime.ErrInvalidStart)
	}
	if c.Prime.SpacingStrategy.Step() < 1 {
		return fmt.Errorf("%w: prime.spacing_strategy: %w", ErrInvalidConfig, prime.ErrUnknownStrategy)
	}
	switch c.Precision {
	case PrecisionInt64, PrecisionBig:
	default:
		return fmt.Errorf("%w: precision %q", ErrInvalidConfig, c.Precision)
	}

	seen := make(map[string]struct{}, len(c.Datasets))
	for i, d := range c.Datasets {
		if d.Name == "" || d.Path == "" {
			return fmt.Errorf("%w: datasets[%d]: name and path are required", ErrInvalidConfig, i)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("%w: datasets[%d]: duplicate name %q", ErrInvalidConfig, i, d.Name)
		}
		seen[d.Name] = struct{}{}
		switch d.Layout {
		case "", kg.LayoutSplit, kg.LayoutFile:
		default:
			return fmt.Errorf("%w: datasets[%d]: %w", ErrInvalidConfig, i, kg.ErrUnknownLayout)
		}
	}

	return nil
}
