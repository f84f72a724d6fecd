// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the chart and logging settings of gmpplot.
package config

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"gmpplot/chart"
	"gmpplot/internal/logger"
)

// Default chart settings.
const (
	DefaultAllTitle    = "Elapsed Time for Various GMP Operations in Inner Product Calculations"
	DefaultAllOutput   = "all_operations_elapsed_times_chart.pdf"
	DefaultOpenMPTitle = "Elapsed Time for OpenMP GMP Operations in Inner Product Calculations"
	DefaultOpenMPOut   = "openmp_operations_elapsed_times_chart.pdf"

	DefaultXLabel = "Operation"
	DefaultYLabel = "Elapsed Time (s)"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "GMPPLOT_LOG_LEVEL"

// Config is the gmpplot configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// All is the chart of every extracted operation.
	All Chart `yaml:"all"`
	// OpenMP is the chart of OpenMP operations only.
	OpenMP Chart `yaml:"openmp"`
}

// Chart configures one chart. Width and Height are in inches.
type Chart struct {
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"x_label"`
	YLabel string  `yaml:"y_label"`
	Output string  `yaml:"output"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: logger.InfoLevel,
		All: Chart{
			Title:  DefaultAllTitle,
			XLabel: DefaultXLabel,
			YLabel: DefaultYLabel,
			Output: DefaultAllOutput,
			Width:  14,
			Height: 8,
		},
		OpenMP: Chart{
			Title:  DefaultOpenMPTitle,
			XLabel: DefaultXLabel,
			YLabel: DefaultYLabel,
			Output: DefaultOpenMPOut,
			Width:  10,
			Height: 6,
		},
	}
}

// Load reads a YAML configuration file over the defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironment()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvironment applies environment variable overrides to c.
func (c *Config) ApplyEnvironment() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if !logger.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("log_level: unknown level %q", cfg.LogLevel)
	}
	if err := validateChart(&cfg.All); err != nil {
		return fmt.Errorf("all: %w", err)
	}
	if err := validateChart(&cfg.OpenMP); err != nil {
		return fmt.Errorf("openmp: %w", err)
	}
	if cfg.All.Output == cfg.OpenMP.Output {
		return fmt.Errorf("all and openmp charts are both written to %s", cfg.All.Output)
	}
	return nil
}

func validateChart(c *Chart) error {
	if c.Output == "" {
		return errors.New("output is required")
	}
	if _, err := chart.FormatOf(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("size %vx%v: width and height must be positive", c.Width, c.Height)
	}
	return nil
}

// Options returns the rendering options for c.
func (c Chart) Options() chart.Options {
	return chart.Options{
		Title:  c.Title,
		XLabel: c.XLabel,
		YLabel: c.YLabel,
		Width:  vg.Length(c.Width) * vg.Inch,
		Height: vg.Length(c.Height) * vg.Inch,
	}
}
