// SPDX-License-Identifier: MIT
// Package: lvcluster/kmedians
//
// config.go — declarative run parameters loadable from YAML.
//
// Example document:
//
//	tolerance: 0.0001
//	max_iterations: 200
//	metric: minkowski
//	minkowski_degree: 3
//	workers: 4
//	stall_detection: false
//
// Missing keys keep DefaultConfig values; unknown keys are rejected.

package kmedians

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcluster/metric"
)

// Config mirrors Options in a serializable form.
type Config struct {
	Tolerance       float64 `yaml:"tolerance"`
	MaxIterations   int     `yaml:"max_iterations"`
	Metric          string  `yaml:"metric"`
	MinkowskiDegree float64 `yaml:"minkowski_degree"`
	Workers         int     `yaml:"workers"`
	StallDetection  bool    `yaml:"stall_detection"`
}

// DefaultConfig returns the configuration equivalent to DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		Metric:         metric.NameEuclideanSquare,
		Workers:        DefaultWorkers,
		StallDetection: true,
	}
}

// LoadConfig decodes a YAML document over DefaultConfig with strict field checking.
// An empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("kmedians: decode config: %w", err)
	}
	return cfg, nil
}

// Options translates the configuration into functional options.
// Unknown metric names surface as metric.ErrUnknownMetric; out-of-range values
// are left to the options themselves and surface as ErrOptionViolation from New.
func (c Config) Options() ([]Option, error) {
	m, err := metric.ByNameWithParam(c.Metric, c.MinkowskiDegree)
	if err != nil {
		return nil, fmt.Errorf("kmedians: config metric: %w", err)
	}
	return []Option{
		WithTolerance(c.Tolerance),
		WithMaxIterations(c.MaxIterations),
		WithMetric(m),
		WithWorkers(c.Workers),
		WithStallDetection(c.StallDetection),
	}, nil
}
