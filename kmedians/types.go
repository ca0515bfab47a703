// SPDX-License-Identifier: MIT
// Package kmedians: sentinel errors, defaults, options and result type.

package kmedians

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvcluster/metric"
)

// Sentinel errors for K-Medians processing.
var (
	// ErrNoMedians is returned when no initial medians are supplied.
	ErrNoMedians = errors.New("kmedians: no initial medians")

	// ErrDimensionMismatch is returned when a point or median differs in
	// dimension from the first initial median.
	ErrDimensionMismatch = errors.New("kmedians: dimension mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmedians: invalid option supplied")
)

// Defaults.
const (
	// DefaultTolerance stops processing once no median moves this far.
	DefaultTolerance = 0.001

	// DefaultMaxIterations caps the number of assign/update passes.
	DefaultMaxIterations = 100

	// DefaultWorkers runs both passes on the calling goroutine.
	DefaultWorkers = 1
)

// Stall detection: the run stops when the largest median change differs from
// the previous iteration's by less than StallThreshold for more than
// StallRepeats consecutive iterations.
const (
	StallThreshold = 1e-6
	StallRepeats   = 10
)

// Unassigned is reported by Result.Predict when there is no median to assign to.
const Unassigned = -1

// Option configures KMedians via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters of a K-Medians run.
type Options struct {
	// Tolerance is the convergence threshold on median movement.
	Tolerance float64

	// MaxIterations caps the number of passes.
	MaxIterations int

	// Metric measures point-to-median distances and median movement.
	Metric metric.Metric

	// Workers bounds the goroutines used by the assignment and update passes.
	Workers int

	// StallDetection stops runs whose change has plateaued above Tolerance.
	StallDetection bool

	// Logger receives iteration records.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultTolerance, DefaultMaxIterations,
// squared Euclidean metric, a single worker, stall detection on and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		Metric:         metric.EuclideanSquare,
		Workers:        DefaultWorkers,
		StallDetection: true,
		Logger:         log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithTolerance sets the convergence threshold; it must be finite and > 0.
// With stall detection on (the default), a tolerance below StallThreshold can
// be pre-empted: a run whose change settles between the two stops as stalled
// with Converged == false. Disable stall detection to wait for the tolerance.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if !(t > 0) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: tolerance must be finite and positive (%v)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// WithMaxIterations sets the iteration cap; it must be >= 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithMetric sets the distance metric. A nil metric is a violation.
func WithMetric(m metric.Metric) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: nil metric", ErrOptionViolation)
			return
		}
		o.Metric = m
	}
}

// WithWorkers bounds internal parallelism; n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStallDetection toggles the plateau guard.
// The guard compares successive changes against StallThreshold, independent
// of Tolerance, so it may end a run before a smaller tolerance is reached.
func WithStallDetection(enabled bool) Option {
	return func(o *Options) {
		o.StallDetection = enabled
	}
}

// WithLogger routes iteration records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of one Process call. It is owned by the caller.
//   - Clusters: point indices per cluster, ascending; empty clusters removed.
//   - Medians: Medians[k] represents Clusters[k].
//   - Labels: Labels[p] is the index into Clusters of point p.
//   - Iterations: passes executed.
//   - Converged: the tolerance criterion fired (false on cap, stall or empty data).
type Result struct {
	Clusters   [][]int
	Medians    [][]float64
	Labels     []int
	Iterations int
	Converged  bool
}

// Empty reports whether every cluster was pruned.
func (r *Result) Empty() bool {
	return len(r.Clusters) == 0
}

// Predict assigns each point to the nearest final median using m (squared
// Euclidean when nil), with the same lowest-index tie-break as Process.
// Every point gets Unassigned when the result is empty.
func (r *Result) Predict(points [][]float64, m metric.Metric) []int {
	if m == nil {
		m = metric.EuclideanSquare
	}
	out := make([]int, len(points))
	for i, p := range points {
		if len(r.Medians) == 0 {
			out[i] = Unassigned
			continue
		}
		out[i] = nearest(p, r.Medians, m)
	}
	return out
}
