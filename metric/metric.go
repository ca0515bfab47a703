// Package metric provides distance functions between points of equal dimension.
//
// Every metric is a pure function of its two arguments and may be called any
// number of times concurrently. Points of different length are a precondition
// violation; the gonum-backed metrics panic on them.
//
// Built-ins:
//
//	EuclideanSquare  Σ (aᵢ-bᵢ)²            default for K-Medians
//	Euclidean        √Σ (aᵢ-bᵢ)²
//	Manhattan        Σ |aᵢ-bᵢ|
//	Chebyshev        max |aᵢ-bᵢ|
//	Minkowski{P}     (Σ |aᵢ-bᵢ|^P)^(1/P)
//	Canberra         Σ |aᵢ-bᵢ| / (|aᵢ|+|bᵢ|)
//	ChiSquare        Σ (aᵢ-bᵢ)² / |aᵢ+bᵢ|
//	Gower            (Σ |aᵢ-bᵢ| / rangeᵢ) / D
package metric

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrUnknownMetric is returned by ByName for an unregistered name.
var ErrUnknownMetric = errors.New("metric: unknown metric")

// ErrBadParameter is returned for a metric parameter outside its domain.
var ErrBadParameter = errors.New("metric: bad parameter")

// Metric maps a pair of points to a non-negative distance.
type Metric interface {
	Distance(a, b []float64) float64
}

// Func adapts a plain function into a Metric.
type Func func(a, b []float64) float64

// Distance calls f(a, b).
func (f Func) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanSquareMetric is the squared L2 distance.
type EuclideanSquareMetric struct{}

func (EuclideanSquareMetric) Distance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// EuclideanMetric is the L2 distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ManhattanMetric is the L1 (city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric is the L-infinity distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric is the Lp distance for P >= 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, m.P)
}

// CanberraMetric sums per-coordinate relative differences.
// Coordinates where both values are zero contribute nothing.
type CanberraMetric struct{}

func (CanberraMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		den := math.Abs(a[i]) + math.Abs(b[i])
		if den == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / den
	}
	return sum
}

// ChiSquareMetric sums squared differences scaled by |aᵢ+bᵢ|.
// Coordinates with aᵢ+bᵢ == 0 contribute nothing.
type ChiSquareMetric struct{}

func (ChiSquareMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		den := math.Abs(a[i] + b[i])
		if den == 0 {
			continue
		}
		d := a[i] - b[i]
		sum += d * d / den
	}
	return sum
}

// GowerMetric averages range-normalized absolute differences.
// A zero range disables its coordinate.
type GowerMetric struct {
	ranges []float64
}

// NewGower builds a Gower metric from per-dimension value ranges (max - min).
// Negative or non-finite ranges are rejected with ErrBadParameter.
func NewGower(ranges []float64) (GowerMetric, error) {
	for i, r := range ranges {
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return GowerMetric{}, fmt.Errorf("%w: gower range[%d]=%v", ErrBadParameter, i, r)
		}
	}
	return GowerMetric{ranges: append([]float64(nil), ranges...)}, nil
}

// GowerRanges computes the per-dimension range of data, suitable for NewGower.
func GowerRanges(data [][]float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	dim := len(data[0])
	lo := append([]float64(nil), data[0]...)
	hi := append([]float64(nil), data[0]...)
	for _, p := range data[1:] {
		for d := 0; d < dim; d++ {
			lo[d] = math.Min(lo[d], p[d])
			hi[d] = math.Max(hi[d], p[d])
		}
	}
	floats.Sub(hi, lo)
	return hi
}

func (g GowerMetric) Distance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	var sum float64
	for i := range a {
		if g.ranges[i] == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / g.ranges[i]
	}
	return sum / float64(len(a))
}

// Shared zero-size instances.
var (
	EuclideanSquare Metric = EuclideanSquareMetric{}
	Euclidean       Metric = EuclideanMetric{}
	Manhattan       Metric = ManhattanMetric{}
	Chebyshev       Metric = ChebyshevMetric{}
	Canberra        Metric = CanberraMetric{}
	ChiSquare       Metric = ChiSquareMetric{}
)

// Registered metric names accepted by ByName.
const (
	NameEuclidean       = "euclidean"
	NameEuclideanSquare = "euclidean_square"
	NameManhattan       = "manhattan"
	NameChebyshev       = "chebyshev"
	NameMinkowski       = "minkowski"
	NameCanberra        = "canberra"
	NameChiSquare       = "chi_square"
)

// ByName resolves a parameterless metric by its registered name.
// Minkowski needs ByNameWithParam.
func ByName(name string) (Metric, error) {
	switch name {
	case NameEuclidean:
		return Euclidean, nil
	case NameEuclideanSquare, "":
		return EuclideanSquare, nil
	case NameManhattan:
		return Manhattan, nil
	case NameChebyshev:
		return Chebyshev, nil
	case NameCanberra:
		return Canberra, nil
	case NameChiSquare:
		return ChiSquare, nil
	case NameMinkowski:
		return nil, fmt.Errorf("%w: %s requires a degree", ErrBadParameter, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// ByNameWithParam resolves name and applies p where the metric takes a parameter.
// For Minkowski p is the degree and must be >= 1; other metrics ignore p.
func ByNameWithParam(name string, p float64) (Metric, error) {
	if name != NameMinkowski {
		return ByName(name)
	}
	if p < 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("%w: minkowski degree %v < 1", ErrBadParameter, p)
	}
	return MinkowskiMetric{P: p}, nil
}
