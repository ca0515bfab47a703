// SPDX-License-Identifier: MIT
// Package adjacency: interfaces, sentinel errors, kinds and factory options.

package adjacency

import (
	"errors"
	"fmt"
)

// Sentinel errors for factory and connector operations.
// Collection methods themselves never return errors.
var (
	// ErrUnknownKind indicates a Kind that the requested factory cannot build.
	ErrUnknownKind = errors.New("adjacency: unknown collection kind")

	// ErrNegativeSize indicates a negative node count was requested.
	ErrNegativeSize = errors.New("adjacency: negative size")

	// ErrUnknownStructure indicates an unsupported Structure value.
	ErrUnknownStructure = errors.New("adjacency: unknown structure")

	// ErrNotSquareGrid indicates a grid structure on a size that is not a perfect square.
	ErrNotSquareGrid = errors.New("adjacency: size is not a perfect square")

	// ErrCollectionNil indicates a nil collection was passed to a connector.
	ErrCollectionNil = errors.New("adjacency: collection is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("adjacency: invalid option supplied")
)

// Weight sentinels used by weighted collections.
const (
	// ExistenceWeight is stored by SetConnection on weighted collections.
	ExistenceWeight = 1.0

	// NonExistenceWeight is reported by ConnectionWeight for absent edges.
	NonExistenceWeight = 0.0
)

// Collection is the capability set shared by every adjacency representation.
//
// Implementations differ only in performance and memory; observable behavior
// (idempotent set, no-op erase of absent edges, one-way edges, edge-wiping Clear)
// is identical. Neighbors order is unspecified unless the implementation says so.
type Collection interface {
	// Size returns the number of node slots.
	Size() int

	// SetConnection establishes the one-way edge i→j. Idempotent.
	SetConnection(i, j int)

	// EraseConnection removes the one-way edge i→j if present.
	EraseConnection(i, j int)

	// HasConnection reports whether the edge i→j exists.
	HasConnection(i, j int) bool

	// Neighbors returns every j such that i→j exists, in a fresh slice.
	Neighbors(i int) []int

	// Clear removes all edges. Size and node indices are unchanged.
	Clear()
}

// WeightedCollection extends Collection with per-edge real weights.
// An edge is present iff its weight is non-zero.
type WeightedCollection interface {
	Collection

	// SetConnectionWeight installs or updates i→j with weight w; w == 0 erases it.
	SetConnectionWeight(i, j int, w float64)

	// ConnectionWeight returns the weight of i→j, or NonExistenceWeight if absent.
	ConnectionWeight(i, j int) float64
}

// Kind selects a concrete representation in New / NewWeighted.
type Kind int

const (
	// KindList is the hash-set list (unweighted only).
	KindList Kind = iota
	// KindWeightList is the hash-map list (weighted; also usable unweighted).
	KindWeightList
	// KindMatrix is the dense float64 matrix (weighted; also usable unweighted).
	KindMatrix
	// KindBitMatrix is the dense bit matrix (unweighted only).
	KindBitMatrix
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindWeightList:
		return "weight-list"
	case KindMatrix:
		return "matrix"
	case KindBitMatrix:
		return "bit-matrix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// WeightFn yields the weight for each edge installed by ConnectWeighted.
// A zero result leaves that edge absent.
type WeightFn func() float64

// Option configures New / NewWeighted via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds factory parameters.
type Options struct {
	// Structure is installed right after allocation. Default StructureNone.
	Structure Structure

	// WeightFn supplies weights for weighted collections; nil means ExistenceWeight.
	WeightFn WeightFn

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no initial structure and no weight generator.
func DefaultOptions() Options {
	return Options{Structure: StructureNone}
}

// WithStructure installs the given topology after allocation.
func WithStructure(s Structure) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
			return
		}
		o.Structure = s
	}
}

// WithWeightFn sets the weight generator used by NewWeighted.
// A nil fn is an option violation.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil weight function", ErrOptionViolation)
			return
		}
		o.WeightFn = fn
	}
}
