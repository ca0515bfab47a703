// SPDX-License-Identifier: MIT
// Package: lvcluster/adjacency
//
// factory.go — builds a representation by Kind and installs an initial Structure.
//
// Supported kinds:
//   • New:         KindList, KindWeightList, KindMatrix, KindBitMatrix.
//   • NewWeighted: KindWeightList, KindMatrix.
//
// Errors: ErrNegativeSize, ErrUnknownKind, ErrOptionViolation, and any
// connector error (ErrNotSquareGrid) wrapped with the factory name.

package adjacency

import "fmt"

const (
	methodNew         = "New"
	methodNewWeighted = "NewWeighted"
)

// New creates an unweighted-use Collection of n nodes with representation kind.
func New(n int, kind Kind, opts ...Option) (Collection, error) {
	o, err := gatherOptions(methodNew, n, opts)
	if err != nil {
		return nil, err
	}

	var c Collection
	switch kind {
	case KindList:
		c = NewList(n)
	case KindWeightList:
		c = NewWeightList(n)
	case KindMatrix:
		c = NewMatrix(n)
	case KindBitMatrix:
		c = NewBitMatrix(n)
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodNew, kind, ErrUnknownKind)
	}

	if err = Connect(c, o.Structure); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	return c, nil
}

// NewWeighted creates a WeightedCollection of n nodes with representation kind.
// Edges of the initial structure get weights from WithWeightFn, or
// ExistenceWeight when no generator is given.
func NewWeighted(n int, kind Kind, opts ...Option) (WeightedCollection, error) {
	o, err := gatherOptions(methodNewWeighted, n, opts)
	if err != nil {
		return nil, err
	}

	var c WeightedCollection
	switch kind {
	case KindWeightList:
		c = NewWeightList(n)
	case KindMatrix:
		c = NewMatrix(n)
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodNewWeighted, kind, ErrUnknownKind)
	}

	if err = ConnectWeighted(c, o.Structure, o.WeightFn); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewWeighted, err)
	}
	return c, nil
}

func gatherOptions(method string, n int, opts []Option) (Options, error) {
	if n < 0 {
		return Options{}, fmt.Errorf("%s: n=%d: %w", method, n, ErrNegativeSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, fmt.Errorf("%s: %w", method, o.err)
	}
	return o, nil
}
