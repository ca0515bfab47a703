// SPDX-License-Identifier: MIT
// Package: lvcluster/adjacency
//
// connector.go — installs canonical topologies into any Collection.
//
// Contract:
//   • Every structure is undirected: each pair {i,j} is written as i→j and j→i.
//   • Self-loops are never emitted.
//   • Existing edges are kept; Connect only adds.
//   • Grid structures need Size() == side² (else ErrNotSquareGrid). Node
//     index k sits at row k/side, column k%side.
//   • Weighted variant draws one weight per unordered pair, so both directions
//     carry the same value; a zero draw leaves the pair unconnected.
//
// Determinism:
//   • Pairs are emitted in a fixed row-major order with i<j, so a seeded
//     WeightFn produces the same weights on every run.

package adjacency

import (
	"fmt"
	"math"
)

// Structure names a topology installed by Connect.
type Structure int

const (
	// StructureNone installs nothing.
	StructureNone Structure = iota
	// StructureAllToAll connects every pair of distinct nodes.
	StructureAllToAll
	// StructureGridFour connects each cell to its orthogonal neighbors.
	StructureGridFour
	// StructureGridEight connects each cell to its orthogonal and diagonal neighbors.
	StructureGridEight
	// StructureListBidirectional connects k and k+1 for every k.
	StructureListBidirectional
)

// File-local method tags used in error context.
const (
	methodConnect         = "Connect"
	methodConnectWeighted = "ConnectWeighted"
)

func (s Structure) valid() bool {
	return s >= StructureNone && s <= StructureListBidirectional
}

// String returns the structure name.
func (s Structure) String() string {
	switch s {
	case StructureNone:
		return "none"
	case StructureAllToAll:
		return "all-to-all"
	case StructureGridFour:
		return "grid-four"
	case StructureGridEight:
		return "grid-eight"
	case StructureListBidirectional:
		return "list-bidirectional"
	default:
		return fmt.Sprintf("Structure(%d)", int(s))
	}
}

// Connect installs structure s into c with unweighted edges.
// Complexity: O(n²) for all-to-all, O(n) for the others.
func Connect(c Collection, s Structure) error {
	if c == nil {
		return fmt.Errorf("%s: %w", methodConnect, ErrCollectionNil)
	}
	return eachPair(methodConnect, c.Size(), s, func(i, j int) {
		c.SetConnection(i, j)
		c.SetConnection(j, i)
	})
}

// ConnectWeighted installs structure s into c, weighting each pair with gen().
// A nil gen behaves like Connect.
func ConnectWeighted(c WeightedCollection, s Structure, gen WeightFn) error {
	if c == nil {
		return fmt.Errorf("%s: %w", methodConnectWeighted, ErrCollectionNil)
	}
	if gen == nil {
		return Connect(c, s)
	}
	return eachPair(methodConnectWeighted, c.Size(), s, func(i, j int) {
		w := gen()
		c.SetConnectionWeight(i, j, w)
		c.SetConnectionWeight(j, i, w)
	})
}

// eachPair calls emit(i, j), i<j, for every pair of structure s over n nodes.
func eachPair(method string, n int, s Structure, emit func(i, j int)) error {
	switch s {
	case StructureNone:
		return nil
	case StructureAllToAll:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				emit(i, j)
			}
		}
		return nil
	case StructureListBidirectional:
		for i := 0; i+1 < n; i++ {
			emit(i, i+1)
		}
		return nil
	case StructureGridFour, StructureGridEight:
		side, ok := squareSide(n)
		if !ok {
			return fmt.Errorf("%s: %v on size %d: %w", method, s, n, ErrNotSquareGrid)
		}
		eachGridPair(side, s == StructureGridEight, emit)
		return nil
	default:
		return fmt.Errorf("%s: %v: %w", method, s, ErrUnknownStructure)
	}
}

// eachGridPair emits right and bottom neighbors of every cell, plus the two
// lower diagonals when diagonal is set. Each undirected pair appears once.
func eachGridPair(side int, diagonal bool, emit func(i, j int)) {
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			u := r*side + c
			if c+1 < side {
				emit(u, u+1)
			}
			if r+1 < side {
				emit(u, u+side)
				if diagonal && c+1 < side {
					emit(u, u+side+1)
				}
				if diagonal && c > 0 {
					emit(u, u+side-1)
				}
			}
		}
	}
}

// squareSide returns side with side*side == n.
func squareSide(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	side := int(math.Round(math.Sqrt(float64(n))))
	return side, side*side == n
}
