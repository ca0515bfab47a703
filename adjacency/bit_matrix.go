// SPDX-License-Identifier: MIT
// Package: lvcluster/adjacency
//
// bit_matrix.go — dense unweighted representation: one bit per ordered pair.
//
// Contract:
//   • bit (i*n + j) is set iff i→j exists.
//   • Point operations are O(1); Neighbors walks row i with NextSet, ascending.
//   • Memory is n²/8 bytes, the smallest dense layout.

package adjacency

import "github.com/bits-and-blooms/bitset"

// BitMatrix is a dense n×n bit matrix implementing Collection.
type BitMatrix struct {
	n    int
	bits *bitset.BitSet
}

// NewBitMatrix creates an n×n BitMatrix without edges.
func NewBitMatrix(n int) *BitMatrix {
	return &BitMatrix{n: n, bits: bitset.New(uint(n * n))}
}

// Size returns the number of node slots.
func (m *BitMatrix) Size() int {
	return m.n
}

func (m *BitMatrix) offset(i, j int) uint {
	return uint(i*m.n + j)
}

// SetConnection establishes i→j.
func (m *BitMatrix) SetConnection(i, j int) {
	m.bits.Set(m.offset(i, j))
}

// EraseConnection removes i→j.
func (m *BitMatrix) EraseConnection(i, j int) {
	m.bits.Clear(m.offset(i, j))
}

// HasConnection reports whether i→j exists.
func (m *BitMatrix) HasConnection(i, j int) bool {
	return m.bits.Test(m.offset(i, j))
}

// Neighbors returns the neighbors of i in ascending order.
// Complexity: O(n / 64 + deg(i)).
func (m *BitMatrix) Neighbors(i int) []int {
	start := m.offset(i, 0)
	end := start + uint(m.n)
	out := make([]int, 0)
	for b, ok := m.bits.NextSet(start); ok && b < end; b, ok = m.bits.NextSet(b + 1) {
		out = append(out, int(b-start))
	}
	return out
}

// Clear unsets every bit; Size is unchanged.
func (m *BitMatrix) Clear() {
	m.bits.ClearAll()
}

// Clone returns a deep copy.
func (m *BitMatrix) Clone() *BitMatrix {
	return &BitMatrix{n: m.n, bits: m.bits.Clone()}
}
