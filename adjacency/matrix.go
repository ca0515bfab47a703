// SPDX-License-Identifier: MIT
// Package: lvcluster/adjacency
//
// matrix.go — dense weighted representation in a flat row-major slice.
//
// Contract:
//   • data[i*n+j] is the weight of i→j; zero means no edge.
//   • All point operations are O(1); Neighbors scans one row, O(n), ascending.
//   • Memory is n² float64 regardless of the number of edges.

package adjacency

// Matrix is a dense n×n weight matrix implementing WeightedCollection.
type Matrix struct {
	n    int       // number of nodes
	data []float64 // flat backing storage, length == n*n
}

// NewMatrix creates an n×n Matrix without edges.
// Complexity: O(n²) time and memory.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// Size returns the number of node slots.
func (m *Matrix) Size() int {
	return m.n
}

// SetConnection establishes i→j with ExistenceWeight.
// An already present edge keeps its weight.
func (m *Matrix) SetConnection(i, j int) {
	if m.data[i*m.n+j] == NonExistenceWeight {
		m.data[i*m.n+j] = ExistenceWeight
	}
}

// EraseConnection removes i→j.
func (m *Matrix) EraseConnection(i, j int) {
	m.data[i*m.n+j] = NonExistenceWeight
}

// HasConnection reports whether i→j carries a non-zero weight.
func (m *Matrix) HasConnection(i, j int) bool {
	return m.data[i*m.n+j] != NonExistenceWeight
}

// Neighbors returns the neighbors of i in ascending order.
// Complexity: O(n).
func (m *Matrix) Neighbors(i int) []int {
	row := m.data[i*m.n : (i+1)*m.n]
	out := make([]int, 0)
	for j, w := range row {
		if w != NonExistenceWeight {
			out = append(out, j)
		}
	}
	return out
}

// SetConnectionWeight stores w for i→j; zero erases the edge.
func (m *Matrix) SetConnectionWeight(i, j int, w float64) {
	m.data[i*m.n+j] = w
}

// ConnectionWeight returns the weight of i→j (NonExistenceWeight if absent).
func (m *Matrix) ConnectionWeight(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Clear zeroes every weight; Size is unchanged.
// Complexity: O(n²).
func (m *Matrix) Clear() {
	clear(m.data)
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{n: m.n, data: data}
}
