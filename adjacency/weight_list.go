// SPDX-License-Identifier: MIT
// Package: lvcluster/adjacency
//
// weight_list.go — sparse weighted representation: one neighbor→weight map per node.
//
// Contract:
//   • An entry exists iff the edge exists; stored weights are never zero.
//   • SetConnectionWeight(i,j,0) deletes the entry (no tombstones).
//   • SetConnection installs ExistenceWeight unless the edge already carries a weight.
//   • ConnectionWeight of an absent edge is NonExistenceWeight.
//   • Memory is roughly twice that of List for the same topology (key + weight).

package adjacency

// WeightList stores, per node, a mapping from neighbor index to non-zero weight.
type WeightList struct {
	adjacency []map[int]float64
}

// NewWeightList creates a WeightList with n isolated nodes.
// Complexity: O(n).
func NewWeightList(n int) *WeightList {
	return &WeightList{adjacency: make([]map[int]float64, n)}
}

// Size returns the number of node slots.
func (l *WeightList) Size() int {
	return len(l.adjacency)
}

// SetConnection establishes i→j with ExistenceWeight.
// An already present edge keeps its weight.
func (l *WeightList) SetConnection(i, j int) {
	if l.HasConnection(i, j) {
		return
	}
	l.SetConnectionWeight(i, j, ExistenceWeight)
}

// EraseConnection removes i→j if present.
func (l *WeightList) EraseConnection(i, j int) {
	delete(l.adjacency[i], j)
}

// HasConnection reports whether i→j exists.
func (l *WeightList) HasConnection(i, j int) bool {
	_, ok := l.adjacency[i][j]
	return ok
}

// Neighbors returns the neighbors of i in unspecified order.
// Complexity: O(deg(i)).
func (l *WeightList) Neighbors(i int) []int {
	m := l.adjacency[i]
	out := make([]int, 0, len(m))
	for j := range m {
		out = append(out, j)
	}
	return out
}

// SetConnectionWeight installs or updates i→j with weight w.
// A zero weight removes the edge.
// Complexity: O(1) average.
func (l *WeightList) SetConnectionWeight(i, j int, w float64) {
	if w == NonExistenceWeight {
		l.EraseConnection(i, j)
		return
	}
	m := l.adjacency[i]
	if m == nil {
		m = make(map[int]float64)
		l.adjacency[i] = m
	}
	m[j] = w
}

// ConnectionWeight returns the weight of i→j or NonExistenceWeight.
func (l *WeightList) ConnectionWeight(i, j int) float64 {
	if w, ok := l.adjacency[i][j]; ok {
		return w
	}
	return NonExistenceWeight
}

// Clear drops every edge; Size is unchanged.
func (l *WeightList) Clear() {
	clear(l.adjacency)
}

// Clone returns a deep copy with independent weight maps.
func (l *WeightList) Clone() *WeightList {
	cp := &WeightList{adjacency: make([]map[int]float64, len(l.adjacency))}
	for i, m := range l.adjacency {
		if len(m) == 0 {
			continue
		}
		dst := make(map[int]float64, len(m))
		for j, w := range m {
			dst[j] = w
		}
		cp.adjacency[i] = dst
	}
	return cp
}
