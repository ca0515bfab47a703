// SPDX-License-Identifier: MIT
// Package: lvcluster/adjacency
//
// list.go — sparse unweighted representation: one hash set per node.
//
// Contract:
//   • adjacency[i] holds every j with i→j, each at most once.
//   • Set/Erase/Has cost one map operation (average O(1)), independent of density.
//   • Neighbors copies the set into a fresh slice in map iteration order.
//   • Memory grows with the number of edges, not Size()².

package adjacency

// List stores, per node, the set of unique neighbor indices.
type List struct {
	adjacency []map[int]struct{}
}

// NewList creates a List with n isolated nodes.
// Per-node sets are allocated lazily on first SetConnection.
// Complexity: O(n).
func NewList(n int) *List {
	return &List{adjacency: make([]map[int]struct{}, n)}
}

// Size returns the number of node slots.
func (l *List) Size() int {
	return len(l.adjacency)
}

// SetConnection establishes i→j. Complexity: O(1) average.
func (l *List) SetConnection(i, j int) {
	set := l.adjacency[i]
	if set == nil {
		set = make(map[int]struct{})
		l.adjacency[i] = set
	}
	set[j] = struct{}{}
}

// EraseConnection removes i→j if present. Complexity: O(1) average.
func (l *List) EraseConnection(i, j int) {
	delete(l.adjacency[i], j)
}

// HasConnection reports whether i→j exists. Complexity: O(1) average.
func (l *List) HasConnection(i, j int) bool {
	_, ok := l.adjacency[i][j]
	return ok
}

// Neighbors returns the neighbors of i in unspecified order.
// Complexity: O(deg(i)).
func (l *List) Neighbors(i int) []int {
	set := l.adjacency[i]
	out := make([]int, 0, len(set))
	for j := range set {
		out = append(out, j)
	}
	return out
}

// Clear drops every edge; Size is unchanged.
// Complexity: O(n).
func (l *List) Clear() {
	clear(l.adjacency)
}

// Clone returns a deep copy with independent neighbor sets.
// Complexity: O(n + E).
func (l *List) Clone() *List {
	cp := &List{adjacency: make([]map[int]struct{}, len(l.adjacency))}
	for i, set := range l.adjacency {
		if len(set) == 0 {
			continue
		}
		dst := make(map[int]struct{}, len(set))
		for j := range set {
			dst[j] = struct{}{}
		}
		cp.adjacency[i] = dst
	}
	return cp
}
