// Package adjacency provides interchangeable node-connectivity containers for
// graph- and density-based clustering algorithms.
//
// What
//
//   - Collection: the storage-agnostic capability set
//     {Size, SetConnection, EraseConnection, HasConnection, Neighbors, Clear}.
//   - WeightedCollection: Collection plus SetConnectionWeight / ConnectionWeight.
//   - Four representations sharing identical observable behavior:
//   - List       — one hash set of neighbors per node (sparse, unweighted)
//   - WeightList — one neighbor→weight map per node (sparse, weighted)
//   - Matrix     — dense n×n float64 weights (dense, weighted)
//   - BitMatrix  — n² bits backed by bitset.BitSet (dense, unweighted)
//   - Connect / ConnectWeighted install common topologies (all-to-all, grids,
//     bidirectional list) and New / NewWeighted pick a representation by Kind.
//
// Why
//
//	Algorithms are written against Collection and pick a representation by
//	expected density: sparse graphs favor the list forms (memory ∝ edges),
//	dense graphs favor the matrix forms (memory ∝ n², O(1) everything).
//
// Node identity
//
//	A node is a bare int index in [0, Size()). There are no node objects;
//	indices stay valid for the lifetime of the collection. Clear wipes edges
//	only, so Size() and every index survive it.
//
// Direction
//
//	Every edge is one-way. SetConnection(i, j) never implies HasConnection(j, i);
//	undirected graphs are expressed by setting both directions.
//
// Weights
//
//	In weighted collections a stored weight of zero is indistinguishable from
//	no edge. SetConnectionWeight(i, j, 0) erases the edge; SetConnection(i, j)
//	stores ExistenceWeight; ConnectionWeight of an absent edge is
//	NonExistenceWeight (0).
//
// Preconditions
//
//	Indices are not validated on any operation of any representation. An index
//	outside [0, Size()) is a programmer error and typically panics with a
//	runtime index error. None of the operations return errors.
//
// Concurrency
//
//	Collections are not synchronized. Concurrent writers on one instance must be
//	serialized by the caller; concurrent readers without writers are safe.
//
// Complexity (n = Size(), d = out-degree)
//
//	            Set/Erase/Has  Neighbors  Memory
//	List        O(1) avg       O(d)       O(n + E)
//	WeightList  O(1) avg       O(d)       O(n + 2E)
//	Matrix      O(1)           O(n)       O(n²) float64
//	BitMatrix   O(1)           O(n)       O(n²) bits
package adjacency
