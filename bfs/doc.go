// Package bfs provides breadth-first search over any adjacency.Collection,
// returning hop distances, parent links and visit order, plus the reachability
// classes (connected components) that density-based clustering builds on.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and
//     returns a Result indexed by node:
//   - Order:  visit sequence
//   - Hops:   node → edges from the start, Unreached if never visited
//   - Parent: node → predecessor in the BFS tree, Unreached for the start
//   - WithVisit observes each visit and may abort the search with an error.
//   - WithEdgeFilter drops individual edges; WithMinWeight keeps only edges of
//     a WeightedCollection at or above a weight; WithMaxHops bounds the radius.
//   - Components partitions every node into BFS reachability classes.
//
// Determinism
//
//	Collections may report neighbors in any order (hash-based lists do).
//	BFS sorts each neighbor slice before enqueueing, so the visit sequence is
//	the same for every representation holding the same edges.
//
// Direction
//
//	Edges are followed as stored. Collections that model undirected graphs must
//	hold both directions; Components on a one-way edge set yields classes that
//	depend on the scan order, since it never follows an edge backwards.
//
// Complexity (V = Size(), E = edges)
//
//   - Time:   O(V + E·log d) (neighbor sorting, d = max out-degree)
//   - Memory: O(V)           (queue, Hops, Parent, visited bitset)
//
// Usage
//
//	res, err := bfs.BFS(c, 0,
//	    bfs.WithMaxHops(3),
//	    bfs.WithEdgeFilter(func(from, to int) bool { return to != 7 }),
//	)
//
//	components, err := bfs.Components(c)
//
//	// strong links only
//	strong, err := bfs.Components(weighted, bfs.WithMinWeight(0.5))
//
// Errors
//
//   - ErrCollectionNil    if the collection is nil.
//   - ErrStartOutOfRange  if the start node is outside [0, Size()).
//   - ErrOptionViolation  for invalid options (negative hops, non-positive
//     weight, WithMinWeight on an unweighted collection).
//   - ErrUnreached        from Result.PathTo for a node never visited.
//   - Wrapped errors from the WithVisit hook, and ctx.Err() on cancellation.
package bfs
