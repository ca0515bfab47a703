// Package lvcluster is the computational core of a small cluster-analysis
// toolkit: node connectivity behind one interface, and a K-Medians engine.
//
// What is inside?
//
//	• adjacency/ — Collection & WeightedCollection interfaces with four layouts
//	               (List, WeightList, Matrix, BitMatrix), structure connector
//	               (all-to-all, grids, chains) and factories
//	• metric/    — point distances: Euclidean (squared and plain), Manhattan,
//	               Chebyshev, Minkowski, Canberra, Chi-square, Gower + name registry
//	• kmedians/  — K-Medians: nearest-median assignment, per-dimension medians,
//	               empty-cluster pruning, stall detection, YAML config, Predict
//	• bfs/       — breadth-first search and components over any Collection
//
// Quick start:
//
//	km, _ := kmedians.New([][]float64{{0, 0}, {10, 10}})
//	res, _ := km.Process([][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}})
//	// res.Clusters == [[0 1] [2 3]], res.Medians == [[0 0.5] [10 10.5]]
//
//	c, _ := adjacency.New(9, adjacency.KindList,
//	    adjacency.WithStructure(adjacency.StructureGridFour))
//	comps, _ := bfs.Components(c)
//
// Layouts trade memory for lookup cost; algorithms written against
// adjacency.Collection run unchanged on any of them.
//
//	go get github.com/katalvlaran/lvcluster
package lvcluster
