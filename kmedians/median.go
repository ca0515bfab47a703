// SPDX-License-Identifier: MIT
// Package: lvcluster/kmedians
//
// median.go — per-dimension median of a cluster.
//
// Contract:
//   • Each dimension is sorted on its own.
//   • Odd member count: the middle value. Even: the mean of the two middle values.
//   • The data set is never mutated; sorting works on a scratch slice.

package kmedians

import "sort"

// clusterMedian returns the per-dimension median of the member points.
// Each dimension is sorted independently; an odd count takes the middle value,
// an even count the mean of the two middle values. members must be non-empty.
// Complexity: O(D · M log M) for M members.
func clusterMedian(data [][]float64, members []int, dim int) []float64 {
	median := make([]float64, dim)
	coords := make([]float64, len(members))
	for d := 0; d < dim; d++ {
		for i, p := range members {
			coords[i] = data[p][d]
		}
		median[d] = medianOf(coords)
	}
	return median
}

// medianOf sorts xs in place and returns its median.
func medianOf(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
