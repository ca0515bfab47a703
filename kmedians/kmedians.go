// SPDX-License-Identifier: MIT
// Package: lvcluster/kmedians
//
// kmedians.go — the assign / prune / update / converge loop.
//
// Contract:
//   • New copies the initial medians; Process never mutates them or the data.
//   • Each Process call works on its own medians and clusters and returns a
//     fresh Result, so one KMedians may serve concurrent Process calls.
//   • Ties in the assignment pass go to the lowest median index (strict <
//     while scanning medians in order).
//   • Pruned clusters never come back: the cluster count is non-increasing.
//   • Precondition failures (no medians, dimension mismatch) fail fast with
//     sentinel errors; nothing is checked for NaN/Inf.

package kmedians

import (
	"fmt"
	"math"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/lvcluster/metric"
)

// KMedians is a configured K-Medians clusterer.
type KMedians struct {
	initial [][]float64
	dim     int
	opts    Options
}

// New validates the initial medians and options.
// Returns ErrNoMedians, ErrDimensionMismatch or ErrOptionViolation.
func New(initialMedians [][]float64, opts ...Option) (*KMedians, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(initialMedians) == 0 {
		return nil, ErrNoMedians
	}

	dim := len(initialMedians[0])
	for i, m := range initialMedians {
		if len(m) != dim {
			return nil, fmt.Errorf("%w: median %d has %d coordinates, want %d",
				ErrDimensionMismatch, i, len(m), dim)
		}
	}

	return &KMedians{
		initial: cloneDataset(initialMedians),
		dim:     dim,
		opts:    o,
	}, nil
}

// K returns the number of initial medians.
func (k *KMedians) K() int {
	return len(k.initial)
}

// Process clusters data and returns a fresh Result.
// Returns ErrDimensionMismatch if any point differs in dimension from the medians.
func (k *KMedians) Process(data [][]float64) (*Result, error) {
	for i, p := range data {
		if len(p) != k.dim {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d",
				ErrDimensionMismatch, i, len(p), k.dim)
		}
	}

	r := &run{
		k:       k,
		data:    data,
		medians: cloneDataset(k.initial),
		labels:  make([]int, len(data)),
	}
	return r.loop(), nil
}

// run is the mutable state of a single Process call.
type run struct {
	k        *KMedians
	data     [][]float64
	medians  [][]float64
	clusters [][]int
	labels   []int
}

// loop iterates until convergence, the cap, a stall or total pruning.
func (r *run) loop() *Result {
	o := r.k.opts
	res := &Result{}

	var prevChange float64
	repeats := 0
	for iter := 1; iter <= o.MaxIterations; iter++ {
		res.Iterations = iter

		r.assign()
		r.prune()
		if len(r.clusters) == 0 {
			o.Logger.Debug("kmedians: all clusters pruned", "iteration", iter)
			break
		}

		change := r.update()
		o.Logger.Debug("kmedians: iteration",
			"iteration", iter, "clusters", len(r.clusters), "change", change)

		if change < o.Tolerance {
			res.Converged = true
			break
		}

		if o.StallDetection {
			if math.Abs(change-prevChange) < StallThreshold {
				repeats++
			} else {
				repeats = 0
			}
			if repeats > StallRepeats {
				o.Logger.Debug("kmedians: stalled", "iteration", iter, "change", change)
				break
			}
			prevChange = change
		}
	}

	res.Clusters = r.clusters
	res.Medians = r.medians
	res.Labels = r.labelsFromClusters()

	o.Logger.Info("kmedians: done",
		"iterations", res.Iterations, "clusters", len(res.Clusters), "converged", res.Converged)
	return res
}

// assign computes the nearest median for every point and rebuilds the clusters.
// Members are appended in ascending point order.
func (r *run) assign() {
	m := r.k.opts.Metric
	r.k.parallel(len(r.data), func(lo, hi int) {
		for p := lo; p < hi; p++ {
			r.labels[p] = nearest(r.data[p], r.medians, m)
		}
	})

	r.clusters = make([][]int, len(r.medians))
	for p, c := range r.labels {
		r.clusters[c] = append(r.clusters[c], p)
	}
}

// prune drops empty clusters together with their medians, keeping order.
func (r *run) prune() {
	kept := 0
	for c := range r.clusters {
		if len(r.clusters[c]) == 0 {
			continue
		}
		r.clusters[kept] = r.clusters[c]
		r.medians[kept] = r.medians[c]
		kept++
	}
	if dropped := len(r.clusters) - kept; dropped > 0 {
		r.k.opts.Logger.Debug("kmedians: pruned empty clusters", "dropped", dropped, "remaining", kept)
	}
	r.clusters = r.clusters[:kept]
	r.medians = r.medians[:kept]
}

// update recomputes every median and returns the largest distance moved.
func (r *run) update() float64 {
	next := make([][]float64, len(r.clusters))
	r.k.parallel(len(r.clusters), func(lo, hi int) {
		for c := lo; c < hi; c++ {
			next[c] = clusterMedian(r.data, r.clusters[c], r.k.dim)
		}
	})

	m := r.k.opts.Metric
	var maxChange float64
	for c := range next {
		if d := m.Distance(r.medians[c], next[c]); d > maxChange {
			maxChange = d
		}
	}
	r.medians = next
	return maxChange
}

// labelsFromClusters maps every point to the index of its final cluster.
func (r *run) labelsFromClusters() []int {
	labels := make([]int, len(r.data))
	for c, members := range r.clusters {
		for _, p := range members {
			labels[p] = c
		}
	}
	return labels
}

// parallel splits [0, n) into contiguous chunks handled by at most Workers
// goroutines. Every index is processed exactly once.
func (k *KMedians) parallel(n int, fn func(lo, hi int)) {
	w := k.opts.Workers
	if w <= 1 || n < 2 {
		fn(0, n)
		return
	}
	chunk := (n + w - 1) / w
	p := pool.New().WithMaxGoroutines(w)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		p.Go(func() { fn(lo, hi) })
	}
	p.Wait()
}

// nearest returns the index of the closest median; the first minimum wins.
func nearest(p []float64, medians [][]float64, m metric.Metric) int {
	best := 0
	bestDist := m.Distance(p, medians[0])
	for i := 1; i < len(medians); i++ {
		if d := m.Distance(p, medians[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func cloneDataset(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, p := range src {
		out[i] = append([]float64(nil), p...)
	}
	return out
}
