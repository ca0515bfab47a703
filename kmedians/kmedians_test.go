package kmedians_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/kmedians"
	"github.com/katalvlaran/lvcluster/metric"
)

// twoBlobs is the four-point scenario with one pair near the origin and one near (10,10).
func twoBlobs() [][]float64 {
	return [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
}

func TestProcess_TwoBlobs(t *testing.T) {
	km, err := kmedians.New([][]float64{{0, 0}, {10, 10}},
		kmedians.WithTolerance(1e-3), kmedians.WithMaxIterations(100), kmedians.WithMetric(metric.EuclideanSquare))
	require.NoError(t, err)

	res, err := km.Process(twoBlobs())
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, res.Clusters)
	require.Equal(t, [][]float64{{0, 0.5}, {10, 10.5}}, res.Medians)
	require.Equal(t, []int{0, 0, 1, 1}, res.Labels)
	require.True(t, res.Converged)
	require.LessOrEqual(t, res.Iterations, 2)
	require.False(t, res.Empty())
}

func TestProcess_TieGoesToLowestIndex(t *testing.T) {
	data := [][]float64{{1}, {1}, {5}}
	initial := [][]float64{{0}, {2}, {5}}
	for run := 0; run < 5; run++ {
		km, err := kmedians.New(initial, kmedians.WithMaxIterations(1))
		require.NoError(t, err)
		res, err := km.Process(data)
		require.NoError(t, err)
		// both tied points join median 0; median 1 is left empty and pruned
		require.Equal(t, [][]int{{0, 1}, {2}}, res.Clusters)
		require.Equal(t, []int{0, 0, 1}, res.Labels)
		require.Equal(t, [][]float64{{1}, {5}}, res.Medians)
	}
}

func TestProcess_EmptyClusterPruned(t *testing.T) {
	data := twoBlobs()
	km, err := kmedians.New([][]float64{{0, 0}, {100, 100}, {10, 10}})
	require.NoError(t, err)
	res, err := km.Process(data)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 2)
	require.Len(t, res.Medians, 2)
	require.Equal(t, [][]float64{{0, 0.5}, {10, 10.5}}, res.Medians)
	require.Equal(t, []int{0, 0, 1, 1}, res.Labels)
}

func TestProcess_ClusterCountNonIncreasing(t *testing.T) {
	data := blobs(rand.New(rand.NewSource(7)), 60)
	initial := [][]float64{data[0], {500, 500}, data[1], data[2], {-500, 0}, data[3]}

	prev := len(initial)
	for limit := 1; limit <= 8; limit++ {
		km, err := kmedians.New(initial, kmedians.WithMaxIterations(limit))
		require.NoError(t, err)
		res, err := km.Process(data)
		require.NoError(t, err)
		require.LessOrEqual(t, len(res.Clusters), prev, "limit=%d", limit)
		require.Len(t, res.Medians, len(res.Clusters))
		prev = len(res.Clusters)
	}
	require.LessOrEqual(t, prev, len(initial)-2, "far medians must have been pruned")
}

func TestProcess_TerminatesWithinCap(t *testing.T) {
	data := blobs(rand.New(rand.NewSource(3)), 90)
	for _, limit := range []int{1, 2, 5} {
		km, err := kmedians.New(data[:4],
			kmedians.WithTolerance(1e-300), kmedians.WithMaxIterations(limit), kmedians.WithStallDetection(false))
		require.NoError(t, err)
		res, err := km.Process(data)
		require.NoError(t, err)
		require.LessOrEqual(t, res.Iterations, limit)
		require.GreaterOrEqual(t, res.Iterations, 1)
	}
}

func TestProcess_EmptyData(t *testing.T) {
	km, err := kmedians.New([][]float64{{1, 2}})
	require.NoError(t, err)
	res, err := km.Process(nil)
	require.NoError(t, err)
	require.True(t, res.Empty())
	require.Empty(t, res.Medians)
	require.Empty(t, res.Labels)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
}

func TestProcess_EveryPointAssignedOnce(t *testing.T) {
	data := blobs(rand.New(rand.NewSource(11)), 150)
	km, err := kmedians.New([][]float64{data[0], data[50], data[100]}, kmedians.WithMetric(metric.Manhattan))
	require.NoError(t, err)
	res, err := km.Process(data)
	require.NoError(t, err)

	seen := make([]int, len(data))
	for c, members := range res.Clusters {
		for _, p := range members {
			seen[p]++
			require.Equal(t, c, res.Labels[p])
		}
	}
	for p, n := range seen {
		require.Equal(t, 1, n, "point %d", p)
	}
}

func TestProcess_ParallelMatchesSequential(t *testing.T) {
	data := blobs(rand.New(rand.NewSource(42)), 300)
	initial := [][]float64{data[0], data[1], data[2], data[3]}

	seq, err := kmedians.New(initial)
	require.NoError(t, err)
	par, err := kmedians.New(initial, kmedians.WithWorkers(4))
	require.NoError(t, err)

	want, err := seq.Process(data)
	require.NoError(t, err)
	got, err := par.Process(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestProcess_Reentrant(t *testing.T) {
	initial := [][]float64{{0, 0}, {10, 10}}
	km, err := kmedians.New(initial)
	require.NoError(t, err)

	// caller-owned slices are copied at construction
	initial[0][0] = 99
	data := twoBlobs()

	first, err := km.Process(data)
	require.NoError(t, err)
	second, err := km.Process(data)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, twoBlobs(), data, "input data must not be mutated")
	require.Equal(t, [][]float64{{0, 0.5}, {10, 10.5}}, first.Medians)
}

func TestProcess_StallDetection(t *testing.T) {
	// every distance is 1: all points tie on median 0 and the change never drops
	constant := metric.Func(func(_, _ []float64) float64 { return 1 })
	data := twoBlobs()

	km, err := kmedians.New([][]float64{{0, 0}, {10, 10}}, kmedians.WithMetric(constant))
	require.NoError(t, err)
	res, err := km.Process(data)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, kmedians.StallRepeats+2, res.Iterations)

	km, err = kmedians.New([][]float64{{0, 0}, {10, 10}},
		kmedians.WithMetric(constant), kmedians.WithStallDetection(false))
	require.NoError(t, err)
	res, err = km.Process(data)
	require.NoError(t, err)
	require.Equal(t, kmedians.DefaultMaxIterations, res.Iterations)
	require.Len(t, res.Clusters, 1)
}

func TestProcess_StallPreemptsSmallTolerance(t *testing.T) {
	// a change of 5e-7 never drops below a 1e-9 tolerance and never moves
	tiny := metric.Func(func(_, _ []float64) float64 { return 5e-7 })
	data := twoBlobs()
	initial := [][]float64{{0, 0}, {10, 10}}
	require.Less(t, 1e-9, kmedians.StallThreshold)

	km, err := kmedians.New(initial,
		kmedians.WithMetric(tiny), kmedians.WithTolerance(1e-9), kmedians.WithMaxIterations(40))
	require.NoError(t, err)
	res, err := km.Process(data)
	require.NoError(t, err)
	require.False(t, res.Converged)
	// the first change already sits within StallThreshold of the zero baseline
	require.Equal(t, kmedians.StallRepeats+1, res.Iterations, "stopped by the stall guard")

	km, err = kmedians.New(initial,
		kmedians.WithMetric(tiny), kmedians.WithTolerance(1e-9), kmedians.WithMaxIterations(40),
		kmedians.WithStallDetection(false))
	require.NoError(t, err)
	res, err = km.Process(data)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 40, res.Iterations, "runs to the cap without the guard")
}

func TestNew_Errors(t *testing.T) {
	_, err := kmedians.New(nil)
	require.ErrorIs(t, err, kmedians.ErrNoMedians)

	_, err = kmedians.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, kmedians.ErrDimensionMismatch)

	bad := []kmedians.Option{
		kmedians.WithTolerance(0),
		kmedians.WithTolerance(-1),
		kmedians.WithMaxIterations(0),
		kmedians.WithMetric(nil),
		kmedians.WithWorkers(0),
	}
	for _, opt := range bad {
		_, err = kmedians.New([][]float64{{1}}, opt)
		require.ErrorIs(t, err, kmedians.ErrOptionViolation)
	}

	km, err := kmedians.New([][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = km.Process([][]float64{{1, 2}, {1, 2, 3}})
	require.ErrorIs(t, err, kmedians.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "point 1")
}

func TestResult_Predict(t *testing.T) {
	res := &kmedians.Result{Medians: [][]float64{{0}, {2}}, Clusters: [][]int{{0}, {1}}}
	got := res.Predict([][]float64{{-3}, {1}, {1.5}, {9}}, nil)
	require.Equal(t, []int{0, 0, 1, 1}, got)

	empty := &kmedians.Result{}
	require.Equal(t, []int{kmedians.Unassigned}, empty.Predict([][]float64{{1}}, metric.Euclidean))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	km, err := kmedians.New([][]float64{{0, 0}, {100, 100}, {10, 10}}, kmedians.WithLogger(logger))
	require.NoError(t, err)
	_, err = km.Process(twoBlobs())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "kmedians: iteration"), out)
	assert.True(t, strings.Contains(out, "kmedians: pruned empty clusters"), out)
	assert.True(t, strings.Contains(out, "kmedians: done"), out)
}

// blobs draws n points around three centers with a seeded source.
func blobs(rng *rand.Rand, n int) [][]float64 {
	centers := [][]float64{{0, 0}, {20, 0}, {0, 20}}
	out := make([][]float64, n)
	for i := range out {
		c := centers[i%len(centers)]
		out[i] = []float64{c[0] + rng.NormFloat64(), c[1] + rng.NormFloat64()}
	}
	return out
}
