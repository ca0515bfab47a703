// Package bfs: sentinel errors, traversal options and the Result type.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start node is outside [0, Size()).
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrCollectionNil is returned if a nil collection is passed.
	ErrCollectionNil = errors.New("bfs: collection is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by Result.PathTo for a node the search never reached.
	ErrUnreached = errors.New("bfs: node not reached")
)

// Unreached marks a node without hop count or parent in a Result.
// The start node of every search also has Parent == Unreached.
const Unreached = -1

// Option configures a traversal. Invalid values are recorded and reported
// as ErrOptionViolation by BFS or Components.
type Option func(*config)

// config is the resolved option set. Zero values mean "no limit" and
// "follow every stored edge".
type config struct {
	ctx       context.Context
	maxHops   int
	minWeight float64 // > 0 only when WithMinWeight was given
	follow    func(from, to int) bool
	visit     func(node, hops int) error
	err       error
}

func newConfig(opts []Option) (config, error) {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

// WithContext sets a context checked once per dequeued node.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxHops stops expanding nodes h edges away from the seed.
// h == 0 removes the limit; h < 0 is a violation.
func WithMaxHops(h int) Option {
	return func(c *config) {
		if h < 0 {
			c.err = fmt.Errorf("%w: max hops %d < 0", ErrOptionViolation, h)
			return
		}
		c.maxHops = h
	}
}

// WithMinWeight follows an edge i→j only if ConnectionWeight(i, j) >= w.
// The collection must be an adjacency.WeightedCollection; w must be finite and > 0.
func WithMinWeight(w float64) Option {
	return func(c *config) {
		if !(w > 0) || math.IsInf(w, 0) {
			c.err = fmt.Errorf("%w: min weight %v", ErrOptionViolation, w)
			return
		}
		c.minWeight = w
	}
}

// WithEdgeFilter follows an edge from→to only if fn returns true.
func WithEdgeFilter(fn func(from, to int) bool) Option {
	return func(c *config) {
		c.follow = fn
	}
}

// WithVisit calls fn for every node in visit order with its hop count.
// A non-nil error stops the search and is returned wrapped.
func WithVisit(fn func(node, hops int) error) Option {
	return func(c *config) {
		c.visit = fn
	}
}

// Result is the outcome of a traversal over a collection of n nodes.
//   - Order:  reached nodes in visit sequence.
//   - Hops:   len n; edges from the seed, or Unreached.
//   - Parent: len n; predecessor in the BFS tree, or Unreached.
type Result struct {
	Order  []int
	Hops   []int
	Parent []int
}

func newResult(n int) *Result {
	r := &Result{Hops: make([]int, n), Parent: make([]int, n)}
	for i := range r.Hops {
		r.Hops[i] = Unreached
		r.Parent[i] = Unreached
	}
	return r
}

// Reached reports whether node was visited.
func (r *Result) Reached(node int) bool {
	return node >= 0 && node < len(r.Hops) && r.Hops[node] != Unreached
}

// PathTo returns the seed→dest path along parent links.
// Returns ErrUnreached if dest was not visited.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreached, dest)
	}
	path := make([]int, r.Hops[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}
	return path, nil
}
