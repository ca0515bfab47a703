package bfs

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvcluster/adjacency"
)

// walker holds the state shared by every seed of one traversal.
// Components reuses a single walker, so visited and Result span all seeds.
type walker struct {
	c       adjacency.Collection
	weights adjacency.WeightedCollection // set only when a min weight applies
	cfg     config
	queue   []int
	head    int
	visited *bitset.BitSet
	res     *Result
}

func newWalker(c adjacency.Collection, opts []Option) (*walker, error) {
	if c == nil {
		return nil, ErrCollectionNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{c: c, cfg: cfg}
	if cfg.minWeight > 0 {
		wc, ok := c.(adjacency.WeightedCollection)
		if !ok {
			return nil, fmt.Errorf("%w: min weight on unweighted %T", ErrOptionViolation, c)
		}
		w.weights = wc
	}

	n := c.Size()
	w.visited = bitset.New(uint(n))
	w.res = newResult(n)
	return w, nil
}

// BFS visits every node reachable from start in non-decreasing hop order.
// Neighbors are sorted before they are queued, so the order does not depend
// on the collection layout.
// Returns ErrCollectionNil, ErrStartOutOfRange, ErrOptionViolation,
// ctx.Err() on cancellation, or the wrapped error of a WithVisit hook.
// On error the partial Result is still returned.
// Complexity: O(V + E·log d).
func BFS(c adjacency.Collection, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(c, opts)
	if err != nil {
		return nil, err
	}
	if n := c.Size(); start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w.push(start, Unreached, 0)
	return w.res, w.drain()
}

// Components returns the reachability classes of c. Nodes are scanned in
// ascending order and each one not yet reached seeds a new class. Classes are
// sorted ascending and ordered by their smallest node.
// With both directions stored for every edge these are the connected components.
// Options apply to every seed.
func Components(c adjacency.Collection, opts ...Option) ([][]int, error) {
	w, err := newWalker(c, opts)
	if err != nil {
		return nil, err
	}

	var out [][]int
	for seed := 0; seed < c.Size(); seed++ {
		if w.visited.Test(uint(seed)) {
			continue
		}
		mark := len(w.res.Order)
		w.push(seed, Unreached, 0)
		if err = w.drain(); err != nil {
			return nil, err
		}
		class := append([]int(nil), w.res.Order[mark:]...)
		sort.Ints(class)
		out = append(out, class)
	}
	return out, nil
}

func (w *walker) push(node, parent, hops int) {
	w.visited.Set(uint(node))
	w.res.Hops[node] = hops
	w.res.Parent[node] = parent
	w.queue = append(w.queue, node)
}

// drain visits queued nodes until the queue is exhausted.
func (w *walker) drain() error {
	for w.head < len(w.queue) {
		if err := w.cfg.ctx.Err(); err != nil {
			return err
		}
		node := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, node)
		if w.cfg.visit != nil {
			if err := w.cfg.visit(node, w.res.Hops[node]); err != nil {
				return fmt.Errorf("bfs: visit %d: %w", node, err)
			}
		}
		w.expand(node)
	}
	return nil
}

func (w *walker) expand(node int) {
	hops := w.res.Hops[node] + 1
	if w.cfg.maxHops > 0 && hops > w.cfg.maxHops {
		return
	}
	nbrs := w.c.Neighbors(node)
	sort.Ints(nbrs)
	for _, nbr := range nbrs {
		if w.visited.Test(uint(nbr)) || !w.follows(node, nbr) {
			continue
		}
		w.push(nbr, node, hops)
	}
}

func (w *walker) follows(from, to int) bool {
	if w.weights != nil && w.weights.ConnectionWeight(from, to) < w.cfg.minWeight {
		return false
	}
	return w.cfg.follow == nil || w.cfg.follow(from, to)
}
