package adjacency_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvcluster/adjacency"
)

// ExampleList shows that edges are one-way and Clear keeps the node slots.
func ExampleList() {
	l := adjacency.NewList(3)
	l.SetConnection(0, 1)
	l.SetConnection(0, 2)
	l.SetConnection(0, 1) // idempotent

	nb := l.Neighbors(0)
	sort.Ints(nb)
	fmt.Println(nb, l.HasConnection(1, 0))

	l.Clear()
	fmt.Println(l.Size(), l.HasConnection(0, 1))
	// Output:
	// [1 2] false
	// 3 false
}

// ExampleNewWeighted builds a 2×2 grid whose edges all weigh 0.5.
func ExampleNewWeighted() {
	c, err := adjacency.NewWeighted(4, adjacency.KindMatrix,
		adjacency.WithStructure(adjacency.StructureGridFour),
		adjacency.WithWeightFn(func() float64 { return 0.5 }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Neighbors(0), c.ConnectionWeight(0, 2), c.ConnectionWeight(0, 3))
	// Output:
	// [1 2] 0.5 0
}
