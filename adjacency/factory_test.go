package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/adjacency"
)

func TestNew_Kinds(t *testing.T) {
	kinds := []adjacency.Kind{
		adjacency.KindList,
		adjacency.KindWeightList,
		adjacency.KindMatrix,
		adjacency.KindBitMatrix,
	}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			c, err := adjacency.New(4, k, adjacency.WithStructure(adjacency.StructureAllToAll))
			require.NoError(t, err)
			require.Equal(t, 4, c.Size())
			require.Equal(t, 12, edgeCount(c))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := adjacency.New(-1, adjacency.KindList)
	require.ErrorIs(t, err, adjacency.ErrNegativeSize)

	_, err = adjacency.New(3, adjacency.Kind(42))
	require.ErrorIs(t, err, adjacency.ErrUnknownKind)

	_, err = adjacency.New(3, adjacency.KindList, adjacency.WithStructure(adjacency.Structure(-1)))
	require.ErrorIs(t, err, adjacency.ErrOptionViolation)

	_, err = adjacency.New(3, adjacency.KindList, adjacency.WithStructure(adjacency.StructureGridFour))
	require.ErrorIs(t, err, adjacency.ErrNotSquareGrid)
}

func TestNewWeighted(t *testing.T) {
	c, err := adjacency.NewWeighted(4, adjacency.KindWeightList,
		adjacency.WithStructure(adjacency.StructureGridFour),
		adjacency.WithWeightFn(func() float64 { return 0.25 }))
	require.NoError(t, err)
	require.Equal(t, 0.25, c.ConnectionWeight(0, 1))
	require.Equal(t, 0.25, c.ConnectionWeight(2, 0))
	require.False(t, c.HasConnection(0, 3), "no diagonals in grid-four")

	d, err := adjacency.NewWeighted(2, adjacency.KindMatrix, adjacency.WithStructure(adjacency.StructureAllToAll))
	require.NoError(t, err)
	require.Equal(t, adjacency.ExistenceWeight, d.ConnectionWeight(1, 0))

	_, err = adjacency.NewWeighted(2, adjacency.KindBitMatrix)
	require.ErrorIs(t, err, adjacency.ErrUnknownKind)

	_, err = adjacency.NewWeighted(2, adjacency.KindMatrix, adjacency.WithWeightFn(nil))
	require.ErrorIs(t, err, adjacency.ErrOptionViolation)
}
