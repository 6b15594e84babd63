package tree

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosefAlbers/bonzai/geom"
)

func TestTreeBudget(t *testing.T) {
	tr := NewTree(3)

	require.NoError(t, tr.AddBranch(Branch{Width: 1}))
	require.NoError(t, tr.AddBranch(Branch{Width: 2}))
	require.NoError(t, tr.AddLeaf(geom.Vec3{X: 1}, color.RGBA{A: 255}))
	assert.Equal(t, 3, tr.Elements())

	err := tr.AddBranch(Branch{Width: 3})
	assert.ErrorIs(t, err, ErrBudget)
	err = tr.AddLeaf(geom.Vec3{}, color.RGBA{})
	assert.ErrorIs(t, err, ErrBudget)

	// Nothing was half-appended.
	assert.Len(t, tr.Branches, 2)
	assert.Len(t, tr.LeafPositions, 1)
	assert.Len(t, tr.LeafColors, 1)
}

func TestTreeDefaultBudget(t *testing.T) {
	for _, n := range []int{0, -5} {
		tr := NewTree(n)
		assert.NoError(t, tr.AddBranch(Branch{}))
		assert.NoError(t, tr.AddLeaf(geom.Vec3{}, color.RGBA{}))
	}
}

func TestLeafSlicesStayParallel(t *testing.T) {
	tr := NewTree(10)
	colors := []color.RGBA{{R: 1}, {G: 2}, {B: 3}}
	for i, c := range colors {
		require.NoError(t, tr.AddLeaf(geom.Vec3{X: float32(i)}, c))
	}

	require.Len(t, tr.LeafPositions, len(tr.LeafColors))
	for i, c := range colors {
		assert.Equal(t, float32(i), tr.LeafPositions[i].X)
		assert.Equal(t, c, tr.LeafColors[i])
	}
}

func TestTreeHeight(t *testing.T) {
	tr := NewTree(10)
	assert.Equal(t, float32(0), tr.Height())

	require.NoError(t, tr.AddBranch(Branch{End: geom.Vec3{Y: 4}}))
	require.NoError(t, tr.AddBranch(Branch{End: geom.Vec3{Y: 2}}))
	assert.Equal(t, float32(4), tr.Height())

	require.NoError(t, tr.AddLeaf(geom.Vec3{Y: 5.5}, color.RGBA{}))
	assert.Equal(t, float32(5.5), tr.Height())
}
