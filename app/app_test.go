package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosefAlbers/bonzai/config"
	"github.com/JosefAlbers/bonzai/geom"
	"github.com/JosefAlbers/bonzai/tree"
)

func TestScaledScheduleMultipliesRanges(t *testing.T) {
	s := tree.Schedule{
		Angles:     []tree.Range{{Min: 0.2, Max: 0.4}},
		Lengths:    []tree.Range{{Min: 1, Max: 2}},
		Branching:  []tree.IntRange{{Min: 1, Max: 3}},
		WidthDecay: 0.8,
	}

	out := scaledSchedule(s, 2, 0.5, 0.5)

	assert.InDelta(t, 0.4, out.Angles[0].Min, 1e-6)
	assert.InDelta(t, 0.8, out.Angles[0].Max, 1e-6)
	assert.InDelta(t, 0.5, out.Lengths[0].Min, 1e-6)
	assert.InDelta(t, 1.0, out.Lengths[0].Max, 1e-6)
	assert.Equal(t, tree.IntRange{Min: 1, Max: 2}, out.Branching[0], "counts round half away from zero")
	assert.Equal(t, float32(0.8), out.WidthDecay)

	// The input is untouched.
	assert.Equal(t, tree.Range{Min: 0.2, Max: 0.4}, s.Angles[0])
}

func TestScaleCountFloorsAtZero(t *testing.T) {
	assert.Equal(t, 0, scaleCount(1, 0.2))
	assert.Equal(t, 0, scaleCount(0, 3))
	assert.Equal(t, 6, scaleCount(3, 2))
}

func TestBranchColorShading(t *testing.T) {
	toward := tree.Branch{End: geom.Vec3{X: -0.5, Y: 0.8, Z: -0.3}}
	away := tree.Branch{End: geom.Vec3{X: 0.5, Y: -0.8, Z: 0.3}}
	side := tree.Branch{End: geom.Vec3{Y: 1}}

	bright := branchColor(toward)
	dark := branchColor(away)
	mid := branchColor(side)

	assert.Equal(t, uint8(33), dark.R, "away-facing branches keep the ambient floor")
	assert.Greater(t, bright.R, mid.R)
	assert.Greater(t, mid.R, dark.R)
	assert.Equal(t, uint8(255), bright.A)
}

func TestApplyTuningRebuildsGenerator(t *testing.T) {
	cfg := config.Default()
	gen, err := cfg.Generator()
	require.NoError(t, err)

	a := &App{cfg: cfg, rng: tree.NewRand(7), gen: gen}

	a.applyTuning(Tuning{
		MaxDepth:    2,
		TrunkWidth:  0.5,
		WidthDecay:  0.6,
		AngleScale:  1,
		LengthScale: 1,
		BranchScale: 1,
	})

	assert.Equal(t, 2, a.gen.MaxDepth)
	assert.Equal(t, float32(0.5), a.gen.Trunk.Width)
	assert.Equal(t, float32(0.6), a.gen.Schedule.WidthDecay)
	require.NotNil(t, a.tree, "tuning regrows immediately")
	assert.NoError(t, a.lastErr)
}

func TestRegenerateKeepsTreeOnBudgetFailure(t *testing.T) {
	cfg := config.Default()
	gen, err := cfg.Generator()
	require.NoError(t, err)

	a := &App{cfg: cfg, rng: tree.NewRand(7), gen: gen}
	a.regenerate()
	require.NotNil(t, a.tree)
	old := a.tree

	a.gen.MaxElements = 3
	a.regenerate()

	assert.Same(t, old, a.tree, "failed generation leaves the old tree active")
	assert.ErrorIs(t, a.lastErr, tree.ErrBudget)

	a.gen.MaxElements = 0
	a.regenerate()
	assert.NotSame(t, old, a.tree)
	assert.NoError(t, a.lastErr)
}
