package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLooksUpByDepth(t *testing.T) {
	s := Schedule{
		Angles:    []Range{{0, 0.1}, {0.2, 0.3}},
		Lengths:   []Range{{5, 6}, {3, 4}},
		Branching: []IntRange{{2, 4}, {1, 2}},
	}
	cur := s.Trunk(1)

	p := s.Next(cur, 1)
	assert.Equal(t, Range{0.2, 0.3}, p.Angle)
	assert.Equal(t, Range{3, 4}, p.Length)
	assert.Equal(t, IntRange{1, 2}, p.Branching)
}

func TestNextClampsPastLastLevel(t *testing.T) {
	s := Schedule{
		Angles:    []Range{{0, 0.1}, {0.2, 0.3}},
		Lengths:   []Range{{5, 6}, {3, 4}},
		Branching: []IntRange{{2, 4}, {1, 2}},
	}
	cur := s.Trunk(1)

	deep := s.Next(cur, 9)
	last := s.Next(cur, 1)
	assert.Equal(t, last.Angle, deep.Angle)
	assert.Equal(t, last.Length, deep.Length)
	assert.Equal(t, last.Branching, deep.Branching)
}

func TestNextDecaysWidth(t *testing.T) {
	s := Schedule{
		Angles:    []Range{{0, 1}},
		Lengths:   []Range{{1, 2}},
		Branching: []IntRange{{1, 1}},
	}

	p := s.Next(s.Trunk(1), 1)
	assert.InDelta(t, 0.8, p.Width, 1e-6)

	p = s.Next(p, 2)
	assert.InDelta(t, 0.64, p.Width, 1e-6)

	s.WidthDecay = 0.5
	assert.InDelta(t, 0.5, s.Next(s.Trunk(1), 1).Width, 1e-6)
}

func TestNextIsPure(t *testing.T) {
	s := Schedule{
		Angles:    []Range{{0, 1}, {1, 2}},
		Lengths:   []Range{{1, 2}, {2, 3}},
		Branching: []IntRange{{1, 1}, {2, 2}},
	}
	cur := s.Trunk(2)
	before := cur

	_ = s.Next(cur, 1)
	_ = s.Next(cur, 1)
	assert.Equal(t, before, cur)
}

func TestTrunkUsesLevelZero(t *testing.T) {
	s := Schedule{
		Angles:    []Range{{0.1, 0.2}, {9, 9}},
		Lengths:   []Range{{2, 3}, {9, 9}},
		Branching: []IntRange{{3, 5}, {9, 9}},
	}

	p := s.Trunk(0.4)
	assert.Equal(t, Range{0.1, 0.2}, p.Angle)
	assert.Equal(t, Range{2, 3}, p.Length)
	assert.Equal(t, IntRange{3, 5}, p.Branching)
	assert.Equal(t, float32(0.4), p.Width)
}

func TestPresetsAreWellFormed(t *testing.T) {
	presets := map[string]Schedule{
		"default": DefaultSchedule(),
		"conifer": ConiferSchedule(),
		"willow":  WillowSchedule(),
	}

	for name, s := range presets {
		assert.NotEmpty(t, s.Angles, name)
		assert.Equal(t, len(s.Angles), len(s.Lengths), name)
		assert.Equal(t, len(s.Angles), len(s.Branching), name)

		for i := range s.Angles {
			assert.LessOrEqual(t, s.Angles[i].Min, s.Angles[i].Max, name)
			assert.LessOrEqual(t, s.Lengths[i].Min, s.Lengths[i].Max, name)
			assert.Greater(t, s.Lengths[i].Min, float32(0), name)
			assert.LessOrEqual(t, s.Branching[i].Min, s.Branching[i].Max, name)
			assert.GreaterOrEqual(t, s.Branching[i].Min, 0, name)
		}

		if s.WidthDecay != 0 {
			assert.Greater(t, s.WidthDecay, float32(0), name)
			assert.Less(t, s.WidthDecay, float32(1), name)
		}
	}
}
