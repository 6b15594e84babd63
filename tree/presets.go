package tree

import "github.com/JosefAlbers/bonzai/geom"

func degRange(min, max float32) Range {
	return Range{Min: geom.DegToRad(min), Max: geom.DegToRad(max)}
}

// DefaultSchedule is the stock silhouette: a few strong limbs low down
// that split more freely and pivot wider the higher they grow. Sized so
// a depth-6 tree lands in the low thousands of elements.
func DefaultSchedule() Schedule {
	return Schedule{
		Angles: []Range{
			degRange(15, 30),
			degRange(18, 35),
			degRange(20, 40),
			degRange(22, 45),
			degRange(25, 50),
			degRange(25, 55),
		},
		Lengths: []Range{
			{2.6, 3.4},
			{1.9, 2.7},
			{1.4, 2.1},
			{1.0, 1.6},
			{0.7, 1.2},
			{0.5, 0.9},
		},
		Branching: []IntRange{
			{3, 5},
			{2, 4},
			{2, 4},
			{1, 3},
			{1, 2},
			{0, 2},
		},
	}
}

// ConiferSchedule grows a tall spindle: one long leader, whorls of
// near-horizontal side branches that shorten sharply with height.
func ConiferSchedule() Schedule {
	return Schedule{
		Angles: []Range{
			degRange(35, 55),
			degRange(40, 60),
			degRange(45, 70),
			degRange(45, 75),
			degRange(50, 80),
		},
		Lengths: []Range{
			{3.2, 4.0},
			{1.2, 1.8},
			{0.8, 1.3},
			{0.6, 1.0},
			{0.4, 0.7},
		},
		Branching: []IntRange{
			{4, 6},
			{2, 3},
			{1, 3},
			{1, 2},
			{0, 1},
		},
		WidthDecay: 0.72,
	}
}

// WillowSchedule keeps branches long while the pivot angles open up with
// every level, so the outer growth sweeps out and down.
func WillowSchedule() Schedule {
	return Schedule{
		Angles: []Range{
			degRange(10, 20),
			degRange(25, 45),
			degRange(40, 70),
			degRange(55, 85),
			degRange(60, 95),
			degRange(60, 100),
		},
		Lengths: []Range{
			{2.2, 3.0},
			{1.8, 2.6},
			{1.5, 2.3},
			{1.2, 2.0},
			{1.0, 1.8},
			{0.8, 1.5},
		},
		Branching: []IntRange{
			{2, 4},
			{2, 4},
			{2, 3},
			{1, 3},
			{1, 2},
			{1, 2},
		},
		WidthDecay: 0.75,
	}
}
