package tree

// Range bounds a uniformly sampled float parameter.
type Range struct {
	Min, Max float32
}

// IntRange bounds a uniformly sampled integer parameter, bounds inclusive.
type IntRange struct {
	Min, Max int
}

// Properties hold the growth parameters for one branch: how long and wide
// it grows, how far its children may pivot away, and how many children it
// may spawn. An immutable value, produced fresh per recursion level.
type Properties struct {
	Length    Range
	Width     float32
	Angle     Range // radians
	Branching IntRange
}

// DefaultWidthDecay thins each child to 80% of its parent's width.
const DefaultWidthDecay = 0.8

// Schedule is the depth-indexed growth table, one angle/length/branching
// entry per level. Lookups past the end clamp to the last entry, so a
// short schedule still drives an arbitrarily deep tree.
type Schedule struct {
	Angles    []Range
	Lengths   []Range
	Branching []IntRange

	// WidthDecay scales a child's width relative to its parent's.
	// Zero selects DefaultWidthDecay.
	WidthDecay float32
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}

func (s Schedule) decay() float32 {
	if s.WidthDecay == 0 {
		return DefaultWidthDecay
	}
	return s.WidthDecay
}

// Next derives the properties of a child at the given depth from its
// parent's. Pure: neither the schedule nor cur is mutated.
func (s Schedule) Next(cur Properties, depth int) Properties {
	return Properties{
		Angle:     s.Angles[clampIndex(depth, len(s.Angles))],
		Length:    s.Lengths[clampIndex(depth, len(s.Lengths))],
		Branching: s.Branching[clampIndex(depth, len(s.Branching))],
		Width:     cur.Width * s.decay(),
	}
}

// Trunk returns the depth-0 properties with the given trunk width.
func (s Schedule) Trunk(width float32) Properties {
	return Properties{
		Angle:     s.Angles[0],
		Length:    s.Lengths[0],
		Branching: s.Branching[0],
		Width:     width,
	}
}
