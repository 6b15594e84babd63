package tree

import (
	"fmt"

	"github.com/JosefAlbers/bonzai/geom"
)

// leafCluster is how many leaves cap a branch that stops growing at the
// penultimate depth.
const leafCluster = 5

// Generator grows whole trees from a trunk description, a depth-indexed
// schedule and an element budget. Grow may be called any number of
// times; every call builds an independent tree from the supplied random
// source.
type Generator struct {
	Trunk    Properties
	MaxDepth int
	Schedule Schedule

	// MaxElements caps branches plus leaves per grown tree; <= 0 selects
	// DefaultMaxElements. Branch counts multiply per level, so a generous
	// schedule can blow up exponentially; the cap turns that into an
	// error instead of unbounded growth.
	MaxElements int
}

// Grow runs one full generation: a single recursive expansion from the
// origin growing straight up. It returns the finished tree, or the first
// append failure, in which case no tree is returned and the caller keeps
// whatever tree it had before.
func (g Generator) Grow(rng *Rand) (*Tree, error) {
	t := NewTree(g.MaxElements)
	if err := g.grow(t, geom.Vec3{}, geom.Vec3{Y: 1}, g.Trunk, 0, rng); err != nil {
		return nil, err
	}
	return t, nil
}

func (g Generator) grow(t *Tree, start, dir geom.Vec3, props Properties, depth int, rng *Rand) error {
	if depth == g.MaxDepth {
		// Out of depth before growing anything: a single leaf marks the spot.
		if err := t.AddLeaf(start, rng.LeafColor()); err != nil {
			return fmt.Errorf("leaf at depth %d: %w", depth, err)
		}
		return nil
	}

	length := rng.FloatIn(props.Length.Min, props.Length.Max)
	end := start.Add(dir.Mul(length))
	if err := t.AddBranch(Branch{Start: start, End: end, Width: props.Width}); err != nil {
		return fmt.Errorf("branch at depth %d: %w", depth, err)
	}

	if depth < g.MaxDepth-1 {
		// A zero child count simply ends this path; only branches that
		// reach the penultimate depth sprout leaves.
		children := rng.IntIn(props.Branching.Min, props.Branching.Max)
		for i := 0; i < children; i++ {
			pivot := geom.Vec3{
				X: rng.FloatIn(-1, 1),
				Y: rng.FloatIn(-1, 1),
				Z: rng.FloatIn(-1, 1),
			}
			// A pivot parallel to dir leaves a zero axis; the rotation it
			// builds is degenerate and the heading barely moves. Accepted.
			axis := dir.Cross(pivot).Normalize()
			angle := rng.FloatIn(props.Angle.Min, props.Angle.Max)
			next := geom.AxisAngle(axis, angle).MulVec(dir).Normalize()

			err := g.grow(t, end, next, g.Schedule.Next(props, depth+1), depth+1, rng)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// Penultimate depth: no recursion, cap the branch with a fixed-size
	// cluster of leaves scattered around its tip.
	for i := 0; i < leafCluster; i++ {
		offset := geom.Vec3{
			X: rng.FloatIn(-0.5, 0.5),
			Y: rng.FloatIn(-0.5, 0.5),
			Z: rng.FloatIn(-0.5, 0.5),
		}
		if err := t.AddLeaf(end.Add(offset), rng.LeafColor()); err != nil {
			return fmt.Errorf("leaf cluster at depth %d: %w", depth, err)
		}
	}
	return nil
}
