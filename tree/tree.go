// Package tree grows stylized 3D trees: a depth-bounded stochastic
// recursion appends branch segments and leaf points to a Tree, driven by
// a per-depth parameter schedule and a seeded random source.
package tree

import (
	"errors"
	"image/color"

	"github.com/JosefAlbers/bonzai/geom"
)

// ErrBudget indicates that a growing tree ran out of its element budget.
var ErrBudget = errors.New("tree element budget exceeded")

// DefaultMaxElements bounds branches plus leaves per generation run when
// the caller does not pick a budget. Roomy for the stock schedules, which
// stay in the low thousands, while a runaway schedule fails fast instead
// of eating memory.
const DefaultMaxElements = 100_000

// Branch is one grown segment. Immutable once appended.
type Branch struct {
	Start geom.Vec3
	End   geom.Vec3
	Width float32
}

// Tree accumulates branches and leaves during one generation run and is
// read-only afterwards. LeafPositions and LeafColors are parallel slices:
// index i describes one leaf. Entries are never removed or rewritten.
type Tree struct {
	Branches      []Branch
	LeafPositions []geom.Vec3
	LeafColors    []color.RGBA

	maxElements int
}

// NewTree returns an empty tree that refuses to grow past maxElements
// branches plus leaves. maxElements <= 0 selects DefaultMaxElements.
func NewTree(maxElements int) *Tree {
	if maxElements <= 0 {
		maxElements = DefaultMaxElements
	}
	return &Tree{maxElements: maxElements}
}

// Elements is the number of branches plus leaves appended so far.
func (t *Tree) Elements() int {
	return len(t.Branches) + len(t.LeafPositions)
}

// AddBranch appends one branch. Once the budget is spent it fails with
// ErrBudget and the tree must be discarded by the caller.
func (t *Tree) AddBranch(b Branch) error {
	if t.Elements() >= t.maxElements {
		return ErrBudget
	}
	t.Branches = append(t.Branches, b)
	return nil
}

// AddLeaf appends one leaf position with its color.
func (t *Tree) AddLeaf(p geom.Vec3, c color.RGBA) error {
	if t.Elements() >= t.maxElements {
		return ErrBudget
	}
	t.LeafPositions = append(t.LeafPositions, p)
	t.LeafColors = append(t.LeafColors, c)
	return nil
}

// Height is the highest Y reached by any branch or leaf. Handy for
// pointing a camera at the middle of the crown.
func (t *Tree) Height() float32 {
	var h float32
	for _, b := range t.Branches {
		if b.End.Y > h {
			h = b.End.Y
		}
	}
	for _, p := range t.LeafPositions {
		if p.Y > h {
			h = p.Y
		}
	}
	return h
}
