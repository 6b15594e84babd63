package app

import (
	"image/color"
	"sort"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JosefAlbers/bonzai/geom"
	"github.com/JosefAlbers/bonzai/tree"
)

const (
	farNarrow  = 0.7  // branch tip width relative to its base
	leafRadius = 0.12 // world units
	minStroke  = 0.35 // px, keeps distant twigs visible
)

// Directional lighting from upper-left.
var lightDir = geom.Vec3{X: -0.5, Y: 0.8, Z: -0.3}.Normalize()

// drawItem is one projected element awaiting the painter pass. Branches
// fill x1..y2 with per-end half widths; leaves use x1, y1 and r1.
type drawItem struct {
	depth  float32
	leaf   bool
	x1, y1 float32
	x2, y2 float32
	r1, r2 float32
	clr    color.RGBA
}

// renderer draws a tree back to front, reusing its item buffer across
// frames. Tree access is read-only.
type renderer struct {
	items []drawItem
}

func (r *renderer) drawTree(screen *ebiten.Image, t *tree.Tree, v view) {
	if t == nil {
		return
	}

	r.items = r.items[:0]
	for _, b := range t.Branches {
		x1, y1, z1, ok := v.project(b.Start)
		if !ok {
			continue
		}
		x2, y2, z2, ok := v.project(b.End)
		if !ok {
			continue
		}

		r1 := 0.5 * b.Width * v.focal / z1
		r2 := 0.5 * b.Width * farNarrow * v.focal / z2
		if r1 < minStroke {
			r1 = minStroke
		}
		if r2 < minStroke {
			r2 = minStroke
		}

		r.items = append(r.items, drawItem{
			depth: (z1 + z2) / 2,
			x1:    x1,
			y1:    y1,
			x2:    x2,
			y2:    y2,
			r1:    r1,
			r2:    r2,
			clr:   branchColor(b),
		})
	}

	for i, p := range t.LeafPositions {
		x, y, z, ok := v.project(p)
		if !ok {
			continue
		}
		rad := leafRadius * v.focal / z
		if rad < 1 {
			rad = 1
		}
		if rad > 24 {
			rad = 24
		}
		r.items = append(r.items, drawItem{
			depth: z,
			leaf:  true,
			x1:    x,
			y1:    y,
			r1:    rad,
			clr:   t.LeafColors[i],
		})
	}

	// Painter's order: far elements first.
	sort.Slice(r.items, func(i, j int) bool {
		return r.items[i].depth > r.items[j].depth
	})

	for _, it := range r.items {
		if it.leaf {
			vector.FillCircle(screen, it.x1, it.y1, it.r1, it.clr, false)
			continue
		}
		drawTaperedSegment(screen, it)
	}
}

// branchColor shades the fixed wood color by how the branch faces the
// light. Ambient + diffuse.
func branchColor(b tree.Branch) color.RGBA {
	n := b.End.Sub(b.Start).Normalize()
	d := n.Dot(lightDir)
	if d < 0 {
		d = 0
	}
	intensity := 0.3 + 0.7*d

	return color.RGBA{
		R: uint8(110 * intensity),
		G: uint8(74 * intensity),
		B: uint8(38 * intensity),
		A: 255,
	}
}

// drawTaperedSegment fills the quad spanned by a branch's projected
// endpoints and their screen half widths.
func drawTaperedSegment(screen *ebiten.Image, it drawItem) {
	dx := it.x2 - it.x1
	dy := it.y2 - it.y1
	l := math32.Sqrt(dx*dx + dy*dy)
	if l < 1e-3 {
		// Segment seen end-on.
		vector.FillCircle(screen, it.x1, it.y1, it.r1, it.clr, false)
		return
	}

	px := -dy / l
	py := dx / l
	fillQuad(screen,
		it.x1+px*it.r1, it.y1+py*it.r1,
		it.x2+px*it.r2, it.y2+py*it.r2,
		it.x2-px*it.r2, it.y2-py*it.r2,
		it.x1-px*it.r1, it.y1-py*it.r1,
		it.clr)
}

// fillQuad fills a convex quad using Ebiten's vector path triangulation.
func fillQuad(screen *ebiten.Image, x1, y1, x2, y2, x3, y3, x4, y4 float32, c color.RGBA) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.LineTo(x4, y4)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255.0
		vs[i].ColorG = float32(c.G) / 255.0
		vs[i].ColorB = float32(c.B) / 255.0
		vs[i].ColorA = float32(c.A) / 255.0
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	screen.DrawTriangles(vs, is, whiteImage(), op)
}

// whiteImage returns a small white image for solid color fills.
var whiteImageInstance *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteImageInstance == nil {
		whiteImageInstance = ebiten.NewImage(3, 3)
		whiteImageInstance.Fill(color.White)
	}
	return whiteImageInstance
}

// drawGround draws a reference grid on the ground plane.
func drawGround(screen *ebiten.Image, v view) {
	const (
		extent = 8
		step   = 2
	)
	clr := color.RGBA{46, 52, 64, 255}
	for i := -extent; i <= extent; i += step {
		drawGroundLine(screen, v, geom.Vec3{X: float32(i), Z: -extent}, geom.Vec3{X: float32(i), Z: extent}, clr)
		drawGroundLine(screen, v, geom.Vec3{X: -extent, Z: float32(i)}, geom.Vec3{X: extent, Z: float32(i)}, clr)
	}
}

func drawGroundLine(screen *ebiten.Image, v view, a, b geom.Vec3, clr color.RGBA) {
	x1, y1, _, ok := v.project(a)
	if !ok {
		return
	}
	x2, y2, _, ok := v.project(b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, false)
}
