// Package app is the interactive viewer: it owns the current tree, an
// orbit camera, the tuning panel and the regeneration triggers. Trees
// are swapped atomically; a failed generation keeps the previous one.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/JosefAlbers/bonzai/config"
	"github.com/JosefAlbers/bonzai/geom"
	"github.com/JosefAlbers/bonzai/tree"
)

type App struct {
	cfg     config.Config
	cfgPath string
	reload  <-chan struct{}

	rng   *tree.Rand
	gen   tree.Generator
	tree  *tree.Tree
	seed  int64
	grown int

	cam   Camera
	rnd   renderer
	panel *Panel

	lastErr error

	dragging bool
	lastX    int
	lastY    int
}

// New builds the viewer and grows the first tree. reload may be nil
// when no config watching is wanted.
func New(cfg config.Config, cfgPath string, seed int64, reload <-chan struct{}) (*App, error) {
	gen, err := cfg.Generator()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		cfgPath: cfgPath,
		reload:  reload,
		rng:     tree.NewRand(seed),
		gen:     gen,
		seed:    seed,
	}
	a.regenerate()

	target := geom.Vec3{Y: 4}
	dist := float32(24)
	if a.tree != nil {
		h := a.tree.Height()
		target = geom.Vec3{Y: h * 0.45}
		dist = h * 2
	}
	a.cam = NewCamera(target, dist)
	a.panel = NewPanel(a.initialTuning(), a.applyTuning)

	return a, nil
}

func (a *App) initialTuning() Tuning {
	decay := a.gen.Schedule.WidthDecay
	if decay == 0 {
		decay = tree.DefaultWidthDecay
	}
	return Tuning{
		MaxDepth:    a.gen.MaxDepth,
		TrunkWidth:  float64(a.gen.Trunk.Width),
		WidthDecay:  float64(decay),
		AngleScale:  1,
		LengthScale: 1,
		BranchScale: 1,
	}
}

// regenerate grows a new tree from the continuing random stream and
// swaps it in only on success.
func (a *App) regenerate() {
	t, err := a.gen.Grow(a.rng)
	if err != nil {
		a.lastErr = err
		log.Printf("generate: %v", err)
		return
	}
	a.tree = t
	a.lastErr = nil
	a.grown++
}

// applyTuning rebuilds the generator from the config baseline with the
// panel's overrides, then regrows.
func (a *App) applyTuning(tn Tuning) {
	gen, err := a.cfg.Generator()
	if err != nil {
		a.lastErr = err
		return
	}

	gen.MaxDepth = tn.MaxDepth
	gen.Schedule = scaledSchedule(gen.Schedule,
		float32(tn.AngleScale), float32(tn.LengthScale), float32(tn.BranchScale))
	gen.Schedule.WidthDecay = float32(tn.WidthDecay)
	gen.Trunk = gen.Schedule.Trunk(float32(tn.TrunkWidth))

	a.gen = gen
	a.regenerate()
}

// scaledSchedule returns a copy with angle, length and branching ranges
// multiplied by the given factors.
func scaledSchedule(s tree.Schedule, angle, length, branch float32) tree.Schedule {
	out := tree.Schedule{
		Angles:     make([]tree.Range, len(s.Angles)),
		Lengths:    make([]tree.Range, len(s.Lengths)),
		Branching:  make([]tree.IntRange, len(s.Branching)),
		WidthDecay: s.WidthDecay,
	}
	for i, r := range s.Angles {
		out.Angles[i] = tree.Range{Min: r.Min * angle, Max: r.Max * angle}
	}
	for i, r := range s.Lengths {
		out.Lengths[i] = tree.Range{Min: r.Min * length, Max: r.Max * length}
	}
	for i, r := range s.Branching {
		out.Branching[i] = tree.IntRange{
			Min: scaleCount(r.Min, branch),
			Max: scaleCount(r.Max, branch),
		}
	}
	return out
}

func scaleCount(n int, k float32) int {
	v := int(math32.Round(float32(n) * k))
	if v < 0 {
		return 0
	}
	return v
}

// reloadConfig re-reads the config file. Load or validation failures
// keep the current config and tree.
func (a *App) reloadConfig() {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		a.lastErr = err
		log.Printf("reload: %v", err)
		return
	}
	gen, err := cfg.Generator()
	if err != nil {
		a.lastErr = err
		return
	}

	a.cfg = cfg
	a.gen = gen
	a.regenerate()
}

func (a *App) Update() error {
	select {
	case <-a.reload:
		a.reloadConfig()
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.panel.Toggle()
	}

	a.handlePointer()
	a.panel.Update()

	return nil
}

func (a *App) handlePointer() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !a.panel.Contains(x, y) {
		a.dragging = true
		a.lastX, a.lastY = x, y
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.dragging = false
	}
	if a.dragging {
		a.cam.Orbit(float32(x-a.lastX)*0.008, float32(y-a.lastY)*0.006)
		a.lastX, a.lastY = x, y
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !a.panel.Contains(x, y) {
		a.cam.Zoom(float32(-wy) * 1.5)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 20, 26, 255})

	v := a.cam.view(screen.Bounds().Dx(), screen.Bounds().Dy())
	drawGround(screen, v)
	a.rnd.drawTree(screen, a.tree, v)

	a.drawHUD(screen)
	a.panel.Draw(screen)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	status := "R=new tree  D=panel  drag=orbit  wheel=zoom\n"
	if a.tree != nil {
		status += fmt.Sprintf("seed=%d trees=%d branches=%d leaves=%d height=%.1f",
			a.seed, a.grown, len(a.tree.Branches), len(a.tree.LeafPositions), a.tree.Height())
	} else {
		status += fmt.Sprintf("seed=%d no tree", a.seed)
	}
	if a.lastErr != nil {
		if errors.Is(a.lastErr, tree.ErrBudget) {
			status += "\nbudget exceeded, keeping previous tree"
		} else {
			status += "\n" + a.lastErr.Error()
		}
	}

	ebitenutil.DebugPrintAt(screen, status, 8, screen.Bounds().Dy()-56)
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
