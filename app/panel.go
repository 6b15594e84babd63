package app

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Tuning is the live-editable subset of growth parameters. Scale factors
// multiply the schedule's angle, length and branching ranges.
type Tuning struct {
	MaxDepth    int
	TrunkWidth  float64
	WidthDecay  float64
	AngleScale  float64
	LengthScale float64
	BranchScale float64
}

// Approximate panel extent for pointer hit testing.
const (
	panelW = 350
	panelH = 420
)

// Panel is the in-game tuning panel. Slider changes are debounced and
// then handed to OnRegenerate.
type Panel struct {
	ui       *ebitenui.UI
	visible  bool
	fontFace text.Face

	Tuning Tuning

	OnRegenerate func(Tuning)

	labels map[string]*widget.Text

	dirty          bool
	lastChangeTime time.Time
	debounceDelay  time.Duration
}

func NewPanel(initial Tuning, onRegenerate func(Tuning)) *Panel {
	p := &Panel{
		Tuning:        initial,
		OnRegenerate:  onRegenerate,
		visible:       false,
		labels:        make(map[string]*widget.Text),
		debounceDelay: 150 * time.Millisecond,
	}

	p.fontFace = p.loadFont()
	p.ui = p.buildUI()

	return p
}

func (p *Panel) loadFont() text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   14,
	}
}

func (p *Panel) buildUI() *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panelContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.BackgroundImage(p.createPanelBackground()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(10),
			}),
			widget.WidgetOpts.MinSize(320, 0),
		),
	)

	panelContainer.AddChild(p.createLabel("GROWTH PARAMETERS", color.RGBA{255, 220, 100, 255}))

	panelContainer.AddChild(p.createLabel("-- Shape --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(p.createIntSlider("Depth", &p.Tuning.MaxDepth, 0, 9, "depth"))
	panelContainer.AddChild(p.createFloatSlider("Trunk Width", &p.Tuning.TrunkWidth, 0.05, 1.2, "trunkWidth"))
	panelContainer.AddChild(p.createFloatSlider("Width Decay", &p.Tuning.WidthDecay, 0.5, 0.95, "widthDecay"))

	panelContainer.AddChild(p.createLabel("-- Scales --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(p.createFloatSlider("Angle", &p.Tuning.AngleScale, 0.2, 2.0, "angleScale"))
	panelContainer.AddChild(p.createFloatSlider("Length", &p.Tuning.LengthScale, 0.4, 1.8, "lengthScale"))
	panelContainer.AddChild(p.createFloatSlider("Branching", &p.Tuning.BranchScale, 0.3, 2.0, "branchScale"))

	panelContainer.AddChild(p.createLabel("Changes apply automatically", color.RGBA{128, 128, 128, 255}))
	panelContainer.AddChild(p.createLabel("Press D to toggle panel", color.RGBA{128, 128, 128, 255}))

	rootContainer.AddChild(panelContainer)

	return &ebitenui.UI{Container: rootContainer}
}

func (p *Panel) createPanelBackground() *image.NineSlice {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{30, 35, 45, 230})
	return image.NewNineSliceSimple(img, 0, 0)
}

func (p *Panel) createLabel(text string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, &p.fontFace, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)
}

func (p *Panel) createIntSlider(label string, value *int, min, max int, key string) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	labelWidget := widget.NewText(
		widget.TextOpts.Text(label, &p.fontFace, color.RGBA{200, 200, 200, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 0),
		),
	)
	container.AddChild(labelWidget)

	valueLabel := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("%d", *value), &p.fontFace, color.RGBA{255, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(40, 0),
		),
	)
	p.labels[key] = valueLabel

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(min, max),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(p.createSliderImages(), p.createSliderHandleImages()),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 1
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			*value = args.Current
			valueLabel.Label = fmt.Sprintf("%d", *value)
			p.markDirty()
		}),
	)
	slider.Current = *value

	container.AddChild(slider)
	container.AddChild(valueLabel)

	return container
}

func (p *Panel) createFloatSlider(label string, value *float64, min, max float64, key string) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	labelWidget := widget.NewText(
		widget.TextOpts.Text(label, &p.fontFace, color.RGBA{200, 200, 200, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 0),
		),
	)
	container.AddChild(labelWidget)

	valueLabel := widget.NewText(
		widget.TextOpts.Text(formatFloat(*value), &p.fontFace, color.RGBA{255, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(50, 0),
		),
	)
	p.labels[key] = valueLabel

	// Sliders are integer valued; map 0-100 onto the float range.
	sliderMin := 0
	sliderMax := 100

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(sliderMin, sliderMax),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(p.createSliderImages(), p.createSliderHandleImages()),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 1
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			t := float64(args.Current-sliderMin) / float64(sliderMax-sliderMin)
			*value = min + t*(max-min)
			valueLabel.Label = formatFloat(*value)
			p.markDirty()
		}),
	)

	t := (*value - min) / (max - min)
	slider.Current = sliderMin + int(t*float64(sliderMax-sliderMin))

	container.AddChild(slider)
	container.AddChild(valueLabel)

	return container
}

func (p *Panel) createSliderImages() *widget.SliderTrackImage {
	idle := ebiten.NewImage(32, 8)
	idle.Fill(color.RGBA{80, 80, 100, 255})

	hover := ebiten.NewImage(32, 8)
	hover.Fill(color.RGBA{100, 100, 120, 255})

	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceSimple(idle, 4, 4),
		Hover: image.NewNineSliceSimple(hover, 4, 4),
	}
}

func (p *Panel) createSliderHandleImages() *widget.ButtonImage {
	idle := ebiten.NewImage(20, 20)
	idle.Fill(color.RGBA{150, 150, 180, 255})

	hover := ebiten.NewImage(20, 20)
	hover.Fill(color.RGBA{180, 180, 220, 255})

	pressed := ebiten.NewImage(20, 20)
	pressed.Fill(color.RGBA{200, 200, 255, 255})

	return &widget.ButtonImage{
		Idle:    image.NewNineSliceSimple(idle, 4, 4),
		Hover:   image.NewNineSliceSimple(hover, 4, 4),
		Pressed: image.NewNineSliceSimple(pressed, 4, 4),
	}
}

// Toggle flips the panel's visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Contains reports whether the point lies over the visible panel, so
// the camera can ignore pointer input meant for the sliders.
func (p *Panel) Contains(x, y int) bool {
	if !p.visible {
		return false
	}
	return x < panelW && y < panelH
}

func (p *Panel) markDirty() {
	p.dirty = true
	p.lastChangeTime = time.Now()
}

// Update advances the UI and fires the debounced regeneration callback.
func (p *Panel) Update() {
	if p.visible {
		p.ui.Update()
	}

	if p.dirty && time.Since(p.lastChangeTime) >= p.debounceDelay {
		p.dirty = false
		if p.OnRegenerate != nil {
			p.OnRegenerate(p.Tuning)
		}
	}
}

// Draw draws the panel if visible.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.visible {
		p.ui.Draw(screen)
	}
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	for len(s) > 1 && s[len(s)-1] == '0' && s[len(s)-2] != '.' {
		s = s[:len(s)-1]
	}
	return s
}
