package navmenu

import (
	"math"

	"github.com/tanema/gween/ease"
)

// IconTiming configures the lines-to-cross morph.
type IconTiming struct {
	LineDuration  float32
	LineStagger   float32
	LineEase      ease.TweenFunc
	Gap           float32 // pause between the last line leaving and the first stroke arriving
	CrossDuration float32
	CrossStagger  float32
	CrossEase     ease.TweenFunc
}

// ButtonStyle sizes and colors the button.
type ButtonStyle struct {
	Radius     float64
	Background Color
	Stroke     Color
	IconSize   float64 // side of the square the icon is drawn in
	Thickness  float64
}

// ToggleButton is the round menu button. Its icon morphs between three
// lines and a cross. It holds no state of its own beyond its timeline
// position: SetOpen mirrors whatever boolean it is given.
type ToggleButton struct {
	node   *Node
	lines  [3]*Node
	cross  [2]*Node
	timing IconTiming

	timeline *Timeline

	// OnToggle is called when the button is clicked.
	OnToggle func()
}

// NewToggleButton builds the button centered on its node's origin.
func NewToggleButton(name string, style ButtonStyle, timing IconTiming) *ToggleButton {
	b := &ToggleButton{timing: timing}
	b.node = NewContainer(name)
	b.node.Interactable = true
	b.node.HitShape = HitCircle{Radius: style.Radius}
	b.node.OnClick = func(ClickContext) {
		if b.OnToggle != nil {
			b.OnToggle()
		}
	}

	bg := NewCircle(name+".bg", style.Radius)
	bg.Color = style.Background
	b.node.AddChild(bg)

	// The icon uses a 24-unit grid like the artwork it is traced from:
	// lines span x 4..20 at y 7, 12, 17; the cross joins (6,6)-(18,18)
	// and (6,18)-(18,6).
	unit := style.IconSize / 24
	half := style.IconSize / 2
	thick := style.Thickness
	for i := range b.lines {
		length := 16 * unit
		l := NewStroke(name+".line", length, thick)
		l.Color = style.Stroke
		// Collapse toward the right end.
		l.PivotX = length
		l.X = 20*unit - half
		l.Y = float64(7+5*i)*unit - half
		b.lines[i] = l
		b.node.AddChild(l)
	}
	diag := 12 * math.Sqrt2 * unit
	for i := range b.cross {
		c := NewStroke(name+".cross", diag, thick)
		c.Color = style.Stroke
		c.PivotX = diag / 2
		c.Rotation = math.Pi / 4
		if i == 1 {
			c.Rotation = -math.Pi / 4
		}
		c.Alpha = 0
		c.ScaleX = 0
		b.cross[i] = c
		b.node.AddChild(c)
	}
	return b
}

// Node returns the button's root node.
func (b *ToggleButton) Node() *Node { return b.node }

// Timeline returns the icon timeline, or nil before Setup.
func (b *ToggleButton) Timeline() *Timeline { return b.timeline }

// Setup builds the icon timeline. Calling it again is a no-op.
func (b *ToggleButton) Setup() {
	if b.timeline != nil {
		return
	}
	t := b.timing
	tl := NewTimeline(b.node.Name + ".icon")
	tl.Stagger(0, t.LineStagger, len(b.lines), func(i int) []Step {
		l := b.lines[i]
		return []Step{
			ScaleXStep(l, 1, 0, t.LineDuration, t.LineEase),
			AlphaStep(l, 1, 0, t.LineDuration, t.LineEase),
		}
	})
	tl.Stagger(tl.End()+t.Gap, t.CrossStagger, len(b.cross), func(i int) []Step {
		c := b.cross[i]
		return []Step{
			ScaleXStep(c, 0, 1, t.CrossDuration, t.CrossEase),
			AlphaStep(c, 0, 1, t.CrossDuration, t.CrossEase),
		}
	})
	b.timeline = tl
}

// Teardown drops the timeline and shows the lines icon again.
func (b *ToggleButton) Teardown() {
	if b.timeline == nil {
		return
	}
	b.timeline = nil
	for _, l := range b.lines {
		l.Alpha, l.ScaleX = 1, 1
		l.MarkDirty()
	}
	for _, c := range b.cross {
		c.Alpha, c.ScaleX = 0, 0
		c.MarkDirty()
	}
}

// SetOpen plays the icon toward the cross when open and back toward the
// lines otherwise, from wherever it currently is.
func (b *ToggleButton) SetOpen(open bool) {
	if b.timeline == nil {
		return
	}
	if open {
		b.timeline.Play()
	} else {
		b.timeline.Reverse()
	}
}

// ShowsCross reports whether the icon has fully settled on the cross.
func (b *ToggleButton) ShowsCross() bool {
	return b.timeline != nil && b.timeline.State() == TimelineIdleEnd
}
