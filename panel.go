package navmenu

import "github.com/tanema/gween/ease"

// PanelTiming configures the panel fade.
type PanelTiming struct {
	FadeIn  float32
	FadeOut float32
	Ease    ease.TweenFunc
}

// Panel controls the visibility of the link container. Opacity and display
// are separate timelines: showing switches the panel on at once and then
// fades it in, hiding fades it out and switches it off only once the fade is
// over.
type Panel struct {
	node   *Node
	timing PanelTiming

	fadeIn  *Timeline
	fadeOut *Timeline
	show    *Timeline
	hide    *Timeline
}

// NewPanel wraps node, which starts hidden and fully transparent.
func NewPanel(node *Node, timing PanelTiming) *Panel {
	node.Visible = false
	node.Alpha = 0
	return &Panel{node: node, timing: timing}
}

// Node returns the panel container.
func (p *Panel) Node() *Node { return p.node }

// Setup builds the four timelines. Calling it again is a no-op.
func (p *Panel) Setup() {
	if p.fadeIn != nil {
		return
	}
	name := p.node.Name
	p.fadeIn = NewTimeline(name + ".fadeIn").
		At(0, AlphaStep(p.node, 0, 1, p.timing.FadeIn, p.timing.Ease))
	p.fadeOut = NewTimeline(name + ".fadeOut").
		At(0, AlphaStep(p.node, 1, 0, p.timing.FadeOut, p.timing.Ease))
	p.show = NewTimeline(name + ".show").
		At(0, VisibleStep(p.node, true))
	p.hide = NewTimeline(name + ".hide").
		At(0, VisibleStep(p.node, false)).
		SetDelay(p.timing.FadeOut)
}

// Teardown drops the timelines and leaves the panel hidden.
func (p *Panel) Teardown() {
	if p.fadeIn == nil {
		return
	}
	p.fadeIn, p.fadeOut, p.show, p.hide = nil, nil, nil, nil
	p.node.Visible = false
	p.node.Alpha = 0
}

// Timelines returns fadeIn, fadeOut, show and hide in that order.
func (p *Panel) Timelines() []*Timeline {
	if p.fadeIn == nil {
		return nil
	}
	return []*Timeline{p.fadeIn, p.fadeOut, p.show, p.hide}
}

// Show switches the panel on immediately. A pending hide is dropped.
func (p *Panel) Show() {
	if p.show == nil {
		return
	}
	p.hide.Cancel()
	p.show.Restart(false)
}

// Hide switches the panel off once the fade-out duration has elapsed.
func (p *Panel) Hide() {
	if p.hide == nil {
		return
	}
	p.show.Cancel()
	p.hide.Restart(true)
}

// FadeIn restarts the opacity-open timeline.
func (p *Panel) FadeIn() {
	if p.fadeIn == nil {
		return
	}
	p.fadeOut.Cancel()
	p.fadeIn.Restart(false)
}

// FadeOut restarts the opacity-close timeline.
func (p *Panel) FadeOut() {
	if p.fadeOut == nil {
		return
	}
	p.fadeIn.Cancel()
	p.fadeOut.Restart(false)
}
