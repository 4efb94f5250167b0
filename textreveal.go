package navmenu

import (
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Splitter segments a text block into ordered line fragments.
type Splitter interface {
	Split(tb *TextBlock) []string
}

// SplitterFunc adapts a function to the Splitter interface.
type SplitterFunc func(tb *TextBlock) []string

// Split calls f(tb).
func (f SplitterFunc) Split(tb *TextBlock) []string { return f(tb) }

// LineSplitter breaks text at newlines and, when the block has a WrapWidth
// and a Font, greedily wraps words so no line is wider than WrapWidth.
type LineSplitter struct{}

// Split implements Splitter.
func (LineSplitter) Split(tb *TextBlock) []string {
	var out []string
	for _, para := range strings.Split(tb.Content, "\n") {
		if tb.WrapWidth <= 0 || tb.Font == nil {
			out = append(out, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if cw, _ := tb.Font.MeasureString(candidate); cw > tb.WrapWidth {
				out = append(out, line)
				line = w
				continue
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}

// RevealTiming configures the staggered line reveal.
type RevealTiming struct {
	Duration float32
	Stagger  float32
	Delay    float32
	Ease     ease.TweenFunc
}

// TextFragment is one line of a split source text.
type TextFragment struct {
	Source *Node // the text node the line came from
	Box    *Node // clipped line box, child of Source
	Text   *Node // the line itself, child of Box
	Index  int   // position in document order
}

// TextReveal splits a set of text nodes into masked line fragments and
// reveals them with one reversible, staggered timeline.
//
// The split is destructive for the duration of the mount: sources stop
// rendering and their fragments draw instead. Teardown reverts it.
type TextReveal struct {
	sources  []*Node
	splitter Splitter
	timing   RevealTiming

	fragments []TextFragment
	contents  []string // source contents at split time
	timeline  *Timeline

	splits  int
	reverts int

	// OnRebuild is called when Refresh replaces the timeline, so owners can
	// swap their handle.
	OnRebuild func(old, next *Timeline)
}

// NewTextReveal creates a controller over sources, which must be text nodes.
// A nil splitter defaults to LineSplitter.
func NewTextReveal(sources []*Node, splitter Splitter, timing RevealTiming) *TextReveal {
	if splitter == nil {
		splitter = LineSplitter{}
	}
	return &TextReveal{sources: sources, splitter: splitter, timing: timing}
}

// Setup performs the split and builds the timeline, rendered at its start so
// every fragment is hidden. Calling Setup again before Teardown is a no-op.
func (r *TextReveal) Setup() {
	if r.timeline != nil {
		return
	}
	r.split()
	r.splits++
}

// Teardown reverts the split, restoring the original text nodes. Calling it
// when nothing is split is a no-op.
func (r *TextReveal) Teardown() {
	if r.timeline == nil {
		return
	}
	r.revert()
	r.reverts++
}

// IsSplit reports whether the sources are currently split.
func (r *TextReveal) IsSplit() bool { return r.timeline != nil }

// Fragments returns the current fragment set in document order.
func (r *TextReveal) Fragments() []TextFragment { return r.fragments }

// Timeline returns the reveal timeline, or nil when not split.
func (r *TextReveal) Timeline() *Timeline { return r.timeline }

// Refresh re-splits when any source's content changed since the split.
// It reports whether a re-split happened. The old timeline is replaced, so
// callers holding it must re-fetch it.
func (r *TextReveal) Refresh() bool {
	if r.timeline == nil || !r.stale() {
		return false
	}
	old := r.timeline
	r.revert()
	r.split()
	if r.OnRebuild != nil {
		r.OnRebuild(old, r.timeline)
	}
	return true
}

// PlayForward restarts the reveal from its start, including the delay.
// Changed source text is re-split first.
func (r *TextReveal) PlayForward() {
	if r.timeline == nil {
		return
	}
	r.Refresh()
	r.timeline.Restart(true)
}

// PlayBackward reverses the reveal from wherever it currently is.
func (r *TextReveal) PlayBackward() {
	if r.timeline == nil {
		return
	}
	r.timeline.Reverse()
}

func (r *TextReveal) stale() bool {
	for i, src := range r.sources {
		if sourceContent(src) != r.contents[i] {
			return true
		}
	}
	return false
}

// sourceContent returns the text of src, or "" for a node without text.
func sourceContent(src *Node) string {
	if src.TextBlock == nil {
		return ""
	}
	return src.TextBlock.Content
}

func (r *TextReveal) split() {
	r.contents = r.contents[:0]
	for _, src := range r.sources {
		r.contents = append(r.contents, sourceContent(src))
		tb := src.TextBlock
		if tb == nil {
			continue
		}

		lh := tb.lineHeight()
		width, _ := tb.Measure()
		if tb.WrapWidth > 0 {
			width = tb.WrapWidth
		}
		for i, line := range r.splitter.Split(tb) {
			box := NewContainer(src.Name + ".line" + strconv.Itoa(i))
			box.Y = float64(i) * lh
			box.SetClip(Rect{Width: width, Height: lh})

			frag := NewText(box.Name+".text", line, tb.Font)
			frag.TextBlock.Color = tb.Color
			box.AddChild(frag)
			src.AddChild(box)

			r.fragments = append(r.fragments, TextFragment{
				Source: src, Box: box, Text: frag, Index: len(r.fragments),
			})
		}
		src.Renderable = false
	}

	t := r.timing
	tl := NewTimeline("textReveal").SetDelay(t.Delay)
	tl.Stagger(0, t.Stagger, len(r.fragments), func(i int) []Step {
		f := r.fragments[i]
		lh := f.Source.TextBlock.lineHeight()
		y := OffsetYStep(f.Text, 0, lh, 0, t.Duration, t.Ease)
		y.Immediate = true
		a := AlphaStep(f.Text, 0, 1, t.Duration, t.Ease)
		a.Immediate = true
		return []Step{y, a}
	})
	tl.Render()
	r.timeline = tl
}

func (r *TextReveal) revert() {
	for _, f := range r.fragments {
		f.Box.Dispose()
	}
	for _, src := range r.sources {
		src.Renderable = true
	}
	r.fragments = nil
	r.timeline = nil
}
