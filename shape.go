package navmenu

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// ShapeKeyframes are the literal boundaries a background layer morphs
// through. Open runs Collapsed -> OpenBulge -> Expanded; close runs
// Expanded -> CloseBulge -> Collapsed. All four must be compatible.
type ShapeKeyframes struct {
	Collapsed  Path
	OpenBulge  Path
	Expanded   Path
	CloseBulge Path
}

// Validate checks that all keyframes share one command structure.
func (k ShapeKeyframes) Validate() error {
	if k.Collapsed == nil {
		return fmt.Errorf("navmenu: collapsed keyframe is missing")
	}
	for _, kf := range []struct {
		name string
		path Path
	}{
		{"open bulge", k.OpenBulge},
		{"expanded", k.Expanded},
		{"close bulge", k.CloseBulge},
	} {
		if !k.Collapsed.Compatible(kf.path) {
			return fmt.Errorf("navmenu: %s keyframe %q is not compatible with collapsed %q", kf.name, kf.path, k.Collapsed)
		}
	}
	return nil
}

// ShapeTiming configures one layer's morph.
type ShapeTiming struct {
	KeyframeDuration float32
	OpenDelay        float32
	CloseDelay       float32
	Ease             ease.TweenFunc
}

// ShapeMorph drives one background layer: a polygon node whose outline is
// interpolated between fixed keyframe paths. It owns an open and a close
// timeline. Only geometry sequencing lives here; the paths are constants.
type ShapeMorph struct {
	name   string
	node   *Node
	width  float64
	height float64
	keys   ShapeKeyframes
	timing ShapeTiming

	boundary Path
	points   []Vec2

	open  *Timeline
	close *Timeline
}

// NewShapeMorph creates a layer named name, filled with fill and sized to
// width x height. The node starts collapsed. Timelines are built by Setup.
func NewShapeMorph(name string, fill Color, width, height float64, keys ShapeKeyframes, timing ShapeTiming) (*ShapeMorph, error) {
	if err := keys.Validate(); err != nil {
		return nil, err
	}
	s := &ShapeMorph{
		name:     name,
		width:    width,
		height:   height,
		keys:     keys,
		timing:   timing,
		boundary: keys.Collapsed.Clone(),
	}
	s.node = NewMesh(name, nil, nil)
	s.node.Color = fill
	s.applyBoundary()
	return s, nil
}

// Node returns the layer's render target.
func (s *ShapeMorph) Node() *Node { return s.node }

// Boundary returns the current outline. The returned path is reused; clone
// it to keep a snapshot.
func (s *ShapeMorph) Boundary() Path { return s.boundary }

// OpenTimeline returns the open timeline, or nil before Setup.
func (s *ShapeMorph) OpenTimeline() *Timeline { return s.open }

// CloseTimeline returns the close timeline, or nil before Setup.
func (s *ShapeMorph) CloseTimeline() *Timeline { return s.close }

// Ready reports whether Setup has built the timelines.
func (s *ShapeMorph) Ready() bool { return s.open != nil }

// Setup builds both timelines. It returns false without building anything
// when the layer's node is not attached to a tree yet.
func (s *ShapeMorph) Setup() bool {
	if s.open != nil {
		return true
	}
	if !s.node.Attached() {
		return false
	}
	s.open = s.morphTimeline(s.name+".open", s.keys.Collapsed, s.keys.OpenBulge, s.keys.Expanded).
		SetDelay(s.timing.OpenDelay)
	s.close = s.morphTimeline(s.name+".close", s.keys.Expanded, s.keys.CloseBulge, s.keys.Collapsed).
		SetDelay(s.timing.CloseDelay)
	return true
}

// Teardown drops the timelines and returns the layer to its collapsed shape.
func (s *ShapeMorph) Teardown() {
	if s.open == nil {
		return
	}
	s.open = nil
	s.close = nil
	LerpPath(s.boundary, s.keys.Collapsed, s.keys.Collapsed, 0)
	s.applyBoundary()
}

// Open restarts the open morph and silences the close morph.
func (s *ShapeMorph) Open() {
	if s.open == nil {
		return
	}
	s.close.Cancel()
	s.open.Restart(true)
}

// Close restarts the close morph and silences the open morph.
func (s *ShapeMorph) Close() {
	if s.open == nil {
		return
	}
	s.open.Cancel()
	s.close.Restart(true)
}

// morphTimeline builds a two-keyframe morph from -> via -> to.
func (s *ShapeMorph) morphTimeline(name string, from, via, to Path) *Timeline {
	d := s.timing.KeyframeDuration
	track := s.name + ".boundary"
	return NewTimeline(name).
		At(0, Step{
			Track: track, From: 0, To: 1, Duration: d, Ease: s.timing.Ease,
			Apply: func(v float32) { s.morph(from, via, v) },
		}).
		At(d, Step{
			Track: track, From: 0, To: 1, Duration: d, Ease: s.timing.Ease,
			Apply: func(v float32) { s.morph(via, to, v) },
		})
}

func (s *ShapeMorph) morph(a, b Path, t float32) {
	LerpPath(s.boundary, a, b, float64(t))
	s.applyBoundary()
}

// applyBoundary rebuilds the polygon from the current outline.
func (s *ShapeMorph) applyBoundary() {
	s.points = s.boundary.Flatten(s.points[:0], s.width, s.height)
	SetPolygonPoints(s.node, s.points)
}

// Resize changes the layer size and rebuilds the polygon.
func (s *ShapeMorph) Resize(width, height float64) {
	s.width, s.height = width, height
	s.applyBoundary()
}
