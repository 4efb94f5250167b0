package navmenu

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func testKeyframes(t *testing.T) ShapeKeyframes {
	t.Helper()
	k, err := DefaultConfig().keyframes()
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func newAttachedMorph(t *testing.T, timing ShapeTiming) (*ShapeMorph, *Scene) {
	t.Helper()
	m, err := NewShapeMorph("layer", MustHexColor("#009B4A"), 200, 100, testKeyframes(t), timing)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.Root().AddChild(m.Node())
	if !m.Setup() {
		t.Fatal("Setup should succeed once attached")
	}
	return m, s
}

func updateBoth(m *ShapeMorph, dt float32) {
	m.OpenTimeline().Update(dt)
	m.CloseTimeline().Update(dt)
}

func TestShapeMorphStartsCollapsed(t *testing.T) {
	m, err := NewShapeMorph("layer", ColorWhite, 200, 100, testKeyframes(t), ShapeTiming{KeyframeDuration: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Boundary().String(); got != PathCollapsed {
		t.Errorf("boundary = %q, want %q", got, PathCollapsed)
	}
	if len(m.Node().Vertices) < 3 {
		t.Errorf("polygon should be built, got %d vertices", len(m.Node().Vertices))
	}
}

func TestShapeMorphSetupRequiresAttachment(t *testing.T) {
	m, err := NewShapeMorph("layer", ColorWhite, 200, 100, testKeyframes(t), ShapeTiming{KeyframeDuration: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if m.Setup() {
		t.Fatal("Setup should fail while detached")
	}
	if m.Ready() || m.OpenTimeline() != nil {
		t.Fatal("no timelines should be built while detached")
	}
	m.Open() // no-op, must not panic

	s := NewScene()
	s.Root().AddChild(m.Node())
	if !m.Setup() || !m.Ready() {
		t.Fatal("Setup should succeed once attached")
	}
	open := m.OpenTimeline()
	m.Setup()
	if m.OpenTimeline() != open {
		t.Error("second Setup should keep the existing timelines")
	}
}

func TestShapeMorphOpenReachesExpanded(t *testing.T) {
	m, _ := newAttachedMorph(t, ShapeTiming{KeyframeDuration: 0.5, Ease: ease.InOutCubic})
	m.Open()

	updateBoth(m, 0.25)
	updateBoth(m, 0.25)
	if got := m.Boundary().String(); got != PathOpenBulge {
		t.Errorf("halfway boundary = %q, want %q", got, PathOpenBulge)
	}
	updateBoth(m, 0.25)
	updateBoth(m, 0.25)
	if got := m.Boundary().String(); got != PathExpanded {
		t.Errorf("final boundary = %q, want %q", got, PathExpanded)
	}
	if m.OpenTimeline().State() != TimelineIdleEnd {
		t.Errorf("open state = %s, want idle-at-end", m.OpenTimeline().State())
	}

	// The expanded polygon reaches the bottom-right corner.
	found := false
	for _, v := range m.Node().Vertices {
		if v.DstX == 200 && v.DstY == 100 {
			found = true
		}
	}
	if !found {
		t.Error("expanded polygon should contain (200, 100)")
	}
}

func TestShapeMorphOpenDelay(t *testing.T) {
	m, _ := newAttachedMorph(t, ShapeTiming{KeyframeDuration: 0.5, OpenDelay: 0.2, Ease: ease.Linear})
	m.Open()
	updateBoth(m, 0.1)
	if got := m.Boundary().String(); got != PathCollapsed {
		t.Errorf("boundary during delay = %q, want collapsed", got)
	}
	updateBoth(m, 2)
	if got := m.Boundary().String(); got != PathExpanded {
		t.Errorf("final boundary = %q, want expanded", got)
	}
}

func TestShapeMorphCloseReturnsToCollapsed(t *testing.T) {
	m, _ := newAttachedMorph(t, ShapeTiming{KeyframeDuration: 0.5, CloseDelay: 0.25, Ease: ease.InOutCubic})
	m.Open()
	updateBoth(m, 2)

	m.Close()
	updateBoth(m, 0.125)
	if got := m.Boundary().String(); got != PathExpanded {
		t.Errorf("boundary during close delay = %q, want expanded", got)
	}
	updateBoth(m, 0.125)
	updateBoth(m, 0.5)
	if got := m.Boundary().String(); got != PathCloseBulge {
		t.Errorf("halfway boundary = %q, want %q", got, PathCloseBulge)
	}
	updateBoth(m, 2)
	if got := m.Boundary().String(); got != PathCollapsed {
		t.Errorf("final boundary = %q, want collapsed", got)
	}
}

func TestShapeMorphRapidOpenCloseEndsCollapsed(t *testing.T) {
	m, _ := newAttachedMorph(t, ShapeTiming{KeyframeDuration: 0.5, OpenDelay: 0.2, Ease: ease.InOutCubic})
	m.Open()
	m.Close()
	for i := 0; i < 20; i++ {
		updateBoth(m, 0.25)
	}
	if got := m.Boundary().String(); got != PathCollapsed {
		t.Errorf("boundary = %q, want collapsed", got)
	}
	if m.OpenTimeline().Active() {
		t.Error("open timeline should have been cancelled")
	}
}

func TestShapeMorphTeardown(t *testing.T) {
	m, _ := newAttachedMorph(t, ShapeTiming{KeyframeDuration: 0.5})
	m.Open()
	updateBoth(m, 2)
	m.Teardown()
	if m.Ready() {
		t.Error("Ready should be false after Teardown")
	}
	if got := m.Boundary().String(); got != PathCollapsed {
		t.Errorf("boundary = %q, want collapsed", got)
	}
	m.Teardown() // idempotent
	m.Close()    // no-op
}

func TestShapeKeyframesValidate(t *testing.T) {
	k := testKeyframes(t)
	if err := k.Validate(); err != nil {
		t.Fatalf("default keyframes: %v", err)
	}
	k.Expanded = MustParsePath("M0,0 H100 V100 Z")
	if err := k.Validate(); err == nil {
		t.Error("expected error for incompatible keyframe")
	}
	if _, err := NewShapeMorph("x", ColorWhite, 1, 1, k, ShapeTiming{}); err == nil {
		t.Error("NewShapeMorph should reject incompatible keyframes")
	}
	if err := (ShapeKeyframes{}).Validate(); err == nil {
		t.Error("expected error for missing keyframes")
	}
}
