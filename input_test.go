package navmenu

import "testing"

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 10, Width: 20, Height: 10}
	for _, p := range [][2]float64{{10, 10}, {30, 20}, {15, 15}} {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range [][2]float64{{9, 15}, {31, 15}, {15, 21}} {
		if r.Contains(p[0], p[1]) {
			t.Errorf("%v should be outside", p)
		}
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 5, CenterY: 5, Radius: 5}
	if !c.Contains(5, 10) {
		t.Error("edge point should be inside")
	}
	if c.Contains(9, 9) {
		t.Error("corner point should be outside")
	}
}

func TestMeshContains(t *testing.T) {
	n := NewPolygon("tri", []Vec2{{0, 0}, {10, 0}, {0, 10}})
	if !meshContains(n, 2, 2) {
		t.Error("(2,2) should be inside")
	}
	if meshContains(n, 8, 8) {
		t.Error("(8,8) should be outside")
	}
}

func newClickTarget(name string, x, y float64) *Node {
	n := NewContainer(name)
	n.X, n.Y = x, y
	n.Interactable = true
	n.HitShape = HitRect{Width: 10, Height: 10}
	return n
}

func TestInjectClickFiresOnNode(t *testing.T) {
	s := NewScene()
	n := newClickTarget("target", 50, 50)
	s.Root().AddChild(n)

	var got ClickContext
	clicks := 0
	n.OnClick = func(ctx ClickContext) {
		clicks++
		got = ctx
	}
	s.InjectClick(55, 53)
	s.Advance(0)
	if clicks != 0 {
		t.Fatal("click should not fire on press")
	}
	s.Advance(0)
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if got.Node != n || got.LocalX != 5 || got.LocalY != 3 || got.GlobalX != 55 {
		t.Errorf("ctx = %+v", got)
	}
}

func TestClickRequiresSameNode(t *testing.T) {
	s := NewScene()
	a := newClickTarget("a", 0, 0)
	b := newClickTarget("b", 50, 0)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	clicks := 0
	a.OnClick = func(ClickContext) { clicks++ }
	b.OnClick = func(ClickContext) { clicks++ }

	s.InjectPress(5, 5)
	s.InjectRelease(55, 5)
	s.Advance(0)
	s.Advance(0)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for a drag between nodes", clicks)
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	s := NewScene()
	below := newClickTarget("below", 0, 0)
	above := newClickTarget("above", 5, 5)
	s.Root().AddChild(below)
	s.Root().AddChild(above)
	s.Advance(0)

	if hit := s.hitTest(7, 7); hit != above {
		t.Errorf("hit = %v, want above", hit)
	}
	if hit := s.hitTest(2, 2); hit != below {
		t.Errorf("hit = %v, want below", hit)
	}
}

func TestHitTestSkipsHiddenSubtrees(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	n := newClickTarget("target", 0, 0)
	group.AddChild(n)
	s.Root().AddChild(group)

	group.Visible = false
	s.Advance(0)
	if s.hitTest(5, 5) != nil {
		t.Error("invisible subtree should not be hit")
	}

	group.Visible = true
	group.Alpha = 0
	s.Advance(0)
	if s.hitTest(5, 5) != nil {
		t.Error("transparent subtree should not be hit")
	}

	group.Alpha = 1
	s.Advance(0)
	if s.hitTest(5, 5) != n {
		t.Error("visible target should be hit")
	}
}

func TestHitTestSkipsCollapsedNodes(t *testing.T) {
	s := NewScene()
	n := newClickTarget("target", 0, 0)
	n.ScaleX = 0
	s.Root().AddChild(n)
	s.Advance(0)
	if s.hitTest(0, 5) != nil {
		t.Error("zero-scale node should not be hit")
	}
}

func TestSceneOnClickRunsFirst(t *testing.T) {
	s := NewScene()
	n := newClickTarget("target", 0, 0)
	s.Root().AddChild(n)
	var order []string
	s.OnClick(func(ctx ClickContext) { order = append(order, "scene") })
	n.OnClick = func(ClickContext) { order = append(order, "node") }

	s.InjectClick(5, 5)
	s.Advance(0)
	s.Advance(0)
	if len(order) != 2 || order[0] != "scene" || order[1] != "node" {
		t.Errorf("order = %v, want [scene node]", order)
	}

	// Empty space reaches the scene handler with a nil node.
	var empty ClickContext
	empty.Node = n
	s.OnClick(func(ctx ClickContext) { empty = ctx })
	s.InjectClick(500, 500)
	s.Advance(0)
	s.Advance(0)
	if empty.Node != nil {
		t.Error("click on empty space should report a nil node")
	}
}
