package navmenu

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hitNode *Node
	button  MouseButton // button captured at press time
}

// OnClick registers a scene-level click handler, called before the clicked
// node's own OnClick. Clicks on empty space are reported with a nil Node.
func (s *Scene) OnClick(fn func(ClickContext)) {
	s.clickFns = append(s.clickFns, fn)
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; meshes fall back to their triangles.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Type == NodeTypeMesh {
		return meshContains(n, lx, ly)
	}
	return false
}

// meshContains reports whether (x, y) lies in any triangle of the mesh.
func meshContains(n *Node, x, y float64) bool {
	v := n.Vertices
	for i := 0; i+2 < len(n.Indices); i += 3 {
		a, b, c := v[n.Indices[i]], v[n.Indices[i+1]], v[n.Indices[i+2]]
		if pointInTriangle(x, y,
			float64(a.DstX), float64(a.DstY),
			float64(b.DstX), float64(b.DstY),
			float64(c.DstX), float64(c.DstY)) {
			return true
		}
	}
	return false
}

func pointInTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := (px-bx)*(ay-by) - (ax-bx)*(py-by)
	d2 := (px-cx)*(by-cy) - (bx-cx)*(py-cy)
	d3 := (px-ax)*(cy-ay) - (cx-ax)*(py-ay)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// collectInteractable walks the tree in painter order, appending nodes that
// can receive clicks to buf. Invisible subtrees are skipped; a
// non-interactable node still lets its children through.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.worldAlpha <= 0 {
		return buf
	}
	if n.Interactable && (n.HitShape != nil || n.Type == NodeTypeMesh) {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		// Collapsed nodes have a singular transform.
		if n.ScaleX == 0 || n.ScaleY == 0 {
			continue
		}
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Advance. Injected events take priority
// over the real mouse for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
}

// processMousePointer handles the mouse.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the press/release state machine. A click fires when
// press and release land on the same node.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = s.hitTest(wx, wy)
	case !pressed && ps.down:
		target := s.hitTest(wx, wy)
		if ps.hitNode == target {
			s.fireClick(target, wx, wy, ps.button)
		}
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX = wx
	ps.lastY = wy
}

func (s *Scene) fireClick(node *Node, wx, wy float64, button MouseButton) {
	var lx, ly float64
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
	}
	ctx := ClickContext{
		Node:    node,
		GlobalX: wx, GlobalY: wy,
		LocalX: lx, LocalY: ly,
		Button: button,
	}
	for _, fn := range s.clickFns {
		fn(ctx)
	}
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
}
