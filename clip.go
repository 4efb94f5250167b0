package navmenu

// SetClip restricts drawing of this node and its subtree to r, given in the
// node's local coordinates. Rotation is ignored: the clip is the axis-aligned
// bounds of r in world space.
func (n *Node) SetClip(r Rect) {
	n.clip = r
	n.hasClip = true
}

// ClearClip removes the clip from this node.
func (n *Node) ClearClip() {
	n.clip = Rect{}
	n.hasClip = false
}

// Clip returns the current clip rect and whether one is set.
func (n *Node) Clip() (Rect, bool) {
	return n.clip, n.hasClip
}

// worldClip returns the world-space bounds of the node's clip rect.
func (n *Node) worldClip() Rect {
	r := n.clip
	x0, y0 := n.LocalToWorld(r.X, r.Y)
	x1, y1 := n.LocalToWorld(r.X+r.Width, r.Y+r.Height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
