package navmenu

import "github.com/hajimehoshi/ebiten/v2"

// localGeoM builds the node's local matrix: the pivot is moved to the
// origin, then the node is scaled, rotated and placed at (X, Y).
func localGeoM(n *Node) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-n.PivotX, -n.PivotY)
	g.Scale(n.ScaleX, n.ScaleY)
	g.Rotate(n.Rotation)
	g.Translate(n.X, n.Y)
	return g
}

// updateWorldTransform refreshes the world matrix of n and its subtree.
// Matrices are rebuilt only below a dirty node; world alpha is refreshed on
// every pass because timelines write Alpha without flagging the node.
func updateWorldTransform(n *Node, parent ebiten.GeoM, parentAlpha float64, parentChanged bool) {
	changed := parentChanged || n.transformDirty
	if changed {
		g := localGeoM(n)
		g.Concat(parent)
		n.worldTransform = g
		n.transformDirty = false
	}
	n.worldAlpha = parentAlpha * n.Alpha
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, changed)
	}
}

// MarkDirty flags the node so its world matrix is rebuilt on the next frame.
// Call it after writing X, Y, ScaleX, ScaleY, Rotation or the pivot directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldToLocal maps a world-space point into the node's local space. A node
// collapsed to zero scale has no inverse; the point is then only shifted by
// the node's world origin.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := n.worldTransform
	if !inv.IsInvertible() {
		ox, oy := n.worldTransform.Apply(0, 0)
		return wx - ox, wy - oy
	}
	inv.Invert()
	return inv.Apply(wx, wy)
}

// LocalToWorld maps a local-space point into world space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldTransform.Apply(lx, ly)
}
