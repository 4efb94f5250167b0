package navmenu

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// faceFont is implemented by fonts that can be drawn with text/v2.
// Fonts that only measure (test fonts) are laid out but not drawn.
type faceFont interface {
	Face() *text.GoTextFace
}

// drawNode walks the tree depth-first in painter order. World transforms
// must be current. clip is the active world-space clip when clipped is true.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node, clip Rect, clipped bool) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	if n.hasClip {
		wc := n.worldClip()
		if clipped {
			wc = wc.Intersect(clip)
		}
		if wc.Empty() {
			return
		}
		clip, clipped = wc, true
	}

	target := dst
	if clipped {
		target = dst.SubImage(image.Rect(
			int(clip.X), int(clip.Y),
			int(clip.X+clip.Width+0.5), int(clip.Y+clip.Height+0.5),
		)).(*ebiten.Image)
	}

	if n.Renderable {
		switch n.Type {
		case NodeTypeMesh:
			s.drawMesh(target, n)
		case NodeTypeText:
			drawText(target, n)
		}
	}

	for _, child := range n.children {
		s.drawNode(dst, child, clip, clipped)
	}
}

// transformVertices applies an affine transform and a premultiplied tint to
// src, writing into dst. dst must be at least len(src) in length.
func transformVertices(src, dst []ebiten.Vertex, world ebiten.GeoM, tint Color) {
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		v := &src[i]
		x, y := world.Apply(float64(v.DstX), float64(v.DstY))
		dst[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   v.SrcX,
			SrcY:   v.SrcY,
			ColorR: v.ColorR * cr * ca,
			ColorG: v.ColorG * cg * ca,
			ColorB: v.ColorB * cb * ca,
			ColorA: v.ColorA * ca,
		}
	}
}

// ensureTransformedVerts grows the node's transformedVerts buffer to fit
// len(n.Vertices). It never shrinks.
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

func (s *Scene) drawMesh(dst *ebiten.Image, n *Node) {
	if len(n.Vertices) == 0 || len(n.Indices) == 0 {
		return
	}
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(ColorWhite.toRGBA())
	}
	tint := Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha}
	verts := ensureTransformedVerts(n)
	transformVertices(n.Vertices, verts, n.worldTransform, tint)
	dst.DrawTriangles(verts, n.Indices, s.whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func drawText(dst *ebiten.Image, n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Content == "" {
		return
	}
	f, ok := tb.Font.(faceFont)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = n.worldTransform
	op.ColorScale.Scale(
		float32(tb.Color.R),
		float32(tb.Color.G),
		float32(tb.Color.B),
		float32(tb.Color.A),
	)
	op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
	op.LineSpacing = tb.lineHeight()
	text.Draw(dst, tb.Content, f.Face(), op)
}
