package navmenu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Polygon ---

// NewPolygon creates an untextured polygon mesh from the given vertices.
// Uses fan triangulation around the first point, so the outline must be
// star-shaped with respect to it. Color comes from the node's Color field.
func NewPolygon(name string, points []Vec2) *Node {
	verts, inds := buildPolygonFan(points)
	return NewMesh(name, verts, inds)
}

// SetPolygonPoints updates the polygon's vertices. Maintains fan triangulation
// and reuses backing arrays when possible.
func SetPolygonPoints(n *Node, points []Vec2) {
	count := len(points)
	if count < 3 {
		n.Vertices = n.Vertices[:0]
		n.Indices = n.Indices[:0]
		return
	}
	if cap(n.Vertices) < count {
		n.Vertices = make([]ebiten.Vertex, count)
	}
	n.Vertices = n.Vertices[:count]
	writeFanVertices(n.Vertices, points)

	ni := (count - 2) * 3
	if cap(n.Indices) < ni {
		n.Indices = make([]uint16, ni)
	}
	n.Indices = n.Indices[:ni]
	writeFanIndices(n.Indices, count)
}

// buildPolygonFan generates vertices and indices for a fan-triangulated polygon.
// N vertices, 3*(N-2) indices.
func buildPolygonFan(points []Vec2) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)
	writeFanVertices(verts, points)
	writeFanIndices(inds, n)
	return verts, inds
}

func writeFanVertices(verts []ebiten.Vertex, points []Vec2) {
	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Untextured: map to center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = 1
		v.ColorG = 1
		v.ColorB = 1
		v.ColorA = 1
	}
}

// writeFanIndices fills a fan triangulation with vertex 0 as the hub.
func writeFanIndices(inds []uint16, n int) {
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
}

// --- Shapes used by the button ---

// NewStroke creates a horizontal bar of the given length and thickness.
// The local origin is the left end of the bar's center line; set PivotX to
// length to scale from the right end, or length/2 to scale from the center.
func NewStroke(name string, length, thickness float64) *Node {
	h := thickness / 2
	return NewPolygon(name, []Vec2{
		{0, -h},
		{length, -h},
		{length, h},
		{0, h},
	})
}

// circleSegments is the number of edges used to approximate circles.
const circleSegments = 32

// NewCircle creates a filled circle centered on the local origin.
func NewCircle(name string, radius float64) *Node {
	points := make([]Vec2, circleSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Vec2{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return NewPolygon(name, points)
}
