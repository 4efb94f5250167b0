package navmenu

import (
	"strconv"

	"github.com/tanema/gween/ease"
)

// The helpers below build Steps that write a single Node field. Transform
// fields also flag the node dirty so the next frame picks them up.

// AlphaStep animates node.Alpha from one value to another.
func AlphaStep(node *Node, from, to float64, duration float32, fn ease.TweenFunc) Step {
	return Step{
		Track:    trackName(node, "alpha"),
		From:     float32(from),
		To:       float32(to),
		Duration: duration,
		Ease:     fn,
		Apply: func(v float32) {
			node.Alpha = float64(v)
		},
	}
}

// ScaleXStep animates node.ScaleX.
func ScaleXStep(node *Node, from, to float64, duration float32, fn ease.TweenFunc) Step {
	return Step{
		Track:    trackName(node, "scaleX"),
		From:     float32(from),
		To:       float32(to),
		Duration: duration,
		Ease:     fn,
		Apply: func(v float32) {
			node.ScaleX = float64(v)
			node.transformDirty = true
		},
	}
}

// OffsetYStep animates node.Y relative to baseY.
func OffsetYStep(node *Node, baseY, from, to float64, duration float32, fn ease.TweenFunc) Step {
	return Step{
		Track:    trackName(node, "y"),
		From:     float32(from),
		To:       float32(to),
		Duration: duration,
		Ease:     fn,
		Apply: func(v float32) {
			node.Y = baseY + float64(v)
			node.transformDirty = true
		},
	}
}

// VisibleStep switches node.Visible at the moment the playhead reaches it.
// Rewinding past it restores the opposite value.
func VisibleStep(node *Node, visible bool) Step {
	var from, to float32 = 1, 0
	if visible {
		from, to = 0, 1
	}
	return Step{
		Track: trackName(node, "visible"),
		From:  from,
		To:    to,
		Apply: func(v float32) {
			node.Visible = v >= 0.5
		},
	}
}

func trackName(node *Node, prop string) string {
	return node.Name + "#" + strconv.FormatUint(uint64(node.ID), 10) + "." + prop
}
