package navmenu

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugf prints a line to stderr when the scene is in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if s == nil || !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[navmenu] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("navmenu debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[navmenu] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugTimelines logs the state of every registered timeline that is not
// idle at its start.
func (s *Scene) debugTimelines() {
	if !s.debug {
		return
	}
	for _, tl := range s.ticker.timelines {
		if tl.State() == TimelineIdleStart {
			continue
		}
		_, _ = fmt.Fprintf(os.Stderr, "[navmenu] timeline %s: %s @ %.3f/%.3f\n",
			tl.Name, tl.State(), tl.Position(), tl.Duration())
	}
}
