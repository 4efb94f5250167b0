package navmenu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the timeline
// ticker, input state and render buffers.
type Scene struct {
	root   *Node
	ticker Ticker
	debug  bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	updateFunc func() error
	script     *Script

	// Input state
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	clickFns    []func(ClickContext)

	// Render state
	whitePixel *ebiten.Image
	vertBuf    []ebiten.Vertex
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	root.sceneRoot = true
	return &Scene{root: root}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Ticker returns the scene's timeline ticker. Timelines registered with it
// advance once per Update.
func (s *Scene) Ticker() *Ticker {
	return &s.ticker
}

// SetUpdateFunc registers a callback run once per Update, after input and
// before timelines advance.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and menu and timeline
// activity is logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Update processes input and advances timelines by one tick of
// ebiten.TPS().
func (s *Scene) Update() error {
	return s.Advance(float32(1.0 / float64(ebiten.TPS())))
}

// Advance is Update with an explicit time step. It reads the real mouse only
// when no injected input is queued.
func (s *Scene) Advance(dt float32) error {
	// Refresh world transforms first so hit testing sees this frame's layout.
	updateWorldTransform(s.root, ebiten.GeoM{}, 1.0, false)
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.ticker.Tick(dt)
	s.debugTimelines()
	return nil
}

// Draw renders the scene tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	} else {
		screen.Fill(color.Transparent)
	}
	updateWorldTransform(s.root, ebiten.GeoM{}, 1.0, false)
	s.drawNode(screen, s.root, Rect{}, false)
}
