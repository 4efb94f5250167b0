package navmenu

import (
	"fmt"
)

// MenuState is the open/closed toggle state of a Menu.
type MenuState uint8

const (
	StateClosed MenuState = iota // default
	StateOpen
)

func (s MenuState) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

func (s MenuState) next() MenuState {
	if s == StateOpen {
		return StateClosed
	}
	return StateOpen
}

// FontSet provides one font per link size. Any of them may be nil, in which
// case that size falls back to Large.
type FontSet struct {
	Large  Font
	Medium Font
	Tiny   Font
}

// For returns the font for size.
func (f FontSet) For(size LinkSize) Font {
	switch {
	case size == LinkMedium && f.Medium != nil:
		return f.Medium
	case size == LinkTiny && f.Tiny != nil:
		return f.Tiny
	}
	return f.Large
}

// Options configures New.
type Options struct {
	Config   *Config  // nil = DefaultConfig()
	Fonts    FontSet  // link fonts
	Splitter Splitter // nil = LineSplitter
}

// Bindings is what a host view binds to: the open flag for styling and the
// callback for its own toggle control.
type Bindings struct {
	IsOpen   bool
	OnToggle func()
}

// Menu orchestrates the widget. It owns the toggle state and, after
// Initialize, holds the timelines of every sub-controller keyed by
// controller name. Each toggle runs the entry action of the state it moves
// into; every timeline an entry action touches is restarted from its start,
// so toggling mid-animation jumps instead of queueing.
//
// Menu is not safe for concurrent use; call it from the game loop.
type Menu struct {
	cfg   *Config
	scene *Scene

	root      *Node
	primary   *ShapeMorph
	secondary *ShapeMorph
	panel     *Panel
	reveal    *TextReveal
	button    *ToggleButton
	links     []*Link

	linkColor   Color
	activeColor Color

	state     MenuState
	ready     bool
	path      string
	timelines map[string][]*Timeline
	enter     [2]func()

	// OnStateChange is called after every toggle with the new state.
	OnStateChange func(MenuState)
	// OnNavigate is called when a link is clicked, before the menu closes.
	OnNavigate func(path string)
}

// Controller names used as keys of Timelines.
const (
	ControllerPrimary   = "primary"
	ControllerSecondary = "secondary"
	ControllerPanel     = "panel"
	ControllerText      = "text"
	ControllerButton    = "button"
)

// New builds the menu's nodes under a detached root container. Nothing
// animates until the root is mounted and Initialize has run.
func New(scene *Scene, opts Options) (*Menu, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keys, err := cfg.keyframes()
	if err != nil {
		return nil, err
	}
	colors, err := parseColors(cfg.Colors)
	if err != nil {
		return nil, err
	}

	m := &Menu{
		cfg:         cfg,
		scene:       scene,
		path:        cfg.Path,
		linkColor:   colors.link,
		activeColor: colors.active,
	}
	m.enter = [2]func(){
		StateClosed: m.enterClosed,
		StateOpen:   m.enterOpen,
	}

	m.root = NewContainer("navmenu")

	m.primary, err = NewShapeMorph("primary", colors.primary, cfg.Width, cfg.Height, keys, cfg.shapeTiming(true))
	if err != nil {
		return nil, err
	}
	m.secondary, err = NewShapeMorph("secondary", colors.secondary, cfg.Width, cfg.Height, keys, cfg.shapeTiming(false))
	if err != nil {
		return nil, err
	}
	m.root.AddChild(m.primary.Node())
	m.root.AddChild(m.secondary.Node())

	m.panel = NewPanel(m.buildLinks(opts.Fonts), cfg.panelTiming())
	m.root.AddChild(m.panel.Node())

	labels := make([]*Node, len(m.links))
	for i, l := range m.links {
		labels[i] = l.Label
	}
	m.reveal = NewTextReveal(labels, opts.Splitter, cfg.revealTiming())
	m.reveal.OnRebuild = m.swapTextTimeline

	m.button = NewToggleButton("button", ButtonStyle{
		Radius:     cfg.Button.Radius,
		Background: colors.button,
		Stroke:     colors.icon,
		IconSize:   cfg.Button.IconSize,
		Thickness:  cfg.Button.Thickness,
	}, cfg.iconTiming())
	m.button.Node().X = cfg.Width - cfg.Button.Right - cfg.Button.Radius
	m.button.Node().Y = cfg.Button.Top + cfg.Button.Radius
	m.button.OnToggle = m.Toggle
	m.root.AddChild(m.button.Node())

	m.refresh()
	return m, nil
}

// buildLinks lays out the link column, vertically centered, and returns the
// panel container.
func (m *Menu) buildLinks(fonts FontSet) *Node {
	cfg := m.cfg
	panel := NewContainer("panel")

	y := 0.0
	for i, r := range cfg.Routes {
		font := fonts.For(r.Size)
		if i > 0 {
			y += cfg.Text.Spacing
		}
		y += r.Gap

		label := NewText("link"+r.Path+".label", r.Label, font)
		w, h := label.TextBlock.Measure()

		node := NewContainer("link" + r.Path)
		node.X = cfg.Text.Indent
		node.Y = y
		node.HitShape = HitRect{Width: w, Height: h}
		node.AddChild(label)
		panel.AddChild(node)

		l := &Link{Route: r, Node: node, Label: label}
		path := r.Path
		node.OnClick = func(ClickContext) { m.navigate(path) }
		m.links = append(m.links, l)

		y += h
	}
	panel.Y = (cfg.Height - y) / 2
	return panel
}

type menuColors struct {
	primary, secondary, button, icon, link, active Color
}

func parseColors(c ColorConfig) (menuColors, error) {
	var out menuColors
	for _, kv := range []struct {
		hex string
		dst *Color
	}{
		{c.Primary, &out.primary},
		{c.Secondary, &out.secondary},
		{c.Button, &out.button},
		{c.Icon, &out.icon},
		{c.Link, &out.link},
		{c.Active, &out.active},
	} {
		col, err := ParseHexColor(kv.hex)
		if err != nil {
			return out, err
		}
		*kv.dst = col
	}
	return out, nil
}

// --- Lifecycle ---

// Root returns the menu's root container.
func (m *Menu) Root() *Node { return m.root }

// Mount attaches the menu under parent and initializes it.
func (m *Menu) Mount(parent *Node) {
	parent.AddChild(m.root)
	m.Initialize()
}

// Unmount disposes the menu's timelines, reverts the text split and detaches
// the root. Unmounting twice is a no-op.
func (m *Menu) Unmount() {
	m.Dispose()
	m.root.RemoveFromParent()
}

// Initialize builds every timeline, splits the link text and registers the
// timelines with the scene's ticker. It is a silent no-op while either
// background layer is not attached to a scene; Toggle stays inert until a
// later Initialize succeeds. Initializing twice is a no-op.
func (m *Menu) Initialize() {
	if m.ready {
		return
	}
	if !m.primary.Node().Attached() || !m.secondary.Node().Attached() {
		m.scene.debugf("menu setup skipped: background layers not attached")
		return
	}
	m.primary.Setup()
	m.secondary.Setup()
	m.panel.Setup()
	m.reveal.Setup()
	m.button.Setup()

	m.timelines = map[string][]*Timeline{
		ControllerPrimary:   {m.primary.OpenTimeline(), m.primary.CloseTimeline()},
		ControllerSecondary: {m.secondary.OpenTimeline(), m.secondary.CloseTimeline()},
		ControllerPanel:     m.panel.Timelines(),
		ControllerText:      {m.reveal.Timeline()},
		ControllerButton:    {m.button.Timeline()},
	}
	for _, name := range []string{ControllerPrimary, ControllerSecondary, ControllerPanel, ControllerText, ControllerButton} {
		for _, tl := range m.timelines[name] {
			m.scene.Ticker().Add(tl)
		}
	}

	m.state = StateClosed
	m.ready = true
	m.refresh()
	m.scene.debugf("menu initialized: %d links, %d fragments", len(m.links), len(m.reveal.Fragments()))
}

// Dispose unregisters and drops every timeline and reverts the text split.
// Disposing twice, or before a successful Initialize, is a no-op.
func (m *Menu) Dispose() {
	if !m.ready {
		return
	}
	for _, tls := range m.timelines {
		for _, tl := range tls {
			m.scene.Ticker().Remove(tl)
		}
	}
	m.reveal.Teardown()
	m.primary.Teardown()
	m.secondary.Teardown()
	m.panel.Teardown()
	m.button.Teardown()

	m.timelines = nil
	m.ready = false
	m.state = StateClosed
	m.refresh()
	m.scene.debugf("menu disposed")
}

// Ready reports whether Initialize has succeeded.
func (m *Menu) Ready() bool { return m.ready }

// swapTextTimeline replaces the reveal timeline after a re-split.
func (m *Menu) swapTextTimeline(old, next *Timeline) {
	if !m.ready {
		return
	}
	m.scene.Ticker().Remove(old)
	m.scene.Ticker().Add(next)
	m.timelines[ControllerText] = []*Timeline{next}
	m.scene.debugf("text re-split: %d fragments", len(m.reveal.Fragments()))
}

// --- State machine ---

// State returns the current toggle state.
func (m *Menu) State() MenuState { return m.state }

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool { return m.state == StateOpen }

// Toggle moves to the other state: it runs that state's entry action, flips
// the state and tells the button to follow. It returns right after issuing
// playback commands; the animation completes over later frames.
func (m *Menu) Toggle() {
	if !m.ready {
		return
	}
	next := m.state.next()
	m.enter[next]()
	m.state = next
	m.button.SetOpen(next == StateOpen)
	m.refresh()
	m.scene.debugf("menu %s", next)
	if m.OnStateChange != nil {
		m.OnStateChange(next)
	}
}

func (m *Menu) enterOpen() {
	m.primary.Open()
	m.secondary.Open()
	m.reveal.PlayForward()
	m.panel.Show()
	m.panel.FadeIn()
}

func (m *Menu) enterClosed() {
	m.primary.Close()
	m.secondary.Close()
	m.reveal.PlayBackward()
	m.panel.FadeOut()
	m.panel.Hide()
}

// Timelines returns the timelines of every controller keyed by controller
// name, or nil before Initialize. The map is owned by the menu.
func (m *Menu) Timelines() map[string][]*Timeline { return m.timelines }

// Bindings returns the values a host view binds to.
func (m *Menu) Bindings() Bindings {
	return Bindings{IsOpen: m.IsOpen(), OnToggle: m.Toggle}
}

// --- Routing ---

// SetPath records the current page and restyles the links.
func (m *Menu) SetPath(path string) {
	m.path = path
	m.refresh()
}

// Path returns the current page.
func (m *Menu) Path() string { return m.path }

// Links returns the menu entries in display order.
func (m *Menu) Links() []*Link { return m.links }

// Link returns the entry for path, or nil.
func (m *Menu) Link(path string) *Link {
	for _, l := range m.links {
		if l.Route.Path == path {
			return l
		}
	}
	return nil
}

func (m *Menu) navigate(path string) {
	if m.OnNavigate != nil {
		m.OnNavigate(path)
	}
	m.SetPath(path)
	if m.IsOpen() {
		m.Toggle()
	}
}

// refresh reapplies the state-dependent bindings: link styling and whether
// links accept clicks.
func (m *Menu) refresh() {
	open := m.IsOpen()
	for _, l := range m.links {
		l.setActive(IsActive(m.path, l.Route), m.linkColor, m.activeColor)
		l.Node.Interactable = open
	}
}

// String implements fmt.Stringer for debugging.
func (m *Menu) String() string {
	return fmt.Sprintf("navmenu.Menu{state: %s, ready: %t, path: %q}", m.state, m.ready, m.path)
}
