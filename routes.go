package navmenu

// LinkSize selects the type scale of a menu entry.
type LinkSize uint8

const (
	LinkLarge  LinkSize = iota // primary sections
	LinkMedium                 // secondary pages
	LinkTiny                   // legal pages
)

// Route is one entry of the menu.
type Route struct {
	Label string   `koanf:"label" yaml:"label"`
	Path  string   `koanf:"path" yaml:"path"`
	Size  LinkSize `koanf:"size" yaml:"size"`
	// Gap is extra vertical space above the entry, in pixels.
	Gap float64 `koanf:"gap" yaml:"gap"`
}

// DefaultRoutes is the site navigation the menu ships with.
var DefaultRoutes = []Route{
	{Label: "Home", Path: "/", Size: LinkLarge},
	{Label: "Mission", Path: "/mission", Size: LinkLarge},
	{Label: "Service", Path: "/service", Size: LinkLarge},
	{Label: "Company", Path: "/company", Size: LinkLarge},
	{Label: "Careers", Path: "/careers", Size: LinkLarge},
	{Label: "News", Path: "/posts", Size: LinkMedium, Gap: 20},
	{Label: "Contact", Path: "/contact", Size: LinkMedium},
	{Label: "Terms and Conditions", Path: "/term", Size: LinkTiny, Gap: 20},
	{Label: "Privacy Policy", Path: "/policy", Size: LinkTiny},
}

// IsActive reports whether a link to route should be styled active for the
// current path. Matching is exact string equality.
func IsActive(current string, route Route) bool {
	return current == route.Path
}

// Link is a menu entry bound to its nodes.
type Link struct {
	Route Route
	Node  *Node // container, hit target
	Label *Node // text node, split by the text reveal
	active bool
}

// Active reports whether the link is styled as the current page.
func (l *Link) Active() bool { return l.active }

// setActive applies the active-class styling.
func (l *Link) setActive(active bool, normal, highlight Color) {
	l.active = active
	c := normal
	if active {
		c = highlight
	}
	tintText(l.Label, c)
}

// tintText colors a text node and any text below it, which includes the
// line fragments of a split label.
func tintText(n *Node, c Color) {
	if n.TextBlock != nil {
		n.TextBlock.Color = c
	}
	for _, child := range n.children {
		tintText(child, c)
	}
}
