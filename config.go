package navmenu

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Keyframe literals for the background layers, in a 100x100 view box.
const (
	PathCollapsed  = "M0,0 H100 V0 H100 V0 Q50,0 0,0 Z"
	PathOpenBulge  = "M0,0 H100 V0 H100 V50 Q50,70 0,50 Z"
	PathExpanded   = "M0,0 H100 V0 H100 V100 Q50,100 0,100 Z"
	PathCloseBulge = "M0,0 H100 V0 H100 V50 Q50,30 0,50 Z"
)

// Config is the complete choreography and styling of the menu.
type Config struct {
	Width  float64 `yaml:"width" koanf:"width"`
	Height float64 `yaml:"height" koanf:"height"`
	// Path is the current page, used for active-link styling until the
	// router calls SetPath.
	Path   string       `yaml:"path" koanf:"path"`
	Colors ColorConfig  `yaml:"colors" koanf:"colors"`
	Shape  ShapeConfig  `yaml:"shape" koanf:"shape"`
	Panel  PanelConfig  `yaml:"panel" koanf:"panel"`
	Text   TextConfig   `yaml:"text" koanf:"text"`
	Icon   IconConfig   `yaml:"icon" koanf:"icon"`
	Button ButtonConfig `yaml:"button" koanf:"button"`
	Routes []Route      `yaml:"routes" koanf:"routes"`
}

// ColorConfig holds hex colors.
type ColorConfig struct {
	Primary   string `yaml:"primary" koanf:"primary"`
	Secondary string `yaml:"secondary" koanf:"secondary"`
	Button    string `yaml:"button" koanf:"button"`
	Icon      string `yaml:"icon" koanf:"icon"`
	Link      string `yaml:"link" koanf:"link"`
	Active    string `yaml:"active" koanf:"active"`
}

// ShapeConfig drives the two background layers.
type ShapeConfig struct {
	Collapsed        string  `yaml:"collapsed" koanf:"collapsed"`
	OpenBulge        string  `yaml:"open_bulge" koanf:"open_bulge"`
	Expanded         string  `yaml:"expanded" koanf:"expanded"`
	CloseBulge       string  `yaml:"close_bulge" koanf:"close_bulge"`
	KeyframeDuration float32 `yaml:"keyframe_duration" koanf:"keyframe_duration"`
	// Stagger delays the secondary layer on open and the primary layer on
	// close, so the top layer arrives last and leaves first.
	Stagger float32 `yaml:"stagger" koanf:"stagger"`
	Ease    string  `yaml:"ease" koanf:"ease"`
}

// PanelConfig drives the link container fade.
type PanelConfig struct {
	FadeIn  float32 `yaml:"fade_in" koanf:"fade_in"`
	FadeOut float32 `yaml:"fade_out" koanf:"fade_out"`
	Ease    string  `yaml:"ease" koanf:"ease"`
}

// TextConfig drives the line reveal and link type scale.
type TextConfig struct {
	Duration   float32 `yaml:"duration" koanf:"duration"`
	Stagger    float32 `yaml:"stagger" koanf:"stagger"`
	Delay      float32 `yaml:"delay" koanf:"delay"`
	Ease       string  `yaml:"ease" koanf:"ease"`
	LargeSize  float64 `yaml:"large_size" koanf:"large_size"`
	MediumSize float64 `yaml:"medium_size" koanf:"medium_size"`
	TinySize   float64 `yaml:"tiny_size" koanf:"tiny_size"`
	// Indent is the left padding of the link column.
	Indent float64 `yaml:"indent" koanf:"indent"`
	// Spacing is the vertical gap between links.
	Spacing float64 `yaml:"spacing" koanf:"spacing"`
}

// IconConfig drives the button icon morph.
type IconConfig struct {
	LineDuration  float32 `yaml:"line_duration" koanf:"line_duration"`
	LineStagger   float32 `yaml:"line_stagger" koanf:"line_stagger"`
	LineEase      string  `yaml:"line_ease" koanf:"line_ease"`
	Gap           float32 `yaml:"gap" koanf:"gap"`
	CrossDuration float32 `yaml:"cross_duration" koanf:"cross_duration"`
	CrossStagger  float32 `yaml:"cross_stagger" koanf:"cross_stagger"`
	CrossEase     string  `yaml:"cross_ease" koanf:"cross_ease"`
}

// ButtonConfig places and sizes the toggle button.
type ButtonConfig struct {
	Radius    float64 `yaml:"radius" koanf:"radius"`
	Right     float64 `yaml:"right" koanf:"right"`
	Top       float64 `yaml:"top" koanf:"top"`
	IconSize  float64 `yaml:"icon_size" koanf:"icon_size"`
	Thickness float64 `yaml:"thickness" koanf:"thickness"`
}

// DefaultConfig returns the stock choreography.
func DefaultConfig() *Config {
	return &Config{
		Width:  1280,
		Height: 720,
		Path:   "/",
		Colors: ColorConfig{
			Primary:   "#009B4A",
			Secondary: "#f5f1ee",
			Button:    "#0e3c3b",
			Icon:      "#ffffff",
			Link:      "#0e3c3b",
			Active:    "#009B4A",
		},
		Shape: ShapeConfig{
			Collapsed:        PathCollapsed,
			OpenBulge:        PathOpenBulge,
			Expanded:         PathExpanded,
			CloseBulge:       PathCloseBulge,
			KeyframeDuration: 0.5,
			Stagger:          0.2,
			Ease:             "power2.inOut",
		},
		Panel: PanelConfig{
			FadeIn:  0.1,
			FadeOut: 0.5,
			Ease:    "power2.inOut",
		},
		Text: TextConfig{
			Duration:   0.6,
			Stagger:    0.1,
			Delay:      0.5,
			Ease:       "expo.out",
			LargeSize:  56,
			MediumSize: 28,
			TinySize:   14,
			Indent:     40,
			Spacing:    8,
		},
		Icon: IconConfig{
			LineDuration:  0.25,
			LineStagger:   0.07,
			LineEase:      "power2.inOut",
			Gap:           0.1,
			CrossDuration: 0.3,
			CrossStagger:  0.08,
			CrossEase:     "power2.out",
		},
		Button: ButtonConfig{
			Radius:    30,
			Right:     32,
			Top:       16,
			IconSize:  28,
			Thickness: 2.1,
		},
		Routes: append([]Route(nil), DefaultRoutes...),
	}
}

// LoadConfig reads configuration from the given YAML file on top of the
// defaults, then overlays environment variable overrides (NAVMENU_*). A
// double underscore separates nesting levels, so NAVMENU_PANEL__FADE_OUT
// sets panel.fade_out. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("navmenu: reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("navmenu: accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("NAVMENU_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "NAVMENU_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("navmenu: loading env overrides: %w", err)
	}

	// Lists replace the defaults instead of merging into them by index.
	if k.Exists("routes") {
		cfg.Routes = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("navmenu: unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("navmenu: writing config to %s: %w", path, err)
	}
	return nil
}

// YAML returns the configuration encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("navmenu: marshalling config: %w", err)
	}
	return data, nil
}

type namedString struct {
	name  string
	value string
}

type namedDuration struct {
	name  string
	value float32
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("navmenu: size %gx%g must be positive", c.Width, c.Height)
	}
	for _, f := range []namedString{
		{"primary", c.Colors.Primary},
		{"secondary", c.Colors.Secondary},
		{"button", c.Colors.Button},
		{"icon", c.Colors.Icon},
		{"link", c.Colors.Link},
		{"active", c.Colors.Active},
	} {
		if _, err := ParseHexColor(f.value); err != nil {
			return fmt.Errorf("navmenu: colors.%s: %w", f.name, err)
		}
	}
	if _, err := c.keyframes(); err != nil {
		return err
	}
	for _, f := range []namedString{
		{"shape.ease", c.Shape.Ease},
		{"panel.ease", c.Panel.Ease},
		{"text.ease", c.Text.Ease},
		{"icon.line_ease", c.Icon.LineEase},
		{"icon.cross_ease", c.Icon.CrossEase},
	} {
		if _, err := ParseEase(f.value); err != nil {
			return fmt.Errorf("navmenu: %s: %w", f.name, err)
		}
	}
	for _, f := range []namedDuration{
		{"shape.keyframe_duration", c.Shape.KeyframeDuration},
		{"panel.fade_in", c.Panel.FadeIn},
		{"panel.fade_out", c.Panel.FadeOut},
		{"text.duration", c.Text.Duration},
		{"icon.line_duration", c.Icon.LineDuration},
		{"icon.cross_duration", c.Icon.CrossDuration},
	} {
		if f.value <= 0 {
			return fmt.Errorf("navmenu: %s must be positive, got %g", f.name, f.value)
		}
	}
	for _, f := range []namedDuration{
		{"shape.stagger", c.Shape.Stagger},
		{"text.stagger", c.Text.Stagger},
		{"text.delay", c.Text.Delay},
		{"icon.line_stagger", c.Icon.LineStagger},
		{"icon.gap", c.Icon.Gap},
		{"icon.cross_stagger", c.Icon.CrossStagger},
	} {
		if f.value < 0 {
			return fmt.Errorf("navmenu: %s must not be negative, got %g", f.name, f.value)
		}
	}
	if len(c.Routes) == 0 {
		return fmt.Errorf("navmenu: at least one route is required")
	}
	for i, r := range c.Routes {
		if r.Label == "" || r.Path == "" {
			return fmt.Errorf("navmenu: route %d needs a label and a path", i)
		}
		if r.Size > LinkTiny {
			return fmt.Errorf("navmenu: route %q has unknown size %d", r.Path, r.Size)
		}
	}
	return nil
}

// keyframes parses the four shape paths.
func (c *Config) keyframes() (ShapeKeyframes, error) {
	var k ShapeKeyframes
	for _, kf := range []struct {
		name string
		src  string
		dst  *Path
	}{
		{"shape.collapsed", c.Shape.Collapsed, &k.Collapsed},
		{"shape.open_bulge", c.Shape.OpenBulge, &k.OpenBulge},
		{"shape.expanded", c.Shape.Expanded, &k.Expanded},
		{"shape.close_bulge", c.Shape.CloseBulge, &k.CloseBulge},
	} {
		p, err := ParsePath(kf.src)
		if err != nil {
			return k, fmt.Errorf("navmenu: %s: %w", kf.name, err)
		}
		*kf.dst = p
	}
	if err := k.Validate(); err != nil {
		return k, err
	}
	return k, nil
}

// --- Timing conversion ---

func (c *Config) shapeTiming(primary bool) ShapeTiming {
	t := ShapeTiming{
		KeyframeDuration: c.Shape.KeyframeDuration,
		Ease:             mustEase(c.Shape.Ease),
	}
	if primary {
		t.CloseDelay = c.Shape.Stagger
	} else {
		t.OpenDelay = c.Shape.Stagger
	}
	return t
}

func (c *Config) panelTiming() PanelTiming {
	return PanelTiming{
		FadeIn:  c.Panel.FadeIn,
		FadeOut: c.Panel.FadeOut,
		Ease:    mustEase(c.Panel.Ease),
	}
}

func (c *Config) revealTiming() RevealTiming {
	return RevealTiming{
		Duration: c.Text.Duration,
		Stagger:  c.Text.Stagger,
		Delay:    c.Text.Delay,
		Ease:     mustEase(c.Text.Ease),
	}
}

func (c *Config) iconTiming() IconTiming {
	return IconTiming{
		LineDuration:  c.Icon.LineDuration,
		LineStagger:   c.Icon.LineStagger,
		LineEase:      mustEase(c.Icon.LineEase),
		Gap:           c.Icon.Gap,
		CrossDuration: c.Icon.CrossDuration,
		CrossStagger:  c.Icon.CrossStagger,
		CrossEase:     mustEase(c.Icon.CrossEase),
	}
}
