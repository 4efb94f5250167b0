package navmenu

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TextBlock holds text content and formatting for a text node.
type TextBlock struct {
	Content   string
	Font      Font
	WrapWidth float64 // 0 = no wrapping, only explicit newlines break lines
	Color     Color
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.Font == nil {
		return 0
	}
	return tb.Font.LineHeight()
}

// Measure returns the width and height of the block's content.
func (tb *TextBlock) Measure() (width, height float64) {
	if tb.Font == nil || tb.Content == "" {
		return 0, 0
	}
	lines := strings.Split(tb.Content, "\n")
	for _, l := range lines {
		w, _ := tb.Font.MeasureString(l)
		width = max(width, w)
	}
	return width, float64(len(lines)) * tb.lineHeight()
}

// --- TTF fonts ---

// TTFFont wraps an Ebitengine text/v2 GoTextFace.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("navmenu: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// Resized returns a font sharing the same source at a different size.
func (f *TTFFont) Resized(size float64) *TTFFont {
	face := &text.GoTextFace{Source: f.source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, source: f.source, size: size, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// LoadFontSet loads one TTF face at the three link sizes of cfg.
func LoadFontSet(ttfData []byte, cfg TextConfig) (FontSet, error) {
	large, err := LoadTTFFont(ttfData, cfg.LargeSize)
	if err != nil {
		return FontSet{}, err
	}
	return FontSet{
		Large:  large,
		Medium: large.Resized(cfg.MediumSize),
		Tiny:   large.Resized(cfg.TinySize),
	}, nil
}
