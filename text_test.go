package navmenu

import (
	"testing"
	"unicode/utf8"
)

// monoFont is a fixed-advance font for layout tests. Every rune is w wide.
type monoFont struct {
	w, lh float64
}

func (f monoFont) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * f.w, f.lh
}

func (f monoFont) LineHeight() float64 { return f.lh }

func TestTextBlockMeasure(t *testing.T) {
	tb := &TextBlock{Content: "abc\nabcdef", Font: monoFont{w: 10, lh: 20}}
	w, h := tb.Measure()
	if w != 60 {
		t.Errorf("width = %v, want 60", w)
	}
	if h != 40 {
		t.Errorf("height = %v, want 40", h)
	}
}

func TestTextBlockMeasureNilFont(t *testing.T) {
	tb := &TextBlock{Content: "abc"}
	w, h := tb.Measure()
	if w != 0 || h != 0 {
		t.Errorf("Measure = (%v, %v), want (0, 0)", w, h)
	}
	if tb.lineHeight() != 0 {
		t.Errorf("lineHeight = %v, want 0", tb.lineHeight())
	}
}

func TestTextBlockMeasureEmpty(t *testing.T) {
	tb := &TextBlock{Font: monoFont{w: 10, lh: 20}}
	w, h := tb.Measure()
	if w != 0 || h != 0 {
		t.Errorf("Measure = (%v, %v), want (0, 0)", w, h)
	}
}

// --- LineSplitter ---

func TestLineSplitterNewlines(t *testing.T) {
	tb := &TextBlock{Content: "Terms\nand Conditions"}
	got := LineSplitter{}.Split(tb)
	want := []string{"Terms", "and Conditions"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLineSplitterSingleLine(t *testing.T) {
	got := LineSplitter{}.Split(&TextBlock{Content: "Home"})
	if len(got) != 1 || got[0] != "Home" {
		t.Errorf("lines = %q, want [Home]", got)
	}
}

func TestLineSplitterWraps(t *testing.T) {
	tb := &TextBlock{
		Content:   "Terms and Conditions",
		Font:      monoFont{w: 10, lh: 20},
		WrapWidth: 100,
	}
	got := LineSplitter{}.Split(tb)
	want := []string{"Terms and", "Conditions"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLineSplitterLongWordKeptWhole(t *testing.T) {
	tb := &TextBlock{
		Content:   "Extraordinarily",
		Font:      monoFont{w: 10, lh: 20},
		WrapWidth: 50,
	}
	got := LineSplitter{}.Split(tb)
	if len(got) != 1 || got[0] != "Extraordinarily" {
		t.Errorf("lines = %q, want one unbroken word", got)
	}
}

func TestSplitterFunc(t *testing.T) {
	var s Splitter = SplitterFunc(func(tb *TextBlock) []string {
		return []string{tb.Content, tb.Content}
	})
	got := s.Split(&TextBlock{Content: "x"})
	if len(got) != 2 {
		t.Errorf("lines = %d, want 2", len(got))
	}
}
