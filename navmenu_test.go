package navmenu

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{1, 0, 0, 1}) {
		t.Errorf("got %+v, want opaque red", c)
	}
	if _, err := ParseHexColor("red"); err == nil {
		t.Error("expected an error for a named color")
	}
}

func TestMustHexColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHexColor should panic on bad input")
		}
	}()
	MustHexColor("#zz")
}

func TestColorToRGBAClamps(t *testing.T) {
	got := Color{R: 2, G: -1, B: 1, A: 1}.toRGBA()
	if got != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("got %+v", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if got := a.Intersect(b); got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersect = %+v", got)
	}
	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if got := a.Intersect(c); !got.Empty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
	if !a.Contains(10, 10) || a.Contains(10.5, 0) {
		t.Error("Contains should include edges only")
	}
}
