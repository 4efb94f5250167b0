package navmenu

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestParseEase(t *testing.T) {
	cases := []struct {
		name string
		want ease.TweenFunc
	}{
		{"", ease.Linear},
		{"linear", ease.Linear},
		{"none", ease.Linear},
		{"power2.inOut", ease.InOutCubic},
		{"Power2.InOut", ease.InOutCubic},
		{"power1.in", ease.InQuad},
		{"power4.out", ease.OutQuint},
		{"expo.out", ease.OutExpo},
		{"expo", ease.OutExpo},
		{" sine.in ", ease.InSine},
	}
	for _, c := range cases {
		fn, err := ParseEase(c.name)
		if err != nil {
			t.Errorf("ParseEase(%q): %v", c.name, err)
			continue
		}
		// Compare by sampling; funcs are not comparable.
		for _, x := range []float32{0.25, 0.5, 0.75} {
			if got, want := fn(x, 0, 1, 1), c.want(x, 0, 1, 1); got != want {
				t.Errorf("ParseEase(%q)(%v) = %v, want %v", c.name, x, got, want)
			}
		}
	}
}

func TestParseEaseErrors(t *testing.T) {
	for _, name := range []string{"wobble", "power2.sideways", "expo.in.out"} {
		if _, err := ParseEase(name); err == nil {
			t.Errorf("ParseEase(%q) should fail", name)
		}
	}
}

func TestMustEaseFallsBackToLinear(t *testing.T) {
	fn := mustEase("wobble")
	if got := fn(0.5, 0, 1, 1); got != 0.5 {
		t.Errorf("fallback(0.5) = %v, want 0.5", got)
	}
}
