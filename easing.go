package navmenu

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// easeFamilies maps an easing family to its in, out and in-out variants.
// The powerN names follow the usual motion-design convention: power1 is
// quadratic, power2 cubic, power3 quartic and power4 quintic.
var easeFamilies = map[string][3]ease.TweenFunc{
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// ParseEase resolves names like "power2.inOut", "expo.out" or "linear".
// A family without a mode ("sine") means its out variant.
func ParseEase(name string) (ease.TweenFunc, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "none" || n == "linear" {
		return ease.Linear, nil
	}
	family, mode, _ := strings.Cut(n, ".")
	fns, ok := easeFamilies[family]
	if !ok {
		return nil, fmt.Errorf("navmenu: unknown ease %q", name)
	}
	switch mode {
	case "in":
		return fns[0], nil
	case "", "out":
		return fns[1], nil
	case "inout":
		return fns[2], nil
	}
	return nil, fmt.Errorf("navmenu: unknown ease mode in %q", name)
}

// mustEase is ParseEase for names already checked by Config.Validate.
func mustEase(name string) ease.TweenFunc {
	fn, err := ParseEase(name)
	if err != nil {
		return ease.Linear
	}
	return fn
}
