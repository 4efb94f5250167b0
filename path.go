package navmenu

import (
	"fmt"
	"strconv"
	"strings"
)

// PathCommand is one drawing command of a Path. Op is one of the absolute
// SVG commands M, L, H, V, Q or Z; Args holds its numbers in order.
type PathCommand struct {
	Op   byte
	Args []float64
}

// Path is a boundary description in a 100x100 view box. Two paths with the
// same command structure can be interpolated.
type Path []PathCommand

// argCount returns how many numbers each supported command takes.
func argCount(op byte) (int, bool) {
	switch op {
	case 'M', 'L':
		return 2, true
	case 'H', 'V':
		return 1, true
	case 'Q':
		return 4, true
	case 'Z':
		return 0, true
	}
	return 0, false
}

// ParsePath parses the subset of SVG path data used by the menu backgrounds,
// for example "M0,0 H100 V50 Q50,70 0,50 Z". Numbers may be separated by
// commas or whitespace.
func ParsePath(d string) (Path, error) {
	var p Path
	fields := strings.FieldsFunc(d, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	i := 0
	for i < len(fields) {
		f := fields[i]
		op := f[0]
		n, ok := argCount(op)
		if !ok {
			return nil, fmt.Errorf("navmenu: path %q: unsupported command %q", d, op)
		}
		// The first number may be glued to the command letter ("H100").
		var nums []string
		if len(f) > 1 {
			nums = append(nums, f[1:])
		}
		i++
		for len(nums) < n && i < len(fields) {
			nums = append(nums, fields[i])
			i++
		}
		if len(nums) != n {
			return nil, fmt.Errorf("navmenu: path %q: command %c needs %d numbers, got %d", d, op, n, len(nums))
		}
		cmd := PathCommand{Op: op, Args: make([]float64, n)}
		for j, s := range nums {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("navmenu: path %q: %w", d, err)
			}
			cmd.Args[j] = v
		}
		p = append(p, cmd)
	}
	if len(p) == 0 || p[0].Op != 'M' {
		return nil, fmt.Errorf("navmenu: path %q must start with M", d)
	}
	return p, nil
}

// MustParsePath is like ParsePath but panics on malformed input.
func MustParsePath(d string) Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// String formats the path the way ParsePath reads it.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c.Op)
		for j, v := range c.Args {
			switch {
			case j == 0:
			case j%2 == 0:
				b.WriteByte(' ')
			default:
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return b.String()
}

// Compatible reports whether p and q have the same command structure.
func (p Path) Compatible(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Op != q[i].Op || len(p[i].Args) != len(q[i].Args) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	for i, c := range p {
		out[i] = PathCommand{Op: c.Op, Args: append([]float64(nil), c.Args...)}
	}
	return out
}

// LerpPath writes the interpolation between a and b at t into dst, which must
// be compatible with both (typically a clone of a). t=0 yields a and t=1
// yields b exactly.
func LerpPath(dst, a, b Path, t float64) {
	for i := range dst {
		for j := range dst[i].Args {
			dst[i].Args[j] = a[i].Args[j]*(1-t) + b[i].Args[j]*t
		}
	}
}

// quadSegments is the number of line segments used per quadratic curve.
const quadSegments = 16

// Flatten appends the outline of p to dst, scaling the 100x100 view box to
// width x height without preserving the aspect ratio. Consecutive duplicate
// points are dropped.
func (p Path) Flatten(dst []Vec2, width, height float64) []Vec2 {
	sx := width / 100
	sy := height / 100
	var cx, cy float64
	push := func(x, y float64) {
		pt := Vec2{x * sx, y * sy}
		if n := len(dst); n > 0 && dst[n-1] == pt {
			return
		}
		dst = append(dst, pt)
	}
	for _, c := range p {
		switch c.Op {
		case 'M', 'L':
			cx, cy = c.Args[0], c.Args[1]
			push(cx, cy)
		case 'H':
			cx = c.Args[0]
			push(cx, cy)
		case 'V':
			cy = c.Args[0]
			push(cx, cy)
		case 'Q':
			qx, qy := c.Args[0], c.Args[1]
			ex, ey := c.Args[2], c.Args[3]
			for s := 1; s <= quadSegments; s++ {
				t := float64(s) / quadSegments
				u := 1 - t
				x := u*u*cx + 2*u*t*qx + t*t*ex
				y := u*u*cy + 2*u*t*qy + t*t*ey
				push(x, y)
			}
			cx, cy = ex, ey
		case 'Z':
			// Closing is implicit in the fan triangulation.
		}
	}
	if n := len(dst); n > 1 && dst[0] == dst[n-1] {
		dst = dst[:n-1]
	}
	return dst
}
