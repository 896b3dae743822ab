package scrollspy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRootMargin is returned by ParseRootMargin for malformed input.
var ErrInvalidRootMargin = errors.New("scrollspy: invalid root margin")

// Length is a margin component in pixels or percent of the root size.
type Length struct {
	Value   float64
	Percent bool
}

// Resolve converts l to pixels against a root dimension of size.
func (l Length) Resolve(size float64) float64 {
	if l.Percent {
		return l.Value * size / 100
	}
	return l.Value
}

// Margin is a parsed root margin.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// Rect is a resolved margin in pixels.
type Rect struct {
	Top, Right, Bottom, Left float64
}

// Resolve converts m to pixels. Vertical percentages refer to height and
// horizontal ones to width.
func (m Margin) Resolve(width, height float64) Rect {
	return Rect{
		Top:    m.Top.Resolve(height),
		Right:  m.Right.Resolve(width),
		Bottom: m.Bottom.Resolve(height),
		Left:   m.Left.Resolve(width),
	}
}

// ParseRootMargin parses CSS margin shorthand with one to four components.
// Each component is a px or % length; a bare zero is accepted. An empty
// string is the zero margin.
func ParseRootMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("%w: %q has %d components", ErrInvalidRootMargin, s, len(fields))
	}
	vals := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("%w: %q: %v", ErrInvalidRootMargin, s, err)
		}
		vals[i] = l
	}
	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	default:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var l Length
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num = strings.TrimSuffix(s, "%")
		l.Percent = true
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || num == "" {
		return Length{}, fmt.Errorf("bad length %q", s)
	}
	if num == s && v != 0 {
		return Length{}, fmt.Errorf("length %q needs a px or %% unit", s)
	}
	l.Value = v
	return l, nil
}
