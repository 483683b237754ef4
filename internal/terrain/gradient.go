package terrain

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one colour key of a Gradient at position Pos in [0, 1].
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Gradient maps a scalar in [0, 1] to a colour by blending between the two
// surrounding stops. Stops must be sorted by position.
type Gradient struct {
	Stops []Stop
}

// DefaultGradient runs from dense dark rock to loose pale sand.
func DefaultGradient() Gradient {
	return Gradient{Stops: []Stop{
		{Pos: 0.00, Color: color.NRGBA{R: 38, G: 27, B: 22, A: 255}},
		{Pos: 0.35, Color: color.NRGBA{R: 92, G: 64, B: 44, A: 255}},
		{Pos: 0.60, Color: color.NRGBA{R: 156, G: 118, B: 78, A: 255}},
		{Pos: 0.80, Color: color.NRGBA{R: 205, G: 172, B: 120, A: 255}},
		{Pos: 1.00, Color: color.NRGBA{R: 236, G: 220, B: 178, A: 255}},
	}}
}

// Validate checks that the gradient has at least one stop and that the stops
// are ordered and inside [0, 1].
func (g Gradient) Validate() error {
	if len(g.Stops) == 0 {
		return errors.New("gradient has no stops")
	}
	for i, s := range g.Stops {
		if s.Pos < 0 || s.Pos > 1 {
			return fmt.Errorf("gradient stop %d at %g outside [0,1]", i, s.Pos)
		}
		if i > 0 && s.Pos < g.Stops[i-1].Pos {
			return fmt.Errorf("gradient stop %d at %g precedes stop %d", i, s.Pos, i-1)
		}
	}
	return nil
}

// Evaluate returns the colour at t. Values outside the first and last stop
// take the colour of that stop.
func (g Gradient) Evaluate(t float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	first := g.Stops[0]
	if t <= first.Pos {
		return first.Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Pos >= t })
	lo, hi := g.Stops[i-1], g.Stops[i]
	span := hi.Pos - lo.Pos
	if span <= 0 {
		return hi.Color
	}
	return blend(lo.Color, hi.Color, (t-lo.Pos)/span)
}

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// Luminance returns the perceptual greyscale value of c in [0, 1].
func Luminance(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ParseGradient reads stops in the form "pos:#rrggbb[aa],pos:#rrggbb".
func ParseGradient(s string) (Gradient, error) {
	var g Gradient
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, hex, ok := strings.Cut(part, ":")
		if !ok {
			return Gradient{}, fmt.Errorf("gradient stop %q: want pos:#hex", part)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient stop %q: %w", part, err)
		}
		c, err := parseHexColor(strings.TrimSpace(hex))
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient stop %q: %w", part, err)
		}
		g.Stops = append(g.Stops, Stop{Pos: p, Color: c})
	}
	if err := g.Validate(); err != nil {
		return Gradient{}, err
	}
	return g, nil
}

// String formats the gradient in the form accepted by ParseGradient.
func (g Gradient) String() string {
	parts := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		parts[i] = strconv.FormatFloat(s.Pos, 'f', -1, 64) + ":" + formatHexColor(s.Color)
	}
	return strings.Join(parts, ",")
}

func parseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return c, fmt.Errorf("alpha %q: %w", s[7:9], err)
		}
		c.A = uint8(a)
		s = s[:7]
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return c, err
	}
	c.R, c.G, c.B = col.RGB255()
	return c, nil
}

func formatHexColor(c color.NRGBA) string {
	s := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 255 {
		s += fmt.Sprintf("%02x", c.A)
	}
	return s
}
