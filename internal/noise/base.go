package noise

import (
	"math"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Base is a single-octave 2D noise source returning values in [0, 1].
type Base interface {
	Eval(x, y float64) float64
}

// Factory constructs a Base for the provided seed.
type Factory func(seed int64) Base

var bases = map[string]Factory{}

// Register adds a base noise factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	bases[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := bases[name]
	return f, ok
}

// Names lists the registered base noise names in sorted order.
func Names() []string {
	names := make([]string, 0, len(bases))
	for name := range bases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// perlinBase wraps go-perlin with a single octave so layering stays under
// Field's control.
type perlinBase struct {
	p *perlin.Perlin
}

// Single-octave Perlin noise spans roughly [-1/√2, 1/√2].
var perlinSpan = math.Sqrt2

func (b perlinBase) Eval(x, y float64) float64 {
	return clamp01(0.5 + 0.5*b.p.Noise2D(x, y)*perlinSpan)
}

// NewPerlin returns classic Perlin noise seeded with seed.
func NewPerlin(seed int64) Base {
	return perlinBase{p: perlin.NewPerlin(2, 2, 1, seed)}
}

type simplexBase struct {
	n opensimplex.Noise
}

func (b simplexBase) Eval(x, y float64) float64 { return clamp01(b.n.Eval2(x, y)) }

// NewOpenSimplex returns normalized OpenSimplex noise seeded with seed.
func NewOpenSimplex(seed int64) Base {
	return simplexBase{n: opensimplex.NewNormalized(seed)}
}

// Constant is a Base that returns the same value everywhere. It is used to
// build calibration terrains with uniform hardness.
type Constant float64

func (c Constant) Eval(float64, float64) float64 { return clamp01(float64(c)) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	Register("perlin", NewPerlin)
	Register("opensimplex", NewOpenSimplex)
	Register("constant", func(int64) Base { return Constant(0.5) })
}
