package noise

import "fmt"

// Sample evaluates layered noise for cell (x, y) of a width×height raster and
// returns a value in [0, 1]. It is a pure function of its inputs. Callers are
// expected to validate p first; a zero accumulated amplitude yields 0.
func Sample(base Base, x, y, width, height int, p Params) float64 {
	if base == nil || width <= 0 || height <= 0 {
		return 0
	}
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	total := 0.0

	for i := 0; i < p.Octaves; i++ {
		xCoord := p.OffsetX + float64(x)/float64(width)*p.Scale*frequency
		yCoord := p.OffsetY + float64(y)/float64(height)*p.Scale*frequency

		sum += base.Eval(xCoord, yCoord) * amplitude
		total += amplitude

		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}
	if total <= 0 {
		return 0
	}
	return clamp01(sum / total)
}

// Field binds a base noise, validated parameters and raster dimensions.
type Field struct {
	base   Base
	params Params
	width  int
	height int
}

// NewField validates params and returns a Field ready for sampling.
func NewField(base Base, params Params, width, height int) (*Field, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: base noise is nil", ErrInvalidParams)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster size %dx%d", ErrInvalidParams, width, height)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Field{base: base, params: params, width: width, height: height}, nil
}

// NewNamedField looks up a registered base by name and seeds it.
func NewNamedField(name string, seed int64, params Params, width, height int) (*Field, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown base noise %q (have %v)", ErrInvalidParams, name, Names())
	}
	return NewField(factory(seed), params, width, height)
}

// Sample returns the normalized field value at cell (x, y).
func (f *Field) Sample(x, y int) float64 {
	return Sample(f.base, x, y, f.width, f.height, f.params)
}

// Params returns the parameters the field was built with.
func (f *Field) Params() Params { return f.params }

// Size returns the raster dimensions the field is normalized against.
func (f *Field) Size() (int, int) { return f.width, f.height }
