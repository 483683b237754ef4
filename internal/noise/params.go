package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidParams reports a parameter set that cannot produce a normalized field.
var ErrInvalidParams = errors.New("noise: invalid parameters")

// OffsetRange is the exclusive upper bound of the per-instance coordinate offsets.
const OffsetRange = 99999.0

// Params controls fractal noise synthesis. A Params value is immutable once a
// Field has been built from it.
type Params struct {
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	OffsetX     float64
	OffsetY     float64
}

// DefaultParams mirrors the stock terrain look: four octaves halving in
// amplitude and doubling in frequency.
func DefaultParams() Params {
	return Params{
		Scale:       20,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		OffsetX:     100,
		OffsetY:     100,
	}
}

// Offsetter draws uniform values in [0, 1).
type Offsetter interface {
	Float64() float64
}

// WithRandomOffsets returns a copy of p with both offsets drawn from rng.
func (p Params) WithRandomOffsets(rng Offsetter) Params {
	p.OffsetX = rng.Float64() * OffsetRange
	p.OffsetY = rng.Float64() * OffsetRange
	return p
}

// TotalAmplitude returns the sum of the per-octave amplitudes used to
// normalize a sample.
func (p Params) TotalAmplitude() float64 {
	total := 0.0
	amplitude := 1.0
	for i := 0; i < p.Octaves; i++ {
		total += amplitude
		amplitude *= p.Persistence
	}
	return total
}

// Validate checks that p can produce a normalized sample.
func (p Params) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be >= 1, got %d", ErrInvalidParams, p.Octaves)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidParams, p.Scale)
	}
	if p.Lacunarity <= 0 {
		return fmt.Errorf("%w: lacunarity must be positive, got %g", ErrInvalidParams, p.Lacunarity)
	}
	if p.Persistence < 0 {
		return fmt.Errorf("%w: persistence must be non-negative, got %g", ErrInvalidParams, p.Persistence)
	}
	if p.TotalAmplitude() <= 0 {
		return fmt.Errorf("%w: accumulated amplitude is zero", ErrInvalidParams)
	}
	return nil
}
