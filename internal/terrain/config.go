package terrain

import (
	"errors"
	"fmt"
	"strconv"

	"pixeldig/internal/noise"
)

// ErrInvalidConfig reports a terrain configuration that cannot be built.
var ErrInvalidConfig = errors.New("terrain: invalid config")

// Params holds the tunables of the erosion and poke paths.
type Params struct {
	DestructionProbability float64
	PokeRadius             int
}

// Config controls terrain generation. It is read once by New.
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64

	Seed int64

	// Base names a registered noise base (see noise.Names).
	Base     string
	Noise    noise.Params
	Gradient Gradient

	Transform Transform

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         256,
		Height:        256,
		PixelsPerUnit: 100,
		Seed:          1337,
		Base:          "perlin",
		Noise:         noise.DefaultParams(),
		Gradient:      DefaultGradient(),
		Params: Params{
			DestructionProbability: DefaultDestructionProbability,
			PokeRadius:             DefaultPokeRadius,
		},
	}
}

// Validate reports the first problem that would prevent New from building
// a terrain.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.PixelsPerUnit <= 0 {
		return fmt.Errorf("%w: pixels per unit must be positive, got %g", ErrInvalidConfig, c.PixelsPerUnit)
	}
	if err := c.Gradient.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Params.PokeRadius < 0 {
		return fmt.Errorf("%w: poke radius must be non-negative, got %d", ErrInvalidConfig, c.Params.PokeRadius)
	}
	if err := c.Noise.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ppu"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PixelsPerUnit = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if _, known := noise.Lookup(v); known {
			c.Base = v
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Scale = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Noise.Persistence = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Lacunarity = parsed
		}
	}
	if v, ok := cfg["gradient"]; ok {
		if parsed, err := ParseGradient(v); err == nil {
			c.Gradient = parsed
		}
	}
	if v, ok := cfg["destruction_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DestructionProbability = parsed
		}
	}
	if v, ok := cfg["poke_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PokeRadius = parsed
		}
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Transform.Position.X = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Transform.Position.Y = parsed
		}
	}
	if v, ok := cfg["rotation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Transform.Rotation = parsed
		}
	}
	return c
}
