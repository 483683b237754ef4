package terrain

import (
	"fmt"
	"image"
	"math/rand/v2"
	"sync"

	"pixeldig/internal/core"
	"pixeldig/internal/noise"
)

// Stats accumulates what has happened to a terrain since it was generated.
type Stats struct {
	ErosionCalls      int
	CellsDestroyed    int
	CellsPoked        int
	DestroyedHardness float64
}

// Terrain owns one generated raster together with its placement and the
// random source used for erosion. All mutating calls and render reads are
// serialized, so every erosion call completes its decide and commit passes
// before the next one starts.
type Terrain struct {
	mu sync.Mutex

	cfg    Config
	params noise.Params
	raster *Raster
	rng    *rand.Rand
	stats  Stats
}

// New validates cfg and generates a terrain seeded with cfg.Seed.
func New(cfg Config) (*Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Terrain{cfg: cfg}
	if err := t.generate(cfg.Seed); err != nil {
		return nil, err
	}
	return t, nil
}

// generate rebuilds the raster. Noise offsets are drawn from seed once here
// so separate instances never tile identically.
func (t *Terrain) generate(seed int64) error {
	rng := core.NewRNG(seed)
	params := t.cfg.Noise.WithRandomOffsets(rng)
	field, err := noise.NewNamedField(t.cfg.Base, seed, params, t.cfg.Width, t.cfg.Height)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	raster := Generate(field, t.cfg.Gradient, t.cfg.Width, t.cfg.Height, t.cfg.PixelsPerUnit)
	if t.raster != nil {
		// Versions keep increasing across regenerations.
		raster.version = t.raster.version + 1
	}
	t.params = params
	t.raster = raster
	t.rng = rand.New(rand.NewPCG(uint64(seed), uint64(rng.Int64())))
	t.stats = Stats{}
	return nil
}

// Reset regenerates the terrain from a new seed. A zero seed reuses the
// configured one.
func (t *Terrain) Reset(seed int64) error {
	if seed == 0 {
		seed = t.cfg.Seed
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.Seed = seed
	return t.generate(seed)
}

// Erode runs one erosion call at pos with the configured destruction
// probability.
func (t *Terrain) Erode(pos core.Vec2, radius float64) []DestroyedCell {
	t.mu.Lock()
	defer t.mu.Unlock()
	cells := Erode(t.raster, t.cfg.Transform, pos, radius, t.cfg.Params.DestructionProbability, t.rng)
	t.stats.ErosionCalls++
	t.stats.CellsDestroyed += len(cells)
	for _, c := range cells {
		t.stats.DestroyedHardness += c.Hardness
	}
	return cells
}

// Poke clears the configured poke radius around pos.
func (t *Terrain) Poke(pos core.Vec2) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := Poke(t.raster, t.cfg.Transform, pos, t.cfg.Params.PokeRadius)
	t.stats.CellsPoked += n
	return n
}

// Bounds returns the world rectangle covered by the terrain.
func (t *Terrain) Bounds() core.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return MapperFor(t.raster, t.cfg.Transform).Bounds()
}

// Mapper returns the coordinate mapper for the current raster.
func (t *Terrain) Mapper() Mapper {
	t.mu.Lock()
	defer t.mu.Unlock()
	return MapperFor(t.raster, t.cfg.Transform)
}

// View calls fn with the colour grid and its version while holding the
// terrain lock. fn must not retain img.
func (t *Terrain) View(fn func(img *image.NRGBA, version uint64)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.raster.Image(), t.raster.Version())
}

// ViewHardness calls fn with the colour grid and the index-aligned hardness
// grid while holding the terrain lock.
func (t *Terrain) ViewHardness(fn func(img *image.NRGBA, hardness []float64, version uint64)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.raster.Image(), t.raster.Hardness(), t.raster.Version())
}

// Raster exposes the underlying raster. It is not safe to use concurrently
// with Erode, Poke or Reset.
func (t *Terrain) Raster() *Raster { return t.raster }

// Size returns the raster dimensions.
func (t *Terrain) Size() core.Size { return core.Size{W: t.cfg.Width, H: t.cfg.Height} }

// Config returns the configuration the terrain was built with.
func (t *Terrain) Config() Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg
}

// NoiseParams returns the noise parameters including the drawn offsets.
func (t *Terrain) NoiseParams() noise.Params {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.params
}

// Stats returns a copy of the running statistics.
func (t *Terrain) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
