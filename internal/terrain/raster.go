package terrain

import (
	"image"
	"image/color"

	"pixeldig/internal/core"
)

// Sampler produces the scalar field a raster is generated from.
type Sampler interface {
	Sample(x, y int) float64
}

// Raster owns the visible colour grid and the index-aligned hardness grid of
// a terrain. Cell (0, 0) is the bottom-left corner in world space; image row
// y holds cell row y, so renderers flip vertically.
type Raster struct {
	w, h     int
	ppu      float64
	img      *image.NRGBA
	hardness *core.FloatGrid
	version  uint64
}

// NewRaster allocates a fully transparent raster with zero hardness.
func NewRaster(w, h int, pixelsPerUnit float64) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &Raster{
		w:        w,
		h:        h,
		ppu:      pixelsPerUnit,
		img:      image.NewNRGBA(image.Rect(0, 0, w, h)),
		hardness: core.NewFloatGrid(w, h),
	}
}

// Generate builds a raster by sampling field for every cell, mapping each
// sample through grad and then deriving hardness from the pristine colours.
func Generate(field Sampler, grad Gradient, w, h int, pixelsPerUnit float64) *Raster {
	r := NewRaster(w, h, pixelsPerUnit)
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.img.SetNRGBA(x, y, grad.Evaluate(field.Sample(x, y)))
		}
	}
	r.captureHardness()
	return r
}

// captureHardness sets hardness = 1 - luminance for every cell, so darker
// material is harder. Cells generated fully transparent get hardness 0. It
// runs once, before any erosion.
func (r *Raster) captureHardness() {
	cells := r.hardness.Cells()
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			c := r.img.NRGBAAt(x, y)
			if c.A == 0 {
				cells[r.hardness.Index(x, y)] = 0
				continue
			}
			cells[r.hardness.Index(x, y)] = core.Clamp01(1 - Luminance(c))
		}
	}
}

// Size returns the raster dimensions in cells.
func (r *Raster) Size() core.Size { return core.Size{W: r.w, H: r.h} }

// PixelsPerUnit returns the raster density in cells per world unit.
func (r *Raster) PixelsPerUnit() float64 { return r.ppu }

// InBounds reports whether (x, y) addresses a raster cell.
func (r *Raster) InBounds(x, y int) bool {
	return x >= 0 && x < r.w && y >= 0 && y < r.h
}

// CellColor returns the colour at (x, y). ok is false out of bounds.
func (r *Raster) CellColor(x, y int) (c color.NRGBA, ok bool) {
	if !r.InBounds(x, y) {
		return color.NRGBA{}, false
	}
	return r.img.NRGBAAt(x, y), true
}

// CellHardness returns the hardness at (x, y). ok is false out of bounds.
func (r *Raster) CellHardness(x, y int) (h float64, ok bool) {
	if !r.InBounds(x, y) {
		return 0, false
	}
	return r.hardness.At(x, y), true
}

// Alive reports whether the cell at (x, y) still holds material.
func (r *Raster) Alive(x, y int) bool {
	if !r.InBounds(x, y) {
		return false
	}
	return r.img.Pix[r.img.PixOffset(x, y)+3] > 0
}

// SetCellColor overwrites the colour at (x, y) and bumps the version once per
// call. Erosion and poke batch their writes instead and bump once per call.
// Out of bounds writes are ignored.
func (r *Raster) SetCellColor(x, y int, c color.NRGBA) {
	if !r.InBounds(x, y) {
		return
	}
	r.img.SetNRGBA(x, y, c)
	r.version++
}

// ClearCellHardness zeroes the hardness at (x, y) without bumping the
// version. Out of bounds writes are ignored.
func (r *Raster) ClearCellHardness(x, y int) {
	r.hardness.Set(x, y, 0)
}

// clearCell makes (x, y) fully transparent without bumping the version.
func (r *Raster) clearCell(x, y int) {
	off := r.img.PixOffset(x, y)
	px := r.img.Pix[off : off+4 : off+4]
	px[0], px[1], px[2], px[3] = 0, 0, 0, 0
}

func (r *Raster) touch() { r.version++ }

// Image exposes the colour grid as a renderable image. Callers must not
// modify it.
func (r *Raster) Image() *image.NRGBA { return r.img }

// Hardness exposes the hardness grid in row-major order. Callers must not
// modify it.
func (r *Raster) Hardness() []float64 { return r.hardness.Cells() }

// Version increases every time the colour grid changes.
func (r *Raster) Version() uint64 { return r.version }

// AliveCount returns the number of cells that still hold material.
func (r *Raster) AliveCount() int {
	n := 0
	for i := 3; i < len(r.img.Pix); i += 4 {
		if r.img.Pix[i] > 0 {
			n++
		}
	}
	return n
}
