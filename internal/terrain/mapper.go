package terrain

import (
	"math"

	"pixeldig/internal/core"
)

// Transform places a terrain in the world: Position is the world location of
// the raster centre and Rotation the counter-clockwise rotation in radians.
type Transform struct {
	Position core.Vec2
	Rotation float64
}

// InverseTransformPoint expresses world point p in the transform's local space.
func (t Transform) InverseTransformPoint(p core.Vec2) core.Vec2 {
	return p.Sub(t.Position).Rotate(-t.Rotation)
}

// TransformPoint maps local point p into world space.
func (t Transform) TransformPoint(p core.Vec2) core.Vec2 {
	return p.Rotate(t.Rotation).Add(t.Position)
}

// Mapper converts between world positions and raster cells. It holds no
// state of its own; build one per call with MapperFor.
type Mapper struct {
	Size          core.Size
	PixelsPerUnit float64
	Transform     Transform
}

// MapperFor derives a Mapper from a raster and the transform that owns it.
func MapperFor(r *Raster, tf Transform) Mapper {
	return Mapper{Size: r.Size(), PixelsPerUnit: r.PixelsPerUnit(), Transform: tf}
}

// The raster origin is its centre while index (0, 0) is a corner.
func (m Mapper) half() (float64, float64) {
	return float64(m.Size.W / 2), float64(m.Size.H / 2)
}

// WorldToCell returns the cell containing world point p, rounded to the
// nearest cell index. The result may lie outside the raster.
func (m Mapper) WorldToCell(p core.Vec2) core.Cell {
	local := m.Transform.InverseTransformPoint(p)
	hx, hy := m.half()
	return core.Cell{
		X: int(math.Round(local.X*m.PixelsPerUnit + hx)),
		Y: int(math.Round(local.Y*m.PixelsPerUnit + hy)),
	}
}

// CellToWorld returns the world position of cell (x, y).
func (m Mapper) CellToWorld(x, y int) core.Vec2 {
	hx, hy := m.half()
	local := core.Vec2{
		X: (float64(x) - hx) / m.PixelsPerUnit,
		Y: (float64(y) - hy) / m.PixelsPerUnit,
	}
	return m.Transform.TransformPoint(local)
}

// CellRadius converts a world-space radius to a whole number of cells.
func (m Mapper) CellRadius(radius float64) int {
	return int(math.Round(radius * m.PixelsPerUnit))
}

// Bounds returns the world-space axis-aligned rectangle covered by the
// raster, accounting for rotation.
func (m Mapper) Bounds() core.Rect {
	w := float64(m.Size.W) / m.PixelsPerUnit
	h := float64(m.Size.H) / m.PixelsPerUnit
	hx, hy := m.half()
	minX := -hx / m.PixelsPerUnit
	minY := -hy / m.PixelsPerUnit
	corners := [4]core.Vec2{
		{X: minX, Y: minY},
		{X: minX + w, Y: minY},
		{X: minX, Y: minY + h},
		{X: minX + w, Y: minY + h},
	}
	out := core.Rect{Min: core.V(math.Inf(1), math.Inf(1)), Max: core.V(math.Inf(-1), math.Inf(-1))}
	for _, c := range corners {
		p := m.Transform.TransformPoint(c)
		out.Min.X = math.Min(out.Min.X, p.X)
		out.Min.Y = math.Min(out.Min.Y, p.Y)
		out.Max.X = math.Max(out.Max.X, p.X)
		out.Max.Y = math.Max(out.Max.Y, p.Y)
	}
	return out
}
