package terrain

import (
	"pixeldig/internal/core"
)

// DefaultDestructionProbability is the chance that a zero-hardness cell is
// removed by a single erosion pass.
const DefaultDestructionProbability = 0.8

// Rand draws uniform values in [0, 1).
type Rand interface {
	Float64() float64
}

// DestroyedCell describes one cell removed by an erosion call.
type DestroyedCell struct {
	Position core.Vec2
	Hardness float64
}

// AdjustedProbability returns the removal chance of a cell with the given
// hardness. It never increases with hardness and always lies in [0, 1].
func AdjustedProbability(base, hardness float64) float64 {
	return core.Clamp01(base - hardness)
}

// Erode stochastically removes cells inside the disk of the given world
// radius around pos and reports every cell it removed.
//
// All removal decisions are made against the state at entry; grids are only
// written once the decision pass has finished, so a cell's outcome never
// depends on the scan order. Cells already destroyed, and cells outside the
// raster, are skipped. A non-positive radius is a no-op.
func Erode(r *Raster, tf Transform, pos core.Vec2, radius, baseProbability float64, rng Rand) []DestroyedCell {
	if r == nil || rng == nil || radius <= 0 {
		return nil
	}
	m := MapperFor(r, tf)
	center := m.WorldToCell(pos)
	cellRadius := m.CellRadius(radius)
	r2 := cellRadius * cellRadius

	var (
		destroyed []DestroyedCell
		marked    []core.Cell
	)
	for dy := -cellRadius; dy <= cellRadius; dy++ {
		y := center.Y + dy
		if y < 0 || y >= r.h {
			continue
		}
		for dx := -cellRadius; dx <= cellRadius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x := center.X + dx
			if x < 0 || x >= r.w {
				continue
			}
			if !r.Alive(x, y) {
				continue
			}
			hardness := r.hardness.At(x, y)
			if rng.Float64() < AdjustedProbability(baseProbability, hardness) {
				marked = append(marked, core.Cell{X: x, Y: y})
				destroyed = append(destroyed, DestroyedCell{
					Position: m.CellToWorld(x, y),
					Hardness: hardness,
				})
			}
		}
	}

	if len(marked) == 0 {
		return destroyed
	}
	for _, c := range marked {
		r.clearCell(c.X, c.Y)
		r.ClearCellHardness(c.X, c.Y)
	}
	r.touch()
	return destroyed
}

// DefaultPokeRadius is the cell radius cleared by a direct poke.
const DefaultPokeRadius = 2

// Poke immediately clears every cell within cellRadius of the cell under
// pos, regardless of hardness. Hardness is left untouched. Nothing happens
// when pos is outside the raster. It returns the number of cells cleared.
func Poke(r *Raster, tf Transform, pos core.Vec2, cellRadius int) int {
	if r == nil || cellRadius < 0 {
		return 0
	}
	center := MapperFor(r, tf).WorldToCell(pos)
	if !r.InBounds(center.X, center.Y) {
		return 0
	}
	r2 := cellRadius * cellRadius
	cleared := 0
	for dy := -cellRadius; dy <= cellRadius; dy++ {
		for dx := -cellRadius; dx <= cellRadius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if !r.Alive(x, y) {
				continue
			}
			r.clearCell(x, y)
			cleared++
		}
	}
	if cleared > 0 {
		r.touch()
	}
	return cleared
}
