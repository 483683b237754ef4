package dig

import (
	"pixeldig/internal/core"
	"pixeldig/internal/terrain"
)

// ForceAccumulator receives resistance forces. *physics.Body satisfies it.
type ForceAccumulator interface {
	AddForce(f core.Vec2)
}

// ResistanceForce returns the push a destroyed cell exerts on an actor at
// actor: directed from the cell towards the actor with magnitude
// basePerPixel*(1+hardness), independent of distance. A cell exactly at the
// actor contributes nothing.
func ResistanceForce(actor core.Vec2, cell terrain.DestroyedCell, basePerPixel float64) (core.Vec2, bool) {
	d := actor.Sub(cell.Position)
	if d.Len() == 0 {
		return core.Vec2{}, false
	}
	return d.Normalize().Scale(basePerPixel * (1 + cell.Hardness)), true
}

// ApplyFeedback adds one resistance force per destroyed cell to acc and
// returns their sum.
func ApplyFeedback(acc ForceAccumulator, actor core.Vec2, cells []terrain.DestroyedCell, basePerPixel float64) core.Vec2 {
	var total core.Vec2
	for _, c := range cells {
		f, ok := ResistanceForce(actor, c, basePerPixel)
		if !ok {
			continue
		}
		acc.AddForce(f)
		total = total.Add(f)
	}
	return total
}
