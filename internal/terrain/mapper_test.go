package terrain

import (
	"math"
	"testing"

	"pixeldig/internal/core"
)

func TestMapperCellRoundTrip(t *testing.T) {
	for _, tf := range []Transform{
		{},
		{Position: core.V(3.5, -1.25)},
		{Position: core.V(-2, 4), Rotation: 0.7},
	} {
		m := Mapper{Size: core.Size{W: 33, H: 20}, PixelsPerUnit: 16, Transform: tf}
		for y := 0; y < 20; y++ {
			for x := 0; x < 33; x++ {
				got := m.WorldToCell(m.CellToWorld(x, y))
				if got.X != x || got.Y != y {
					t.Fatalf("tf=%+v cell (%d,%d) round-tripped to %+v", tf, x, y, got)
				}
			}
		}
	}
}

func TestMapperWorldRoundTripWithinHalfCell(t *testing.T) {
	tf := Transform{Position: core.V(1, 2), Rotation: -0.4}
	m := Mapper{Size: core.Size{W: 64, H: 48}, PixelsPerUnit: 10, Transform: tf}
	half := 0.5/m.PixelsPerUnit + 1e-9
	bounds := m.Bounds()
	for i := 0; i < 500; i++ {
		// Walk a deterministic lattice of points across the bounds.
		fx := math.Mod(float64(i)*0.618034, 1)
		fy := math.Mod(float64(i)*0.414214, 1)
		p := core.V(bounds.Min.X+fx*bounds.Dx(), bounds.Min.Y+fy*bounds.Dy())
		c := m.WorldToCell(p)
		back := m.CellToWorld(c.X, c.Y)

		d := tf.InverseTransformPoint(p).Sub(tf.InverseTransformPoint(back))
		if math.Abs(d.X) > half || math.Abs(d.Y) > half {
			t.Fatalf("point %+v -> cell %+v -> %+v, local error %+v exceeds half cell", p, c, back, d)
		}
	}
}

func TestMapperCentreAndBounds(t *testing.T) {
	m := Mapper{Size: core.Size{W: 256, H: 256}, PixelsPerUnit: 100, Transform: Transform{Position: core.V(1, 1)}}
	if c := m.WorldToCell(core.V(1, 1)); c.X != 128 || c.Y != 128 {
		t.Fatalf("terrain origin should map to the centre cell, got %+v", c)
	}
	b := m.Bounds()
	if math.Abs(b.Dx()-2.56) > 1e-9 || math.Abs(b.Dy()-2.56) > 1e-9 {
		t.Fatalf("unexpected bounds size %fx%f", b.Dx(), b.Dy())
	}
	if math.Abs(b.Min.X-(1-1.28)) > 1e-9 || math.Abs(b.Max.Y-(1+1.28)) > 1e-9 {
		t.Fatalf("unexpected bounds %+v", b)
	}
	if r := m.CellRadius(0.5); r != 50 {
		t.Fatalf("CellRadius(0.5) = %d", r)
	}
}
