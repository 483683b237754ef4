package render

import (
	"math"

	"pixeldig/internal/core"
)

// Camera maps world space (y up) onto a screen of Width x Height pixels
// (y down) centred on Center.
type Camera struct {
	Center core.Vec2
	// Zoom is the number of screen pixels per world unit.
	Zoom   float64
	Width  int
	Height int
}

// FitCamera returns a camera that shows all of bounds on a w x h screen.
func FitCamera(bounds core.Rect, w, h int) Camera {
	cam := Camera{Center: bounds.Center(), Zoom: 1, Width: w, Height: h}
	if bounds.Dx() > 0 && bounds.Dy() > 0 && w > 0 && h > 0 {
		cam.Zoom = math.Min(float64(w)/bounds.Dx(), float64(h)/bounds.Dy())
	}
	return cam
}

// WorldToScreen returns the screen position of world point p.
func (c Camera) WorldToScreen(p core.Vec2) (float64, float64) {
	x := (p.X-c.Center.X)*c.Zoom + float64(c.Width)/2
	y := float64(c.Height)/2 - (p.Y-c.Center.Y)*c.Zoom
	return x, y
}

// ScreenToWorld returns the world point under screen position (x, y).
func (c Camera) ScreenToWorld(x, y float64) core.Vec2 {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return core.Vec2{
		X: (x-float64(c.Width)/2)/zoom + c.Center.X,
		Y: (float64(c.Height)/2-y)/zoom + c.Center.Y,
	}
}
