//go:build ebiten

package render

import (
	"image"

	"pixeldig/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

// TerrainPainter keeps an ebiten image in sync with a terrain colour grid.
// Pixels are only uploaded when the terrain version changes.
type TerrainPainter struct {
	w, h     int
	img      *ebiten.Image
	buf      []byte
	version  uint64
	uploaded bool
}

// NewTerrainPainter allocates an empty painter; the image is sized on the
// first Draw.
func NewTerrainPainter() *TerrainPainter {
	return &TerrainPainter{}
}

// Draw uploads the terrain if it changed and draws it onto dst through cam.
func (tp *TerrainPainter) Draw(dst *ebiten.Image, ter TerrainView, cam Camera) {
	m := ter.Mapper()
	ter.View(func(img *image.NRGBA, version uint64) {
		w, h := img.Rect.Dx(), img.Rect.Dy()
		if tp.img == nil || tp.w != w || tp.h != h {
			tp.w, tp.h = w, h
			tp.img = ebiten.NewImage(w, h)
			tp.buf = make([]byte, 4*w*h)
			tp.uploaded = false
		}
		if tp.uploaded && tp.version == version {
			return
		}
		FillTerrainRGBA(tp.buf, img)
		tp.img.WritePixels(tp.buf)
		tp.version = version
		tp.uploaded = true
	})
	if tp.img == nil {
		return
	}
	dst.DrawImage(tp.img, TerrainDrawOptions(m, cam))
}

// TerrainDrawOptions positions a flipped terrain image of the mapper's size
// so that every cell centre lands on its world position under cam.
func TerrainDrawOptions(m terrain.Mapper, cam Camera) *ebiten.DrawImageOptions {
	hx, hy := float64(m.Size.W/2), float64(m.Size.H/2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-(hx + 0.5), -(float64(m.Size.H) - 0.5 - hy))
	s := cam.Zoom / m.PixelsPerUnit
	op.GeoM.Scale(s, s)
	op.GeoM.Rotate(-m.Transform.Rotation)
	x, y := cam.WorldToScreen(m.Transform.Position)
	op.GeoM.Translate(x, y)
	return op
}
