//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"pixeldig/internal/core"
	"pixeldig/internal/physics"
	"pixeldig/internal/render"
	"pixeldig/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HardnessView is the read side of a terrain's hardness grid.
type HardnessView interface {
	Mapper() terrain.Mapper
	ViewHardness(fn func(img *image.NRGBA, hardness []float64, version uint64))
}

// Overlay draws optional debugging visuals on top of the terrain.
type Overlay struct {
	terrain      HardnessView
	showHardness bool

	maskImg     *ebiten.Image
	maskBuf     []byte
	maskVersion uint64
	maskValid   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(ter HardnessView) *Overlay {
	return &Overlay{terrain: ter}
}

// Update toggles overlays from key presses.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHardness = !o.showHardness
	}
}

// ShowingHardness reports whether the hardness heat map is enabled.
func (o *Overlay) ShowingHardness() bool { return o.showHardness }

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.Camera) {
	if o.showHardness && o.terrain != nil {
		o.drawHardness(screen, cam)
	}
}

func (o *Overlay) drawHardness(screen *ebiten.Image, cam render.Camera) {
	m := o.terrain.Mapper()
	o.terrain.ViewHardness(func(img *image.NRGBA, hardness []float64, version uint64) {
		w, h := img.Rect.Dx(), img.Rect.Dy()
		if w == 0 || h == 0 {
			return
		}
		if o.maskImg == nil || o.maskImg.Bounds().Dx() != w || o.maskImg.Bounds().Dy() != h {
			o.maskImg = ebiten.NewImage(w, h)
			o.maskBuf = make([]byte, 4*w*h)
			o.maskValid = false
		}
		if o.maskValid && o.maskVersion == version {
			return
		}
		render.FillHardnessRGBA(o.maskBuf, img, hardness)
		o.maskImg.WritePixels(o.maskBuf)
		o.maskVersion = version
		o.maskValid = true
	})
	if o.maskImg == nil {
		return
	}
	screen.DrawImage(o.maskImg, render.TerrainDrawOptions(m, cam))
}

// DrawDigger draws the body as a capsule marker pointing along its heading and,
// while digging, a line to the target.
func DrawDigger(screen *ebiten.Image, cam render.Camera, body *physics.Body, radius float64, digging bool, target core.Vec2) {
	if body == nil {
		return
	}
	x, y := cam.WorldToScreen(body.Position)
	r := float32(radius * cam.Zoom)
	if r < 3 {
		r = 3
	}
	fill := color.RGBA{R: 90, G: 200, B: 255, A: 255}
	if digging {
		fill = color.RGBA{R: 255, G: 180, B: 60, A: 255}
		tx, ty := cam.WorldToScreen(target)
		vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), 1, color.RGBA{R: 255, G: 255, B: 255, A: 90}, true)
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, fill, true)
	hx, hy := cam.WorldToScreen(body.Position.Add(body.Heading().Scale(radius * 1.6)))
	vector.StrokeLine(screen, float32(x), float32(y), float32(hx), float32(hy), 2, color.RGBA{R: 20, G: 20, B: 30, A: 255}, true)
}
