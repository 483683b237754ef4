package render

import (
	"image"
	"image/color"
	"math"

	"pixeldig/internal/core"
)

// premul scales a straight-alpha channel value by alpha.
func premul(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}

// FillTerrainRGBA converts a terrain colour grid into premultiplied RGBA
// pixels in buf. Rows are flipped so that cell row 0 lands at the bottom of
// the image.
func FillTerrainRGBA(buf []byte, img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if len(buf) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+4*w]
		dst := buf[(h-1-y)*4*w : (h-y)*4*w]
		for x := 0; x < w; x++ {
			base := x * 4
			a := src[base+3]
			if a == 0 {
				dst[base+0] = 0
				dst[base+1] = 0
				dst[base+2] = 0
				dst[base+3] = 0
				continue
			}
			dst[base+0] = premul(src[base+0], a)
			dst[base+1] = premul(src[base+1], a)
			dst[base+2] = premul(src[base+2], a)
			dst[base+3] = a
		}
	}
}

// FillHardnessRGBA converts a hardness grid into a premultiplied heat mask in
// buf, flipped like FillTerrainRGBA. Destroyed cells of img and cells with
// zero hardness are left transparent.
func FillHardnessRGBA(buf []byte, img *image.NRGBA, hardness []float64) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if len(hardness) != w*h || len(buf) < 4*w*h {
		return
	}
	const (
		maxAlpha      = 170.0
		intensityBias = 0.75
	)
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			base := (row + x) * 4
			v := core.Clamp01(hardness[y*w+x])
			if v == 0 || img.Pix[y*img.Stride+x*4+3] == 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			col := HardnessColor(v)
			a := uint8(math.Round(maxAlpha * math.Pow(v, intensityBias)))
			buf[base+0] = premul(col.R, a)
			buf[base+1] = premul(col.G, a)
			buf[base+2] = premul(col.B, a)
			buf[base+3] = a
		}
	}
}

// HardnessColor maps a hardness in [0, 1] onto a cool-to-hot ramp.
func HardnessColor(t float64) color.RGBA {
	t = core.Clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 255}},
		{0.35, color.RGBA{R: 70, G: 150, B: 160, A: 255}},
		{0.6, color.RGBA{R: 230, G: 200, B: 80, A: 255}},
		{0.8, color.RGBA{R: 240, G: 120, B: 40, A: 255}},
		{1.0, color.RGBA{R: 220, G: 30, B: 30, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = core.Clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
