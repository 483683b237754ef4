package render

import (
	"image"
	"image/color"

	"pixeldig/internal/core"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is drawn in every terminal cell: the foreground colours the upper
// pixel and the background the lower one.
const HalfBlock = '▀'

// TermPainter renders a terrain onto a tcell screen at two pixels per
// terminal cell.
type TermPainter struct {
	Sky color.NRGBA
}

// NewTermPainter returns a painter with a dark sky behind destroyed cells.
func NewTermPainter() *TermPainter {
	return &TermPainter{Sky: color.NRGBA{R: 12, G: 14, B: 22, A: 255}}
}

// TermCamera fits bounds onto a cols x rows terminal, counting two pixels per
// row.
func TermCamera(bounds core.Rect, cols, rows int) Camera {
	return FitCamera(bounds, cols, rows*2)
}

// Draw samples the terrain under every half cell of s through cam.
func (p *TermPainter) Draw(s tcell.Screen, ter TerrainView, cam Camera) {
	cols, rows := s.Size()
	m := ter.Mapper()
	ter.View(func(img *image.NRGBA, _ uint64) {
		sample := func(px, py int) tcell.Color {
			w := cam.ScreenToWorld(float64(px)+0.5, float64(py)+0.5)
			c := m.WorldToCell(w)
			if !m.Size.Contains(c.X, c.Y) {
				return p.color(p.Sky)
			}
			col := img.NRGBAAt(c.X, c.Y)
			if col.A == 0 {
				return p.color(p.Sky)
			}
			return p.color(col)
		}
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				style := tcell.StyleDefault.
					Foreground(sample(x, 2*y)).
					Background(sample(x, 2*y+1))
				s.SetContent(x, y, HalfBlock, nil, style)
			}
		}
	})
}

// DrawMarker draws r at the terminal cell containing world point pos.
func (p *TermPainter) DrawMarker(s tcell.Screen, cam Camera, pos core.Vec2, r rune, fg tcell.Color) {
	x, y := cam.WorldToScreen(pos)
	cols, rows := s.Size()
	cx, cy := int(x), int(y)/2
	if x < 0 || y < 0 || cx >= cols || cy >= rows {
		return
	}
	s.SetContent(cx, cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(p.color(p.Sky)))
}

// TermToWorld returns the world point under the centre of terminal cell
// (col, row).
func TermToWorld(cam Camera, col, row int) core.Vec2 {
	return cam.ScreenToWorld(float64(col)+0.5, float64(row)*2+1)
}

func (p *TermPainter) color(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
