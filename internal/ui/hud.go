//go:build ebiten

package ui

import (
	"image/color"

	"pixeldig/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the terrain view.
type HUD struct {
	providers  []core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshots  []core.ParameterSnapshot
	title      string
	status     string
}

// NewHUD constructs a HUD listing the parameters of every provider.
func NewHUD(title string, width int, providers ...core.ParameterProvider) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Parameters"
	}
	return &HUD{providers: providers, width: width, title: title}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus sets a one-line status message shown under the title.
func (h *HUD) SetStatus(s string) {
	if h == nil {
		return
	}
	h.status = s
}

// Update refreshes the cached parameter snapshots.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.snapshots = h.snapshots[:0]
	for _, p := range h.providers {
		if p == nil {
			continue
		}
		h.snapshots = append(h.snapshots, p.Parameters())
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters(height int) {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.status != "" {
		y += lineHeight
		text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	for _, snap := range h.snapshots {
		for _, group := range snap.Groups {
			y += groupSpacing
			if y > height-panelPadding {
				return
			}
			text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 150, G: 190, B: 230, A: 255})
			for _, p := range group.Params {
				y += lineHeight
				if y > height-panelPadding {
					return
				}
				text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
				value := p.Value
				if value == "" {
					value = "--"
				}
				bounds := text.BoundString(face, value)
				text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			}
		}
	}
}

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 26
	headerBaseline = 18
)
