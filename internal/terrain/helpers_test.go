package terrain

import (
	"image/color"
	"testing"

	"pixeldig/internal/core"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// flatField samples the same value everywhere.
type flatField float64

func (f flatField) Sample(int, int) float64 { return float64(f) }

var midGrey = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

func greyConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Base = "constant"
	cfg.Gradient = Gradient{Stops: []Stop{{Pos: 0, Color: midGrey}}}
	return cfg
}

func mustTerrain(t *testing.T, cfg Config) *Terrain {
	t.Helper()
	ter, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ter
}

func cellSet(m Mapper, cells []DestroyedCell) map[core.Cell]bool {
	set := make(map[core.Cell]bool, len(cells))
	for _, c := range cells {
		set[m.WorldToCell(c.Position)] = true
	}
	return set
}
