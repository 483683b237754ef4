package render

import (
	"image/color"
	"testing"

	"pixeldig/internal/core"
	"pixeldig/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

func greyTerrain(t *testing.T) *terrain.Terrain {
	t.Helper()
	cfg := terrain.DefaultConfig()
	cfg.Width, cfg.Height, cfg.PixelsPerUnit = 32, 32, 8
	cfg.Base = "constant"
	cfg.Gradient = terrain.Gradient{Stops: []terrain.Stop{{Pos: 0, Color: color.NRGBA{R: 128, G: 128, B: 128, A: 255}}}}
	ter, err := terrain.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return ter
}

func TestTermPainterHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(16, 8)

	ter := greyTerrain(t)
	cam := TermCamera(ter.Bounds(), 16, 8)
	if cam.Zoom != 4 {
		t.Fatalf("zoom %f, want 4", cam.Zoom)
	}
	p := NewTermPainter()
	grey := tcell.NewRGBColor(128, 128, 128)
	sky := tcell.NewRGBColor(int32(p.Sky.R), int32(p.Sky.G), int32(p.Sky.B))

	p.Draw(s, ter, cam)
	s.Show()
	r, _, style, _ := s.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if r != HalfBlock || fg != grey || bg != grey {
		t.Fatalf("corner cell %q fg=%v bg=%v", r, fg, bg)
	}

	ter.Poke(core.V(0, 0))
	p.Draw(s, ter, cam)
	s.Show()
	_, _, style, _ = s.GetContent(8, 4)
	if fg, _, _ := style.Decompose(); fg != sky {
		t.Fatalf("poked cell fg=%v, want sky", fg)
	}
	_, _, style, _ = s.GetContent(15, 7)
	if _, bg, _ := style.Decompose(); bg != grey {
		t.Fatalf("untouched cell bg=%v", bg)
	}
}

func TestTermToWorld(t *testing.T) {
	cam := TermCamera(core.Rect{Min: core.V(-2, -2), Max: core.V(2, 2)}, 16, 8)
	w := TermToWorld(cam, 8, 4)
	if w.X != 0.125 || w.Y != -0.25 {
		t.Fatalf("TermToWorld = %+v", w)
	}
}
