package terrain

import (
	"image/color"
	"testing"
)

func TestGradientEvaluateEndpointsAndBlend(t *testing.T) {
	g := Gradient{Stops: []Stop{
		{Pos: 0.2, Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{Pos: 0.8, Color: color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
	}}
	if got := g.Evaluate(-1); got != g.Stops[0].Color {
		t.Fatalf("below first stop: got %+v", got)
	}
	if got := g.Evaluate(0.1); got != g.Stops[0].Color {
		t.Fatalf("before first stop: got %+v", got)
	}
	if got := g.Evaluate(2); got != g.Stops[1].Color {
		t.Fatalf("above last stop: got %+v", got)
	}
	mid := g.Evaluate(0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 || mid.A != 255 {
		t.Fatalf("midpoint blend: got %+v", mid)
	}
}

func TestGradientParseRoundTrip(t *testing.T) {
	src := "0:#261b16,0.5:#9c764e,1:#ecdcb280"
	g, err := ParseGradient(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(g.Stops))
	}
	if g.Stops[2].Color.A != 0x80 {
		t.Fatalf("expected alpha 0x80, got %#x", g.Stops[2].Color.A)
	}
	if got := g.String(); got != src {
		t.Fatalf("String() = %q, want %q", got, src)
	}

	if _, err := ParseGradient("0.5:#000000,0.2:#ffffff"); err == nil {
		t.Fatal("expected unordered stops to be rejected")
	}
	if _, err := ParseGradient("nope"); err == nil {
		t.Fatal("expected malformed stop to be rejected")
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(color.NRGBA{A: 255}); got != 0 {
		t.Fatalf("black luminance = %f", got)
	}
	if got := Luminance(color.NRGBA{R: 255, G: 255, B: 255, A: 255}); got < 0.999999 {
		t.Fatalf("white luminance = %f", got)
	}
	if Luminance(color.NRGBA{G: 255, A: 255}) <= Luminance(color.NRGBA{B: 255, A: 255}) {
		t.Fatal("green should be perceptually brighter than blue")
	}
}
