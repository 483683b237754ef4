package render

import (
	"image"
	"image/color"
	"testing"
)

func TestFillTerrainRGBAFlipsAndPremultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	img.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = 0xAA
	}
	FillTerrainRGBA(buf, img)

	// Cell row 0 is the bottom image row.
	bottomLeft := buf[8:12]
	if bottomLeft[0] != 200 || bottomLeft[1] != 100 || bottomLeft[2] != 50 || bottomLeft[3] != 255 {
		t.Fatalf("bottom-left pixel %v", bottomLeft)
	}
	for i, v := range buf[12:16] {
		if v != 0 {
			t.Fatalf("transparent cell channel %d = %d", i, v)
		}
	}
	topLeft := buf[0:4]
	if topLeft[0] != 128 || topLeft[3] != 128 {
		t.Fatalf("half transparent white should premultiply to 128, got %v", topLeft)
	}
}

func TestFillHardnessRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 255})
	// Cell 2 is destroyed but still carries hardness.
	buf := make([]byte, 12)
	FillHardnessRGBA(buf, img, []float64{0, 1, 1})
	if buf[3] != 0 {
		t.Fatal("zero hardness should stay transparent")
	}
	if buf[7] != 170 {
		t.Fatalf("full hardness alpha %d, want 170", buf[7])
	}
	if buf[4] < buf[6] {
		t.Fatal("hard cells should render hot")
	}
	if buf[11] != 0 {
		t.Fatal("destroyed cells should stay transparent")
	}

	// A mismatched grid leaves buf untouched.
	buf[0] = 9
	FillHardnessRGBA(buf, img, []float64{1})
	if buf[0] != 9 {
		t.Fatal("mismatched grid should be ignored")
	}
}

func TestHardnessColorEndpoints(t *testing.T) {
	if c := HardnessColor(-1); c != (color.RGBA{R: 40, G: 60, B: 120, A: 255}) {
		t.Fatalf("low end %v", c)
	}
	if c := HardnessColor(2); c != (color.RGBA{R: 220, G: 30, B: 30, A: 255}) {
		t.Fatalf("high end %v", c)
	}
}
