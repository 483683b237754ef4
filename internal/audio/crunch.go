package audio

import (
	"math"
	"time"

	"pixeldig/internal/core"
	"pixeldig/internal/terrain"

	"github.com/gopxl/beep"
)

// SampleRate is the rate all dig sounds are generated at.
const SampleRate = beep.SampleRate(44100)

const (
	crunchBase     = 30 * time.Millisecond
	crunchPerCell  = 2 * time.Millisecond
	crunchMax      = 180 * time.Millisecond
	crunchFullGain = 20 // cells for full volume
)

// CrunchGenerator produces a decaying burst of filtered noise over a low
// rumble. Harder material sounds louder and lower.
type CrunchGenerator struct {
	sr    beep.SampleRate
	gain  float64
	pitch float64
	rng   *core.RNG
	pos   int
	last  float64
}

// NewCrunchGenerator returns an endless crunch source. Wrap it in beep.Take
// to bound its length.
func NewCrunchGenerator(sr beep.SampleRate, gain, hardness float64, seed int64) *CrunchGenerator {
	hardness = core.Clamp01(hardness)
	return &CrunchGenerator{
		sr:    sr,
		gain:  core.Clamp01(gain),
		pitch: 140 - 80*hardness,
		rng:   core.NewRNG(seed),
	}
}

func (g *CrunchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 25)

		noise := g.rng.Range(-1, 1)
		// One-pole low pass keeps the grit without hiss.
		g.last += 0.35 * (noise - g.last)
		rumble := 0.4 * math.Sin(2*math.Pi*g.pitch*t)

		sample := g.gain * envelope * (0.6*g.last + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrunchGenerator) Err() error {
	return nil
}

// Crunch returns a bounded crunch for one tick's destroyed cells, or nil when
// nothing was destroyed.
func Crunch(cells []terrain.DestroyedCell, seed int64) beep.Streamer {
	if len(cells) == 0 {
		return nil
	}
	mean := 0.0
	for _, c := range cells {
		mean += c.Hardness
	}
	mean /= float64(len(cells))

	d := crunchBase + time.Duration(len(cells))*crunchPerCell
	if d > crunchMax {
		d = crunchMax
	}
	gain := (0.3 + 0.7*mean) * math.Min(1, float64(len(cells))/crunchFullGain)
	return beep.Take(SampleRate.N(d), NewCrunchGenerator(SampleRate, gain, mean, seed))
}
