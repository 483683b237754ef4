package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"runtime"
	"strconv"
	"strings"
	"time"

	"pixeldig/internal/app"
	"pixeldig/internal/terrain"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	probs := floatList{0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	hardness := floatList{0.1, 0.3, 0.5, 0.7}
	radius := flag.Float64("radius", 0.2, "erosion radius in world units")
	trials := flag.Int("trials", 20, "erosion calls per probability")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel probability evaluations")
	size := flag.Int("size", 128, "terrain width and height in cells")
	natural := flag.Bool("natural", false, "also sweep the configured noise terrain")
	var overrides app.KVList
	flag.Var(&probs, "probs", "comma separated base destruction probabilities")
	flag.Var(&hardness, "hardness", "comma separated uniform hardness levels")
	flag.Var(&overrides, "set", "terrain override in key=value form (repeatable)")
	flag.Parse()
	if len(probs) == 0 || len(hardness) == 0 {
		log.Fatal("need at least one probability and one hardness level")
	}

	values, err := overrides.Map()
	if err != nil {
		log.Fatal(err)
	}
	base := terrain.FromMap(values)
	base.Width, base.Height = *size, *size
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sweeping %d probabilities x %d hardness levels (%d workers, %d trials, radius %.2f)\n",
		len(probs), len(hardness), *workers, *trials, *radius)

	start := time.Now()
	worst := 0.0
	for _, h := range hardness {
		cfg := uniform(base, h)
		results, err := terrain.ProbabilitySweep(cfg, probs, *radius, *trials, *workers)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nHardness %.2f (%d candidate cells per call)\n", h, results[0].Candidates)
		for _, r := range results {
			delta := r.MeanFraction - r.Expected
			worst = math.Max(worst, math.Abs(delta))
			fmt.Printf("  p=%.2f expected=%.3f observed=%.3f delta=%+.3f\n", r.Probability, r.Expected, r.MeanFraction, delta)
		}
	}

	if *natural {
		results, err := terrain.ProbabilitySweep(base, probs, *radius, *trials, *workers)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nNoise terrain %q (mean destroyed hardness)\n", base.Base)
		for _, r := range results {
			fmt.Printf("  p=%.2f observed=%.3f hardness=%.3f\n", r.Probability, r.MeanFraction, r.MeanHardness)
		}
	}

	fmt.Printf("\nLargest deviation %.3f in %s\n", worst, time.Since(start).Round(time.Millisecond))
}

// uniform returns cfg with a single grey whose luminance gives hardness h.
func uniform(cfg terrain.Config, h float64) terrain.Config {
	g := uint8(math.Round(255 * (1 - h)))
	cfg.Base = "constant"
	cfg.Gradient = terrain.Gradient{Stops: []terrain.Stop{{Pos: 0, Color: color.NRGBA{R: g, G: g, B: g, A: 255}}}}
	return cfg
}
