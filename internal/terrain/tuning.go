package terrain

import (
	"sync"

	"pixeldig/internal/core"
)

// FractionResult captures telemetry from repeated erosion calls on fresh
// terrains, used to calibrate destruction probability against hardness.
type FractionResult struct {
	// Probability is the base destruction probability under test.
	Probability float64
	// Trials is the number of erosion calls measured. Calls whose disk held
	// no live cells are not counted.
	Trials int
	// Candidates is the number of live cells inside the disk of one call.
	Candidates int
	// MeanFraction is the average share of candidates destroyed per call.
	MeanFraction float64
	// MeanHardness is the average hardness of the destroyed cells.
	MeanHardness float64
	// Expected is the fraction predicted by AdjustedProbability for the
	// mean candidate hardness.
	Expected float64
}

// ErosionFraction erodes the centre of a fresh terrain built from cfg once
// per trial and reports the average destroyed fraction. Each trial uses its
// own seed derived from cfg.Seed.
func ErosionFraction(cfg Config, radius float64, trials int) (FractionResult, error) {
	res := FractionResult{Probability: cfg.Params.DestructionProbability}
	if trials <= 0 {
		return res, nil
	}
	if err := cfg.Validate(); err != nil {
		return res, err
	}

	var fractionSum, hardnessSum float64
	var destroyedTotal, measured int
	for i := 0; i < trials; i++ {
		trialCfg := cfg
		trialCfg.Seed = cfg.Seed + int64(i)*7919
		t, err := New(trialCfg)
		if err != nil {
			return res, err
		}
		centre := cfg.Transform.Position

		candidates, meanHardness := t.candidatesAt(centre, radius)
		if res.Candidates == 0 {
			res.Candidates = candidates
			res.Expected = AdjustedProbability(cfg.Params.DestructionProbability, meanHardness)
		}
		if candidates == 0 {
			continue
		}
		measured++
		cells := t.Erode(centre, radius)
		fractionSum += float64(len(cells)) / float64(candidates)
		for _, c := range cells {
			hardnessSum += c.Hardness
		}
		destroyedTotal += len(cells)
	}

	res.Trials = measured
	if measured > 0 {
		res.MeanFraction = fractionSum / float64(measured)
	}
	if destroyedTotal > 0 {
		res.MeanHardness = hardnessSum / float64(destroyedTotal)
	}
	return res, nil
}

// candidatesAt counts live cells inside the erosion disk at pos and their
// mean hardness.
func (t *Terrain) candidatesAt(pos core.Vec2, radius float64) (int, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if radius <= 0 {
		return 0, 0
	}
	m := MapperFor(t.raster, t.cfg.Transform)
	c := m.WorldToCell(pos)
	cr := m.CellRadius(radius)
	n := 0
	sum := 0.0
	for dy := -cr; dy <= cr; dy++ {
		for dx := -cr; dx <= cr; dx++ {
			if dx*dx+dy*dy > cr*cr || !t.raster.Alive(c.X+dx, c.Y+dy) {
				continue
			}
			h, _ := t.raster.CellHardness(c.X+dx, c.Y+dy)
			sum += h
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return n, sum / float64(n)
}

// ProbabilitySweep measures ErosionFraction for every probability in probs
// using up to workers goroutines. Results are returned in the order of probs.
func ProbabilitySweep(cfg Config, probs []float64, radius float64, trials, workers int) ([]FractionResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]FractionResult, len(probs))
	errs := make([]error, len(probs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				c := cfg
				c.Params.DestructionProbability = probs[i]
				results[i], errs[i] = ErosionFraction(c, radius, trials)
			}
		}()
	}
	for i := range probs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
