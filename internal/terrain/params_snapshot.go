package terrain

import (
	"pixeldig/internal/core"
)

// Parameters exposes the terrain configuration and running statistics for
// display.
func (t *Terrain) Parameters() core.ParameterSnapshot {
	t.mu.Lock()
	cfg, params, stats := t.cfg, t.params, t.stats
	alive := t.raster.AliveCount()
	t.mu.Unlock()

	groups := []core.ParameterGroup{
		{
			Name: "Raster",
			Params: []core.Parameter{
				core.IntParam("w", "Width", cfg.Width),
				core.IntParam("h", "Height", cfg.Height),
				core.FloatParam("ppu", "Pixels per unit", cfg.PixelsPerUnit),
				core.Int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.StringParam("noise", "Base", cfg.Base),
				core.FloatParam("noise_scale", "Scale", params.Scale),
				core.IntParam("octaves", "Octaves", params.Octaves),
				core.FloatParam("persistence", "Persistence", params.Persistence),
				core.FloatParam("lacunarity", "Lacunarity", params.Lacunarity),
				core.FloatParam("offset_x", "Offset X", params.OffsetX),
				core.FloatParam("offset_y", "Offset Y", params.OffsetY),
			},
		},
		{
			Name: "Erosion",
			Params: []core.Parameter{
				core.FloatParam("destruction_probability", "Destruction probability", cfg.Params.DestructionProbability),
				core.IntParam("poke_radius", "Poke radius", cfg.Params.PokeRadius),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				core.IntParam("alive", "Cells alive", alive),
				core.IntParam("erosion_calls", "Erosion calls", stats.ErosionCalls),
				core.IntParam("cells_destroyed", "Cells destroyed", stats.CellsDestroyed),
				core.IntParam("cells_poked", "Cells poked", stats.CellsPoked),
				core.FloatParam("destroyed_hardness", "Destroyed hardness", stats.DestroyedHardness),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
