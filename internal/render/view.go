package render

import (
	"image"

	"pixeldig/internal/terrain"
)

// TerrainView is the read side of a terrain used by painters. *terrain.Terrain
// satisfies it.
type TerrainView interface {
	Mapper() terrain.Mapper
	View(fn func(img *image.NRGBA, version uint64))
}
