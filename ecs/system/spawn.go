package system

import (
	"image"
	"math/rand/v2"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/levels"
)

// SpawnCount is the number of random asteroids for a track:
// floor((trackHeight-2*screenHeight)/screenHeight*density) - 1, never
// negative.
func SpawnCount(trackHeight, screenHeight, density float64) int {
	if screenHeight <= 0 {
		return 0
	}
	n := int((trackHeight-2*screenHeight)/screenHeight*density) - 1
	return max(n, 0)
}

// PrepareSpawns picks random free cells for asteroids. Cells in the first
// and last screen of the track are never used, and a cell is used at most
// once. The result is in world units, centred in the cells.
func PrepareSpawns(tiles []image.Point, trackHeight, screenHeight, density float64, rng *rand.Rand) []cp.Vector {
	pool := slices.DeleteFunc(slices.Clone(tiles), func(p image.Point) bool {
		y := levels.TileToWorld(p.Y)
		return y < screenHeight || y > trackHeight-screenHeight
	})
	n := min(SpawnCount(trackHeight, screenHeight, density), len(pool))

	out := make([]cp.Vector, 0, n)
	for range n {
		i := rng.IntN(len(pool))
		p := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		out = append(out, cp.Vector{
			X: levels.TileToWorld(p.X) + common.CellSize/2,
			Y: levels.TileToWorld(p.Y) + common.CellSize/2,
		})
	}
	return out
}
