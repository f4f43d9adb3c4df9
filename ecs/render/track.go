package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/track"
)

func tileKey(code levels.TileCode) string { return "tile/" + code.Name() }

// RegisterTiles uploads the cropped tile images of ts.
func (r *Registry) RegisterTiles(ts *track.Tileset) {
	for i := range levels.TileCount {
		code := levels.TileCode(i)
		if t := ts.Tile(code); t != nil {
			r.Register(tileKey(code), t.Image)
		}
	}
}

// DrawTrack draws the tiles in view.
func DrawTrack(screen *ebiten.Image, tr *track.Track, reg *Registry) {
	for _, vt := range tr.Visible() {
		DrawAt(screen, reg.Image(tileKey(vt.Code)), vt.Rect.Min)
	}
}
