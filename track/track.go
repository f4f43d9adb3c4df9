// Package track turns a tile grid into drawable, collidable track geometry
// relative to the camera.
package track

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/mask"
)

// VisibleTile is a tile in view with its screen rectangle.
type VisibleTile struct {
	Code levels.TileCode
	Rect image.Rectangle
}

// Borders are the world x coordinates of the track walls on one row, with
// Left <= Right. When the row has no gap between walls, Outer is set and Left
// and Right are the inner edges of the outermost tiles, or the edges of the
// tile itself when the row holds a single column.
type Borders struct {
	Left, Right float64
	Outer       bool
}

type Track struct {
	vp    *camera.ViewPoint
	tiles *Tileset
	grid  levels.Grid

	visible    []VisibleTile
	visibleRev uint64
	fresh      bool
}

func New(vp *camera.ViewPoint, tiles *Tileset) *Track {
	return &Track{vp: vp, tiles: tiles}
}

// SetGrid replaces the tile grid and recomputes the visible tiles.
func (t *Track) SetGrid(g levels.Grid) {
	t.grid = g
	t.Update()
}

func (t *Track) Grid() levels.Grid { return t.grid }

func (t *Track) Tileset() *Tileset { return t.tiles }

// Height is the track height in world units.
func (t *Track) Height() float64 {
	return levels.TileToWorld(len(t.grid))
}

// Width is the world width of the column range used by the track.
func (t *Track) Width() float64 {
	lo, hi, ok := t.grid.Span()
	if !ok {
		return 0
	}
	return levels.TileToWorld(hi - lo + 1)
}

// Update recomputes the visible tiles for the current camera position. Call
// it after every camera update.
func (t *Track) Update() {
	t.visible = t.computeVisible()
	t.visibleRev = t.vp.Revision()
	t.fresh = true
}

func (t *Track) refresh() {
	if !t.fresh || t.visibleRev != t.vp.Revision() {
		t.Update()
	}
}

// Visible returns the tiles intersecting the viewport rows, or nil when the
// viewport is entirely outside the track.
func (t *Track) Visible() []VisibleTile {
	t.refresh()
	return t.visible
}

func (t *Track) computeVisible() []VisibleTile {
	bb := t.vp.VisibleBB()
	first := levels.WorldToTile(bb.B)
	last := levels.WorldToTile(bb.T)
	maxRow := len(t.grid) - 1
	if first > maxRow || last < 0 {
		return nil
	}
	first = max(first, 0)
	last = min(last, maxRow)

	out := make([]VisibleTile, 0, 2*(last-first+1))
	for row := first; row <= last; row++ {
		r := t.grid[row]
		for _, col := range r.Columns() {
			code := r[col]
			out = append(out, VisibleTile{Code: code, Rect: t.tileRect(col, row, code)})
		}
	}
	return out
}

func (t *Track) tileRect(col, row int, code levels.TileCode) image.Rectangle {
	tile := t.tiles.Tile(code)
	x := t.vp.XToScreen(levels.TileToWorld(col)) + tile.Offset.X
	y := t.vp.YToScreen(levels.TileToWorld(row)+common.CellSize) + tile.Offset.Y
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y).Add(tile.Size())}
}

// borderColumns walks in from both ends of the row while the neighbouring
// column is occupied, giving the innermost wall column on each side.
func borderColumns(r levels.Row) (left, right int, ok bool) {
	lo, hi, ok := r.Span()
	if !ok {
		return 0, 0, false
	}
	left, right = lo, hi
	for left < hi {
		if _, occupied := r[left+1]; !occupied {
			break
		}
		left++
	}
	for right > lo {
		if _, occupied := r[right-1]; !occupied {
			break
		}
		right--
	}
	return left, right, true
}

// BordersAt returns the walls crossing the horizontal line at world y.
func (t *Track) BordersAt(y float64) (Borders, bool) {
	row := levels.WorldToTile(y)
	if row < 0 || row >= len(t.grid) {
		return Borders{}, false
	}
	left, right, ok := borderColumns(t.grid[row])
	if !ok {
		return Borders{}, false
	}
	if left == right {
		return Borders{
			Left:  levels.TileToWorld(left),
			Right: levels.TileToWorld(left) + common.CellSize,
			Outer: true,
		}, true
	}
	b := Borders{Outer: left > right}
	if b.Outer {
		left, right = right, left
	}
	b.Left = levels.TileToWorld(left) + common.CellSize
	b.Right = levels.TileToWorld(right)
	return b, true
}

// InnerTiles lists the free cells strictly between the walls of every row
// with at least one free column, as (column, row).
func (t *Track) InnerTiles() []image.Point {
	var out []image.Point
	for y, r := range t.grid {
		left, right, ok := borderColumns(r)
		if !ok || right-left <= 1 {
			continue
		}
		for x := left + 1; x < right; x++ {
			out = append(out, image.Pt(x, y))
		}
	}
	return out
}

// CollideRect reports whether rect, in screen coordinates, touches any
// visible tile rectangle.
func (t *Track) CollideRect(rect image.Rectangle) bool {
	for _, vt := range t.Visible() {
		if vt.Rect.Overlaps(rect) {
			return true
		}
	}
	return false
}

// CollideMask tests m placed at rect.Min on screen against the visible tiles
// and returns the first overlapping point in world coordinates.
func (t *Track) CollideMask(m *mask.Mask, rect image.Rectangle) (cp.Vector, bool) {
	for _, vt := range t.Visible() {
		if !vt.Rect.Overlaps(rect) {
			continue
		}
		tm := t.tiles.Tile(vt.Code).Mask
		if p, ok := tm.Overlap(m, rect.Min.Sub(vt.Rect.Min)); ok {
			return t.vp.ToWorld(p.Add(vt.Rect.Min)), true
		}
	}
	return cp.Vector{}, false
}
