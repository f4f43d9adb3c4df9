package camera

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/common"
)

func (vp *ViewPoint) XToScreen(x float64) int {
	return common.Round(x - vp.pos.X + vp.halfW)
}

func (vp *ViewPoint) YToScreen(y float64) int {
	return common.Round(vp.pos.Y - y + vp.halfH)
}

func (vp *ViewPoint) ScreenToX(x int) float64 {
	return float64(x) + vp.pos.X - vp.halfW
}

func (vp *ViewPoint) ScreenToY(y int) float64 {
	return vp.pos.Y - float64(y) + vp.halfH
}

func (vp *ViewPoint) ToScreen(p cp.Vector) image.Point {
	return image.Pt(vp.XToScreen(p.X), vp.YToScreen(p.Y))
}

func (vp *ViewPoint) ToWorld(p image.Point) cp.Vector {
	return cp.Vector{X: vp.ScreenToX(p.X), Y: vp.ScreenToY(p.Y)}
}

// RectToScreen maps a world box to the screen rectangle covering it.
func (vp *ViewPoint) RectToScreen(bb cp.BB) image.Rectangle {
	return image.Rect(vp.XToScreen(bb.L), vp.YToScreen(bb.T), vp.XToScreen(bb.R), vp.YToScreen(bb.B))
}

// Screen is the viewport rectangle in screen coordinates.
func (vp *ViewPoint) Screen() image.Rectangle {
	return image.Rect(0, 0, vp.width, vp.height)
}

// VisibleBB is the world box shown by the viewport.
func (vp *ViewPoint) VisibleBB() cp.BB {
	return cp.BB{
		L: vp.pos.X - vp.halfW,
		B: vp.pos.Y - vp.halfH,
		R: vp.pos.X + vp.halfW,
		T: vp.pos.Y + vp.halfH,
	}
}
