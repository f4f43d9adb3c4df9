// Package camera converts between world coordinates (float, y up, unbounded)
// and screen coordinates (integer pixels, y down) and moves the view point
// that defines the mapping.
package camera

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/common"
)

// TraceOffset is the distance from the screen edge at which a traced point
// starts pushing the view point.
const TraceOffset = 2 * common.CellSize

// Bound is an optional limit on one camera coordinate.
type Bound struct {
	Value float64
	Set   bool
}

// Unbounded leaves a coordinate free.
var Unbounded = Bound{}

// At returns a bound at v. Zero is a valid bound.
func At(v float64) Bound {
	return Bound{Value: v, Set: true}
}

// Limits keep the view point inside a region. Top caps y from above and
// Bottom from below.
type Limits struct {
	Left, Right, Top, Bottom Bound
}

// ViewPoint is the world position shown at the centre of the viewport.
type ViewPoint struct {
	width, height int
	halfW, halfH  float64

	pos      cp.Vector
	speed    float64
	trace    cp.Vector
	tracing  bool
	limits   Limits
	revision uint64
}

func New(width, height int) *ViewPoint {
	vp := &ViewPoint{width: width, height: height}
	vp.Reset()
	return vp
}

// Reset moves the view point to the middle of the first screen and clears
// speed, trace point and limits.
func (vp *ViewPoint) Reset() {
	vp.halfW = float64(vp.width) / 2
	vp.halfH = float64(vp.height) / 2
	vp.pos = cp.Vector{X: 0, Y: vp.halfH}
	vp.speed = 0
	vp.trace = cp.Vector{}
	vp.tracing = false
	vp.limits = Limits{}
	vp.revision++
}

func (vp *ViewPoint) Width() int  { return vp.width }
func (vp *ViewPoint) Height() int { return vp.height }

func (vp *ViewPoint) HalfWidth() float64  { return vp.halfW }
func (vp *ViewPoint) HalfHeight() float64 { return vp.halfH }

// Center returns the world position of the view point.
func (vp *ViewPoint) Center() cp.Vector { return vp.pos }

func (vp *ViewPoint) X() float64 { return vp.pos.X }
func (vp *ViewPoint) Y() float64 { return vp.pos.Y }

func (vp *ViewPoint) SetCenter(p cp.Vector) {
	vp.pos = p
	vp.revision++
}

func (vp *ViewPoint) Speed() float64 { return vp.speed }

// SetSpeed sets the vertical world units added to y on every Update.
func (vp *ViewPoint) SetSpeed(s float64) { vp.speed = s }

// SetTrace makes the view point follow p on the next Update.
func (vp *ViewPoint) SetTrace(p cp.Vector) {
	vp.trace = p
	vp.tracing = true
}

func (vp *ViewPoint) Trace() (cp.Vector, bool) { return vp.trace, vp.tracing }

func (vp *ViewPoint) SetLimits(l Limits) {
	vp.limits = l
	vp.revision++
}

func (vp *ViewPoint) Limits() Limits { return vp.limits }

// Revision changes whenever the view point may have moved.
func (vp *ViewPoint) Revision() uint64 { return vp.revision }

// Update advances the view point by its speed, keeps the trace point at least
// TraceOffset away from every screen edge and applies the limits.
func (vp *ViewPoint) Update() {
	vp.pos.Y += vp.speed

	if vp.tracing {
		vp.pos.X = common.Clamp(vp.pos.X, vp.trace.X-vp.halfW+TraceOffset, vp.trace.X+vp.halfW-TraceOffset)
		vp.pos.Y = common.Clamp(vp.pos.Y, vp.trace.Y-vp.halfH+TraceOffset, vp.trace.Y+vp.halfH-TraceOffset)
	}

	l := vp.limits
	if l.Left.Set && vp.pos.X < l.Left.Value {
		vp.pos.X = l.Left.Value
	}
	if l.Right.Set && vp.pos.X > l.Right.Value {
		vp.pos.X = l.Right.Value
	}
	if l.Top.Set && vp.pos.Y > l.Top.Value {
		vp.pos.Y = l.Top.Value
	}
	if l.Bottom.Set && vp.pos.Y < l.Bottom.Value {
		vp.pos.Y = l.Bottom.Value
	}

	vp.revision++
}
