package ship

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs/component"
	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/mask"
)

const DefaultLaserCharge = 50

// Laser is the ship's beam. It fires once per full charge and recharges
// while idle.
type Laser struct {
	anim      component.Animation
	size      image.Point
	mask      *mask.Mask
	x, y      float64
	charge    int
	chargeMax int
}

// NewLaser builds a laser from a sheet of frames frames of the given size.
// m is the collision mask of the full beam.
func NewLaser(frames int, size image.Point, m *mask.Mask, chargeMax int) *Laser {
	if chargeMax <= 0 {
		chargeMax = DefaultLaserCharge
	}
	anim := component.NewAnimation(frames, 1, false, false)
	anim.Stopped = true
	return &Laser{anim: anim, size: size, mask: m, charge: chargeMax, chargeMax: chargeMax}
}

// SetOrigin puts the bottom centre of the beam at (ox, oy).
func (l *Laser) SetOrigin(ox, oy float64) {
	l.x = ox - float64(l.size.X)/2
	l.y = oy + float64(l.size.Y)
}

// Update recharges an idle laser and advances a firing one.
func (l *Laser) Update() {
	if l.anim.Stopped {
		if l.charge < l.chargeMax {
			l.charge++
		}
		return
	}
	system.Advance(&l.anim)
}

// Shoot fires when fully charged and idle.
func (l *Laser) Shoot() bool {
	if l.charge < l.chargeMax || !l.anim.Stopped {
		return false
	}
	l.charge = 0
	system.Play(&l.anim)
	return true
}

func (l *Laser) Shooting() bool { return !l.anim.Stopped }

func (l *Laser) Charge() int { return l.charge }

func (l *Laser) Frame() int { return l.anim.Frame }

func (l *Laser) Mask() *mask.Mask { return l.mask }

func (l *Laser) Size() image.Point { return l.size }

// Corner is the world position of the beam's top-left corner.
func (l *Laser) Corner() cp.Vector { return cp.Vector{X: l.x, Y: l.y} }

func (l *Laser) ScreenRect(vp *camera.ViewPoint) image.Rectangle {
	tl := vp.ToScreen(l.Corner())
	return image.Rectangle{Min: tl, Max: tl.Add(l.size)}
}
