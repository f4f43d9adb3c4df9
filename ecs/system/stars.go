package system

import (
	"image"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/component"
)

const (
	StarLimit          = 60
	StarAnimationSpeed = 0.25
	StarMinDepth       = 1.0
	StarMaxDepth       = 5.0
)

// StarScreenRect projects a star onto the screen. Pos is the world point of
// the sprite's top-left corner; depth z divides the screen offset, so far
// stars drift slowly.
func StarScreenRect(vp *camera.ViewPoint, pos cp.Vector, z float64, size image.Point) image.Rectangle {
	if z <= 0 {
		z = 1
	}
	tl := image.Pt(int(float64(vp.XToScreen(pos.X))/z), int(float64(vp.YToScreen(pos.Y))/z))
	return image.Rectangle{Min: tl, Max: tl.Add(size)}
}

// StarSystem keeps a parallax star field of StarLimit stars around the view.
type StarSystem struct {
	vp     *camera.ViewPoint
	sheets []Sheet
	rng    *rand.Rand
}

func NewStarSystem(vp *camera.ViewPoint, sheets []Sheet, rng *rand.Rand) *StarSystem {
	return &StarSystem{vp: vp, sheets: sheets, rng: rng}
}

// Respawn replaces the star field. With visibleOnly the stars are placed on
// the screen, otherwise over an area twice the screen size around it.
func (s *StarSystem) Respawn(w *ecs.World, visibleOnly bool) {
	s.Clear(w)
	r := s.vp.Screen()
	if !visibleOnly {
		sw, sh := s.vp.Width(), s.vp.Height()
		r = image.Rect(-sw/2, -sh/2, -sw/2+2*sw, -sh/2+2*sh)
	}
	for range StarLimit {
		s.spawnIn(w, r)
	}
}

func (s *StarSystem) Clear(w *ecs.World) {
	ecs.ForEach(w, component.StarComponent.Kind(), func(e ecs.Entity, _ *component.Star) {
		ecs.DestroyEntity(w, e)
	})
}

// Update tops the field up to StarLimit and drops stars that left the area
// around the screen.
func (s *StarSystem) Update(w *ecs.World) {
	sw, sh := s.vp.Width(), s.vp.Height()
	regions := [...]image.Rectangle{
		image.Rect(-sw, -sh, -sw+sw/2, sh),
		image.Rect(3*sw/2, -sh, 3*sw/2+sw/2, sh),
		// Ahead of the ship, listed twice.
		image.Rect(-sw/2, -sh, -sw/2+2*sw, -sh+sh/2),
		image.Rect(-sw/2, -sh, -sw/2+2*sw, -sh+sh/2),
	}
	for ecs.Len(w, component.StarComponent.Kind()) < StarLimit {
		if s.spawnIn(w, regions[s.rng.IntN(len(regions))]) == 0 {
			break
		}
	}

	ecs.ForEach3(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, st *component.Star, tf *component.Transform, sp *component.Sprite) {
		c := StarScreenRect(s.vp, tf.Pos, st.Z, sp.Size)
		cx, cy := c.Min.X+sp.Size.X/2, c.Min.Y+sp.Size.Y/2
		if cx < -sw || cx > 2*sw || float64(cy) > 1.5*float64(sh) {
			ecs.DestroyEntity(w, e)
		}
	})
}

// Add creates a star of random look centred on the screen point c at depth z.
func (s *StarSystem) Add(w *ecs.World, c image.Point, z float64) ecs.Entity {
	if len(s.sheets) == 0 {
		return 0
	}
	sh := s.sheets[s.rng.IntN(len(s.sheets))]
	left := float64(c.X) - float64(sh.Size.X)/2
	top := float64(c.Y) - float64(sh.Size.Y)/2
	pos := cp.Vector{
		X: left*z + s.vp.X() - s.vp.HalfWidth(),
		Y: s.vp.Y() - top*z + s.vp.HalfHeight(),
	}

	e := ecs.CreateEntity(w)
	anim := component.NewAnimation(sh.Frames(), StarAnimationSpeed, true, false)
	anim.Frame = s.rng.IntN(sh.Frames())
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sh.Sprite())
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
	_ = ecs.Add(w, e, component.StarComponent.Kind(), &component.Star{Z: z})
	return e
}

// spawnIn adds a star centred at a random point of r, edges included.
func (s *StarSystem) spawnIn(w *ecs.World, r image.Rectangle) ecs.Entity {
	c := image.Pt(r.Min.X+s.rng.IntN(r.Dx()+1), r.Min.Y+s.rng.IntN(r.Dy()+1))
	z := StarMinDepth + s.rng.Float64()*(StarMaxDepth-StarMinDepth)
	return s.Add(w, c, z)
}
