package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/component"
	"github.com/milk9111/spaceracer/ecs/system"
)

// DrawAt draws img with its top-left corner at the screen point p.
func DrawAt(screen, img *ebiten.Image, p image.Point) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	screen.DrawImage(img, op)
}

func visible(screen *ebiten.Image, r image.Rectangle) bool {
	return r.Overlaps(screen.Bounds())
}

// DrawStars draws the parallax star field.
func DrawStars(screen *ebiten.Image, w *ecs.World, vp *camera.ViewPoint, reg *Registry) {
	ecs.ForEach4(w, component.StarComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), component.AnimationComponent.Kind(),
		func(_ ecs.Entity, st *component.Star, tf *component.Transform, sp *component.Sprite, anim *component.Animation) {
			r := system.StarScreenRect(vp, tf.Pos, st.Z, sp.Size)
			if visible(screen, r) {
				DrawAt(screen, reg.Frame(sp, anim.Frame), r.Min)
			}
		})
}

// DrawAsteroids draws the asteroids still in play.
func DrawAsteroids(screen *ebiten.Image, w *ecs.World, vp *camera.ViewPoint, reg *Registry) {
	ecs.ForEach4(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), component.AnimationComponent.Kind(),
		func(_ ecs.Entity, a *component.Asteroid, tf *component.Transform, sp *component.Sprite, anim *component.Animation) {
			if a.State != component.AsteroidAlive {
				return
			}
			r := system.SpriteRect(vp, tf.Pos, sp.Size)
			if visible(screen, r) {
				DrawAt(screen, reg.Frame(sp, anim.Frame), r.Min)
			}
		})
}

// DrawExplosions draws the running explosions.
func DrawExplosions(screen *ebiten.Image, w *ecs.World, vp *camera.ViewPoint, reg *Registry) {
	ecs.ForEach4(w, component.ExplosionComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), component.AnimationComponent.Kind(),
		func(_ ecs.Entity, _ *component.Explosion, tf *component.Transform, sp *component.Sprite, anim *component.Animation) {
			r := system.SpriteRect(vp, tf.Pos, sp.Size)
			if visible(screen, r) {
				DrawAt(screen, reg.Frame(sp, anim.Frame), r.Min)
			}
		})
}
