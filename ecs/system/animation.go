package system

import (
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		Advance(anim)
	})
}

// Advance moves anim forward by one tick. A non-repeating animation stops
// on its last frame.
func Advance(a *component.Animation) {
	if a.Stopped || a.Frames <= 0 {
		return
	}
	a.Fraction += a.Speed
	if a.Fraction < 1 {
		return
	}
	a.Fraction = 0

	if a.Reverse {
		a.Frame--
	} else {
		a.Frame++
	}

	switch {
	case a.Frame > a.MaxFrame():
		if a.Repeat {
			a.Frame = 0
		} else {
			a.Frame = a.MaxFrame()
			a.Stopped = true
		}
	case a.Frame < 0:
		if a.Repeat {
			a.Frame = a.MaxFrame()
		} else {
			a.Frame = 0
			a.Stopped = true
		}
	}
}

// Play resumes a stopped animation, rewinding it when it sits on its last
// frame.
func Play(a *component.Animation) {
	if !a.Stopped {
		return
	}
	a.Stopped = false
	a.Fraction = 0
	if a.Reverse && a.Frame == 0 {
		a.Frame = a.MaxFrame()
	}
	if !a.Reverse && a.Frame == a.MaxFrame() {
		a.Frame = 0
	}
}
