package component

// Animation steps through the frames of a sprite sheet. Speed is frames per
// tick in (0, 1]; Fraction accumulates it.
type Animation struct {
	Frame    int
	Frames   int
	Fraction float64
	Speed    float64
	Reverse  bool
	Repeat   bool
	Stopped  bool
}

// NewAnimation returns a running animation positioned on its first frame,
// which is the last sheet frame when playing in reverse.
func NewAnimation(frames int, speed float64, repeat, reverse bool) Animation {
	a := Animation{Frames: frames, Speed: speed, Repeat: repeat, Reverse: reverse}
	if reverse {
		a.Frame = frames - 1
	}
	return a
}

func (a *Animation) MaxFrame() int { return a.Frames - 1 }

var AnimationComponent = NewComponent[Animation]()
