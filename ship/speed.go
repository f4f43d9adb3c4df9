package ship

import "math"

// SpeedProfile gives the ship's climb per tick at world height y.
type SpeedProfile interface {
	Speed(base, accel, y float64) float64
}

// DefaultProfile is base + accel*y^1.2. Heights below the start line count
// as zero.
type DefaultProfile struct{}

func (DefaultProfile) Speed(base, accel, y float64) float64 {
	if accel == 0 {
		return base
	}
	return base + accel*math.Pow(max(y, 0), 1.2)
}

// ProfileFunc adapts a function to SpeedProfile.
type ProfileFunc func(base, accel, y float64) float64

func (f ProfileFunc) Speed(base, accel, y float64) float64 { return f(base, accel, y) }
