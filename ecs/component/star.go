package component

// Star is a background star. Z is its depth, 1 being nearest; screen
// coordinates are the camera coordinates divided by Z.
type Star struct {
	Z float64
}

var StarComponent = NewComponent[Star]()
