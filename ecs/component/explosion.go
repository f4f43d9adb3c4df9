package component

// Explosion is a one-shot animation removed once it stops.
type Explosion struct {
	Kind int
}

var ExplosionComponent = NewComponent[Explosion]()
