package component

type AsteroidState int

const (
	AsteroidAlive AsteroidState = iota
	AsteroidExploding
)

type Asteroid struct {
	State   AsteroidState
	Variant int
	Small   bool
}

var AsteroidComponent = NewComponent[Asteroid]()
