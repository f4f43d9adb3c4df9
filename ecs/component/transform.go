package component

import "github.com/jakecoffman/cp"

// Transform places an entity in the world. Pos is the centre of the entity
// for asteroids and explosions; stars use it as their projected corner.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = NewComponent[Transform]()
