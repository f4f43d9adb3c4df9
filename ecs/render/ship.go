package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/ship"
)

// ShipSheets are the sheets the ship is drawn from.
type ShipSheets struct {
	Body, Laser, Jet system.Sheet
}

// DrawShip draws the jets, the beam while it fires and the hull. Nothing is
// drawn on the blinking frames of an exploding or restoring ship.
func DrawShip(screen *ebiten.Image, s *ship.Ship, vp *camera.ViewPoint, sheets ShipSheets, reg *Registry) {
	if !s.Visible() {
		return
	}
	jet := sheets.Jet.Sprite()
	for _, j := range s.Jets() {
		DrawAt(screen, reg.Frame(jet, j.Anim.Frame), vp.ToScreen(j.Corner))
	}
	if l := s.Laser(); l.Shooting() {
		DrawAt(screen, reg.Frame(sheets.Laser.Sprite(), l.Frame()), l.ScreenRect(vp).Min)
	}
	DrawAt(screen, reg.Frame(sheets.Body.Sprite(), 0), s.ScreenRect().Min)
}
