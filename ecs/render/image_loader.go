package render

import (
	"fmt"

	"github.com/milk9111/spaceracer/assets"
	"github.com/milk9111/spaceracer/ecs/system"
)

// RegisterBank uploads every sheet of the bank under its name.
func (r *Registry) RegisterBank(b *assets.Bank) {
	for _, name := range b.Names() {
		r.Register(name, b.Image(name))
	}
}

// LoadShipSheets looks up the sheets DrawShip needs.
func LoadShipSheets(b *assets.Bank) (ShipSheets, error) {
	var sheets ShipSheets
	for _, s := range []struct {
		group string
		dst   *system.Sheet
	}{
		{assets.GroupShip, &sheets.Body},
		{assets.GroupLaser, &sheets.Laser},
		{assets.GroupJet, &sheets.Jet},
	} {
		sh, ok := b.First(s.group)
		if !ok {
			return ShipSheets{}, fmt.Errorf("render: no %s sheet", s.group)
		}
		*s.dst = sh
	}
	return sheets, nil
}
