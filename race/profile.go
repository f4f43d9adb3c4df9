package race

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spaceracer/prefabs"
	"github.com/milk9111/spaceracer/ship"
)

// ScriptProfile computes the ship speed with a tengo script. The script
// sees the floats base, accel and y and must leave the result in speed.
type ScriptProfile struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

func NewScriptProfile(name string, src []byte) (*ScriptProfile, error) {
	script := tengo.NewScript(src)
	_ = script.Add("base", 0.0)
	_ = script.Add("accel", 0.0)
	_ = script.Add("y", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("race: compile %s: %w", name, err)
	}

	p := &ScriptProfile{name: name, compiled: compiled}
	if _, err := p.eval(1, 0, 0); err != nil {
		return nil, fmt.Errorf("race: run %s: %w", name, err)
	}
	return p, nil
}

// LoadScriptProfile compiles a script from the prefabs scripts directory.
func LoadScriptProfile(name string) (*ScriptProfile, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return NewScriptProfile(name, src)
}

func (p *ScriptProfile) Name() string { return p.name }

func (p *ScriptProfile) eval(base, accel, y float64) (float64, error) {
	if err := p.compiled.Set("base", base); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("accel", accel); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("y", y); err != nil {
		return 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, err
	}
	if !p.compiled.IsDefined("speed") {
		return 0, fmt.Errorf("speed is not set")
	}
	v := p.compiled.Get("speed")
	switch v.ValueType() {
	case "float", "int":
		return v.Float(), nil
	}
	return 0, fmt.Errorf("speed is a %s", v.ValueType())
}

// Speed runs the script. After the first failure the error is logged and
// the built-in formula is used from then on.
func (p *ScriptProfile) Speed(base, accel, y float64) float64 {
	if !p.failed {
		v, err := p.eval(base, accel, y)
		if err == nil {
			return v
		}
		p.failed = true
		log.Printf("race: speed script %s: %v; using the built-in formula", p.name, err)
	}
	return ship.DefaultProfile{}.Speed(base, accel, y)
}
