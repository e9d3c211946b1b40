package config

import "sort"

var Presets = map[string]*Config{
	"baseball": {
		Name: "baseball", Gravity: 9.81, Mass: 0.15, Drag: 0.008,
		Speed: 50, AngleDeg: 45, Dt: 0.02,
	},
	"golf": {
		Name: "golf", Gravity: 9.81, Mass: 0.0459, Drag: 0.0003,
		Speed: 70, AngleDeg: 12, Dt: 0.01,
	},
	"cannonball": {
		Name: "cannonball", Gravity: 9.81, Mass: 5.0, Drag: 0.0015,
		Speed: 150, AngleDeg: 35, Dt: 0.05,
	},
	"shuttlecock": {
		Name: "shuttlecock", Gravity: 9.81, Mass: 0.005, Drag: 0.0008,
		Speed: 60, AngleDeg: 40, Dt: 0.005,
	},
	"moon": {
		Name: "moon", Gravity: 1.62, Mass: 0.15, Drag: 0,
		Speed: 50, AngleDeg: 45, Dt: 0.02,
	},
	"vacuum": {
		Name: "vacuum", Gravity: 9.81, Mass: 0.15, Drag: 0,
		Speed: 50, AngleDeg: 45, Dt: 0.02,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Preset = name
	cfg.Integrator = DefaultIntegrator
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
