package config

import "honnef.co/go/spiro"

// Presets are ready-made configurations covering every mesh kind.
var Presets = map[string]*Config{
	"flower": {
		Mesh: MeshTwoCirclesInner, R1: 100, R2: 30, PenX: 20,
		Velocity: 50, Duration: 120, Dt: 1.0 / 60, Resolution: spiro.DefaultResolution,
	},
	"star": {
		Mesh: MeshTwoCirclesInner, R1: 100, R2: 58, PenX: 50,
		Velocity: 50, Duration: 400, Dt: 1.0 / 60, Resolution: spiro.DefaultResolution,
	},
	"clover": {
		Mesh: MeshTwoCirclesOuter, R1: 100, R2: 25, PenX: 15,
		Velocity: 60, Duration: 120, Dt: 1.0 / 60, Resolution: spiro.DefaultResolution,
	},
	"wobble": {
		Mesh: MeshCircleEllipseInner, R1: 120, A: 40, B: 25, PenX: 18,
		Velocity: 50, Duration: 300, Dt: 1.0 / 60, Resolution: spiro.DefaultResolution,
	},
	"ripple": {
		Mesh: MeshCircleEllipseOuter, R1: 100, A: 35, B: 22, PenX: 14,
		Velocity: 55, Duration: 300, Dt: 1.0 / 60, Resolution: spiro.DefaultResolution,
	},
	"orbit": {
		Mesh: MeshEllipseCircleOuter, A: 100, B: 65, R2: 28, PenX: 16,
		Velocity: 55, Duration: 300, Dt: 1.0 / 60, Resolution: spiro.DefaultResolution,
	},
}
