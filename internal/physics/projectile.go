package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

const (
	DefaultGravity   = 9.81
	DefaultMass      = 0.15
	DefaultDragCoeff = 0.008
)

// Projectile is a point mass under constant gravity and quadratic drag.
// State is [x, y, vx, vy].
type Projectile struct {
	Gravity   float64
	Mass      float64
	DragCoeff float64
}

func NewProjectile(gravity, mass, dragCoeff float64) *Projectile {
	return &Projectile{
		Gravity:   gravity,
		Mass:      mass,
		DragCoeff: dragCoeff,
	}
}

func (p *Projectile) StateDim() int { return 4 }

// Derive returns [vx, vy, ax, ay]. Drag acts along each velocity component
// scaled by speed, i.e. F/m = -(c/m)|v|v.
func (p *Projectile) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy := x[2], x[3]
	v := math.Sqrt(vx*vx + vy*vy)
	k := p.DragCoeff / p.Mass

	ax := -k * v * vx
	ay := -p.Gravity - k*v*vy

	return dynamo.State{vx, vy, ax, ay}
}

func Speed(x dynamo.State) float64 {
	return math.Hypot(x[2], x[3])
}

func (p *Projectile) KineticEnergy(x dynamo.State) float64 {
	v := Speed(x)
	return 0.5 * p.Mass * v * v
}

func (p *Projectile) PotentialEnergy(x dynamo.State) float64 {
	return p.Mass * p.Gravity * x[1]
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity": p.Gravity,
		"mass":    p.Mass,
		"drag":    p.DragCoeff,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		p.Gravity = value
	case "mass":
		p.Mass = value
	case "drag":
		p.DragCoeff = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
