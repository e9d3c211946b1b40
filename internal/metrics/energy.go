package metrics

import (
	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/physics"
)

// EnergyLoss is the fraction of launch energy missing at the last sample.
// Velocity is recovered by backward differences of position, which is exact
// for semi-implicit Euler and first order otherwise.
type EnergyLoss struct {
	name    string
	body    *physics.Projectile
	initial float64
	last    float64
	prev    ballistics.Sample
	samples int
}

func NewEnergyLoss(p ballistics.Params) *EnergyLoss {
	body := physics.NewProjectile(p.Gravity, p.Mass, p.DragCoeff)
	vx, vy := p.Velocity()
	return &EnergyLoss{
		name:    "energy_loss",
		body:    body,
		initial: body.KineticEnergy(dynamo.State{0, 0, vx, vy}),
	}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(s ballistics.Sample) {
	if e.samples > 0 {
		dt := s.T - e.prev.T
		if dt > 0 {
			x := dynamo.State{s.X, s.Y, (s.X - e.prev.X) / dt, (s.Y - e.prev.Y) / dt}
			e.last = e.body.KineticEnergy(x) + e.body.PotentialEnergy(x)
		}
	} else {
		e.last = e.initial
	}
	e.prev = s
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.samples == 0 || e.initial == 0 {
		return 0
	}
	return 1 - e.last/e.initial
}

func (e *EnergyLoss) Reset() {
	e.last = 0
	e.prev = ballistics.Sample{}
	e.samples = 0
}
