package ballistics

import (
	"strings"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/physics"
)

// Drag integrates the projectile under gravity and quadratic drag with a
// fixed step until the first negative height, which is discarded.
//
// Scheme names an integrator from the integrators package; empty selects
// semi-implicit Euler (velocity first, then position with the new velocity).
// A fresh integrator is built per call, so a Drag value may be shared
// between goroutines.
type Drag struct {
	Scheme   string
	MaxSteps int
}

func (d Drag) Name() string {
	if d.Scheme == "" || d.Scheme == integrators.Default {
		return "drag"
	}
	return "drag/" + d.Scheme
}

func (d Drag) Trajectory(p Params) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	scheme := d.Scheme
	if scheme == "" {
		scheme = integrators.Default
	}
	integ, err := integrators.New(scheme)
	if err != nil {
		return nil, &ConfigurationError{Field: "integrator", Value: scheme, Constraint: "one of " + strings.Join(integrators.Names(), ", ")}
	}

	dyn := physics.NewProjectile(p.Gravity, p.Mass, p.DragCoeff)
	vx0, vy0 := p.Velocity()

	x := dynamo.State{0, 0, vx0, vy0}
	t := 0.0
	traj := make(Trajectory, 0, capacityHint(p))
	traj = append(traj, Sample{})

	for step := 1; ; step++ {
		if d.MaxSteps > 0 && step > d.MaxSteps {
			return nil, &dynamo.SimulationError{Step: step, Time: t, State: x, Wrapped: dynamo.ErrStepLimit}
		}

		next := integ.Step(dyn, x, t, p.Dt)
		if !next.IsValid() {
			return nil, &dynamo.SimulationError{Step: step, Time: t, State: x, Wrapped: dynamo.ErrUnstable}
		}
		t += p.Dt

		if next[1] < 0 {
			break
		}
		x = next
		traj = append(traj, Sample{T: t, X: x[0], Y: x[1]})
	}

	return traj, nil
}
