package ballistics

import "github.com/san-kum/trajsim/internal/dynamo"

// Vacuum evaluates x = vx0·t, y = vy0·t − g·t²/2 at t = i·dt until the first
// negative height. The grid grows until impact; MaxSteps > 0 caps it.
type Vacuum struct {
	MaxSteps int
}

func (v Vacuum) Name() string { return "vacuum" }

func (v Vacuum) Trajectory(p Params) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vx0, vy0 := p.Velocity()
	traj := make(Trajectory, 0, capacityHint(p))

	for i := 0; ; i++ {
		t := float64(i) * p.Dt
		if v.MaxSteps > 0 && i > v.MaxSteps {
			return nil, &dynamo.SimulationError{Step: i, Time: t, Wrapped: dynamo.ErrStepLimit}
		}

		y := vy0*t - 0.5*p.Gravity*t*t
		if y < 0 {
			break
		}
		traj = append(traj, Sample{T: t, X: vx0 * t, Y: y})
	}

	return traj, nil
}
