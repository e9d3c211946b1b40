package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// Butcher tableau of the classical scheme: stage s is evaluated at
// t + rk4Nodes[s]·dt from x + rk4Nodes[s]·dt·k[s-1].
var (
	rk4Nodes   = [4]float64{0, 0.5, 0.5, 1}
	rk4Weights = [4]float64{1, 2, 2, 1}
)

// RK4 is classical fourth-order Runge-Kutta over any dynamo.System. It is
// generic infrastructure; trajectories use it only when "rk4" is asked for,
// e.g. by the compare command.
type RK4 struct {
	k       [4]dynamo.State
	scratch dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) == n {
		return
	}
	for s := range r.k {
		r.k[s] = make(dynamo.State, n)
	}
	r.scratch = make(dynamo.State, n)
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	r.ensureScratch(n)

	for s := range r.k {
		in := x
		if s > 0 {
			h := rk4Nodes[s] * dt
			for i := range r.scratch {
				r.scratch[i] = x[i] + h*r.k[s-1][i]
			}
			in = r.scratch
		}
		copy(r.k[s], dyn.Derive(in, t+rk4Nodes[s]*dt))
	}

	result := make(dynamo.State, n)
	dt6 := dt / 6
	for i := range result {
		var sum float64
		for s, w := range rk4Weights {
			sum += w * r.k[s][i]
		}
		result[i] = x[i] + dt6*sum
	}

	return result
}
