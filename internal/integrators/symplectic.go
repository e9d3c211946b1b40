package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// SymplecticEuler is semi-implicit Euler for states laid out as
// [positions..., velocities...]. Velocities advance first, then positions
// advance with the updated velocities.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (s *SymplecticEuler) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	dx := dyn.Derive(x, t)
	result := make(dynamo.State, n)

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dx[half+i]*dt
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + result[half+i]*dt
	}

	return result
}
