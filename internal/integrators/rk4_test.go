package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// simpleDynamics is a unit harmonic oscillator with state [x, v].
type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int { return 2 }

// freeFall has constant acceleration -g on the second axis, state [x, y, vx, vy].
type freeFall struct{ g float64 }

func (f *freeFall) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[2], x[3], 0, -f.g}
}

func (f *freeFall) StateDim() int { return 4 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4ExactForConstantAcceleration(t *testing.T) {
	dyn := &freeFall{g: 9.81}
	integ := NewRK4()

	x := dynamo.State{0, 0, 10, 20}
	dt := 0.1
	for i := 0; i < 10; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	wantY := 20*1.0 - 0.5*9.81*1.0
	if math.Abs(x[1]-wantY) > 1e-9 {
		t.Errorf("y = %.9f, want %.9f", x[1], wantY)
	}
	if math.Abs(x[0]-10) > 1e-9 {
		t.Errorf("x = %.9f, want 10", x[0])
	}
}

func TestRK4SingleStepMatchesTaylor(t *testing.T) {
	// For x' = v, v' = -x one RK4 step equals the Taylor series of cos and
	// -sin truncated after the dt^4 term.
	dt := 0.1
	x := NewRK4().Step(&simpleDynamics{}, dynamo.State{1, 0}, 0, dt)

	wantX := 1 - dt*dt/2 + dt*dt*dt*dt/24
	wantV := -dt + dt*dt*dt/6
	if math.Abs(x[0]-wantX) > 1e-15 || math.Abs(x[1]-wantV) > 1e-15 {
		t.Errorf("got (%.17f, %.17f), want (%.17f, %.17f)", x[0], x[1], wantX, wantV)
	}
}
