package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
)

func TestSymplecticEulerUsesUpdatedVelocity(t *testing.T) {
	dyn := &freeFall{g: 10}
	integ := NewSymplecticEuler()

	x := integ.Step(dyn, dynamo.State{0, 0, 1, 1}, 0, 0.1)

	// vy' = 1 - 10*0.1 = 0, so y' = 0 + 0*0.1 = 0.
	if x[3] != 0 {
		t.Errorf("vy = %v, want 0", x[3])
	}
	if x[1] != 0 {
		t.Errorf("y = %v, want 0 (position must use updated velocity)", x[1])
	}
	if math.Abs(x[0]-0.1) > 1e-15 {
		t.Errorf("x = %v, want 0.1", x[0])
	}
}

func TestEulerUsesStartVelocity(t *testing.T) {
	dyn := &freeFall{g: 10}
	integ := NewEuler()

	x := integ.Step(dyn, dynamo.State{0, 0, 1, 1}, 0, 0.1)

	if math.Abs(x[1]-0.1) > 1e-15 {
		t.Errorf("y = %v, want 0.1", x[1])
	}
	if x[3] != 0 {
		t.Errorf("vy = %v, want 0", x[3])
	}
}

func TestSymplecticEulerBoundedEnergy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewSymplecticEuler()

	x := dynamo.State{1.0, 0.0}
	dt := 0.05
	for i := 0; i < 10000; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	energy := 0.5 * (x[0]*x[0] + x[1]*x[1])
	if math.Abs(energy-0.5) > 0.05 {
		t.Errorf("energy drifted to %.4f", energy)
	}
}

func TestVerletExactForConstantAcceleration(t *testing.T) {
	dyn := &freeFall{g: 9.81}
	integ := NewVerlet()

	x := dynamo.State{0, 0, 10, 20}
	dt := 0.1
	for i := 0; i < 10; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	wantY := 20*1.0 - 0.5*9.81*1.0
	if math.Abs(x[1]-wantY) > 1e-9 {
		t.Errorf("y = %.9f, want %.9f", x[1], wantY)
	}
}
