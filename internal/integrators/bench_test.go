package integrators

import (
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/physics"
)

func benchProjectile(b *testing.B, integrator dynamo.Integrator) {
	dyn := physics.NewProjectile(physics.DefaultGravity, physics.DefaultMass, physics.DefaultDragCoeff)
	x := dynamo.State{0, 0, 35, 35}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, 0, 0.02)
	}
}

func BenchmarkSymplecticEuler(b *testing.B) { benchProjectile(b, NewSymplecticEuler()) }
func BenchmarkEuler(b *testing.B)           { benchProjectile(b, NewEuler()) }
func BenchmarkVerlet(b *testing.B)          { benchProjectile(b, NewVerlet()) }
func BenchmarkRK4(b *testing.B)             { benchProjectile(b, NewRK4()) }
