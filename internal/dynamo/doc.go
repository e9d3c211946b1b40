// Package dynamo provides core simulation primitives for trajectory models.
//
// The package defines the fundamental interfaces and types for fixed-step
// numerical integration of ordinary differential equations:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Configurable]: runtime parameter access by name
//
// # Example
//
//	dyn := physics.NewProjectile(9.81, 0.15, 0.008)
//	integ := integrators.NewSymplecticEuler()
//	x = integ.Step(dyn, x, t, dt)
//
// # Thread Safety
//
// Integrators may keep scratch buffers between steps and are NOT safe for
// concurrent use. Create one integrator per goroutine.
package dynamo
