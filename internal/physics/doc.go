// Package physics provides dynamical system models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [Projectile]: point mass under gravity and quadratic air drag
//
// Models also implement [dynamo.Configurable] for runtime parameter
// adjustment by name.
//
// # Energy
//
// Drag only removes energy, so for a projectile the sum of
// [Projectile.KineticEnergy] and [Projectile.PotentialEnergy] is
// non-increasing along an exact trajectory:
//
//	p := physics.NewProjectile(9.81, 0.15, 0.008)
//	e := p.KineticEnergy(x) + p.PotentialEnergy(x)
package physics
