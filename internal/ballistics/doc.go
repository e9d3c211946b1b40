// Package ballistics computes comparable projectile trajectories.
//
// Two models produce a [Trajectory] of (t, x, y) samples for the same
// [Params]:
//
//   - [Vacuum]: closed-form kinematics on the grid t = i·dt
//   - [Drag]: fixed-step integration under gravity and quadratic drag
//
// Both start at (0, 0, 0) and stop at the first sample below ground, which
// is discarded rather than interpolated. Range and flight time are therefore
// quantized to the dt grid; use [Ideal] for the exact vacuum values.
//
// [Summarize] reduces a trajectory to range, peak height and flight time,
// and [Compare] runs both models side by side:
//
//	p := ballistics.DefaultParams()
//	cmp, err := ballistics.Compare(p, ballistics.Vacuum{}, ballistics.Drag{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cmp.VacuumSummary.Range, cmp.DragSummary.Range)
package ballistics
