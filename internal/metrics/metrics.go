package metrics

import (
	"github.com/san-kum/trajsim/internal/ballistics"
)

// Metric accumulates a scalar over the samples of one trajectory.
type Metric interface {
	Name() string
	Observe(s ballistics.Sample)
	Value() float64
	Reset()
}

// Evaluate resets each metric, feeds it every sample and collects the values
// by name.
func Evaluate(traj ballistics.Trajectory, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range traj {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Standard returns the metrics reported for a launch.
func Standard(p ballistics.Params) []Metric {
	return []Metric{NewEnergyLoss(p), NewImpactAngle()}
}
