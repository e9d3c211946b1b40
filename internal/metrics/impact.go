package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/ballistics"
)

// ImpactAngle is the descent angle below horizontal, in degrees, between the
// last two samples. Zero until two samples have been seen.
type ImpactAngle struct {
	prev, last ballistics.Sample
	samples    int
}

func NewImpactAngle() *ImpactAngle { return &ImpactAngle{} }

func (a *ImpactAngle) Name() string { return "impact_angle" }

func (a *ImpactAngle) Observe(s ballistics.Sample) {
	a.prev, a.last = a.last, s
	a.samples++
}

func (a *ImpactAngle) Value() float64 {
	if a.samples < 2 {
		return 0
	}
	dx := a.last.X - a.prev.X
	dy := a.last.Y - a.prev.Y
	return ballistics.Degrees(math.Atan2(-dy, dx))
}

func (a *ImpactAngle) Reset() {
	*a = ImpactAngle{}
}
