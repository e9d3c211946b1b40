package ballistics

import "math"

// Params are the inputs of one simulation run. Angle is in radians.
type Params struct {
	Gravity   float64 `json:"gravity"`
	Mass      float64 `json:"mass"`
	DragCoeff float64 `json:"drag"`
	Speed     float64 `json:"speed"`
	Angle     float64 `json:"angle"`
	Dt        float64 `json:"dt"`
}

// DefaultParams is a 150 g ball thrown at 50 m/s and 45 degrees.
func DefaultParams() Params {
	return Params{
		Gravity:   9.81,
		Mass:      0.15,
		DragCoeff: 0.008,
		Speed:     50.0,
		Angle:     Radians(45),
		Dt:        0.02,
	}
}

// NewParams builds and validates a parameter set.
func NewParams(g, m, c, v0, theta, dt float64) (Params, error) {
	p := Params{Gravity: g, Mass: m, DragCoeff: c, Speed: v0, Angle: theta, Dt: dt}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks every field. A non-positive gravity is rejected because
// neither model would ever reach the ground.
func (p Params) Validate() error {
	checks := []struct {
		field      string
		value      float64
		ok         bool
		constraint string
	}{
		{"gravity", p.Gravity, p.Gravity > 0, "> 0"},
		{"mass", p.Mass, p.Mass > 0, "> 0"},
		{"drag", p.DragCoeff, p.DragCoeff >= 0, ">= 0"},
		{"speed", p.Speed, p.Speed >= 0, ">= 0"},
		{"angle", p.Angle, true, "finite"},
		{"dt", p.Dt, p.Dt > 0, "> 0"},
	}

	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &ConfigurationError{Field: c.field, Value: c.value, Constraint: "finite"}
		}
		if !c.ok {
			return &ConfigurationError{Field: c.field, Value: c.value, Constraint: c.constraint}
		}
	}
	return nil
}

// Velocity decomposes the launch speed into (vx0, vy0).
func (p Params) Velocity() (float64, float64) {
	sin, cos := math.Sincos(p.Angle)
	return p.Speed * cos, p.Speed * sin
}

func (p Params) AngleDegrees() float64 {
	return Degrees(p.Angle)
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
