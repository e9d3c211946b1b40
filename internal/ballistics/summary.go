package ballistics

// Summary holds the scalar metrics of a completed trajectory.
type Summary struct {
	Range      float64 `json:"range"`
	MaxHeight  float64 `json:"max_height"`
	FlightTime float64 `json:"flight_time"`
}

// Summarize reads range and flight time from the last sample and the peak
// height across all samples.
func Summarize(traj Trajectory) (Summary, error) {
	if len(traj) == 0 {
		return Summary{}, ErrEmptyTrajectory
	}

	last := traj[len(traj)-1]
	s := Summary{Range: last.X, FlightTime: last.T, MaxHeight: traj[0].Y}
	for _, sample := range traj[1:] {
		if sample.Y > s.MaxHeight {
			s.MaxHeight = sample.Y
		}
	}
	return s, nil
}

// Ideal is the exact vacuum solution: R = v0²·sin(2θ)/g, H = (v0·sinθ)²/(2g),
// T = 2·v0·sinθ/g. Non-upward launches give zeros.
func Ideal(p Params) Summary {
	vx0, vy0 := p.Velocity()
	if vy0 <= 0 || p.Gravity <= 0 {
		return Summary{}
	}
	t := 2 * vy0 / p.Gravity
	return Summary{
		Range:      vx0 * t,
		MaxHeight:  vy0 * vy0 / (2 * p.Gravity),
		FlightTime: t,
	}
}
