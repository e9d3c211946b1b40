package ballistics

// Sample is one point of a trajectory.
type Sample struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trajectory is ordered by strictly increasing T. Producers never retain a
// sample with Y < 0, and callers must not modify a trajectory once produced.
type Trajectory []Sample

func (tr Trajectory) Len() int { return len(tr) }

func (tr Trajectory) First() Sample {
	if len(tr) == 0 {
		return Sample{}
	}
	return tr[0]
}

func (tr Trajectory) Last() Sample {
	if len(tr) == 0 {
		return Sample{}
	}
	return tr[len(tr)-1]
}

// At returns sample i, clamped to the last sample once the flight is over.
func (tr Trajectory) At(i int) Sample {
	if len(tr) == 0 {
		return Sample{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(tr) {
		i = len(tr) - 1
	}
	return tr[i]
}

// Head returns the first n samples, or all of them if n exceeds the length.
func (tr Trajectory) Head(n int) Trajectory {
	if n < 0 {
		n = 0
	}
	if n > len(tr) {
		n = len(tr)
	}
	return tr[:n]
}

func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.T
	}
	return out
}

func (tr Trajectory) Xs() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.X
	}
	return out
}

func (tr Trajectory) Ys() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Y
	}
	return out
}

// Model produces a trajectory from launch parameters.
type Model interface {
	Name() string
	Trajectory(p Params) (Trajectory, error)
}

const maxCapacityHint = 1 << 16

// capacityHint estimates the vacuum flight's sample count.
func capacityHint(p Params) int {
	_, vy0 := p.Velocity()
	if vy0 <= 0 {
		return 1
	}
	n := 2*vy0/(p.Gravity*p.Dt) + 2
	if n > maxCapacityHint {
		return maxCapacityHint
	}
	return int(n)
}
