package ballistics

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	traj := Trajectory{
		{T: 0, X: 0, Y: 0},
		{T: 0.1, X: 1, Y: 2},
		{T: 0.2, X: 2, Y: 3},
		{T: 0.3, X: 3, Y: 1},
	}

	s, err := Summarize(traj)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	want := Summary{Range: 3, MaxHeight: 3, FlightTime: 0.3}
	if s != want {
		t.Errorf("Summarize() = %+v, want %+v", s, want)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	s, err := Summarize(Trajectory{{}})
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	tests := []struct {
		name string
		traj Trajectory
	}{
		{"nil", nil},
		{"empty", Trajectory{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Summarize(tt.traj)
			if !errors.Is(err, ErrEmptyTrajectory) {
				t.Errorf("expected ErrEmptyTrajectory, got %v", err)
			}
		})
	}
}

func TestIdeal(t *testing.T) {
	s := Ideal(DefaultParams())

	if math.Abs(s.Range-2500/9.81) > 1e-9 {
		t.Errorf("ideal range = %f, want %f", s.Range, 2500/9.81)
	}
	if math.Abs(s.MaxHeight-1250/(2*9.81)) > 1e-9 {
		t.Errorf("ideal height = %f", s.MaxHeight)
	}
	if math.Abs(s.FlightTime-7.208) > 1e-3 {
		t.Errorf("ideal flight time = %f", s.FlightTime)
	}

	p := DefaultParams()
	p.Angle = Radians(-5)
	if Ideal(p) != (Summary{}) {
		t.Error("expected zero ideal summary for downward launch")
	}
}

func TestTrajectoryAccessors(t *testing.T) {
	traj := Trajectory{{T: 0}, {T: 1, X: 2, Y: 3}, {T: 2, X: 4}}

	if traj.At(-1) != traj[0] || traj.At(10) != traj[2] {
		t.Error("At does not clamp")
	}
	if len(traj.Head(2)) != 2 || len(traj.Head(10)) != 3 || len(traj.Head(-1)) != 0 {
		t.Error("Head does not clamp")
	}
	if xs := traj.Xs(); xs[1] != 2 || xs[2] != 4 {
		t.Errorf("Xs() = %v", xs)
	}
	if ys := traj.Ys(); ys[1] != 3 {
		t.Errorf("Ys() = %v", ys)
	}
	if ts := traj.Times(); ts[2] != 2 {
		t.Errorf("Times() = %v", ts)
	}
	if (Trajectory{}).Last() != (Sample{}) {
		t.Error("Last of empty trajectory should be zero sample")
	}
}
