package ballistics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
)

func TestVacuumReferenceScenario(t *testing.T) {
	traj, err := Vacuum{}.Trajectory(DefaultParams())
	if err != nil {
		t.Fatalf("trajectory failed: %v", err)
	}

	s, err := Summarize(traj)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	if math.Abs(s.Range-254.8) > 0.5 {
		t.Errorf("range = %.2f, want ~254.8", s.Range)
	}
	if math.Abs(s.MaxHeight-63.7) > 0.1 {
		t.Errorf("max height = %.2f, want ~63.7", s.MaxHeight)
	}
	if math.Abs(s.FlightTime-7.2) > 1e-9 {
		t.Errorf("flight time = %.4f, want 7.20", s.FlightTime)
	}
	if traj.Len() != 361 {
		t.Errorf("expected 361 samples, got %d", traj.Len())
	}
}

func TestVacuumQuantizedBelowIdeal(t *testing.T) {
	p := DefaultParams()
	traj, err := Vacuum{}.Trajectory(p)
	if err != nil {
		t.Fatalf("trajectory failed: %v", err)
	}
	s, _ := Summarize(traj)
	ideal := Ideal(p)

	if s.FlightTime > ideal.FlightTime || ideal.FlightTime-s.FlightTime >= p.Dt {
		t.Errorf("flight time %.4f not within one step below ideal %.4f", s.FlightTime, ideal.FlightTime)
	}
	if s.Range > ideal.Range {
		t.Errorf("range %.4f exceeds ideal %.4f", s.Range, ideal.Range)
	}
	if s.MaxHeight > ideal.MaxHeight+1e-9 {
		t.Errorf("max height %.4f exceeds ideal %.4f", s.MaxHeight, ideal.MaxHeight)
	}
}

func TestVacuumLongFlightBeyondTenSeconds(t *testing.T) {
	p := DefaultParams()
	p.Angle = Radians(85)

	traj, err := Vacuum{}.Trajectory(p)
	if err != nil {
		t.Fatalf("trajectory failed: %v", err)
	}

	if last := traj.Last(); last.T <= 10 {
		t.Errorf("flight time = %.2f, expected > 10s", last.T)
	}
}

func TestVacuumStationaryLaunch(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		angle float64
	}{
		{"zero speed", 0, Radians(45)},
		{"horizontal", 50, 0},
		{"downward", 50, Radians(-30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Speed = tt.speed
			p.Angle = tt.angle

			traj, err := Vacuum{}.Trajectory(p)
			if err != nil {
				t.Fatalf("trajectory failed: %v", err)
			}
			if traj.Len() != 1 {
				t.Fatalf("expected 1 sample, got %d", traj.Len())
			}
			s, _ := Summarize(traj)
			if s != (Summary{}) {
				t.Errorf("expected zero summary, got %+v", s)
			}
		})
	}
}

func TestVacuumStepLimit(t *testing.T) {
	_, err := Vacuum{MaxSteps: 10}.Trajectory(DefaultParams())
	if !errors.Is(err, dynamo.ErrStepLimit) {
		t.Errorf("expected ErrStepLimit, got %v", err)
	}
}

func TestVacuumRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Dt = 0

	if _, err := (Vacuum{}).Trajectory(p); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
