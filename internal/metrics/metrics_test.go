package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/ballistics"
)

func TestEnergyLossVacuumNearZero(t *testing.T) {
	p := ballistics.DefaultParams()
	p.DragCoeff = 0

	traj, err := ballistics.Vacuum{}.Trajectory(p)
	if err != nil {
		t.Fatal(err)
	}

	got := Evaluate(traj, NewEnergyLoss(p))["energy_loss"]
	if math.Abs(got) > 0.01 {
		t.Errorf("vacuum energy loss = %f, want ~0", got)
	}
}

func TestEnergyLossWithDrag(t *testing.T) {
	p := ballistics.DefaultParams()

	traj, err := ballistics.Drag{}.Trajectory(p)
	if err != nil {
		t.Fatal(err)
	}

	got := Evaluate(traj, NewEnergyLoss(p))["energy_loss"]
	if got <= 0.5 || got >= 1 {
		t.Errorf("drag energy loss = %f, want in (0.5, 1)", got)
	}
}

func TestImpactAngle(t *testing.T) {
	m := NewImpactAngle()
	if m.Value() != 0 {
		t.Error("expected zero before two samples")
	}

	traj := ballistics.Trajectory{{T: 0, X: 0, Y: 1}, {T: 1, X: 1, Y: 0}}
	got := Evaluate(traj, m)["impact_angle"]
	if math.Abs(got-45) > 1e-9 {
		t.Errorf("impact angle = %f, want 45", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestImpactAngleSteeperWithDrag(t *testing.T) {
	p := ballistics.DefaultParams()
	cmp, err := ballistics.Compare(p, ballistics.Vacuum{}, ballistics.Drag{})
	if err != nil {
		t.Fatal(err)
	}

	vac := Evaluate(cmp.Vacuum, NewImpactAngle())["impact_angle"]
	drag := Evaluate(cmp.Drag, NewImpactAngle())["impact_angle"]
	if drag <= vac {
		t.Errorf("drag impact %f should be steeper than vacuum %f", drag, vac)
	}
}

func TestStandardNames(t *testing.T) {
	got := Evaluate(ballistics.Trajectory{{}}, Standard(ballistics.DefaultParams())...)
	for _, name := range []string{"energy_loss", "impact_angle"} {
		if _, ok := got[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
}
