package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
)

func TestRegistryModels(t *testing.T) {
	reg := NewRegistry()

	names := reg.ListModels()
	if len(names) != 2 || names[0] != "drag" || names[1] != "vacuum" {
		t.Errorf("ListModels() = %v, want [drag vacuum]", names)
	}

	cfg := config.DefaultConfig()
	cfg.Integrator = "rk4"
	m, err := reg.GetModel("drag", cfg)
	if err != nil {
		t.Fatalf("GetModel failed: %v", err)
	}
	if m.Name() != "drag/rk4" {
		t.Errorf("expected drag/rk4, got %s", m.Name())
	}

	if _, err := reg.GetModel("magnus", cfg); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestRegistryIntegrators(t *testing.T) {
	reg := NewRegistry()

	for _, name := range reg.ListIntegrators() {
		if _, err := reg.GetIntegrator(name); err != nil {
			t.Errorf("GetIntegrator(%q) failed: %v", name, err)
		}
	}
	if _, err := reg.GetIntegrator("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestExperimentRun(t *testing.T) {
	exp := New(config.DefaultConfig(), nil)

	cmp, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if cmp.DragSummary.Range >= cmp.VacuumSummary.Range {
		t.Errorf("drag range %f not below vacuum range %f", cmp.DragSummary.Range, cmp.VacuumSummary.Range)
	}
}

func TestExperimentRunInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mass = 0

	_, err := New(cfg, nil).Run(context.Background())
	if !errors.Is(err, ballistics.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestExperimentRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(config.DefaultConfig(), nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
