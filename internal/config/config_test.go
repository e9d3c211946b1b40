package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/ballistics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Integrator != "symplectic" {
		t.Errorf("expected symplectic integrator, got %s", cfg.Integrator)
	}

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	if p != ballistics.DefaultParams() {
		t.Errorf("default config params %+v differ from DefaultParams %+v", p, ballistics.DefaultParams())
	}
}

func TestLoadYAML(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "run.yaml")
	g.Expect(os.WriteFile(path, []byte("speed: 30\nangle_deg: 60\n"), 0644)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Speed).To(Equal(30.0))
	g.Expect(cfg.AngleDeg).To(Equal(60.0))
	g.Expect(cfg.Mass).To(Equal(DefaultMass), "unset fields keep defaults")
}

func TestLoadTOML(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "run.toml")
	g.Expect(os.WriteFile(path, []byte("drag = 0.02\ndt = 0.01\nintegrator = \"rk4\"\n"), 0644)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Drag).To(Equal(0.02))
	g.Expect(cfg.Dt).To(Equal(0.01))
	g.Expect(cfg.Integrator).To(Equal("rk4"))
	g.Expect(cfg.Speed).To(Equal(DefaultSpeed))
}

func TestLoadPresetWithOverride(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "golf.yml")
	g.Expect(os.WriteFile(path, []byte("preset: golf\nspeed: 60\n"), 0644)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Speed).To(Equal(60.0))
	g.Expect(cfg.AngleDeg).To(Equal(12.0))
	g.Expect(cfg.Label()).To(Equal("golf"))
}

func TestLoadOverKeepsBase(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "tweak.yaml")
	g.Expect(os.WriteFile(path, []byte("angle_deg: 20\n"), 0644)).To(Succeed())

	base := GetPreset("cannonball")
	cfg, err := LoadOver(base, path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.AngleDeg).To(Equal(20.0))
	g.Expect(cfg.Speed).To(Equal(base.Speed))
	g.Expect(cfg.Preset).To(Equal("cannonball"))
	g.Expect(base.AngleDeg).To(Equal(35.0), "base must not be modified")
}

func TestLoadUnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("preset: frisbee\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			g := NewWithT(t)
			path := filepath.Join(t.TempDir(), "run"+ext)

			cfg := GetPreset("cannonball")
			g.Expect(Save(path, cfg)).To(Succeed())

			loaded, err := Load(path)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(loaded).To(Equal(cfg))
		})
	}
}

func TestParamsValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mass = 0

	_, err := cfg.Params()
	if !errors.Is(err, ballistics.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestParamsConvertsDegrees(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AngleDeg = 90

	p, err := cfg.Params()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Angle-math.Pi/2) > 1e-12 {
		t.Errorf("angle = %f rad, want pi/2", p.Angle)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("baseball")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Speed != 50 {
		t.Errorf("expected speed 50, got %f", cfg.Speed)
	}

	cfg.Speed = 1
	if Presets["baseball"].Speed != 50 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			p, err := cfg.Params()
			if err != nil {
				t.Fatalf("preset params invalid: %v", err)
			}
			if _, err := ballistics.Compare(p, cfg.VacuumModel(), cfg.DragModel()); err != nil {
				t.Errorf("preset does not simulate: %v", err)
			}
		})
	}
}
