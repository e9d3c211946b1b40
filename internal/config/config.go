package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/ballistics"
)

const (
	DefaultGravity    = 9.81
	DefaultMass       = 0.15
	DefaultDrag       = 0.008
	DefaultSpeed      = 50.0
	DefaultAngleDeg   = 45.0
	DefaultDt         = 0.02
	DefaultIntegrator = "symplectic"
)

// Config is the on-disk form of a run. Angles are in degrees.
type Config struct {
	Name       string  `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Preset     string  `yaml:"preset,omitempty" toml:"preset,omitempty" json:"preset,omitempty"`
	Gravity    float64 `yaml:"gravity" toml:"gravity" json:"gravity"`
	Mass       float64 `yaml:"mass" toml:"mass" json:"mass"`
	Drag       float64 `yaml:"drag" toml:"drag" json:"drag"`
	Speed      float64 `yaml:"speed" toml:"speed" json:"speed"`
	AngleDeg   float64 `yaml:"angle_deg" toml:"angle_deg" json:"angle_deg"`
	Dt         float64 `yaml:"dt" toml:"dt" json:"dt"`
	Integrator string  `yaml:"integrator,omitempty" toml:"integrator,omitempty" json:"integrator,omitempty"`
	MaxSteps   int     `yaml:"max_steps,omitempty" toml:"max_steps,omitempty" json:"max_steps,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:       "default",
		Gravity:    DefaultGravity,
		Mass:       DefaultMass,
		Drag:       DefaultDrag,
		Speed:      DefaultSpeed,
		AngleDeg:   DefaultAngleDeg,
		Dt:         DefaultDt,
		Integrator: DefaultIntegrator,
	}
}

// Load reads a YAML or TOML file on top of the defaults. A preset named in
// the file is applied first and the file's own fields override it.
func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver is Load with base in place of the defaults.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOver(base, data, formatOf(path))
}

// Parse decodes data in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (*Config, error) {
	return ParseOver(DefaultConfig(), data, format)
}

// ParseOver decodes data over a copy of base, or over the preset the data
// names.
func ParseOver(base *Config, data []byte, format string) (*Config, error) {
	var probe struct {
		Preset string `yaml:"preset" toml:"preset"`
	}
	if err := unmarshal(data, format, &probe); err != nil {
		return nil, err
	}

	cfg := *base
	if probe.Preset != "" {
		p := GetPreset(probe.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", probe.Preset, ListPresets())
		}
		cfg = *p
	}

	if err := unmarshal(data, format, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch formatOf(path) {
	case "toml":
		data, err = toml.Marshal(cfg)
	case "yaml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func unmarshal(data []byte, format string, v any) error {
	switch format {
	case "toml":
		return toml.Unmarshal(data, v)
	case "yaml":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported config format: %q", format)
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}

// Params converts to validated simulation parameters.
func (c *Config) Params() (ballistics.Params, error) {
	return ballistics.NewParams(c.Gravity, c.Mass, c.Drag, c.Speed, ballistics.Radians(c.AngleDeg), c.Dt)
}

// DragModel builds the drag integrator this config asks for.
func (c *Config) DragModel() ballistics.Drag {
	return ballistics.Drag{Scheme: c.Integrator, MaxSteps: c.MaxSteps}
}

// VacuumModel builds the vacuum model with the same step cap.
func (c *Config) VacuumModel() ballistics.Vacuum {
	return ballistics.Vacuum{MaxSteps: c.MaxSteps}
}

// Label names the run for storage and display.
func (c *Config) Label() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Preset != "" {
		return c.Preset
	}
	return "run"
}
