package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/integrators"
)

var (
	preset     string
	configFile string
	gravity    float64
	mass       float64
	dragCoeff  float64
	speed      float64
	angleDeg   float64
	dt         float64
	integrator string
	maxSteps   int
)

func addLaunchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&preset, "preset", "", "launch preset (see `trajsim presets`)")
	f.StringVar(&configFile, "config", "", "config file (yaml or toml)")
	f.Float64Var(&gravity, "g", config.DefaultGravity, "gravitational acceleration (m/s²)")
	f.Float64Var(&mass, "m", config.DefaultMass, "mass (kg)")
	f.Float64Var(&dragCoeff, "c", config.DefaultDrag, "quadratic drag coefficient (kg/m)")
	f.Float64Var(&speed, "v0", config.DefaultSpeed, "launch speed (m/s)")
	f.Float64Var(&angleDeg, "angle", config.DefaultAngleDeg, "launch angle (degrees)")
	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	f.StringVar(&integrator, "integrator", config.DefaultIntegrator, fmt.Sprintf("drag integrator %v", integrators.Names()))
	f.IntVar(&maxSteps, "max-steps", 0, "step limit per model (0 = unlimited)")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(cfg, configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("g") {
		cfg.Gravity = gravity
	}
	if flags.Changed("m") {
		cfg.Mass = mass
	}
	if flags.Changed("c") {
		cfg.Drag = dragCoeff
	}
	if flags.Changed("v0") {
		cfg.Speed = speed
	}
	if flags.Changed("angle") {
		cfg.AngleDeg = angleDeg
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}

	return cfg, nil
}

// compute runs the resolved configuration through both models.
func compute(cmd *cobra.Command) (*config.Config, *ballistics.Comparison, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	cmp, err := experiment.New(cfg, nil).Run(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return cfg, cmp, nil
}

// comparisonFor loads a stored run when an ID is given, otherwise computes
// one from the launch flags.
func comparisonFor(cmd *cobra.Command, args []string) (string, *ballistics.Comparison, error) {
	if len(args) == 1 {
		st, err := openStore(cmd)
		if err != nil {
			return "", nil, err
		}
		defer st.Close()

		meta, cmp, err := st.LoadComparison(args[0])
		if err != nil {
			return "", nil, err
		}
		return meta.Label, cmp, nil
	}

	cfg, cmp, err := compute(cmd)
	if err != nil {
		return "", nil, err
	}
	return cfg.Label(), cmp, nil
}
