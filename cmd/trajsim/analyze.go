package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/automation"
	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/optim"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare drag integrators against each other",
		Long:  "compare runs the drag model once per integrator (all of them when none are named).",
		RunE:  compareIntegrators,
	}
	addLaunchFlags(cmd)
	return cmd
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = integrators.Names()
	}

	fmt.Printf("comparing integrators for %s (dt=%.4f)\n\n", cfg.Label(), cfg.Dt)
	fmt.Printf("%-12s  %-10s  %-10s  %-10s  %-10s  %-10s  %-10s\n",
		"integrator", "range", "height", "time", "e_loss", "impact", "time_ms")
	fmt.Println(strings.Repeat("-", 86))

	for _, name := range names {
		model := ballistics.Drag{Scheme: name, MaxSteps: cfg.MaxSteps}

		start := time.Now()
		traj, err := model.Trajectory(p)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}
		s, err := ballistics.Summarize(traj)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		m := metrics.Evaluate(traj, metrics.Standard(p)...)

		fmt.Printf("%-12s  %10.3f  %10.3f  %10.2f  %9.1f%%  %9.1f°  %10.3f\n",
			name, s.Range, s.MaxHeight, s.FlightTime,
			100*m["energy_loss"], m["impact_angle"], float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func newSweepCmd() *cobra.Command {
	var (
		from, to, step float64
		workers        int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the launch angle and report the longest drag range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			sweep := &automation.Sweep{
				Base:    *cfg,
				FromDeg: from,
				ToDeg:   to,
				StepDeg: step,
				Workers: workers,
			}
			points, err := sweep.Run(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ANGLE\tVAC RANGE\tDRAG RANGE\tDRAG HEIGHT\tDRAG TIME")
			for _, pt := range points {
				v, d := pt.Comparison.VacuumSummary, pt.Comparison.DragSummary
				fmt.Fprintf(w, "%.1f\t%.2f\t%.2f\t%.2f\t%.2f\n", pt.AngleDeg, v.Range, d.Range, d.MaxHeight, d.FlightTime)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if best, ok := automation.Best(points); ok {
				fmt.Printf("\nbest angle: %.1f° (drag range %.2f m)\n", best.AngleDeg, best.Comparison.DragSummary.Range)
			}
			return nil
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().Float64Var(&from, "from", 5, "first angle (degrees)")
	cmd.Flags().Float64Var(&to, "to", 85, "last angle (degrees)")
	cmd.Flags().Float64Var(&step, "step", 5, "angle step (degrees)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = GOMAXPROCS)")
	return cmd
}

func newDispersionCmd() *cobra.Command {
	var (
		trials      int
		speedJitter float64
		angleJitter float64
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "dispersion",
		Short: "Monte Carlo spread of the drag range under launch jitter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			mc := &automation.MonteCarlo{
				Base:           *cfg,
				SpeedJitter:    speedJitter,
				AngleJitterDeg: angleJitter,
				Trials:         trials,
				Seed:           seed,
			}
			results, err := mc.Run(cmd.Context())
			if err != nil {
				return err
			}

			d := automation.Stats(results)
			fmt.Printf("%s: %d trials, v0 ±%.2f m/s, angle ±%.2f°\n", cfg.Label(), d.Trials, speedJitter, angleJitter)
			fmt.Printf("  drag range mean: %.2f m\n", d.Mean)
			fmt.Printf("  drag range std:  %.2f m\n", d.StdDev)
			fmt.Printf("  drag range min:  %.2f m\n", d.Min)
			fmt.Printf("  drag range max:  %.2f m\n", d.Max)
			return nil
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().IntVar(&trials, "trials", 200, "number of trials")
	cmd.Flags().Float64Var(&speedJitter, "speed-jitter", 1, "launch speed jitter (± m/s)")
	cmd.Flags().Float64Var(&angleJitter, "angle-jitter", 2, "launch angle jitter (± degrees)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

func newScenarioCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every launch listed in a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("scenario: %s (%d runs)\n", sc.Name, len(sc.Runs))
			if sc.Description != "" {
				fmt.Println(sc.Description)
			}
			fmt.Println()

			results, runErr := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tV0\tANGLE\tVAC RANGE\tDRAG RANGE\tDRAG HEIGHT\tDRAG TIME")
			for _, r := range results {
				d := r.Comparison.DragSummary
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.2f\t%.2f\t%.2f\t%.2f\n",
					r.Label, r.Config.Speed, r.Config.AngleDeg, r.Comparison.VacuumSummary.Range, d.Range, d.MaxHeight, d.FlightTime)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if save && len(results) > 0 {
				st, err := openStore(cmd)
				if err != nil {
					return err
				}
				defer st.Close()

				for _, r := range results {
					id, err := st.Save(cmd.Context(), r.Label, r.Config.Integrator, r.Comparison)
					if err != nil {
						return err
					}
					fmt.Printf("saved %s\n", id)
				}
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "store every completed run")
	return cmd
}

func newOptimizeCmd() *cobra.Command {
	var (
		lo, hi, tol float64
		grid        []string
	)
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "find the launch that maximises the drag range",
		Long: `optimize runs a golden-section search over the launch angle, or an
exhaustive grid search when --grid ranges are given (name=from:to:step).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if len(grid) == 0 {
				angle, val, err := optim.GoldenAngle(cmd.Context(), *cfg, lo, hi, tol, optim.DragRange)
				if err != nil {
					return err
				}
				fmt.Printf("%s: best angle %.2f° (drag range %.2f m)\n", cfg.Label(), angle, val)
				return nil
			}

			names := make([]string, 0, len(grid))
			ranges := make([][]float64, 0, len(grid))
			for _, spec := range grid {
				name, values, err := optim.ParseRange(spec)
				if err != nil {
					return err
				}
				names = append(names, name)
				ranges = append(ranges, values)
			}
			gs, err := optim.NewGridSearch(names, ranges)
			if err != nil {
				return err
			}
			best, val, err := gs.Search(cmd.Context(), *cfg, optim.DragRange)
			if err != nil {
				return err
			}

			fmt.Printf("%s: best drag range %.2f m\n", cfg.Label(), val)
			for _, name := range names {
				fmt.Printf("  %-8s %.4g\n", name, best[name])
			}
			return nil
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().Float64Var(&lo, "lo", 1, "lower angle bound (degrees)")
	cmd.Flags().Float64Var(&hi, "hi", 89, "upper angle bound (degrees)")
	cmd.Flags().Float64Var(&tol, "tol", 0.05, "angle tolerance (degrees)")
	cmd.Flags().StringSliceVar(&grid, "grid", nil, "grid range name=from:to:step, repeatable")
	return cmd
}
