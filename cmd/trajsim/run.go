package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/metrics"
)

var noSave bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "compute vacuum and drag trajectories",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addLaunchFlags(cmd)
	cmd.Flags().BoolVar(&noSave, "no-save", false, "print results without storing the run")
	return cmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, cmp, err := compute(cmd)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: v0=%.1f m/s angle=%.1f° g=%.2f m=%.4f c=%.4f dt=%.4f (%s)\n\n",
		cfg.Label(), cfg.Speed, cfg.AngleDeg, cfg.Gravity, cfg.Mass, cfg.Drag, cfg.Dt, cfg.DragModel().Name())
	if err := printComparison(cmp); err != nil {
		return err
	}
	fmt.Printf("\ncompleted in %v\n", elapsed)

	if noSave {
		return nil
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.Save(cmd.Context(), cfg.Label(), cfg.Integrator, cmp)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

// printComparison prints both summaries next to the exact vacuum solution.
func printComparison(cmp *ballistics.Comparison) error {
	ideal := ballistics.Ideal(cmp.Params)
	vm := metrics.Evaluate(cmp.Vacuum, metrics.NewImpactAngle())
	dm := metrics.Evaluate(cmp.Drag, metrics.NewImpactAngle())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tRANGE (m)\tHEIGHT (m)\tTIME (s)\tIMPACT (deg)\tSAMPLES")
	fmt.Fprintf(w, "vacuum\t%.2f\t%.2f\t%.2f\t%.1f\t%d\n",
		cmp.VacuumSummary.Range, cmp.VacuumSummary.MaxHeight, cmp.VacuumSummary.FlightTime, vm["impact_angle"], cmp.Vacuum.Len())
	fmt.Fprintf(w, "drag\t%.2f\t%.2f\t%.2f\t%.1f\t%d\n",
		cmp.DragSummary.Range, cmp.DragSummary.MaxHeight, cmp.DragSummary.FlightTime, dm["impact_angle"], cmp.Drag.Len())
	fmt.Fprintf(w, "exact vacuum\t%.2f\t%.2f\t%.2f\t\t\n", ideal.Range, ideal.MaxHeight, ideal.FlightTime)
	if cmp.VacuumSummary.Range > 0 {
		fmt.Fprintf(w, "drag loss\t%.1f%%\t\t\t\t\n", 100*(1-cmp.DragSummary.Range/cmp.VacuumSummary.Range))
	}
	return w.Flush()
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tV0\tANGLE\tINTEG\tVAC RANGE\tDRAG RANGE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%s\t%.2f\t%.2f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.Speed,
			run.Params.AngleDegrees(),
			run.Integrator,
			run.VacuumSummary.Range,
			run.DragSummary.Range,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	id, best, err := st.Best(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("\nlongest drag range: %s (%.2f m)\n", id, best.Range)
	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			meta, cmp, err := st.LoadComparison(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("run: %s\n", meta.ID)
			fmt.Printf("label: %s\n", meta.Label)
			fmt.Printf("time: %s\n", meta.Timestamp.Format(time.RFC3339))
			fmt.Printf("integrator: %s\n\n", meta.Integrator)
			return printComparison(cmp)
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [run_id...]",
		Short: "delete stored runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			var failed []string
			for _, id := range args {
				if err := st.Delete(cmd.Context(), id); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
					failed = append(failed, id)
					continue
				}
				fmt.Printf("deleted %s\n", id)
			}
			if len(failed) > 0 {
				return fmt.Errorf("could not delete: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
}
