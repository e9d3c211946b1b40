package automation

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

// Sweep runs the base configuration across a range of launch angles.
type Sweep struct {
	Base    config.Config
	FromDeg float64
	ToDeg   float64
	StepDeg float64
	// Workers bounds concurrent runs; 0 means one per CPU.
	Workers  int
	Registry *experiment.Registry
}

// SweepPoint is the result at one angle.
type SweepPoint struct {
	AngleDeg   float64
	Comparison *ballistics.Comparison
}

// Angles lists the swept angles, inclusive of ToDeg within rounding.
func (s *Sweep) Angles() ([]float64, error) {
	if s.StepDeg <= 0 || math.IsNaN(s.StepDeg) {
		return nil, errors.New("sweep: step must be > 0")
	}
	if s.ToDeg < s.FromDeg {
		return nil, errors.New("sweep: to must not be below from")
	}

	n := int(math.Floor((s.ToDeg-s.FromDeg)/s.StepDeg+1e-9)) + 1
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = s.FromDeg + float64(i)*s.StepDeg
	}
	return angles, nil
}

// Run computes every angle concurrently. Points are ordered by angle.
func (s *Sweep) Run(ctx context.Context) ([]SweepPoint, error) {
	angles, err := s.Angles()
	if err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}

	points := make([]SweepPoint, len(angles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, angle := range angles {
		g.Go(func() error {
			cfg := s.Base
			cfg.AngleDeg = angle
			cmp, err := experiment.New(&cfg, s.Registry).Run(gctx)
			if err != nil {
				return err
			}
			points[i] = SweepPoint{AngleDeg: angle, Comparison: cmp}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Best returns the point with the longest drag range.
func Best(points []SweepPoint) (SweepPoint, bool) {
	if len(points) == 0 {
		return SweepPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Comparison.DragSummary.Range > best.Comparison.DragSummary.Range {
			best = p
		}
	}
	return best, true
}
