package automation

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

// MonteCarlo perturbs launch speed and angle uniformly to estimate the
// dispersion of the landing point.
type MonteCarlo struct {
	Base           config.Config
	SpeedJitter    float64 // ± m/s
	AngleJitterDeg float64 // ± degrees
	Trials         int
	Seed           int64
	Workers        int
	Registry       *experiment.Registry
}

type Trial struct {
	ID       int
	Speed    float64
	AngleDeg float64
	Vacuum   ballistics.Summary
	Drag     ballistics.Summary
}

// Dispersion summarises drag ranges over all trials.
type Dispersion struct {
	Trials int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Run draws all perturbations up front from one seeded source, so results
// do not depend on scheduling.
func (mc *MonteCarlo) Run(ctx context.Context) ([]Trial, error) {
	if mc.Trials <= 0 {
		return nil, errors.New("montecarlo: trials must be > 0")
	}

	seed := mc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	trials := make([]Trial, mc.Trials)
	for i := range trials {
		trials[i] = Trial{
			ID:       i,
			Speed:    math.Max(mc.Base.Speed+(rng.Float64()-0.5)*2*mc.SpeedJitter, 0),
			AngleDeg: mc.Base.AngleDeg + (rng.Float64()-0.5)*2*mc.AngleJitterDeg,
		}
	}

	workers := mc.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range trials {
		g.Go(func() error {
			cfg := mc.Base
			cfg.Speed = trials[i].Speed
			cfg.AngleDeg = trials[i].AngleDeg
			cmp, err := experiment.New(&cfg, mc.Registry).Run(gctx)
			if err != nil {
				return err
			}
			trials[i].Vacuum = cmp.VacuumSummary
			trials[i].Drag = cmp.DragSummary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trials, nil
}

func Stats(trials []Trial) Dispersion {
	if len(trials) == 0 {
		return Dispersion{}
	}

	d := Dispersion{Trials: len(trials), Min: trials[0].Drag.Range, Max: trials[0].Drag.Range}
	sum := 0.0
	for _, t := range trials {
		r := t.Drag.Range
		sum += r
		d.Min = math.Min(d.Min, r)
		d.Max = math.Max(d.Max, r)
	}
	d.Mean = sum / float64(len(trials))

	ss := 0.0
	for _, t := range trials {
		diff := t.Drag.Range - d.Mean
		ss += diff * diff
	}
	d.StdDev = math.Sqrt(ss / float64(len(trials)))
	return d
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
