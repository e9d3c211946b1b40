package ballistics

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Comparison pairs the vacuum and drag results for one parameter set.
type Comparison struct {
	Params        Params     `json:"params"`
	Vacuum        Trajectory `json:"vacuum"`
	Drag          Trajectory `json:"drag"`
	VacuumSummary Summary    `json:"vacuum_summary"`
	DragSummary   Summary    `json:"drag_summary"`
}

// Compare runs both models concurrently; they share no mutable state.
func Compare(p Params, vacuum, drag Model) (*Comparison, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cmp := &Comparison{Params: p}

	var g errgroup.Group
	g.Go(func() error {
		traj, err := vacuum.Trajectory(p)
		if err != nil {
			return fmt.Errorf("%s: %w", vacuum.Name(), err)
		}
		cmp.Vacuum = traj
		return nil
	})
	g.Go(func() error {
		traj, err := drag.Trajectory(p)
		if err != nil {
			return fmt.Errorf("%s: %w", drag.Name(), err)
		}
		cmp.Drag = traj
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var err error
	if cmp.VacuumSummary, err = Summarize(cmp.Vacuum); err != nil {
		return nil, err
	}
	if cmp.DragSummary, err = Summarize(cmp.Drag); err != nil {
		return nil, err
	}
	return cmp, nil
}

// NewComparison rebuilds a comparison from stored trajectories.
func NewComparison(p Params, vacuum, drag Trajectory) (*Comparison, error) {
	vs, err := Summarize(vacuum)
	if err != nil {
		return nil, fmt.Errorf("vacuum: %w", err)
	}
	ds, err := Summarize(drag)
	if err != nil {
		return nil, fmt.Errorf("drag: %w", err)
	}
	return &Comparison{Params: p, Vacuum: vacuum, Drag: drag, VacuumSummary: vs, DragSummary: ds}, nil
}

// Frames is the number of animation frames needed to play both flights.
func (c *Comparison) Frames() int {
	return max(len(c.Vacuum), len(c.Drag))
}

// FrameIndices returns the sample indices animated for n samples, always
// ending on the last one.
func FrameIndices(n, maxFrames int) []int {
	if n <= 0 {
		return nil
	}
	stride := 1
	if maxFrames > 0 && n > maxFrames {
		stride = (n + maxFrames - 1) / maxFrames
	}

	idx := make([]int, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

// FrameIndices strides the comparison's frames down to about maxFrames.
func (c *Comparison) FrameIndices(maxFrames int) []int {
	return FrameIndices(c.Frames(), maxFrames)
}
