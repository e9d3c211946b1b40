package optim

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

// Objective scores a comparison; searches maximise it.
type Objective func(*ballistics.Comparison) float64

func DragRange(c *ballistics.Comparison) float64 { return c.DragSummary.Range }

var setters = map[string]func(*config.Config, float64){
	"speed":   func(c *config.Config, v float64) { c.Speed = v },
	"angle":   func(c *config.Config, v float64) { c.AngleDeg = v },
	"mass":    func(c *config.Config, v float64) { c.Mass = v },
	"drag":    func(c *config.Config, v float64) { c.Drag = v },
	"gravity": func(c *config.Config, v float64) { c.Gravity = v },
}

func ParamNames() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("optim: %d params but %d ranges", len(params), len(ranges))
	}
	for i, name := range params {
		if _, ok := setters[name]; !ok {
			return nil, fmt.Errorf("optim: unknown param %s (available: %v)", name, ParamNames())
		}
		if len(ranges[i]) == 0 {
			return nil, fmt.Errorf("optim: empty range for %s", name)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Search evaluates every grid point and returns the best one. Points whose
// configuration is invalid are skipped.
func (g *GridSearch) Search(
	ctx context.Context,
	base config.Config,
	objective Objective,
) (map[string]float64, float64, error) {

	best := math.Inf(-1)
	var bestParams map[string]float64

	if err := g.searchRecursive(ctx, 0, base, make(map[string]float64), objective, &best, &bestParams); err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, 0, fmt.Errorf("optim: no valid grid point")
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	cfg config.Config,
	current map[string]float64,
	objective Objective,
	best *float64,
	bestParams *map[string]float64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		cmp, err := experiment.New(&cfg, nil).Run(ctx)
		if err != nil {
			return nil
		}

		val := objective(cmp)
		if val > *best {
			*best = val
			*bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := cfg
		setters[paramName](&next, val)
		current[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, next, current, objective, best, bestParams); err != nil {
			return err
		}
	}
	delete(current, paramName)
	return nil
}

// ParseRange reads "name=from:to:step" into a parameter name and its values.
func ParseRange(spec string) (string, []float64, error) {
	name, rest, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("optim: range %q: want name=from:to:step", spec)
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("optim: range %q: want name=from:to:step", spec)
	}

	var nums [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", nil, fmt.Errorf("optim: range %q: %w", spec, err)
		}
		nums[i] = v
	}
	from, to, step := nums[0], nums[1], nums[2]
	if step <= 0 || to < from {
		return "", nil, fmt.Errorf("optim: range %q: need step > 0 and to >= from", spec)
	}

	n := int(math.Floor((to-from)/step+1e-9)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = from + float64(i)*step
	}
	return strings.TrimSpace(name), values, nil
}
