package optim

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

var invPhi = (math.Sqrt(5) - 1) / 2

// GoldenAngle maximises objective over the launch angle in [lo, hi] degrees
// by golden-section search, assuming a single peak in the bracket.
func GoldenAngle(ctx context.Context, base config.Config, lo, hi, tol float64, objective Objective) (float64, float64, error) {
	if hi <= lo {
		return 0, 0, errors.New("optim: empty angle bracket")
	}
	if tol <= 0 {
		tol = 0.01
	}

	eval := func(angle float64) (float64, error) {
		cfg := base
		cfg.AngleDeg = angle
		cmp, err := experiment.New(&cfg, nil).Run(ctx)
		if err != nil {
			return 0, err
		}
		return objective(cmp), nil
	}

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, err := eval(c)
	if err != nil {
		return 0, 0, err
	}
	fd, err := eval(d)
	if err != nil {
		return 0, 0, err
	}

	for b-a > tol {
		if fc > fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			if fc, err = eval(c); err != nil {
				return 0, 0, err
			}
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			if fd, err = eval(d); err != nil {
				return 0, 0, err
			}
		}
	}

	if fc > fd {
		return c, fc, nil
	}
	return d, fd, nil
}
