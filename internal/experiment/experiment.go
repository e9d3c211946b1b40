package experiment

import (
	"context"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
)

// Experiment runs one configuration through both models.
type Experiment struct {
	cfg config.Config
	reg *Registry
}

func New(cfg *config.Config, reg *Registry) *Experiment {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Experiment{cfg: *cfg, reg: reg}
}

func (e *Experiment) Config() config.Config { return e.cfg }

func (e *Experiment) Run(ctx context.Context) (*ballistics.Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := e.cfg.Params()
	if err != nil {
		return nil, err
	}

	vacuum, err := e.reg.GetModel("vacuum", &e.cfg)
	if err != nil {
		return nil, err
	}
	drag, err := e.reg.GetModel("drag", &e.cfg)
	if err != nil {
		return nil, err
	}

	cmp, err := ballistics.Compare(p, vacuum, drag)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cmp, nil
}
