package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
)

type Registry struct {
	models map[string]func(cfg *config.Config) ballistics.Model
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func(cfg *config.Config) ballistics.Model),
	}

	r.models["vacuum"] = func(cfg *config.Config) ballistics.Model { return cfg.VacuumModel() }
	r.models["drag"] = func(cfg *config.Config) ballistics.Model { return cfg.DragModel() }

	return r
}

func (r *Registry) GetModel(name string, cfg *config.Config) (ballistics.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(cfg), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	return integrators.New(name)
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	return integrators.Names()
}
