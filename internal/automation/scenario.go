package automation

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

// Scenario is a scripted list of runs.
type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Runs        []RunSpec `yaml:"runs"`
}

// RunSpec is one run of a scenario. A preset named in the entry is applied
// before the entry's own fields.
type RunSpec struct {
	config.Config
}

func (r *RunSpec) UnmarshalYAML(node *yaml.Node) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	cfg, err := config.Parse(data, "yaml")
	if err != nil {
		return err
	}
	r.Config = *cfg
	return nil
}

func (r RunSpec) MarshalYAML() (any, error) {
	return r.Config, nil
}

// ScenarioResult is the outcome of one scenario run.
type ScenarioResult struct {
	Label      string
	Config     config.Config
	Comparison *ballistics.Comparison
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", scenario.Name)
	}

	return &scenario, nil
}

// RunScenario executes the runs in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		cfg := run.Config
		cmp, err := experiment.New(&cfg, registry).Run(ctx)
		if err != nil {
			return results, fmt.Errorf("run %d (%s): %w", i+1, cfg.Label(), err)
		}

		results = append(results, ScenarioResult{
			Label:      cfg.Label(),
			Config:     cfg,
			Comparison: cmp,
		})
	}

	return results, nil
}
