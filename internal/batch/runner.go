package batch

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/lowaak/bike-calculator/internal/go_func_utils"
	"github.com/lowaak/bike-calculator/internal/ride"
	"github.com/lowaak/bike-calculator/internal/units"
)

// Outcome is the result of one scenario. Exactly one of Result, Race or
// Error is set.
type Outcome struct {
	Name   string               `json:"name" yaml:"name"`
	Result *ride.Result         `json:"result,omitempty" yaml:"result,omitempty"`
	Race   *ride.RacePrediction `json:"race,omitempty" yaml:"race,omitempty"`
	Error  string               `json:"error,omitempty" yaml:"error,omitempty"`
	Err    error                `json:"-" yaml:"-"`

	// Units is the unit system the scenario was given in
	Units units.System `json:"-" yaml:"-"`
}

// Runner solves scenarios concurrently, one goroutine each
type Runner struct {
	calculator *ride.Calculator
	logger     *log.Logger
}

// NewRunner creates a new Runner
func NewRunner(calculator *ride.Calculator, logger *log.Logger) *Runner {
	if calculator == nil {
		panic("Runner: calculator cannot be nil")
	}
	if logger == nil {
		panic("Runner: logger cannot be nil")
	}
	return &Runner{calculator: calculator, logger: logger}
}

// Run solves every scenario and returns outcomes in input order. A failing
// or panicking scenario only fails its own outcome.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) []Outcome {
	r.logger.Printf("Runner: solving %d scenarios", len(scenarios))
	outcomes := make([]Outcome, len(scenarios))

	var wg sync.WaitGroup
	for i := range scenarios {
		i := i // per-iteration copy; module targets go 1.21 loop semantics
		outcomes[i].Name = scenarios[i].Name
		outcomes[i].Units = scenarios[i].Settings.System()
		go_func_utils.SafeGo(r.logger, &wg, func() error {
			return r.solve(ctx, scenarios[i], &outcomes[i])
		}, func(err error) {
			outcomes[i].Err = err
			outcomes[i].Error = err.Error()
		})
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			r.logger.Printf("Runner: scenario %q failed: %v", o.Name, o.Err)
		}
	}
	r.logger.Printf("Runner: done, %d ok, %d failed", len(outcomes)-failed, failed)
	return outcomes
}

func (r *Runner) solve(ctx context.Context, scenario Scenario, out *Outcome) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scenario %q not started: %w", scenario.Name, err)
	}

	settings := scenario.Settings
	if settings.Event != "" {
		req, err := settings.RaceRequest()
		if err != nil {
			return err
		}
		prediction, err := r.calculator.PredictRace(req)
		if err != nil {
			return err
		}
		out.Race = prediction
		return nil
	}

	req, err := settings.Request()
	if err != nil {
		return err
	}
	result, err := r.calculator.Solve(req)
	if err != nil {
		return err
	}
	out.Result = result
	return nil
}
