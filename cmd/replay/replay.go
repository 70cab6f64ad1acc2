package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/osse101/PouchSim_Go/internal/command"
	"github.com/osse101/PouchSim_Go/internal/display"
	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/item"
)

// Output is what replay prints for one scenario
type Output struct {
	Scenario string               `json:"scenario"`
	Results  []command.Result     `json:"results"`
	Stacks   []domain.StackRecord `json:"stacks"`
	Slots    []display.Slot       `json:"slots"`
	Error    string               `json:"error,omitempty"`
}

type replayer struct {
	exec       *command.Executor
	animated   bool
	brokenFrom int
}

func newReplayer(ctx context.Context, itemsPath string, animated bool, brokenFrom int) (*replayer, error) {
	registry, err := item.NewLoader().LoadRegistry(ctx, itemsPath)
	if err != nil {
		return nil, err
	}
	return &replayer{
		exec:       command.NewExecutor(registry),
		animated:   animated,
		brokenFrom: brokenFrom,
	}, nil
}

// replayFile writes the scenario's output even when a command fails, so the
// pouch at the point of failure can be inspected. The failure is still
// returned.
func (r *replayer) replayFile(ctx context.Context, path string, w io.Writer) error {
	sc, err := command.LoadScenario(path)
	if err != nil {
		return err
	}

	slots, results, runErr := sc.Run(ctx, r.exec)
	if slots == nil {
		return runErr
	}

	name := sc.Name
	if name == "" {
		name = path
	}

	var broken display.BrokenPredicate
	if r.brokenFrom >= 0 {
		broken = display.BrokenFrom(r.brokenFrom)
	}

	out := Output{
		Scenario: name,
		Results:  results,
		Stacks:   slots.Records(),
		Slots:    display.Slots(slots.Snapshot(), r.animated, broken),
	}
	if runErr != nil {
		out.Error = runErr.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return runErr
}
