package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/pouch"
	"github.com/osse101/PouchSim_Go/internal/validation"
)

// Scenario is a replay file: a starting pouch and the commands to run on it
type Scenario struct {
	Name     string               `json:"name"`
	Initial  []domain.StackRecord `json:"initial"`
	Commands []Command            `json:"commands"`
}

// LoadScenario reads a scenario file and checks it against the scenario schema
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadScenario, err)
	}
	return ParseScenario(data, path)
}

// ParseScenario decodes scenario JSON. name is only used in errors.
func ParseScenario(data []byte, name string) (*Scenario, error) {
	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.ScenarioSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgScenarioSchema, name, err)
	}

	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseScenario, err)
	}
	return &sc, nil
}

// Run builds the initial pouch and applies every command. On a failing
// command the pouch is returned as it stood before that command.
func (sc *Scenario) Run(ctx context.Context, exec *Executor) (*pouch.Slots, []Result, error) {
	stacks, err := pouch.FromRecords(exec.catalog, sc.Initial)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgScenarioInitial, err)
	}

	slots := pouch.New(stacks)
	results, err := exec.ExecuteAll(ctx, slots, sc.Commands)
	return slots, results, err
}
