package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

const validScenario = `{
  "name": "arrows",
  "initial": [
    {"item": "NormalArrow", "life": 10, "equipped": true},
    {"item": "Apple", "life": 2}
  ],
  "commands": [
    {"op": "add", "item": "FireArrow", "count": 5},
    {"op": "shoot_arrow", "count": 3},
    {"op": "sort"}
  ]
}`

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", validScenario, ""},
		{"missing commands", `{"name": "x"}`, "scenario bad.json"},
		{"unknown op", `{"commands": [{"op": "juggle"}]}`, "scenario bad.json"},
		{"not json", `{`, "scenario bad.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := ParseScenario([]byte(tt.data), "bad.json")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "arrows", sc.Name)
			assert.Len(t, sc.Initial, 2)
			assert.Len(t, sc.Commands, 3)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrows.json")
	require.NoError(t, os.WriteFile(path, []byte(validScenario), 0o600))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, OpShootArrow, sc.Commands[1].Op)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestScenario_Run(t *testing.T) {
	sc, err := ParseScenario([]byte(validScenario), "arrows.json")
	require.NoError(t, err)

	slots, results, err := sc.Run(context.Background(), NewExecutor(testCatalog()))
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, []string{"NormalArrow:7*", "FireArrow:5", "Apple:2"}, render(slots))
}

func TestScenario_RunUnknownInitialItem(t *testing.T) {
	sc := &Scenario{Initial: []domain.StackRecord{{Item: "Ghost", Life: 1}}}

	_, _, err := sc.Run(context.Background(), NewExecutor(testCatalog()))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
