package command

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/metrics"
	"github.com/osse101/PouchSim_Go/internal/pouch"
)

func TestExecutor_Validate(t *testing.T) {
	exec := NewExecutor(testCatalog())

	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"add ok", Command{Op: OpAdd, Item: "Apple", Count: 1}, false},
		{"sort needs no item", Command{Op: OpSort}, false},
		{"shoot needs no item", Command{Op: OpShootArrow, Count: 1}, false},
		{"unequip slot -1", Command{Op: OpUnequip, Item: "TravelersSword", Slot: -1}, false},
		{"missing op", Command{Item: "Apple"}, true},
		{"unknown op", Command{Op: "juggle"}, true},
		{"add without item", Command{Op: OpAdd, Count: 1}, true},
		{"negative count", Command{Op: OpAdd, Item: "Apple", Count: -1}, true},
		{"slot below -1", Command{Op: OpRemove, Item: "Apple", Slot: -2}, true},
		{"equip slot below -1", Command{Op: OpEquip, Item: "TravelersSword", Slot: -5}, true},
		{"corrupt any slot", Command{Op: OpCorrupt, Life: 0, Slot: -5}, false},
		{"count above bound", Command{Op: OpAddSlot, Item: "Apple", Count: 1_000_001}, true},
		{"limit below -1", Command{Op: OpSort, Limit: intPtr(-5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exec.Validate(tt.cmd)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.True(t, IsRejection(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecutor_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		initial     []pouch.ItemStack
		cmd         Command
		wantSlots   []string
		wantAdded   int
		wantRemoved int
	}{
		{
			name:      "add stackable",
			cmd:       Command{Op: OpAdd, Item: "Apple", Count: 3},
			wantSlots: []string{"Apple:3"},
			wantAdded: 1,
		},
		{
			name:      "add merges",
			initial:   []pouch.ItemStack{pouch.NewMaterialStack(apple, 3)},
			cmd:       Command{Op: OpAdd, Item: "Apple", Count: 2},
			wantSlots: []string{"Apple:5"},
		},
		{
			name:      "add_direct appends without merging",
			initial:   []pouch.ItemStack{pouch.NewMaterialStack(apple, 3)},
			cmd:       Command{Op: OpAddDirect, Item: "Apple", Count: 2},
			wantSlots: []string{"Apple:3", "Apple:2"},
			wantAdded: 1,
		},
		{
			name:      "add_slot equipped",
			cmd:       Command{Op: OpAddSlot, Item: "TravelersSword", Count: 1500, Equipped: true},
			wantSlots: []string{"TravelersSword:1500*"},
			wantAdded: 1,
		},
		{
			name:        "remove",
			initial:     []pouch.ItemStack{pouch.NewMaterialStack(apple, 3), pouch.NewMaterialStack(diamond, 1)},
			cmd:         Command{Op: OpRemove, Item: "Apple", Count: 3},
			wantSlots:   []string{"Diamond:1"},
			wantRemoved: 1,
		},
		{
			name:      "equip",
			initial:   []pouch.ItemStack{pouch.NewMaterialStack(travelersSword, 100)},
			cmd:       Command{Op: OpEquip, Item: "TravelersSword"},
			wantSlots: []string{"TravelersSword:100*"},
		},
		{
			name:      "corrupt",
			initial:   []pouch.ItemStack{pouch.NewMaterialStack(apple, 3)},
			cmd:       Command{Op: OpCorrupt, Life: 42},
			wantSlots: []string{"Apple:42"},
		},
		{
			name: "clear_first",
			initial: []pouch.ItemStack{
				pouch.NewMaterialStack(apple, 1),
				pouch.NewMaterialStack(diamond, 1),
				pouch.NewMaterialStack(fireArrow, 1),
			},
			cmd:         Command{Op: OpClearFirst, Count: 2},
			wantSlots:   []string{"FireArrow:1"},
			wantRemoved: 2,
		},
		{
			name: "clear_all_but_key_items",
			initial: []pouch.ItemStack{
				pouch.NewMaterialStack(apple, 1),
				pouch.NewMaterialStack(slate, 1),
			},
			cmd:         Command{Op: OpClearAllButKeyItems},
			wantSlots:   []string{"Slate:1"},
			wantRemoved: 1,
		},
		{
			name: "sort whole pouch",
			initial: []pouch.ItemStack{
				pouch.NewMaterialStack(diamond, 1),
				pouch.NewMaterialStack(apple, 1),
				pouch.NewMaterialStack(travelersSword, 100),
			},
			cmd:       Command{Op: OpSort},
			wantSlots: []string{"TravelersSword:100", "Diamond:1", "Apple:1"},
		},
		{
			name: "sort prefix",
			initial: []pouch.ItemStack{
				pouch.NewMaterialStack(diamond, 1),
				pouch.NewMaterialStack(travelersSword, 100),
				pouch.NewMaterialStack(apple, 1),
			},
			cmd:       Command{Op: OpSort, Limit: intPtr(2)},
			wantSlots: []string{"TravelersSword:100", "Diamond:1", "Apple:1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := NewExecutor(testCatalog())
			slots := pouch.New(tt.initial)

			res, err := exec.Execute(ctx, slots, tt.cmd)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSlots, render(slots))
			assert.Equal(t, tt.cmd.Op, res.Op)
			assert.Equal(t, tt.wantAdded, res.SlotsAdded)
			assert.Equal(t, tt.wantRemoved, res.SlotsRemoved)
			assert.Equal(t, slots.Len(), res.Length)
		})
	}
}

func TestExecutor_ShootArrow(t *testing.T) {
	exec := NewExecutor(testCatalog())
	ctx := context.Background()

	t.Run("equipped arrow", func(t *testing.T) {
		slots := pouch.New([]pouch.ItemStack{
			pouch.NewMaterialStack(normalArrow, 5),
			pouch.NewMaterialStack(fireArrow, 5).Modify(pouch.WithEquipped(true)),
		})
		before := testutil.ToFloat64(metrics.ArrowsShot)

		res, err := exec.Execute(ctx, slots, Command{Op: OpShootArrow, Count: 2})
		require.NoError(t, err)
		require.NotNil(t, res.SlotIndex)
		assert.Equal(t, 1, *res.SlotIndex)
		assert.Equal(t, []string{"NormalArrow:5", "FireArrow:3*"}, render(slots))
		assert.Equal(t, before+2, testutil.ToFloat64(metrics.ArrowsShot))
	})

	t.Run("no equipped arrow", func(t *testing.T) {
		slots := pouch.New([]pouch.ItemStack{pouch.NewMaterialStack(normalArrow, 5)})
		before := testutil.ToFloat64(metrics.ArrowsShot)

		res, err := exec.Execute(ctx, slots, Command{Op: OpShootArrow, Count: 2})
		require.NoError(t, err)
		require.NotNil(t, res.SlotIndex)
		assert.Equal(t, pouch.NotFound, *res.SlotIndex)
		assert.Equal(t, before, testutil.ToFloat64(metrics.ArrowsShot))
	})
}

func TestExecutor_UnknownItemLeavesPouch(t *testing.T) {
	exec := NewExecutor(testCatalog())
	slots := pouch.New([]pouch.ItemStack{pouch.NewMaterialStack(apple, 3)})
	before := testutil.ToFloat64(metrics.PouchRejected.WithLabelValues(ReasonUnknownItem))

	_, err := exec.Execute(context.Background(), slots, Command{Op: OpAdd, Item: "Banana", Count: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.True(t, IsRejection(err))
	assert.Equal(t, []string{"Apple:3"}, render(slots))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PouchRejected.WithLabelValues(ReasonUnknownItem)))
}

func TestExecutor_ExecuteAll(t *testing.T) {
	exec := NewExecutor(testCatalog())
	ctx := context.Background()

	t.Run("all succeed", func(t *testing.T) {
		slots := pouch.New(nil)
		results, err := exec.ExecuteAll(ctx, slots, []Command{
			{Op: OpAdd, Item: "Apple", Count: 2},
			{Op: OpAddDirect, Item: "TravelersSword", Count: 1},
			{Op: OpSort},
		})
		require.NoError(t, err)
		assert.Len(t, results, 3)
		assert.Equal(t, []string{"TravelersSword:1", "Apple:2"}, render(slots))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		slots := pouch.New(nil)
		results, err := exec.ExecuteAll(ctx, slots, []Command{
			{Op: OpAdd, Item: "Apple", Count: 2},
			{Op: OpAdd, Item: "Nope", Count: 1},
			{Op: OpAdd, Item: "Diamond", Count: 1},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Contains(t, err.Error(), "command 1 (add)")
		assert.Len(t, results, 1)
		assert.Equal(t, []string{"Apple:2"}, render(slots))
	})
}

func TestExecutor_CorruptOutOfRangeIsNoop(t *testing.T) {
	exec := NewExecutor(testCatalog())
	slots := pouch.New([]pouch.ItemStack{pouch.NewMaterialStack(apple, 3)})

	for _, slot := range []int{-5, -1, 1, 40} {
		_, err := exec.Execute(context.Background(), slots, Command{Op: OpCorrupt, Life: 0, Slot: slot})
		require.NoError(t, err, "slot %d", slot)
	}
	assert.Equal(t, []string{"Apple:3"}, render(slots))
}

func TestExecutor_PouchSizeCap(t *testing.T) {
	ctx := context.Background()
	exec := NewExecutor(testCatalog())

	full := func(n int) *pouch.Slots {
		stacks := make([]pouch.ItemStack, n)
		for i := range stacks {
			stacks[i] = pouch.NewMaterialStack(apple, 1)
		}
		return pouch.New(stacks)
	}

	tests := []struct {
		name    string
		initial int
		cmd     Command
		wantErr bool
	}{
		{"unstackable add over cap", 0, Command{Op: OpAdd, Item: "TravelersSword", Count: MaxPouchSlots + 1}, true},
		{"unstackable add up to cap", MaxPouchSlots - 2, Command{Op: OpAdd, Item: "TravelersSword", Count: 2}, false},
		{"add_direct splits over cap", 0, Command{Op: OpAddDirect, Item: "TravelersSword", Count: 5_000}, true},
		{"add_direct stackable is one slot", MaxPouchSlots - 1, Command{Op: OpAddDirect, Item: "Diamond", Count: 5_000}, false},
		{"add_slot on full pouch", MaxPouchSlots, Command{Op: OpAddSlot, Item: "Diamond", Count: 1}, true},
		{"reload unstackable is one slot", MaxPouchSlots - 1, Command{Op: OpAdd, Item: "TravelersSword", Count: 5_000, Reloading: true}, false},
		{"merge into existing stack on full pouch", MaxPouchSlots, Command{Op: OpAdd, Item: "Apple", Count: 1}, false},
		{"new stackable on full pouch", MaxPouchSlots, Command{Op: OpAdd, Item: "Diamond", Count: 1}, true},
		{"reload stackable on full pouch", MaxPouchSlots, Command{Op: OpAdd, Item: "Apple", Count: 1, Reloading: true}, true},
		{"remove on full pouch", MaxPouchSlots, Command{Op: OpRemove, Item: "Apple", Count: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := full(tt.initial)
			before := testutil.ToFloat64(metrics.PouchRejected.WithLabelValues(ReasonPouchFull))

			_, err := exec.Execute(ctx, slots, tt.cmd)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.True(t, IsRejection(err))
			assert.Equal(t, tt.initial, slots.Len(), "rejected command leaves the pouch untouched")
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.PouchRejected.WithLabelValues(ReasonPouchFull)))
		})
	}
}
