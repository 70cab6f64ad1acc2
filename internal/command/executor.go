package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/metrics"
	"github.com/osse101/PouchSim_Go/internal/pouch"
)

// Executor resolves commands against a catalog and applies them to a pouch.
// It holds no pouch state and is safe for concurrent use; callers own the
// pouch they pass in.
type Executor struct {
	catalog  pouch.Catalog
	validate *validator.Validate
}

// NewExecutor creates an executor resolving items through catalog
func NewExecutor(catalog pouch.Catalog) *Executor {
	return &Executor{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// Validate checks a command without running it
func (e *Executor) Validate(cmd Command) error {
	if err := e.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if cmd.Op.NeedsItem() && cmd.Item == "" {
		return fmt.Errorf("%w: "+ErrMsgItemRequired, domain.ErrInvalidInput, cmd.Op)
	}
	if cmd.Op.NeedsItem() && cmd.Slot < -1 {
		return fmt.Errorf("%w: "+ErrMsgSlotRange, domain.ErrInvalidInput, cmd.Op, cmd.Slot)
	}
	return nil
}

// maxSlotsAdded is the most slots cmd can append to slots. Unstackable items
// are added one slot per unit, except when reloading; a live add of a
// stackable item already present only merges.
func maxSlotsAdded(slots *pouch.Slots, cmd Command, item *domain.Item) int {
	switch cmd.Op {
	case OpAdd:
		if item.Stackable && !cmd.Reloading && slots.Contains(item) {
			return 0
		}
		if item.Stackable || cmd.Reloading {
			return 1
		}
		return max(cmd.Count, 1)
	case OpAddDirect:
		if item.Stackable {
			return 1
		}
		return cmd.Count
	case OpAddSlot:
		return 1
	}
	return 0
}

// Execute applies one command. A command that fails validation or names an
// unknown item leaves the pouch untouched.
func (e *Executor) Execute(ctx context.Context, slots *pouch.Slots, cmd Command) (Result, error) {
	log := logger.FromContext(ctx)

	if err := e.Validate(cmd); err != nil {
		metrics.PouchRejected.WithLabelValues(ReasonInvalid).Inc()
		log.Debug(LogMsgCommandRejected, logger.AttrKeyOp, cmd.Op, "error", err)
		return Result{}, err
	}

	var item *domain.Item
	if cmd.Op.NeedsItem() {
		var err error
		if item, err = e.catalog.Lookup(cmd.Item); err != nil {
			metrics.PouchRejected.WithLabelValues(ReasonUnknownItem).Inc()
			log.Debug(LogMsgCommandRejected, logger.AttrKeyOp, cmd.Op, logger.AttrKeyItem, cmd.Item, "error", err)
			return Result{}, err
		}
	}

	if grown := slots.Len() + maxSlotsAdded(slots, cmd, item); grown > MaxPouchSlots {
		metrics.PouchRejected.WithLabelValues(ReasonPouchFull).Inc()
		log.Debug(LogMsgCommandRejected, logger.AttrKeyOp, cmd.Op, logger.AttrKeyItem, cmd.Item, "length", slots.Len())
		return Result{}, fmt.Errorf("%w: "+ErrMsgPouchFull, domain.ErrInvalidInput, cmd.Op, grown, MaxPouchSlots)
	}

	res := apply(slots, cmd, item)
	res.Length = slots.Len()

	metrics.PouchOperations.WithLabelValues(string(cmd.Op)).Inc()
	metrics.SlotsAdded.Add(float64(res.SlotsAdded))
	metrics.SlotsRemoved.Add(float64(res.SlotsRemoved))
	metrics.PouchLength.Observe(float64(res.Length))
	if cmd.Op == OpShootArrow && res.SlotIndex != nil && *res.SlotIndex != pouch.NotFound {
		metrics.ArrowsShot.Add(float64(cmd.Count))
	}

	log.Debug(LogMsgCommandApplied,
		logger.AttrKeyOp, cmd.Op,
		logger.AttrKeyItem, cmd.Item,
		"added", res.SlotsAdded,
		"removed", res.SlotsRemoved,
		"length", res.Length)
	return res, nil
}

// ExecuteAll applies commands in order and stops at the first failure.
// Commands before the failing one stay applied; callers that need an atomic
// batch run it on a DeepClone.
func (e *Executor) ExecuteAll(ctx context.Context, slots *pouch.Slots, cmds []Command) ([]Result, error) {
	results := make([]Result, 0, len(cmds))
	for i, cmd := range cmds {
		res, err := e.Execute(ctx, slots, cmd)
		if err != nil {
			return results, fmt.Errorf(ErrFmtCommandAt, i, cmd.Op, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func apply(slots *pouch.Slots, cmd Command, item *domain.Item) Result {
	res := Result{Op: cmd.Op}
	before := slots.Len()

	switch cmd.Op {
	case OpAdd:
		res.SlotsAdded = slots.Add(item, cmd.Count, cmd.Equipped, cmd.Reloading, cmd.mCount())
	case OpAddDirect:
		res.SlotsAdded = slots.AddStackDirectly(newStack(item, cmd))
	case OpAddSlot:
		slots.AddSlot(newStack(item, cmd), cmd.limit())
		res.SlotsAdded = 1
	case OpRemove:
		res.SlotsRemoved = slots.Remove(item, cmd.Count, cmd.Slot)
	case OpEquip:
		slots.Equip(item, cmd.Slot)
	case OpUnequip:
		slots.Unequip(item, cmd.Slot)
	case OpCorrupt:
		slots.Corrupt(cmd.Life, cmd.Slot)
	case OpShootArrow:
		idx := slots.ShootArrow(cmd.Count)
		res.SlotIndex = &idx
	case OpClearAllButKeyItems:
		res.SlotsRemoved = slots.ClearAllButKeyItems()
	case OpClearFirst:
		slots.ClearFirst(cmd.Count)
		res.SlotsRemoved = before - slots.Len()
	case OpSort:
		slots.SortItemByTab(cmd.limit())
	}

	return res
}

func newStack(item *domain.Item, cmd Command) pouch.ItemStack {
	return pouch.NewMaterialStack(item, cmd.Count).Modify(pouch.WithEquipped(cmd.Equipped))
}

// IsRejection reports whether err is a command the caller got wrong, as
// opposed to an internal failure
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrItemNotFound)
}
