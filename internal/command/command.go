// Package command is the serialisable form of every pouch mutation. Commands
// are what game-event simulators, the HTTP API and replay files speak.
package command

import (
	"github.com/osse101/PouchSim_Go/internal/pouch"
)

// Op names a pouch operation
type Op string

const (
	OpAdd                 Op = "add"
	OpAddDirect           Op = "add_direct"
	OpAddSlot             Op = "add_slot"
	OpRemove              Op = "remove"
	OpEquip               Op = "equip"
	OpUnequip             Op = "unequip"
	OpCorrupt             Op = "corrupt"
	OpShootArrow          Op = "shoot_arrow"
	OpClearAllButKeyItems Op = "clear_all_but_key_items"
	OpClearFirst          Op = "clear_first"
	OpSort                Op = "sort"
)

// ops that resolve an item before running
var itemOps = map[Op]bool{
	OpAdd:       true,
	OpAddDirect: true,
	OpAddSlot:   true,
	OpRemove:    true,
	OpEquip:     true,
	OpUnequip:   true,
}

// NeedsItem reports whether op acts on a specific item
func (op Op) NeedsItem() bool {
	return itemOps[op]
}

// Command is one pouch mutation.
//
// Field use per op:
//
//	add              Item Count Equipped(during reload) Reloading MCount
//	add_direct       Item Count Equipped
//	add_slot         Item Count Equipped Limit
//	remove           Item Count Slot
//	equip, unequip   Item Slot
//	corrupt          Life Slot
//	shoot_arrow      Count
//	clear_first      Count
//	sort             Limit
//
// Limit and MCount default to the whole pouch when omitted. Item ops take
// Slot >= -1; corrupt accepts any index and ignores ones out of range.
type Command struct {
	Op        Op     `json:"op" validate:"required,oneof=add add_direct add_slot remove equip unequip corrupt shoot_arrow clear_all_but_key_items clear_first sort"`
	Item      string `json:"item,omitempty" validate:"max=128"`
	Count     int    `json:"count,omitempty" validate:"min=0,max=1000000"`
	Slot      int    `json:"slot,omitempty"`
	Life      int    `json:"life,omitempty"`
	Limit     *int   `json:"limit,omitempty" validate:"omitempty,min=-1"`
	MCount    *int   `json:"m_count,omitempty" validate:"omitempty,min=-1"`
	Reloading bool   `json:"reloading,omitempty"`
	Equipped  bool   `json:"equipped,omitempty"`
}

func (c Command) limit() int {
	if c.Limit == nil {
		return pouch.Unbounded
	}
	return *c.Limit
}

func (c Command) mCount() int {
	if c.MCount == nil {
		return pouch.Unbounded
	}
	return *c.MCount
}

// Result describes what a command did to the pouch
type Result struct {
	Op           Op   `json:"op"`
	SlotsAdded   int  `json:"slots_added"`
	SlotsRemoved int  `json:"slots_removed"`
	SlotIndex    *int `json:"slot_index,omitempty"`
	Length       int  `json:"length"`
}
