// Package pouch models the in-game pouch: an ordered list of item stacks and
// the operations the game performs on it.
//
// Public operations are tagged [confirmed] when their behavior was verified
// against game traces, or [need confirm] otherwise. [confirmed] behavior is
// covered by tests in this package and must not change.
package pouch

import (
	"cmp"
	"slices"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

// Slots is the ordered sequence of stacks in the pouch. The order is the
// in-game order. A Slots value has a single owner; branch with DeepClone.
type Slots struct {
	stacks []ItemStack
}

// New creates a container from an initial ordered list (usually parsed save data).
// The list is copied.
func New(stacks []ItemStack) *Slots {
	return &Slots{stacks: slices.Clone(stacks)}
}

// Len is the number of occupied slots
func (s *Slots) Len() int {
	return len(s.stacks)
}

// Snapshot returns the ordered stacks. The returned slice is a copy.
func (s *Slots) Snapshot() []ItemStack {
	return slices.Clone(s.stacks)
}

// At returns the stack at index i
func (s *Slots) At(i int) (ItemStack, bool) {
	if i < 0 || i >= len(s.stacks) {
		return ItemStack{}, false
	}
	return s.stacks[i], true
}

// DeepClone returns an independent container. Stacks are immutable so only the
// sequence is copied.
func (s *Slots) DeepClone() *Slots {
	return New(s.stacks)
}

// SortItemByTab sorts the first limit slots the way the game does: by tab,
// bows before arrows, arrows by their registration order. Everything else
// keeps its relative order (stable). Slots past limit are untouched.
// limit = Unbounded sorts the whole container; limit <= 1 does nothing.
func (s *Slots) SortItemByTab(limit int) {
	if limit < 0 || limit > len(s.stacks) {
		limit = len(s.stacks)
	}
	if limit <= 1 {
		return
	}
	slices.SortStableFunc(s.stacks[:limit], compareByTab)
}

func compareByTab(a, b ItemStack) int {
	ai, bi := a.item, b.item
	if ai.Type == domain.TypeArrow && bi.Type == domain.TypeArrow {
		return cmp.Compare(ai.SortOrder, bi.SortOrder)
	}
	if ai.Tab == bi.Tab && ai.Tab == domain.TabBow {
		// arrows are always after bows
		return domain.CompareTypes(ai.Type, bi.Type)
	}
	return domain.CompareTabs(ai.Tab, bi.Tab)
}

// ClearFirst removes the first n slots
func (s *Slots) ClearFirst(n int) {
	if n <= 0 {
		return
	}
	n = min(n, len(s.stacks))
	s.stacks = slices.Delete(s.stacks, 0, n)
}

// AddStackDirectly appends a stack without any policy. Unstackable items are
// expanded to one slot per unit. Returns the number of slots appended.
func (s *Slots) AddStackDirectly(stack ItemStack) int {
	if stack.item.Stackable {
		s.stacks = append(s.stacks, stack)
		return 1
	}
	single := stack.Modify(WithCount(1))
	added := 0
	for ; added < stack.Count(); added++ {
		s.stacks = append(s.stacks, single)
	}
	return added
}

// Contains reports whether any slot holds item
func (s *Slots) Contains(item *domain.Item) bool {
	return s.indexOf(item) >= 0
}

// AddSlot appends a stack then sorts the first limit slots
func (s *Slots) AddSlot(stack ItemStack, limit int) {
	s.stacks = append(s.stacks, stack)
	s.SortItemByTab(limit)
}

// Remove takes count units of item, starting at the slot-th stack of that
// item. Depleted stacks are pruned unless they are arrows.
// Returns the number of slots removed from the sequence. [confirmed]
func (s *Slots) Remove(item *domain.Item, count int, slot int) int {
	oldLength := len(s.stacks)
	seen := 0
	for i := 0; i < len(s.stacks) && count > 0; i++ {
		stack := s.stacks[i]
		if !stack.IsItem(item) {
			continue
		}
		if seen < slot {
			seen++
			continue
		}
		if stack.Count() < count {
			// not enough in this stack, empty it and keep going
			count -= stack.Count()
			s.stacks[i] = stack.Modify(WithCount(0))
			continue
		}
		s.stacks[i] = stack.Modify(WithCount(stack.Count() - count))
		break
	}
	s.removeZeroStacksExceptArrows()
	return oldLength - len(s.stacks)
}

// arrow slots stay at 0 because they keep the equipped arrow type
func (s *Slots) removeZeroStacksExceptArrows() {
	s.stacks = slices.DeleteFunc(s.stacks, func(stack ItemStack) bool {
		return stack.item.Type != domain.TypeArrow && stack.Count() <= 0
	})
}

// Add puts count units of item in the pouch the way the game does.
//
// reloading is true when the pouch is rebuilt from a save; the stack is then
// added with equippedDuringReload. mCount bounds the duplicate check for
// non-repeatable items and the re-sort after inserting; Unbounded means the
// whole container.
//
// Returns the number of new slots. Merging into an existing stack and
// rejected adds both return 0.
func (s *Slots) Add(item *domain.Item, count int, equippedDuringReload, reloading bool, mCount int) int {
	if mCount < 0 {
		mCount = len(s.stacks)
	}

	// [confirmed] the 999 cap check always happens, even when mCount = 0
	if item.Stackable {
		if i := s.indexOf(item); i >= 0 {
			return s.addToExisting(i, count, reloading, mCount)
		}
	}

	// non-repeatable items (key items, master sword) are not added again if
	// already in the first run of their type
	if mCount != 0 && !item.Repeatable && s.inFirstTypeRun(item) {
		return 0
	}

	if item.Stackable {
		equipped := false
		switch {
		case reloading:
			equipped = equippedDuringReload
		case item.Type == domain.TypeArrow:
			// [need confirm] an empty quiver selects the new arrow type
			equipped = !s.hasEquippedArrowLeft()
		}
		s.AddSlot(ItemStack{item: item, life: count, equipped: equipped}, mCount+1)
		return 1
	}

	if reloading {
		s.AddSlot(ItemStack{item: item, life: count, equipped: equippedDuringReload}, mCount+1)
		return 1
	}

	if item.Type.IsEquipmentCategory() {
		equipFirst := !s.hasEquipped(item.Type)
		s.AddSlot(ItemStack{item: item, life: 1, equipped: equipFirst}, mCount+1)
		added := 1
		for i := 1; i < count; i++ {
			s.AddSlot(ItemStack{item: item, life: 1}, mCount+i+1)
			added++
		}
		return added
	}

	added := 0
	for i := 0; i < count; i++ {
		s.AddSlot(ItemStack{item: item, life: 1}, mCount+i+1)
		added++
	}
	return added
}

func (s *Slots) addToExisting(i, count int, reloading bool, mCount int) int {
	stack := s.stacks[i]
	if reloading {
		// loading a save never truncates: the whole stack is dropped instead
		if stack.Count()+count > domain.MaxStackCount {
			return 0
		}
		s.AddSlot(NewMaterialStack(stack.item, count), mCount+1)
		return 1
	}
	newCount := min(domain.MaxStackCount, stack.Count()+count)
	if newCount != stack.Count() {
		s.stacks[i] = stack.Modify(WithCount(newCount))
	}
	return 0
}

// Equip equips the slot-th stack of item (0-based among stacks of that item).
// Everything of the same type in the first run of that type is unequipped
// first, so equip is exclusive per type rather than per item.
func (s *Slots) Equip(item *domain.Item, slot int) {
	start, end := s.typeRun(item.Type)
	for i := start; i < end; i++ {
		s.stacks[i] = s.stacks[i].withEquipped(false)
	}
	if i := s.nthIndexOf(item, slot); i >= 0 {
		s.stacks[i] = s.stacks[i].withEquipped(true)
	}
}

// Unequip unequips the slot-th stack of item. With slot < 0 the first
// equipped stack of item is unequipped. Arrows cannot be unequipped.
func (s *Slots) Unequip(item *domain.Item, slot int) {
	if item.Type == domain.TypeArrow {
		return
	}
	if slot < 0 {
		for i, stack := range s.stacks {
			if stack.IsItem(item) && stack.equipped {
				s.stacks[i] = stack.withEquipped(false)
				return
			}
		}
		return
	}
	if i := s.nthIndexOf(item, slot); i >= 0 {
		s.stacks[i] = s.stacks[i].withEquipped(false)
	}
}

// Corrupt overwrites the raw life value of the slot at index slot.
// Only arrows, materials, food and key items can be corrupted since
// equipment durability is not simulated. Out of range is a no-op.
func (s *Slots) Corrupt(life int, slot int) {
	if slot < 0 || slot >= len(s.stacks) {
		return
	}
	stack := s.stacks[slot]
	if stack.item.Type.IsStackableCategory() || stack.item.Stackable {
		s.stacks[slot] = stack.withLife(life)
	}
}

// ShootArrow consumes count arrows of the equipped arrow type and returns the
// index of the updated slot, or NotFound.
//
// The equipped arrow is the last equipped arrow slot before the first slot
// past the shield tab. The first slot of that arrow is the one consumed.
func (s *Slots) ShootArrow(count int) int {
	var equippedArrow *domain.Item
	for _, stack := range s.stacks {
		if !stack.item.Type.InEquipmentRegion() {
			break
		}
		if stack.equipped && stack.item.Type == domain.TypeArrow {
			equippedArrow = stack.item
		}
	}
	if equippedArrow == nil {
		return NotFound
	}

	i := s.indexOf(equippedArrow)
	if i < 0 {
		return NotFound
	}
	stack := s.stacks[i]
	s.stacks[i] = stack.withLife(max(0, stack.Count()-count))
	return i
}

// ClearAllButKeyItems drops every slot that is not a key item and returns how
// many were removed. [confirmed]
func (s *Slots) ClearAllButKeyItems() int {
	oldLength := len(s.stacks)
	s.stacks = slices.DeleteFunc(s.stacks, func(stack ItemStack) bool {
		return stack.item.Type != domain.TypeKey
	})
	return oldLength - len(s.stacks)
}

func (s *Slots) indexOf(item *domain.Item) int {
	return slices.IndexFunc(s.stacks, func(stack ItemStack) bool {
		return stack.IsItem(item)
	})
}

// nthIndexOf returns the index of the n-th (0-based) stack holding item, or -1
func (s *Slots) nthIndexOf(item *domain.Item, n int) int {
	seen := 0
	for i, stack := range s.stacks {
		if !stack.IsItem(item) {
			continue
		}
		if seen == n {
			return i
		}
		seen++
	}
	return -1
}

// typeRun returns [start, end) of the first contiguous run of slots of type t,
// starting at the first slot not ordered before t. The run is empty when that
// slot has a different type.
func (s *Slots) typeRun(t domain.ItemType) (int, int) {
	i := 0
	for i < len(s.stacks) && s.stacks[i].item.Type.Before(t) {
		i++
	}
	start := i
	for i < len(s.stacks) && s.stacks[i].item.Type == t {
		i++
	}
	return start, i
}

func (s *Slots) inFirstTypeRun(item *domain.Item) bool {
	start, end := s.typeRun(item.Type)
	for i := start; i < end; i++ {
		if s.stacks[i].IsItem(item) {
			return true
		}
	}
	return false
}

func (s *Slots) hasEquipped(t domain.ItemType) bool {
	return slices.ContainsFunc(s.stacks, func(stack ItemStack) bool {
		return stack.item.Type == t && stack.equipped
	})
}

func (s *Slots) hasEquippedArrowLeft() bool {
	return slices.ContainsFunc(s.stacks, func(stack ItemStack) bool {
		return stack.item.Type == domain.TypeArrow && stack.equipped && stack.Count() > 0
	})
}
