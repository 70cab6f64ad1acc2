package pouch

import (
	"math"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

// ItemStack is the content of one pouch slot. It is an immutable value:
// every change produces a new ItemStack.
type ItemStack struct {
	item     *domain.Item
	life     int
	equipped bool
}

// NewMaterialStack creates an unequipped stack holding count units
func NewMaterialStack(item *domain.Item, count int) ItemStack {
	return ItemStack{item: item, life: count}
}

// NewEquipmentStack creates a stack whose life is durability*100
func NewEquipmentStack(item *domain.Item, durability float64, equipped bool) ItemStack {
	return ItemStack{item: item, life: durabilityToLife(durability), equipped: equipped}
}

// DefaultStack is the stack an item starts with when nothing else is known
func DefaultStack(item *domain.Item) ItemStack {
	return NewMaterialStack(item, 0)
}

func (s ItemStack) Item() *domain.Item { return s.item }

// Life is the raw value: count for stackables, durability*100 for equipment
func (s ItemStack) Life() int { return s.life }

func (s ItemStack) Count() int { return s.life }

func (s ItemStack) Durability() float64 {
	return float64(s.life) / domain.DurabilityScale
}

func (s ItemStack) Equipped() bool { return s.equipped }

// IsItem reports whether the stack holds the given item
func (s ItemStack) IsItem(item *domain.Item) bool {
	return s.item.Is(item)
}

// Equals compares item, life and equipped
func (s ItemStack) Equals(other ItemStack) bool {
	return s.EqualsExceptEquipped(other) && s.equipped == other.equipped
}

// EqualsExceptEquipped compares item and life only
func (s ItemStack) EqualsExceptEquipped(other ItemStack) bool {
	return s.item.Is(other.item) && s.life == other.life
}

// ModifyOption selects a field to replace in Modify
type ModifyOption func(*modifyOptions)

type modifyOptions struct {
	item       *domain.Item
	count      *int
	durability *float64
	equipped   bool
}

// WithItem replaces the item
func WithItem(item *domain.Item) ModifyOption {
	return func(o *modifyOptions) { o.item = item }
}

// WithCount sets life directly. Takes precedence over WithDurability.
func WithCount(count int) ModifyOption {
	return func(o *modifyOptions) { o.count = &count }
}

// WithDurability sets life to durability*100
func WithDurability(durability float64) ModifyOption {
	return func(o *modifyOptions) { o.durability = &durability }
}

// WithEquipped sets the equipped flag
func WithEquipped(equipped bool) ModifyOption {
	return func(o *modifyOptions) { o.equipped = equipped }
}

// Modify returns a new stack with the selected fields replaced.
//
// The equipped flag is NOT carried over: unless WithEquipped is passed the
// result is unequipped. The game data this models behaves the same way.
// No validation is done here; callers enforce caps and invariants.
func (s ItemStack) Modify(opts ...ModifyOption) ItemStack {
	var o modifyOptions
	for _, opt := range opts {
		opt(&o)
	}

	next := ItemStack{item: s.item, life: s.life, equipped: o.equipped}
	if o.item != nil {
		next.item = o.item
	}
	switch {
	case o.count != nil:
		next.life = *o.count
	case o.durability != nil:
		next.life = durabilityToLife(*o.durability)
	}
	return next
}

// withLife and withEquipped keep every other field. The container uses them
// for operations that overwrite one raw field of a slot.
func (s ItemStack) withLife(life int) ItemStack {
	s.life = life
	return s
}

func (s ItemStack) withEquipped(equipped bool) ItemStack {
	s.equipped = equipped
	return s
}

func durabilityToLife(durability float64) int {
	return int(math.Round(durability * domain.DurabilityScale))
}
