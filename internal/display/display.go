// Package display converts pouch slots into view models for rendering.
package display

import (
	"strings"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/pouch"
)

// Slot is what a renderer needs to draw one pouch slot
type Slot struct {
	Image        string `json:"image"`
	DescKey      string `json:"desc_key"`
	Count        int    `json:"count"`
	DisplayCount bool   `json:"display_count"`
	IsEquipped   bool   `json:"is_equipped"`
	IsBrokenSlot bool   `json:"is_broken_slot"`
}

// BrokenPredicate reports whether the slot at index i is in the broken region
type BrokenPredicate func(i int) bool

// BrokenFrom marks every index >= n as broken
func BrokenFrom(n int) BrokenPredicate {
	return func(i int) bool { return i >= n }
}

// FromStack builds the view model of one stack
func FromStack(stack pouch.ItemStack, isBrokenSlot, animated bool) Slot {
	item := stack.Item()

	image := item.Image
	if animated {
		image = item.AnimatedImage()
	}

	return Slot{
		Image:        image,
		DescKey:      DescKey(item),
		Count:        stack.Count(),
		DisplayCount: displayCount(item, stack.Count()),
		IsEquipped:   stack.Equipped(),
		IsBrokenSlot: isBrokenSlot,
	}
}

// Slots builds the view models of an ordered snapshot. broken may be nil.
func Slots(stacks []pouch.ItemStack, animated bool, broken BrokenPredicate) []Slot {
	out := make([]Slot, len(stacks))
	for i, stack := range stacks {
		out[i] = FromStack(stack, broken != nil && broken(i), animated)
	}
	return out
}

// DescKey is the localization key of an item, e.g. "items.Material.Apple"
func DescKey(item *domain.Item) string {
	return strings.Join([]string{domain.DescKeyPrefix, item.Type.String(), item.ID}, domain.DescKeySeparator)
}

// unstackable items (food) still show a count when there is more than one
func displayCount(item *domain.Item, count int) bool {
	if item.Stackable {
		return item.Type == domain.TypeArrow || count > 0
	}
	return count > 1
}
