package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabOf(t *testing.T) {
	tests := []struct {
		typ  ItemType
		want ItemTab
	}{
		{TypeWeapon, TabWeapon},
		{TypeBow, TabBow},
		{TypeArrow, TabBow},
		{TypeShield, TabShield},
		{TypeArmorUpper, TabArmor},
		{TypeArmorMiddle, TabArmor},
		{TypeArmorLower, TabArmor},
		{TypeMaterial, TabMaterial},
		{TypeFood, TabFood},
		{TypeKey, TabKey},
		{TypeFlag, TabNone},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TabOf(tt.typ))
		})
	}
}

func TestItemTypePredicates(t *testing.T) {
	t.Run("equipment category", func(t *testing.T) {
		for _, typ := range []ItemType{TypeWeapon, TypeBow, TypeShield} {
			assert.True(t, typ.IsEquipmentCategory(), typ.String())
		}
		for _, typ := range []ItemType{TypeArrow, TypeArmorUpper, TypeMaterial, TypeKey, TypeFlag} {
			assert.False(t, typ.IsEquipmentCategory(), typ.String())
		}
	})

	t.Run("stackable category is material and beyond", func(t *testing.T) {
		for _, typ := range []ItemType{TypeMaterial, TypeFood, TypeKey} {
			assert.True(t, typ.IsStackableCategory(), typ.String())
		}
		for _, typ := range []ItemType{TypeWeapon, TypeArrow, TypeShield, TypeArmorLower, TypeFlag} {
			assert.False(t, typ.IsStackableCategory(), typ.String())
		}
	})

	t.Run("equipment region ends at shield", func(t *testing.T) {
		for _, typ := range []ItemType{TypeWeapon, TypeBow, TypeArrow, TypeShield} {
			assert.True(t, typ.InEquipmentRegion(), typ.String())
		}
		for _, typ := range []ItemType{TypeArmorUpper, TypeMaterial, TypeFood, TypeKey} {
			assert.False(t, typ.InEquipmentRegion(), typ.String())
		}
	})

	t.Run("before follows pouch order", func(t *testing.T) {
		assert.True(t, TypeWeapon.Before(TypeBow))
		assert.True(t, TypeBow.Before(TypeArrow))
		assert.True(t, TypeFlag.Before(TypeWeapon))
		assert.False(t, TypeKey.Before(TypeKey))
		assert.False(t, TypeKey.Before(TypeFood))
	})
}

func TestParseItemType(t *testing.T) {
	typ, ok := ParseItemType("armor_middle")
	assert.True(t, ok)
	assert.Equal(t, TypeArmorMiddle, typ)
	assert.Equal(t, "ArmorMiddle", typ.String())

	_, ok = ParseItemType("ArmorMiddle")
	assert.False(t, ok)

	assert.Len(t, ItemTypeKeys(), 11)
}

func TestItemAnimatedImage(t *testing.T) {
	plain := NewItem("Apple", TypeMaterial, true, true, 0, "apple.png", "")
	assert.Equal(t, "apple.png", plain.AnimatedImage())
	assert.False(t, plain.IsAnimated())

	animated := NewItem("SpiritOrb", TypeKey, true, true, 0, "orb.png", "orb.webp")
	assert.Equal(t, "orb.webp", animated.AnimatedImage())
	assert.True(t, animated.IsAnimated())
	assert.Equal(t, TabKey, animated.Tab)
}

func TestItemIs(t *testing.T) {
	a := NewItem("Apple", TypeMaterial, true, true, 0, "", "")
	b := NewItem("Apple", TypeMaterial, true, true, 0, "", "")
	c := NewItem("Diamond", TypeMaterial, true, true, 1, "", "")

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(nil))
}
