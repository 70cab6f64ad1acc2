package domain

// ItemType is the category of an item as the game stores it.
// The numeric values match the game's own enumeration.
type ItemType int

const (
	TypeWeapon      ItemType = 0
	TypeBow         ItemType = 1
	TypeArrow       ItemType = 2
	TypeShield      ItemType = 3
	TypeArmorUpper  ItemType = 4
	TypeArmorMiddle ItemType = 5
	TypeArmorLower  ItemType = 6
	TypeMaterial    ItemType = 7
	TypeFood        ItemType = 8
	TypeKey         ItemType = 9
	// TypeFlag marks game-data flags that are not real items (e.g. HasRitoSoulPlus)
	TypeFlag ItemType = -1
)

var itemTypeNames = map[ItemType]string{
	TypeWeapon:      "Weapon",
	TypeBow:         "Bow",
	TypeArrow:       "Arrow",
	TypeShield:      "Shield",
	TypeArmorUpper:  "ArmorUpper",
	TypeArmorMiddle: "ArmorMiddle",
	TypeArmorLower:  "ArmorLower",
	TypeMaterial:    "Material",
	TypeFood:        "Food",
	TypeKey:         "Key",
	TypeFlag:        "Flag",
}

// catalog spelling -> type
var itemTypeKeys = map[string]ItemType{
	"weapon":       TypeWeapon,
	"bow":          TypeBow,
	"arrow":        TypeArrow,
	"shield":       TypeShield,
	"armor_upper":  TypeArmorUpper,
	"armor_middle": TypeArmorMiddle,
	"armor_lower":  TypeArmorLower,
	"material":     TypeMaterial,
	"food":         TypeFood,
	"key":          TypeKey,
	"flag":         TypeFlag,
}

// String returns the enumeration name, e.g. "ArmorUpper"
func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseItemType converts the catalog spelling of a type ("armor_upper") into an ItemType
func ParseItemType(s string) (ItemType, bool) {
	t, ok := itemTypeKeys[s]
	return t, ok
}

// ItemTypeKeys returns every catalog spelling accepted by ParseItemType
func ItemTypeKeys() []string {
	keys := make([]string, 0, len(itemTypeKeys))
	for k := range itemTypeKeys {
		keys = append(keys, k)
	}
	return keys
}

// Before reports whether t is ordered before other in the pouch.
// The pouch keeps types in ascending enumeration order, so this is the
// single place that relies on the ordinal values.
func (t ItemType) Before(other ItemType) bool {
	return t < other
}

// IsEquipmentCategory reports whether newly picked up items of this type
// auto-equip when nothing of the same type is equipped (Weapon, Bow, Shield).
func (t ItemType) IsEquipmentCategory() bool {
	return t == TypeWeapon || t == TypeBow || t == TypeShield
}

// IsStackableCategory reports whether the type is in the Material-and-beyond
// range (Material, Food, Key). Raw value corruption is only modeled for these
// and for stackable items.
func (t ItemType) IsStackableCategory() bool {
	return !t.Before(TypeMaterial)
}

// InEquipmentRegion reports whether the type lives in the leading equipment
// region of the pouch (Weapon, Bow, Arrow, Shield). The equipped arrow lookup
// stops at the first slot outside this region.
func (t ItemType) InEquipmentRegion() bool {
	return !TypeShield.Before(t)
}

// ItemTab is the inventory tab an item is displayed in.
// Values mirror ItemType where a tab corresponds to a single type.
type ItemTab int

const (
	TabWeapon   ItemTab = 0
	TabBow      ItemTab = 1
	TabShield   ItemTab = 3
	TabArmor    ItemTab = 4
	TabMaterial ItemTab = 7
	TabFood     ItemTab = 8
	TabKey      ItemTab = 9
	TabNone     ItemTab = -1
)

// TabOf returns the fixed tab for an item type
func TabOf(t ItemType) ItemTab {
	switch t {
	case TypeWeapon:
		return TabWeapon
	case TypeBow, TypeArrow:
		return TabBow
	case TypeShield:
		return TabShield
	case TypeArmorUpper, TypeArmorMiddle, TypeArmorLower:
		return TabArmor
	case TypeMaterial:
		return TabMaterial
	case TypeFood:
		return TabFood
	case TypeKey:
		return TabKey
	default:
		return TabNone
	}
}

// CompareTabs orders tabs the way the game lays them out.
// Returns a negative number when a comes first, positive when b does.
func CompareTabs(a, b ItemTab) int {
	return int(a) - int(b)
}

// CompareTypes orders item types by their enumeration value
func CompareTypes(a, b ItemType) int {
	return int(a) - int(b)
}

// Item is the static, registry-owned description of an item.
// Items are created by the item registry and never modified afterwards.
type Item struct {
	// ID is the item name in UpperCamelCase, e.g. "FireArrow"
	ID         string   `json:"id"`
	Type       ItemType `json:"type"`
	Tab        ItemTab  `json:"tab"`
	Repeatable bool     `json:"repeatable"` // false: at most one slot of this item in the whole pouch
	Stackable  bool     `json:"stackable"`
	// SortOrder is assigned once at registration, per type, in declaration order
	SortOrder int    `json:"sort_order"`
	Image     string `json:"image"`
	// AnimatedImagePath is empty for items without an animated icon
	AnimatedImagePath string `json:"animated_image,omitempty"`
}

// NewItem builds an item. Only the registry should call this.
func NewItem(id string, t ItemType, repeatable, stackable bool, sortOrder int, image, animatedImage string) *Item {
	return &Item{
		ID:                id,
		Type:              t,
		Tab:               TabOf(t),
		Repeatable:        repeatable,
		Stackable:         stackable,
		SortOrder:         sortOrder,
		Image:             image,
		AnimatedImagePath: animatedImage,
	}
}

// AnimatedImage returns the animated image, or Image if the item is not animated
func (i *Item) AnimatedImage() string {
	if i.AnimatedImagePath == "" {
		return i.Image
	}
	return i.AnimatedImagePath
}

// IsAnimated reports whether the item has a distinct animated image
func (i *Item) IsAnimated() bool {
	return i.AnimatedImage() != i.Image
}

// Is reports whether both items have the same identifier
func (i *Item) Is(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.ID == other.ID
}
