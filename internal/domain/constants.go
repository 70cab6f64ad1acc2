package domain

// Pouch limits
const (
	// MaxStackCount is the cap for a stackable slot under normal addition
	MaxStackCount = 999

	// DurabilityScale converts durability to the raw life value
	DurabilityScale = 100
)

// Localization key layout: items.<TypeName>.<ItemID>
const (
	DescKeyPrefix    = "items"
	DescKeySeparator = "."
)
