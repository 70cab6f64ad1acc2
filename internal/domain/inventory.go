package domain

import "time"

// StackRecord is the serialisable form of one pouch slot.
// It is what save parsers hand over and what snapshots persist.
type StackRecord struct {
	Item     string `json:"item" validate:"required,max=128"`
	Life     int    `json:"life"` // count, or durability*100 for equipment
	Equipped bool   `json:"equipped,omitempty"`
}

// Snapshot is a named, persisted pouch state
type Snapshot struct {
	Name      string        `json:"name" db:"name"`
	Stacks    []StackRecord `json:"stacks" db:"stacks"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// SnapshotSummary is a snapshot without its slot list
type SnapshotSummary struct {
	Name      string    `json:"name" db:"name"`
	Slots     int       `json:"slots" db:"slots"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
