package pouch

import (
	"fmt"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

// Catalog resolves item identifiers. The item registry implements it.
type Catalog interface {
	Lookup(id string) (*domain.Item, error)
}

// FromRecords resolves serialised stacks against the catalog. Records are
// taken verbatim: no cap or equip policy is applied.
func FromRecords(catalog Catalog, records []domain.StackRecord) ([]ItemStack, error) {
	stacks := make([]ItemStack, 0, len(records))
	for i, r := range records {
		item, err := catalog.Lookup(r.Item)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtRecordLookupFailed, i, err)
		}
		stacks = append(stacks, ItemStack{item: item, life: r.Life, equipped: r.Equipped})
	}
	return stacks, nil
}

// ToRecords converts stacks to their serialisable form
func ToRecords(stacks []ItemStack) []domain.StackRecord {
	records := make([]domain.StackRecord, len(stacks))
	for i, s := range stacks {
		records[i] = domain.StackRecord{Item: s.item.ID, Life: s.life, Equipped: s.equipped}
	}
	return records
}

// Records is ToRecords over the current container
func (s *Slots) Records() []domain.StackRecord {
	return ToRecords(s.stacks)
}
