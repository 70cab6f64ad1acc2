package command

import (
	"fmt"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/pouch"
)

var (
	travelersSword = domain.NewItem("TravelersSword", domain.TypeWeapon, true, false, 0, "", "")
	normalArrow    = domain.NewItem("NormalArrow", domain.TypeArrow, true, true, 0, "", "")
	fireArrow      = domain.NewItem("FireArrow", domain.TypeArrow, true, true, 1, "", "")
	apple          = domain.NewItem("Apple", domain.TypeMaterial, true, true, 0, "", "")
	diamond        = domain.NewItem("Diamond", domain.TypeMaterial, true, true, 1, "", "")
	slate          = domain.NewItem("Slate", domain.TypeKey, false, false, 0, "", "")
)

type mapCatalog map[string]*domain.Item

func (c mapCatalog) Lookup(id string) (*domain.Item, error) {
	if item, ok := c[id]; ok {
		return item, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
}

func testCatalog() mapCatalog {
	c := mapCatalog{}
	for _, item := range []*domain.Item{travelersSword, normalArrow, fireArrow, apple, diamond, slate} {
		c[item.ID] = item
	}
	return c
}

func render(s *pouch.Slots) []string {
	out := make([]string, 0, s.Len())
	for _, st := range s.Snapshot() {
		entry := fmt.Sprintf("%s:%d", st.Item().ID, st.Life())
		if st.Equipped() {
			entry += "*"
		}
		out = append(out, entry)
	}
	return out
}

func intPtr(i int) *int { return &i }
