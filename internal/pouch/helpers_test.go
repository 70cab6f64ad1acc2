package pouch

import (
	"fmt"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

// testItems is a small catalog. Arrow sort orders follow declaration order.
var (
	travelersSword = domain.NewItem("TravelersSword", domain.TypeWeapon, true, false, 0, "", "")
	masterSword    = domain.NewItem("MasterSword", domain.TypeWeapon, false, false, 1, "", "")
	travelersBow   = domain.NewItem("TravelersBow", domain.TypeBow, true, false, 0, "", "")
	normalArrow    = domain.NewItem("NormalArrow", domain.TypeArrow, true, true, 0, "", "")
	fireArrow      = domain.NewItem("FireArrow", domain.TypeArrow, true, true, 1, "", "")
	iceArrow       = domain.NewItem("IceArrow", domain.TypeArrow, true, true, 2, "", "")
	potLid         = domain.NewItem("PotLid", domain.TypeShield, true, false, 0, "", "")
	hylianHood     = domain.NewItem("HylianHood", domain.TypeArmorUpper, true, false, 0, "", "")
	apple          = domain.NewItem("Apple", domain.TypeMaterial, true, true, 0, "", "")
	diamond        = domain.NewItem("Diamond", domain.TypeMaterial, true, true, 1, "", "")
	steamedFruit   = domain.NewItem("SteamedFruit", domain.TypeFood, true, false, 0, "", "")
	spiritOrb      = domain.NewItem("SpiritOrb", domain.TypeKey, true, true, 0, "", "")
	slate          = domain.NewItem("Slate", domain.TypeKey, false, false, 1, "", "")
	glider         = domain.NewItem("Glider", domain.TypeKey, false, false, 2, "", "")
)

type mapCatalog map[string]*domain.Item

func (c mapCatalog) Lookup(id string) (*domain.Item, error) {
	if item, ok := c[id]; ok {
		return item, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
}

func newTestCatalog() mapCatalog {
	c := mapCatalog{}
	for _, item := range []*domain.Item{
		travelersSword, masterSword, travelersBow, normalArrow, fireArrow, iceArrow,
		potLid, hylianHood, apple, diamond, steamedFruit, spiritOrb, slate, glider,
	} {
		c[item.ID] = item
	}
	return c
}

func stack(item *domain.Item, life int) ItemStack {
	return ItemStack{item: item, life: life}
}

func equipped(item *domain.Item, life int) ItemStack {
	return ItemStack{item: item, life: life, equipped: true}
}

// ids renders the container as "ID:life[*]" entries for compact assertions
func ids(s *Slots) []string {
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
