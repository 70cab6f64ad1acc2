package item

import (
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"

	"github.com/osse101/PouchSim_Go/internal/domain"
)

var (
	defValidator     *validator.Validate
	defValidatorOnce sync.Once
)

func getDefValidator() *validator.Validate {
	defValidatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("item_type", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseItemType(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("alphanumunderscore", func(fl validator.FieldLevel) bool {
			for _, r := range fl.Field().String() {
				if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
					return false
				}
			}
			return true
		})
		defValidator = v
	})
	return defValidator
}

// Registry is the immutable set of known items, in registration order.
// It is safe for concurrent readers.
type Registry struct {
	items []*domain.Item
	byID  map[string]*domain.Item
}

// NewRegistry registers defs in order. Items of the same type get increasing
// sort orders starting at 0; flags get -1.
func NewRegistry(defs []Def) (*Registry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	v := getDefValidator()
	r := &Registry{
		items: make([]*domain.Item, 0, len(defs)),
		byID:  make(map[string]*domain.Item, len(defs)),
	}
	nextSortOrder := make(map[domain.ItemType]int)

	for i, def := range defs {
		if err := v.Struct(def); err != nil {
			return nil, fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, i, def.ID, err)
		}
		if _, exists := r.byID[def.ID]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateID, ErrDuplicateID, def.ID)
		}
		t, ok := domain.ParseItemType(def.Type)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownType, ErrInvalidConfig, def.ID, def.Type)
		}

		sortOrder := -1
		if t != domain.TypeFlag {
			sortOrder = nextSortOrder[t]
			nextSortOrder[t]++
		}

		it := domain.NewItem(def.ID, t, def.IsRepeatable(), def.Stackable, sortOrder, def.Image, def.AnimatedImage)
		r.items = append(r.items, it)
		r.byID[def.ID] = it
	}

	return r, nil
}

// Lookup returns the item registered under id. Unknown ids fail with
// domain.ErrItemNotFound, with the closest registered id when one is near.
func (r *Registry) Lookup(id string) (*domain.Item, error) {
	if it, ok := r.byID[id]; ok {
		return it, nil
	}
	if suggestion, ok := r.Suggest(id); ok {
		return nil, fmt.Errorf(ErrFmtNotFoundMaybe, domain.ErrItemNotFound, id, suggestion)
	}
	return nil, fmt.Errorf(ErrFmtNotFound, domain.ErrItemNotFound, id)
}

// MustLookup is Lookup for ids that are known to exist, e.g. in tests and fixtures
func (r *Registry) MustLookup(id string) *domain.Item {
	it, err := r.Lookup(id)
	if err != nil {
		panic(err)
	}
	return it
}

// Suggest returns the registered id closest to id by edit distance (case
// insensitive). Ties go to the earlier registered item.
func (r *Registry) Suggest(id string) (string, bool) {
	needle := strings.ToLower(id)
	best, bestDistance := "", maxSuggestionDistance+1
	for _, it := range r.items {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(it.ID))
		if d < bestDistance {
			best, bestDistance = it.ID, d
		}
	}
	return best, best != ""
}

// Items returns every item in registration order
func (r *Registry) Items() []*domain.Item {
	out := make([]*domain.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len is the number of registered items
func (r *Registry) Len() int {
	return len(r.items)
}
