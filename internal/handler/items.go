package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/PouchSim_Go/internal/display"
	"github.com/osse101/PouchSim_Go/internal/domain"
)

// ItemCatalog is the read side of the item registry
type ItemCatalog interface {
	Lookup(id string) (*domain.Item, error)
	Items() []*domain.Item
}

// ItemHandler serves the item catalog
type ItemHandler struct {
	catalog ItemCatalog
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalog ItemCatalog) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// ItemResponse is one catalog entry
type ItemResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	SortOrder     int    `json:"sort_order"`
	Repeatable    bool   `json:"repeatable"`
	Stackable     bool   `json:"stackable"`
	Image         string `json:"image"`
	AnimatedImage string `json:"animated_image"`
	DescKey       string `json:"desc_key"`
}

func newItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Type:          item.Type.String(),
		SortOrder:     item.SortOrder,
		Repeatable:    item.Repeatable,
		Stackable:     item.Stackable,
		Image:         item.Image,
		AnimatedImage: item.AnimatedImage(),
		DescKey:       display.DescKey(item),
	}
}

// HandleList lists registered items in registration order.
// Query: type=<catalog type key> filters by type, e.g. type=arrow.
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	typeFilter := GetOptionalQueryParam(r, QueryParamType, "")

	var want domain.ItemType
	if typeFilter != "" {
		t, ok := domain.ParseItemType(typeFilter)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownItemType, typeFilter))
			return
		}
		want = t
	}

	items := h.catalog.Items()
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		if typeFilter != "" && item.Type != want {
			continue
		}
		out = append(out, newItemResponse(item))
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: out})
}

// HandleGet returns one item. Unknown IDs answer 404 with a suggestion when one is close.
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	item, err := h.catalog.Lookup(id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondServiceError(w, r, OpGetItem, err)
		return
	}
	respondJSON(w, http.StatusOK, newItemResponse(item))
}
