package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"colcal/quotation/internal/domain/catalog"
	"colcal/quotation/internal/domain/quote"
)

type addItemRequest struct {
	SKU string `json:"sku"`
}

type addItemResponse struct {
	Item quote.LineItem `json:"item"`
	quotationResponse
}

// AddItem appends a blank line item. With a sku the item is prefilled from
// the product catalog.
func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var product *catalog.Product
	if sku := strings.TrimSpace(req.SKU); sku != "" {
		p, err := h.lookupProduct(r.Context(), sku)
		if err != nil {
			writeFormError(w, err)
			return
		}
		product = &p
	}

	item := sess.Form.AddLineItem()
	if product != nil {
		if err := sess.Form.PrefillLineItem(item.ID, product.Name, product.Description, product.UnitPrice); err != nil {
			writeFormError(w, err)
			return
		}
		item, _ = sess.Form.Item(item.ID)
	}

	writeJSON(w, http.StatusCreated, addItemResponse{Item: item, quotationResponse: h.quotationState(sess)})
}

func (h *Handlers) PatchItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req fieldEdit
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := sess.Form.UpdateLineItem(chi.URLParam(r, "itemID"), req.Field, string(req.Value)); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

// DeleteItem removes a line item. Removing the only remaining item is
// ignored and the unchanged state is returned.
func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "itemID")
	if _, found := sess.Form.Item(id); !found {
		writeFormError(w, quote.ErrItemNotFound)
		return
	}
	sess.Form.RemoveLineItem(id)
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}
