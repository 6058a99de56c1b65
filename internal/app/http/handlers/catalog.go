package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"colcal/quotation/internal/domain/catalog"
)

type productsResponse struct {
	Products []catalog.Product `json:"products"`
}

func (h *Handlers) SearchProducts(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		writeFormError(w, errCatalogDisabled)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	products, err := h.Catalog.SearchProducts(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		h.Log.Error("catalog search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "catalog search failed")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, productsResponse{Products: products})
}

// lookupProduct fetches sku from the catalog. Lookup failures other than a
// missing product are logged here.
func (h *Handlers) lookupProduct(ctx context.Context, sku string) (catalog.Product, error) {
	if h.Catalog == nil {
		return catalog.Product{}, errCatalogDisabled
	}
	p, err := h.Catalog.ProductBySKU(ctx, sku)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		h.Log.Error("catalog lookup failed", zap.String("sku", sku), zap.Error(err))
	}
	return p, err
}
