package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status          string `json:"status"`
	Catalog         bool   `json:"catalog"`
	Quotations      int    `json:"quotations"`
	ExportsInFlight int    `json:"exports_in_flight"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		Catalog:         h.Catalog != nil,
		Quotations:      h.Sessions.Len(),
		ExportsInFlight: h.Exporter.Active(),
	})
}
