package handlers

import (
	"net/http"
	"strings"
	"time"

	"colcal/quotation/internal/domain/quote"
)

type CreateQuoteRequest struct {
	Customer quote.CustomerInfo `json:"customer"`
	SalesRep salesRepRequest    `json:"sales_rep"`
	Project  projectRequest     `json:"project"`
	Items    []struct {
		SKU         string  `json:"sku"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Quantity    lenient `json:"quantity"`
		UnitPrice   lenient `json:"unit_price"`
	} `json:"items"`
	InstallationCost lenient `json:"installation_cost"`
	TaxEnabled       bool    `json:"tax_enabled"`
}

// CreateQuote renders a one-off quotation from a complete request without
// opening a form session.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	f := quote.NewFormAt(time.Now())
	f.SetCustomer(req.Customer)

	rep := quote.SalesRepInfo{
		Name:     req.SalesRep.Name,
		Position: req.SalesRep.Position,
		Phone:    req.SalesRep.Phone,
		Email:    req.SalesRep.Email,
	}
	if rep.Position == "" {
		rep.Position = quote.DefaultPosition
	}
	f.SetSalesRep(rep)

	project := quote.Project{Title: req.Project.Title, IntroText: quote.DefaultIntro}
	if req.Project.IntroText != nil {
		project.IntroText = *req.Project.IntroText
	}
	f.SetProject(project)
	f.SetInstallationCost(quote.ParseAmount(string(req.InstallationCost)))
	f.SetTaxEnabled(req.TaxEnabled)

	for i, it := range req.Items {
		id := "1"
		if i > 0 {
			id = f.AddLineItem().ID
		}
		if sku := strings.TrimSpace(it.SKU); sku != "" {
			p, err := h.lookupProduct(r.Context(), sku)
			if err == nil {
				err = f.PrefillLineItem(id, p.Name, p.Description, p.UnitPrice)
			}
			if err != nil {
				writeFormError(w, err)
				return
			}
		}
		// Catalog values stay unless the request overrides them.
		edits := map[string]string{"quantity": string(it.Quantity)}
		if it.Name != "" {
			edits["name"] = it.Name
		}
		if it.Description != "" {
			edits["description"] = it.Description
		}
		if it.UnitPrice != "" || it.SKU == "" {
			edits["unit_price"] = string(it.UnitPrice)
		}
		for field, value := range edits {
			if err := f.UpdateLineItem(id, field, value); err != nil {
				writeFormError(w, err)
				return
			}
		}
	}

	res, err := h.Exporter.Export(r.Context(), f.Snapshot(), nil)
	if err != nil {
		writeExportError(w, err)
		return
	}
	h.writePDF(w, res)
}
