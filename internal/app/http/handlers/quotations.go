package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"colcal/quotation/internal/app/session"
	"colcal/quotation/internal/domain/quote"
	"colcal/quotation/internal/domain/quote/export"
)

// displayTotals carries the amounts exactly as the preview prints them.
type displayTotals struct {
	Subtotal     string `json:"subtotal"`
	Installation string `json:"installation"`
	Tax          string `json:"tax,omitempty"`
	Total        string `json:"total"`
}

type quotationResponse struct {
	ID          string         `json:"id"`
	Form        quote.Snapshot `json:"form"`
	Totals      quote.Totals   `json:"totals"`
	Display     displayTotals  `json:"display"`
	FileName    string         `json:"file_name"`
	ExportState export.State   `json:"export_state"`
}

func (h *Handlers) quotationState(sess *session.Session) quotationResponse {
	snap := sess.Form.Snapshot()
	t := quote.Calculate(snap)

	d := displayTotals{
		Subtotal:     "KES " + quote.FormatCurrency(t.Subtotal),
		Installation: "KES " + quote.FormatCurrency(t.Installation),
		Total:        "KES " + quote.FormatCurrency(t.Total),
	}
	if t.TaxEnabled {
		d.Tax = "KES " + quote.FormatCurrency(t.Tax)
	}
	return quotationResponse{
		ID:          sess.ID,
		Form:        snap,
		Totals:      t,
		Display:     d,
		FileName:    export.FileName(snap.Meta.Number),
		ExportState: sess.Inbox.State(),
	}
}

// session resolves {id} and writes a 404 when it is unknown or expired.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeFormError(w, err)
		return nil, false
	}
	return sess, true
}

func (h *Handlers) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Create()
	writeJSON(w, http.StatusCreated, h.quotationState(sess))
}

func (h *Handlers) GetQuotation(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

func (h *Handlers) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.Delete(chi.URLParam(r, "id")) {
		writeFormError(w, session.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) PutCustomer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var c quote.CustomerInfo
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	sess.Form.SetCustomer(c)
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

func (h *Handlers) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req fieldEdit
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := sess.Form.UpdateCustomerField(req.Field, string(req.Value)); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

type salesRepRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (h *Handlers) PutSalesRep(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req salesRepRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	sess.Form.SetSalesRep(quote.SalesRepInfo{
		Name:     req.Name,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

func (h *Handlers) PatchSalesRep(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req fieldEdit
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := sess.Form.UpdateSalesRepField(req.Field, string(req.Value)); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

type projectRequest struct {
	Title     string  `json:"title"`
	IntroText *string `json:"intro_text"`
}

func (h *Handlers) PutProject(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p := sess.Form.Snapshot().Project
	p.Title = req.Title
	if req.IntroText != nil {
		p.IntroText = *req.IntroText
	}
	sess.Form.SetProject(p)
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

type pricingRequest struct {
	InstallationCost *lenient `json:"installation_cost"`
	TaxEnabled       *bool    `json:"tax_enabled"`
}

func (h *Handlers) PutPricing(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req pricingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.InstallationCost != nil {
		sess.Form.SetInstallationCost(quote.ParseAmount(string(*req.InstallationCost)))
	}
	if req.TaxEnabled != nil {
		sess.Form.SetTaxEnabled(*req.TaxEnabled)
	}
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}
