package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	errorslib "github.com/goliatone/go-errors"
	"go.uber.org/zap"

	"colcal/quotation/internal/app/config"
	"colcal/quotation/internal/app/session"
	"colcal/quotation/internal/domain/catalog"
	"colcal/quotation/internal/domain/quote"
	"colcal/quotation/internal/domain/quote/export"
)

var errCatalogDisabled = errors.New("product catalog is not configured")

type Handlers struct {
	Cfg      config.Config
	Log      *zap.Logger
	Sessions *session.Store
	Exporter *export.Exporter
	// Catalog is nil when no database is configured.
	Catalog catalog.Repository
}

func New(cfg config.Config, log *zap.Logger, sessions *session.Store, exporter *export.Exporter, products catalog.Repository) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		Cfg:      cfg,
		Log:      log,
		Sessions: sessions,
		Exporter: exporter,
		Catalog:  products,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// classify maps domain errors onto go-errors categories.
func classify(err error) *errorslib.Error {
	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}
	switch {
	case errors.Is(err, session.ErrNotFound):
		return errorslib.Wrap(err, errorslib.CategoryNotFound, "quotation not found").WithTextCode("QUOTATION_NOT_FOUND")
	case errors.Is(err, quote.ErrItemNotFound):
		return errorslib.Wrap(err, errorslib.CategoryNotFound, "line item not found").WithTextCode("ITEM_NOT_FOUND")
	case errors.Is(err, catalog.ErrNotFound):
		return errorslib.Wrap(err, errorslib.CategoryNotFound, "product not found").WithTextCode("PRODUCT_NOT_FOUND")
	case errors.Is(err, quote.ErrUnknownField):
		return errorslib.Wrap(err, errorslib.CategoryValidation, err.Error()).WithTextCode("UNKNOWN_FIELD")
	}
	return export.AsGoError(err)
}

func statusFor(c errorslib.Category) int {
	switch c {
	case errorslib.CategoryValidation:
		return http.StatusBadRequest
	case errorslib.CategoryAuthz:
		return http.StatusForbidden
	case errorslib.CategoryNotFound:
		return http.StatusNotFound
	case errorslib.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeFormError writes err with the status of its category. Server-side
// failures never expose their message.
func writeFormError(w http.ResponseWriter, err error) {
	if errors.Is(err, errCatalogDisabled) {
		writeError(w, http.StatusServiceUnavailable, errCatalogDisabled.Error())
		return
	}
	ge := classify(err)
	status := statusFor(ge.Category)
	msg := ge.Message
	if status >= http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg, Code: ge.TextCode})
}

// writeExportError reports a failed export with the single generic message.
func writeExportError(w http.ResponseWriter, err error) {
	ge := export.AsGoError(err)
	writeJSON(w, statusFor(ge.Category), errorResponse{Error: export.FailedDescription, Code: ge.TextCode})
}

// lenient accepts a JSON string, number, bool or null and keeps its text, so
// numeric form inputs can be coerced the same way typed input is.
type lenient string

func (l *lenient) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*l = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = lenient(s)
	case strings.HasPrefix(raw, "{"), strings.HasPrefix(raw, "["):
		return errors.New("expected a string or number")
	default:
		*l = lenient(raw)
	}
	return nil
}

type fieldEdit struct {
	Field string  `json:"field"`
	Value lenient `json:"value"`
}
