package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"colcal/quotation/internal/domain/quote/export"
	"colcal/quotation/internal/domain/quote/preview"
)

func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := preview.Build(sess.Form.Snapshot()).WriteText(w); err != nil {
		h.Log.Warn("write preview", zap.Error(err))
	}
}

// DownloadPDF runs an export job for the session and streams the document.
func (h *Handlers) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	res, err := h.Exporter.Export(r.Context(), sess.Form.Snapshot(), sess.Inbox)
	if err != nil {
		writeExportError(w, err)
		return
	}
	h.writePDF(w, res)
}

type notificationsResponse struct {
	ExportState   export.State          `json:"export_state"`
	Notifications []export.Notification `json:"notifications"`
}

func (h *Handlers) Notifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, notificationsResponse{
		ExportState:   sess.Inbox.State(),
		Notifications: sess.Inbox.List(),
	})
}

func (h *Handlers) writePDF(w http.ResponseWriter, res export.Result) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.Job.FileName))
	w.Header().Set("X-Quotation-Number", res.Job.Number)
	w.WriteHeader(http.StatusOK)
	if n, err := w.Write(res.PDF); err != nil {
		h.Log.Warn("pdf download interrupted",
			zap.String("job_id", res.Job.ID),
			zap.String("file", res.Job.FileName),
			zap.Int("written", n),
			zap.Int("bytes", len(res.PDF)),
			zap.Error(err),
		)
	}
}
