package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errorslib "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"colcal/quotation/internal/domain/quote/export"
)

// brokenPipe accepts headers but fails after a partial body write.
type brokenPipe struct {
	*httptest.ResponseRecorder
	limit int
}

func (b *brokenPipe) Write(p []byte) (int, error) {
	if len(p) > b.limit {
		n, _ := b.ResponseRecorder.Write(p[:b.limit])
		return n, errors.New("connection reset by peer")
	}
	return b.ResponseRecorder.Write(p)
}

func TestWritePDF_LogsInterruptedDownload(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := &Handlers{Log: zap.New(core)}

	w := &brokenPipe{ResponseRecorder: httptest.NewRecorder(), limit: 4}
	h.writePDF(w, export.Result{
		Job: export.Job{ID: "job-1", Number: "QT-1", FileName: "Quotation_QT-1.pdf"},
		PDF: []byte("%PDF-1.3 body"),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", w.Body.String())

	entries := logs.FilterMessage("pdf download interrupted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "job-1", fields["job_id"])
	assert.Equal(t, int64(4), fields["written"])
	assert.Equal(t, int64(13), fields["bytes"])
	assert.Equal(t, "connection reset by peer", fields["error"])
}

func TestWritePDF_CompleteDownloadIsQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := &Handlers{Log: zap.New(core)}

	rec := httptest.NewRecorder()
	h.writePDF(rec, export.Result{
		Job: export.Job{Number: "QT-2", FileName: "Quotation_QT-2.pdf"},
		PDF: []byte("%PDF"),
	})

	assert.Equal(t, `attachment; filename="Quotation_QT-2.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "QT-2", rec.Header().Get("X-Quotation-Number"))
	assert.Zero(t, logs.Len())
}

func TestStatusFor(t *testing.T) {
	cases := map[errorslib.Category]int{
		errorslib.CategoryValidation: http.StatusBadRequest,
		errorslib.CategoryAuthz:      http.StatusForbidden,
		errorslib.CategoryNotFound:   http.StatusNotFound,
		errorslib.CategoryExternal:   http.StatusBadGateway,
		errorslib.CategoryOperation:  http.StatusInternalServerError,
		errorslib.CategoryInternal:   http.StatusInternalServerError,
	}
	for category, want := range cases {
		assert.Equal(t, want, statusFor(category), category)
	}
}
