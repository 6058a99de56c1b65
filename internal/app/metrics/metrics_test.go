package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"colcal/quotation/internal/domain/quote/export"
)

func TestExportRecorder(t *testing.T) {
	m := New()
	rec := m.ExportRecorder()

	rec.ExportStarted()
	rec.ExportStarted()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExportsInFlight))

	rec.ExportFinished(export.StateSucceeded, 40*time.Millisecond)
	rec.ExportFinished(export.StateFailed, 10*time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.ExportsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ExportDuration))
}
