// Package export turns a quotation snapshot into a downloadable PDF and
// reports progress the way the form shows it: a "generating" notice, then
// either a success or a single generic failure message.
//
// Every call to Export is an independent job. Jobs are not serialised and
// cannot be cancelled once generation has started.
package export

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"colcal/quotation/internal/domain/quote"
	"colcal/quotation/internal/domain/quote/pdf"
	"colcal/quotation/internal/domain/quote/preview"
)

type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type Job struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	FileName   string    `json:"file_name"`
	State      State     `json:"state"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

type Result struct {
	Job Job
	PDF []byte
}

// Recorder receives job lifecycle events, typically for metrics.
type Recorder interface {
	ExportStarted()
	ExportFinished(state State, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ExportStarted() {}

func (nopRecorder) ExportFinished(State, time.Duration) {}

type Exporter struct {
	gen    pdf.Generator
	log    *zap.Logger
	rec    Recorder
	now    func() time.Time
	active atomic.Int64
}

type Option func(*Exporter)

func WithLogger(l *zap.Logger) Option { return func(e *Exporter) { e.log = l } }

func WithRecorder(r Recorder) Option { return func(e *Exporter) { e.rec = r } }

func WithClock(now func() time.Time) Option { return func(e *Exporter) { e.now = now } }

func New(gen pdf.Generator, opts ...Option) *Exporter {
	e := &Exporter{
		gen: gen,
		log: zap.NewNop(),
		rec: nopRecorder{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State is StateGenerating while any job runs and StateIdle otherwise.
func (e *Exporter) State() State {
	if e.active.Load() > 0 {
		return StateGenerating
	}
	return StateIdle
}

func (e *Exporter) Active() int {
	return int(e.active.Load())
}

// Export renders s and returns the PDF. On failure the returned error is an
// *Error, n receives FailedDescription and no bytes are returned.
func (e *Exporter) Export(ctx context.Context, s quote.Snapshot, n Notifier) (Result, error) {
	if n == nil {
		n = NotifierFunc(func(Notification) {})
	}
	job := Job{
		ID:       uuid.NewString(),
		Number:   s.Meta.Number,
		FileName: FileName(s.Meta.Number),
		State:    StateIdle,
	}
	log := e.log.With(zap.String("job_id", job.ID), zap.String("number", job.Number))

	if err := ctx.Err(); err != nil {
		return Result{Job: job}, NewError(KindCanceled, "export not started", err)
	}

	e.active.Add(1)
	defer e.active.Add(-1)
	e.rec.ExportStarted()

	job.State = StateGenerating
	job.StartedAt = e.now()
	n.Notify(Notification{
		JobID:       job.ID,
		Title:       GeneratingTitle,
		Description: GeneratingDescription,
		Variant:     VariantDefault,
		State:       job.State,
		At:          job.StartedAt,
	})
	log.Info("quote export: generating", zap.Int("items", len(s.Items)))

	out, err := e.render(s)

	job.FinishedAt = e.now()
	elapsed := job.FinishedAt.Sub(job.StartedAt)
	if err != nil {
		job.State = StateFailed
		e.rec.ExportFinished(job.State, elapsed)
		log.Error("quote export: failed",
			zap.String("kind", string(KindFromError(err))),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		n.Notify(Notification{
			JobID:       job.ID,
			Title:       FailedTitle,
			Description: FailedDescription,
			Variant:     VariantDestructive,
			State:       job.State,
			At:          job.FinishedAt,
		})
		return Result{Job: job}, err
	}

	job.State = StateSucceeded
	e.rec.ExportFinished(job.State, elapsed)
	log.Info("quote export: done",
		zap.String("file", job.FileName),
		zap.Int("bytes", len(out)),
		zap.Duration("elapsed", elapsed),
	)
	n.Notify(Notification{
		JobID:       job.ID,
		Title:       SucceededTitle,
		Description: SucceededDescription,
		Variant:     VariantDefault,
		State:       job.State,
		At:          job.FinishedAt,
	})
	return Result{Job: job, PDF: out}, nil
}

func (e *Exporter) render(s quote.Snapshot) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = NewError(KindRender, "pdf generator panicked", fmt.Errorf("%v", r))
		}
	}()

	out, err = e.gen.Generate(preview.Build(s))
	if err != nil {
		return nil, NewError(KindRender, "generate pdf", err)
	}
	if len(out) == 0 {
		return nil, NewError(KindInternal, "generator returned an empty document", nil)
	}
	return out, nil
}
