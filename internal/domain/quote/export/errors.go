package export

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

type ErrorKind string

const (
	KindRender   ErrorKind = "render"
	KindCanceled ErrorKind = "canceled"
	KindInternal ErrorKind = "internal"
)

// Error wraps an export failure with its kind. Msg is safe to log; the
// user only ever sees FailedDescription.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// AsGoError maps an export failure onto a categorised go-errors error. The
// text code is the export kind.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	msg := err.Error()
	var exportErr *Error
	if errors.As(err, &exportErr) && exportErr.Msg != "" {
		msg = exportErr.Msg
	}

	switch KindFromError(err) {
	case KindRender:
		return errorslib.Wrap(err, errorslib.CategoryOperation, msg).WithTextCode(string(KindRender))
	case KindCanceled:
		return errorslib.Wrap(err, errorslib.CategoryOperation, msg).WithTextCode(string(KindCanceled))
	default:
		return errorslib.Wrap(err, errorslib.CategoryInternal, msg).WithTextCode(string(KindInternal))
	}
}

func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var exportErr *Error
	if errors.As(err, &exportErr) {
		return exportErr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	return KindInternal
}
