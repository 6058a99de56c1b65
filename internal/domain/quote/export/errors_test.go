package export

import (
	"context"
	"errors"
	"testing"

	errorslib "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsGoError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category errorslib.Category
		code     string
	}{
		{"render", NewError(KindRender, "generate pdf", errors.New("bad font")), errorslib.CategoryOperation, "render"},
		{"canceled kind", NewError(KindCanceled, "export not started", context.Canceled), errorslib.CategoryOperation, "canceled"},
		{"bare context", context.DeadlineExceeded, errorslib.CategoryOperation, "canceled"},
		{"internal", NewError(KindInternal, "empty document", nil), errorslib.CategoryInternal, "internal"},
		{"unknown", errors.New("boom"), errorslib.CategoryInternal, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := AsGoError(tt.err)
			require.NotNil(t, mapped)
			assert.Equal(t, tt.category, mapped.Category)
			assert.Equal(t, tt.code, mapped.TextCode)
		})
	}

	assert.Nil(t, AsGoError(nil))

	already := errorslib.New("missing", errorslib.CategoryNotFound)
	assert.Same(t, already, AsGoError(already))
}
