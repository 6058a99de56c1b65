package gofpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"colcal/quotation/internal/domain/quote"
	"colcal/quotation/internal/domain/quote/pdf"
	"colcal/quotation/internal/domain/quote/preview"
)

var _ pdf.Generator = (*Generator)(nil)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

func pageCount(b []byte) int {
	return len(pageObject.FindAll(b, -1))
}

func testImage(t *testing.T, line color.RGBA) *quote.Image {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			src.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
		src.Set(x, 10, line)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	img, err := quote.DecodeImage(&buf)
	require.NoError(t, err)
	return img
}

func TestGenerate_EmptyForm(t *testing.T) {
	f := quote.NewFormAt(time.Now())
	out, err := New(WithLogger(zaptest.NewLogger(t))).Generate(preview.Build(f.Snapshot()))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.GreaterOrEqual(t, pageCount(out), 1)
}

func TestGenerate_PaginatesLongTables(t *testing.T) {
	f := quote.NewFormAt(time.Now())
	for i := 0; i < 60; i++ {
		it := f.AddLineItem()
		require.NoError(t, f.UpdateLineItem(it.ID, "name", fmt.Sprintf("Item %d", i)))
		require.NoError(t, f.UpdateLineItem(it.ID, "description", strings.Repeat("Solar panel mounting hardware ", 3)))
		require.NoError(t, f.UpdateLineItem(it.ID, "unitPrice", "1500"))
	}

	short, err := New().Generate(preview.Build(quote.NewFormAt(time.Now()).Snapshot()))
	require.NoError(t, err)
	long, err := New().Generate(preview.Build(f.Snapshot()))
	require.NoError(t, err)

	assert.Greater(t, pageCount(long), pageCount(short))
	assert.GreaterOrEqual(t, pageCount(long), 3)
}

func TestGenerate_EmbedsImages(t *testing.T) {
	f := quote.NewFormAt(time.Now())
	require.NoError(t, f.SetLineItemImage("1", testImage(t, color.RGBA{B: 255, A: 255})))
	f.SetSignature(testImage(t, color.RGBA{R: 20, G: 20, B: 20, A: 255}))
	f.SetTaxEnabled(true)
	f.SetProject(quote.Project{Title: "Backup power – 100kVA", IntroText: quote.DefaultIntro})

	out, err := New().Generate(preview.Build(f.Snapshot()))
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(out, []byte("/Subtype /Image")))
}

func TestGenerate_TallRowContinuesAcrossPages(t *testing.T) {
	short, err := New().Generate(preview.Build(quote.NewFormAt(time.Now()).Snapshot()))
	require.NoError(t, err)
	base := pageCount(short)

	tests := []struct {
		name     string
		words    int
		maxExtra int
	}{
		{"two pages of text", 420, 3},
		{"many pages of text", 2400, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := quote.NewFormAt(time.Now())
			require.NoError(t, f.UpdateLineItem("1", "name", "Borehole survey"))
			require.NoError(t, f.UpdateLineItem("1", "description", strings.Repeat("word ", tt.words)))
			require.NoError(t, f.SetLineItemImage("1", testImage(t, color.RGBA{G: 120, A: 255})))

			out, err := New().Generate(preview.Build(f.Snapshot()))
			require.NoError(t, err)
			pages := pageCount(out)
			assert.Greater(t, pages, base)
			assert.LessOrEqual(t, pages, base+tt.maxExtra)
		})
	}
}

func TestGenerate_MissingFontDir(t *testing.T) {
	_, err := New(WithFontDir(t.TempDir())).Generate(preview.Build(quote.NewFormAt(time.Now()).Snapshot()))
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	w, h := fit(400, 200, 12, 12)
	assert.InDelta(t, 12, w, 1e-9)
	assert.InDelta(t, 6, h, 1e-9)

	w, h = fit(0, 0, 60, 16)
	assert.Equal(t, 60.0, w)
	assert.Equal(t, 16.0, h)
}
