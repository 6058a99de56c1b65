package quote

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage(bytes.NewReader(pngBytes(t, 4, 3)))
	require.NoError(t, err)

	assert.Equal(t, "image/png", img.MIME)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, "PNG", img.PDFType())
	assert.True(t, strings.HasPrefix(img.DataURL, "data:image/png;base64,"))
}

func TestDecodeImage_Rejects(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = DecodeImage(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}
