package quote

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
)

var ErrEmptyImage = errors.New("empty image")

type Image struct {
	Data    []byte `json:"-"`
	MIME    string `json:"mime"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	DataURL string `json:"data_url"`
}

// DecodeImage reads an uploaded file and turns it into an embeddable image.
// Only formats the PDF writer can place (PNG, JPEG, GIF) are accepted.
func DecodeImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	mime := "image/" + format
	return &Image{
		Data:    data,
		MIME:    mime,
		Width:   cfg.Width,
		Height:  cfg.Height,
		DataURL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

// PDFType maps the MIME type to the image type name used by the PDF writer.
func (img *Image) PDFType() string {
	switch img.MIME {
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return "PNG"
	}
}
