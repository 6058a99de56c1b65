package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"colcal/quotation/internal/domain/quote"
)

func (h *Handlers) PutItemImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "itemID")
	if _, found := sess.Form.Item(id); !found {
		writeFormError(w, quote.ErrItemNotFound)
		return
	}

	img, ok := h.readImage(w, r, "image", "file")
	if !ok {
		return
	}
	if err := sess.Form.SetLineItemImage(id, img); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

func (h *Handlers) PutSignature(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	img, ok := h.readImage(w, r, "signature", "file")
	if !ok {
		return
	}
	sess.Form.SetSignature(img)
	writeJSON(w, http.StatusOK, h.quotationState(sess))
}

// readImage pulls the first matching multipart file and decodes it. Errors are
// written to w.
func (h *Handlers) readImage(w http.ResponseWriter, r *http.Request, keys ...string) (*quote.Image, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "expected multipart form")
		return nil, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := firstFormFile(r, keys...)
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return nil, false
	}
	defer file.Close()

	img, err := quote.DecodeImage(file)
	if err != nil {
		h.Log.Warn("image upload rejected",
			zap.String("filename", header.Filename),
			zap.Int64("size", header.Size),
			zap.Error(err),
		)
		writeError(w, http.StatusBadRequest, "unsupported image, use PNG, JPEG or GIF")
		return nil, false
	}
	return img, true
}

func firstFormFile(r *http.Request, keys ...string) (multipart.File, *multipart.FileHeader, error) {
	var lastErr error
	for _, k := range keys {
		f, fh, err := r.FormFile(k)
		if err == nil {
			return f, fh, nil
		}
		lastErr = err
	}
	return nil, nil, lastErr
}
