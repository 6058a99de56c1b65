package pdf

import "colcal/quotation/internal/domain/quote/preview"

type Generator interface {
	Generate(doc preview.Document) ([]byte, error)
}
