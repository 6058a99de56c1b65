package quote

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const NumberPrefix = "COL/GEN"

// NewMeta builds the quotation number COL/GEN/<year>/<nnnn> where nnnn is
// drawn from 1..9999. randN must return a value in [0, n).
func NewMeta(now time.Time, randN func(n int) int) Meta {
	if randN == nil {
		randN = rand.IntN
	}
	return Meta{
		Number:    fmt.Sprintf("%s/%d/%04d", NumberPrefix, now.Year(), randN(9999)+1),
		CreatedAt: now,
	}
}

// Date is the creation date as shown on the document (day/month/year).
func (m Meta) Date() string {
	return m.CreatedAt.Format("02/01/2006")
}
