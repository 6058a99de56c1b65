package quote

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	Installation float64 `json:"installation"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
	TaxEnabled   bool    `json:"tax_enabled"`
}

func LineTotal(it LineItem) float64 {
	return float64(it.Quantity) * it.UnitPrice
}

func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += LineTotal(it)
	}
	return sum
}

// Tax applies VAT to the products subtotal only. Installation is never part
// of the tax base.
func Tax(subtotal float64, enabled bool) float64 {
	if !enabled {
		return 0
	}
	return subtotal * VATRate
}

// Calculate derives the totals of a snapshot. Nothing is cached.
func Calculate(s Snapshot) Totals {
	subtotal := Subtotal(s.Items)
	tax := Tax(subtotal, s.Pricing.TaxEnabled)
	return Totals{
		Subtotal:     subtotal,
		Installation: s.Pricing.InstallationCost,
		Tax:          tax,
		Total:        subtotal + s.Pricing.InstallationCost + tax,
		TaxEnabled:   s.Pricing.TaxEnabled,
	}
}

// FormatCurrency renders whole currency units with thousands grouping.
// Only the displayed value is rounded.
func FormatCurrency(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.0f", math.Round(amount))
}
