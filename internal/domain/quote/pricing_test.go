package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		pricing  Pricing
		subtotal float64
		tax      float64
		total    float64
	}{
		{
			name:     "tax enabled",
			items:    []LineItem{{Quantity: 2, UnitPrice: 50000}},
			pricing:  Pricing{InstallationCost: 10000, TaxEnabled: true},
			subtotal: 100000,
			tax:      16000,
			total:    126000,
		},
		{
			name:     "tax disabled",
			items:    []LineItem{{Quantity: 2, UnitPrice: 50000}},
			pricing:  Pricing{InstallationCost: 10000},
			subtotal: 100000,
			tax:      0,
			total:    110000,
		},
		{
			name: "several items",
			items: []LineItem{
				{Quantity: 3, UnitPrice: 1200},
				{Quantity: 1, UnitPrice: 450.5},
				{Quantity: 10, UnitPrice: 0},
			},
			pricing:  Pricing{},
			subtotal: 4050.5,
			total:    4050.5,
		},
		{
			name:     "installation only is never taxed",
			items:    []LineItem{{Quantity: 1, UnitPrice: 0}},
			pricing:  Pricing{InstallationCost: 25000, TaxEnabled: true},
			subtotal: 0,
			tax:      0,
			total:    25000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(Snapshot{Items: tt.items, Pricing: tt.pricing})
			assert.InDelta(t, tt.subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.total, got.Total, 1e-9)
			assert.InDelta(t, got.Subtotal+got.Installation+got.Tax, got.Total, 1e-9)
		})
	}
}

func TestTax_BaseExcludesInstallation(t *testing.T) {
	s := Snapshot{
		Items:   []LineItem{{Quantity: 4, UnitPrice: 2500}},
		Pricing: Pricing{InstallationCost: 1_000_000, TaxEnabled: true},
	}
	got := Calculate(s)
	assert.InDelta(t, 10000*VATRate, got.Tax, 1e-9)
}

func TestTax_ZeroWhenDisabled(t *testing.T) {
	for _, subtotal := range []float64{0, 1, 99999.99, -500} {
		assert.Zero(t, Tax(subtotal, false))
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		999:       "999",
		126000:    "126,000",
		1234567.4: "1,234,567",
		2.5:       "3",
		16000.49:  "16,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCurrency(in), "amount %v", in)
	}
}
