package preview

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colcal/quotation/internal/domain/quote"
)

func workedExample(taxEnabled bool) quote.Snapshot {
	return quote.Snapshot{
		Meta: quote.NewMeta(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), func(int) int { return 41 }),
		Customer: quote.CustomerInfo{
			Name:    "Jane Wanjiku",
			Company: "ABC Limited",
		},
		SalesRep: quote.SalesRepInfo{Name: "Peter Otieno", Position: quote.DefaultPosition},
		Project:  quote.Project{Title: "50kW Solar Power System", IntroText: quote.DefaultIntro},
		Items: []quote.LineItem{
			{ID: "1", Name: "50kW Solar Kit", Description: "Panels and inverter", Quantity: 2, UnitPrice: 50000},
		},
		Pricing: quote.Pricing{InstallationCost: 10000, TaxEnabled: taxEnabled},
	}
}

func render(t *testing.T, s quote.Snapshot) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Build(s).WriteText(&buf))
	return strings.Split(buf.String(), "\n")
}

func TestBuild_Summary(t *testing.T) {
	doc := Build(workedExample(true))
	assert.Equal(t, []SummaryLine{
		{Label: "Subtotal:", Amount: "KES 100,000"},
		{Label: "Installation:", Amount: "KES 10,000"},
		{Label: "VAT (16%):", Amount: "KES 16,000"},
		{Label: "Total Payable:", Amount: "KES 126,000", Total: true},
	}, doc.Summary)

	doc = Build(workedExample(false))
	assert.Equal(t, []SummaryLine{
		{Label: "Subtotal:", Amount: "KES 100,000"},
		{Label: "Installation:", Amount: "KES 10,000"},
		{Label: "Total Payable:", Amount: "KES 110,000", Total: true},
	}, doc.Summary)
}

func TestBuild_Rows(t *testing.T) {
	s := workedExample(false)
	s.Items = append(s.Items, quote.LineItem{ID: "x", Quantity: 1, Image: &quote.Image{MIME: "image/png"}})

	doc := Build(s)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, Row{
		Index: "1", Name: "50kW Solar Kit", Description: "Panels and inverter",
		Quantity: "2", UnitPrice: "50,000", Total: "100,000",
	}, doc.Rows[0])
	assert.Equal(t, "2", doc.Rows[1].Index)
	assert.Equal(t, "[Product Name]", doc.Rows[1].Name)
	assert.Equal(t, "[Description]", doc.Rows[1].Description)
	assert.NotNil(t, doc.Rows[1].Image)
	assert.Equal(t, "Quotation for 50kW Solar Power System", doc.ProjectLine)
}

func TestWriteText_TaxToggleOnlyTouchesTaxAndTotal(t *testing.T) {
	off := render(t, workedExample(false))
	on := render(t, workedExample(true))

	require.Equal(t, len(off)+1, len(on))

	var added []string
	var changed [][2]string
	i, j := 0, 0
	for i < len(off) && j < len(on) {
		switch {
		case off[i] == on[j]:
			i++
			j++
		case strings.HasPrefix(on[j], "VAT (16%):"):
			added = append(added, on[j])
			j++
		default:
			changed = append(changed, [2]string{off[i], on[j]})
			i++
			j++
		}
	}

	assert.Equal(t, []string{"VAT (16%):       KES 16,000"}, added)
	require.Len(t, changed, 1)
	assert.Equal(t, "Total Payable:   KES 110,000", changed[0][0])
	assert.Equal(t, "Total Payable:   KES 126,000", changed[0][1])
}

func TestWriteText_PlaceholdersOnEmptyForm(t *testing.T) {
	f := quote.NewFormAt(time.Now())
	text := strings.Join(render(t, f.Snapshot()), "\n")

	for _, p := range []string{
		"Name: [Customer Name]",
		"Company: [Company]",
		"Location: [Location]",
		"Phone: [Phone]",
		"Email: [Email]",
		"[Product Name]",
		"[Description]",
		"Name: [Sales Rep Name]",
		"Position: Sales Engineer",
		"Total Payable:   KES 0",
	} {
		assert.Contains(t, text, p)
	}
	assert.NotContains(t, text, "VAT (16%)")
	assert.NotContains(t, text, "Quotation for")
	assert.Contains(t, text, "______________________________")
}

func TestWriteText_StaticBlocks(t *testing.T) {
	text := strings.Join(render(t, workedExample(false)), "\n")

	for _, want := range []string{
		"COLCAL MACHINERY\nPowering Homes, Businesses & Industries Across East Africa\nQUOTATION",
		"No: COL/GEN/2026/0042",
		"Date: 19/10/2026",
		"Business Number: 400200",
		"Account Number: 01101384733002",
		"SWIFT Code: KCOOKENA",
		"Branch Code: 11135 (Tom Mboya Branch)",
		"Why Choose Colcal Machinery?",
		"www.colcalmachinery.co.ke | sales@colcalmachinery.co.ke | Tel: 0701 652100",
	} {
		assert.Contains(t, text, want)
	}
}
