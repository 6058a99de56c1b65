// Package preview turns a form snapshot into the quotation document shown to
// the salesperson and handed to the PDF generator. Empty fields are replaced
// by bracketed placeholders so every block is always legible.
package preview

import (
	"fmt"
	"strconv"

	"colcal/quotation/internal/domain/quote"
)

type Field struct {
	Label string
	Value string
}

type Group struct {
	Heading string
	Fields  []Field
}

type Section struct {
	Heading string
	Body    string
	Points  []string
}

type Payment struct {
	Heading     string
	MobileMoney Group
	Bank        Group
}

type Row struct {
	Index       string
	Name        string
	Description string
	Image       *quote.Image
	Quantity    string
	UnitPrice   string
	Total       string
}

type SummaryLine struct {
	Label  string
	Amount string
	Total  bool
}

type Document struct {
	Brand   string
	Tagline string
	Title   string
	Number  string
	Date    string

	Contact     []Field
	BillTo      Group
	ProjectLine string
	Intro       string

	Columns []string
	Rows    []Row
	Summary []SummaryLine

	ValueProposition Section
	Payment          Payment

	PreparedBy Group
	Signature  *quote.Image
	SignedOn   string

	Footer []string
}

// Build renders the document for s. It is recomputed from scratch each time.
func Build(s quote.Snapshot) Document {
	totals := quote.Calculate(s)
	date := s.Meta.Date()

	doc := Document{
		Brand:   Brand,
		Tagline: Tagline,
		Title:   Title,
		Number:  s.Meta.Number,
		Date:    date,
		Contact: contact,
		BillTo: Group{
			Heading: "Bill To:",
			Fields: []Field{
				{Label: "Name", Value: orPlaceholder(s.Customer.Name, "[Customer Name]")},
				{Label: "Company", Value: orPlaceholder(s.Customer.Company, "[Company]")},
				{Label: "Location", Value: orPlaceholder(s.Customer.Location, "[Location]")},
				{Label: "Phone", Value: orPlaceholder(s.Customer.Phone, "[Phone]")},
				{Label: "Email", Value: orPlaceholder(s.Customer.Email, "[Email]")},
			},
		},
		Intro:            s.Project.IntroText,
		Columns:          columns,
		ValueProposition: valueProposition,
		Payment:          payment,
		PreparedBy: Group{
			Heading: "Quotation Prepared By:",
			Fields: []Field{
				{Label: "Name", Value: orPlaceholder(s.SalesRep.Name, "[Sales Rep Name]")},
				{Label: "Position", Value: s.SalesRep.Position},
				{Label: "Phone", Value: orPlaceholder(s.SalesRep.Phone, "[Phone]")},
				{Label: "Email", Value: orPlaceholder(s.SalesRep.Email, "[Email]")},
			},
		},
		Signature: s.SalesRep.Signature,
		SignedOn:  date,
		Footer:    footer,
	}

	if s.Project.Title != "" {
		doc.ProjectLine = "Quotation for " + s.Project.Title
	}

	doc.Rows = make([]Row, 0, len(s.Items))
	for i, it := range s.Items {
		doc.Rows = append(doc.Rows, Row{
			Index:       strconv.Itoa(i + 1),
			Name:        orPlaceholder(it.Name, "[Product Name]"),
			Description: orPlaceholder(it.Description, "[Description]"),
			Image:       it.Image,
			Quantity:    strconv.Itoa(it.Quantity),
			UnitPrice:   quote.FormatCurrency(it.UnitPrice),
			Total:       quote.FormatCurrency(quote.LineTotal(it)),
		})
	}

	doc.Summary = append(doc.Summary,
		SummaryLine{Label: "Subtotal:", Amount: money(totals.Subtotal)},
		SummaryLine{Label: "Installation:", Amount: money(totals.Installation)},
	)
	if totals.TaxEnabled {
		doc.Summary = append(doc.Summary, SummaryLine{
			Label:  fmt.Sprintf("VAT (%.0f%%):", quote.VATRate*100),
			Amount: money(totals.Tax),
		})
	}
	doc.Summary = append(doc.Summary, SummaryLine{
		Label:  "Total Payable:",
		Amount: money(totals.Total),
		Total:  true,
	})

	return doc
}

func money(v float64) string {
	return Currency + " " + quote.FormatCurrency(v)
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
