package preview

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText writes a plain-text rendition of the document. Each block is laid
// out on its own, so a change in one block never shifts another.
func (d Document) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n%s\n%s\n", d.Brand, d.Tagline, d.Title)
	fmt.Fprintf(bw, "No: %s\nDate: %s\n\n", d.Number, d.Date)
	writeFields(bw, d.Contact)
	bw.WriteString("\n")

	fmt.Fprintf(bw, "%s\n", d.BillTo.Heading)
	writeFields(bw, d.BillTo.Fields)
	bw.WriteString("\n")

	if d.ProjectLine != "" {
		fmt.Fprintf(bw, "%s\n\n", d.ProjectLine)
	}
	if d.Intro != "" {
		fmt.Fprintf(bw, "%s\n\n", d.Intro)
	}

	tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(d.Columns, "\t"))
	for _, r := range d.Rows {
		name := r.Name
		if r.Image != nil {
			name += " [image]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Index, name, r.Description, r.Quantity, r.UnitPrice, r.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	bw.WriteString("\n")

	for _, l := range d.Summary {
		fmt.Fprintf(bw, "%-16s %s\n", l.Label, l.Amount)
	}
	bw.WriteString("\n")

	fmt.Fprintf(bw, "%s\n%s\n", d.ValueProposition.Heading, d.ValueProposition.Body)
	for _, p := range d.ValueProposition.Points {
		fmt.Fprintf(bw, "  * %s\n", p)
	}
	bw.WriteString("\n")

	fmt.Fprintf(bw, "%s\n", d.Payment.Heading)
	for _, g := range []Group{d.Payment.MobileMoney, d.Payment.Bank} {
		fmt.Fprintf(bw, "%s\n", g.Heading)
		writeFields(bw, g.Fields)
	}
	bw.WriteString("\n")

	fmt.Fprintf(bw, "%s\n", d.PreparedBy.Heading)
	writeFields(bw, d.PreparedBy.Fields)
	bw.WriteString("Authorized Signature:\n")
	if d.Signature != nil {
		bw.WriteString("[signature on file]\n")
	} else {
		bw.WriteString("______________________________\n")
	}
	fmt.Fprintf(bw, "Date: %s\n\n", d.SignedOn)

	for _, l := range d.Footer {
		fmt.Fprintf(bw, "%s\n", l)
	}
	return bw.Flush()
}

func writeFields(w io.Writer, fields []Field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f.Label, f.Value)
	}
}
