package gofpdf

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"colcal/quotation/internal/domain/quote"
	"colcal/quotation/internal/domain/quote/preview"
)

const (
	margin      = 15.0
	breakMargin = 20.0
	lineH       = 5.0
	thumbSize   = 12.0
)

var (
	colorPrimary = [3]int{0, 82, 147}
	colorAccent  = [3]int{230, 126, 34}
	colorText    = [3]int{33, 33, 33}
	colorMuted   = [3]int{110, 110, 110}
	colorShade   = [3]int{242, 244, 247}
)

var (
	tableWidths = []float64{8, 44, 58, 12, 29, 29}
	tableAligns = []string{"C", "L", "L", "C", "R", "R"}
)

type Generator struct {
	fontDir string
	log     *zap.Logger
}

type Option func(*Generator)

// WithFontDir makes the generator embed DejaVuSans.ttf and
// DejaVuSans-Bold.ttf from dir instead of using the core Helvetica font.
func WithFontDir(dir string) Option {
	return func(g *Generator) { g.fontDir = dir }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

func New(opts ...Option) *Generator {
	g := &Generator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Generate(doc preview.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, breakMargin)
	pdf.SetTitle("Quotation "+doc.Number, true)
	pdf.SetAuthor(doc.Brand, true)
	pdf.SetCreator("colcal quotation", true)
	pdf.AliasNbPages("")

	w := &writer{pdf: pdf, family: "Helvetica", tr: func(s string) string { return s }, images: map[*quote.Image]string{}}
	if g.fontDir != "" {
		regular := filepath.Join(g.fontDir, "DejaVuSans.ttf")
		bold := filepath.Join(g.fontDir, "DejaVuSans-Bold.ttf")
		g.log.Debug("quote pdf: load fonts", zap.String("regular", regular), zap.String("bold", bold))
		pdf.AddUTF8Font("DejaVu", "", regular)
		pdf.AddUTF8Font("DejaVu", "B", bold)
		w.family = "DejaVu"
		w.utf8 = true
	} else {
		w.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	pdf.SetFooterFunc(w.pageFooter)
	pdf.AddPage()

	w.header(doc)
	w.billTo(doc)
	w.intro(doc)
	w.table(doc)
	w.summary(doc)
	w.valueProposition(doc.ValueProposition)
	w.payment(doc.Payment)
	w.preparedBy(doc)
	w.footer(doc.Footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.log.Error("quote pdf: output failed", zap.String("number", doc.Number), zap.Error(err))
		return nil, err
	}
	g.log.Debug("quote pdf: generated",
		zap.String("number", doc.Number),
		zap.Int("pages", pdf.PageCount()),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

type writer struct {
	pdf    *gofpdf.Fpdf
	family string
	utf8   bool
	tr     func(string) string
	images map[*quote.Image]string
}

func (w *writer) font(style string, size float64) {
	w.pdf.SetFont(w.family, style, size)
}

func (w *writer) color(c [3]int) {
	w.pdf.SetTextColor(c[0], c[1], c[2])
}

func (w *writer) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	return pageW - 2*margin
}

// ensure starts a new page when fewer than h millimetres are left.
func (w *writer) ensure(h float64) {
	_, pageH := w.pdf.GetPageSize()
	if w.pdf.GetY()+h > pageH-breakMargin {
		w.pdf.AddPage()
	}
}

// split wraps s to width and returns lines ready for CellFormat. Core fonts
// only know single-byte widths, so their text is split after translation.
func (w *writer) split(s string, width float64) []string {
	var lines []string
	if w.utf8 {
		lines = w.pdf.SplitText(s, width)
	} else {
		for _, b := range w.pdf.SplitLines([]byte(w.tr(s)), width) {
			lines = append(lines, string(b))
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func (w *writer) cell(width, h float64, s, align string, ln int) {
	w.pdf.CellFormat(width, h, w.tr(s), "", ln, align, false, 0, "")
}

func (w *writer) paragraph(s string) {
	w.pdf.MultiCell(0, lineH, w.tr(s), "", "L", false)
}

func (w *writer) heading(s string) {
	w.font("B", 12)
	w.color(colorPrimary)
	w.cell(0, 7, s, "L", 1)
	w.color(colorText)
}

func (w *writer) fields(fields []preview.Field, x, labelW, colW float64) {
	for _, f := range fields {
		w.pdf.SetX(x)
		w.font("B", 9)
		w.cell(labelW, lineH, f.Label+":", "L", 0)
		w.font("", 9)
		w.pdf.MultiCell(colW-labelW, lineH, w.tr(f.Value), "", "L", false)
	}
}

func (w *writer) header(doc preview.Document) {
	top := w.pdf.GetY()
	w.font("B", 18)
	w.color(colorPrimary)
	w.cell(110, 10, doc.Brand, "L", 0)

	w.font("B", 16)
	w.color(colorAccent)
	w.cell(0, 10, doc.Title, "R", 1)

	w.font("", 9)
	w.color(colorMuted)
	w.pdf.SetXY(margin, top+10)
	w.cell(110, lineH, doc.Tagline, "L", 0)

	w.font("", 10)
	w.color(colorText)
	w.pdf.SetXY(margin+110, top+11)
	w.cell(0, lineH, "No: "+doc.Number, "R", 1)
	w.pdf.SetX(margin + 110)
	w.cell(0, lineH, "Date: "+doc.Date, "R", 1)

	w.pdf.Ln(3)
	y := w.pdf.GetY()
	w.pdf.SetFillColor(colorShade[0], colorShade[1], colorShade[2])
	w.pdf.Rect(margin, y, w.contentWidth(), float64(len(doc.Contact))*lineH+4, "F")
	w.pdf.SetY(y + 2)
	w.color(colorMuted)
	w.fields(doc.Contact, margin+2, 20, w.contentWidth()-4)
	w.color(colorText)
	w.pdf.Ln(6)
}

func (w *writer) billTo(doc preview.Document) {
	w.ensure(float64(len(doc.BillTo.Fields)+1)*lineH + 8)
	w.heading(doc.BillTo.Heading)
	w.fields(doc.BillTo.Fields, margin, 22, w.contentWidth())
	w.pdf.Ln(4)
}

func (w *writer) intro(doc preview.Document) {
	if doc.ProjectLine != "" {
		w.ensure(10)
		w.font("B", 13)
		w.color(colorPrimary)
		w.paragraph(doc.ProjectLine)
		w.color(colorText)
		w.pdf.Ln(2)
	}
	if doc.Intro != "" {
		w.font("", 10)
		w.paragraph(doc.Intro)
		w.pdf.Ln(4)
	}
}

func (w *writer) tableHeader(columns []string) {
	w.font("B", 9)
	w.pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	w.pdf.SetTextColor(255, 255, 255)
	for i, c := range columns {
		w.pdf.CellFormat(tableWidths[i], 8, w.tr(c), "1", 0, tableAligns[i], true, 0, "")
	}
	w.pdf.Ln(-1)
	w.color(colorText)
}

// cellItem is one line of text or a thumbnail inside a table cell.
type cellItem struct {
	text string
	img  *quote.Image
}

// imageSlots is the number of text lines a thumbnail occupies.
const imageSlots = 3

func (c cellItem) slots() int {
	if c.img != nil {
		return imageSlots
	}
	return 1
}

// table draws the line items. A row that fits on a page is never split, and
// the column header is repeated at the top of every continuation page.
func (w *writer) table(doc preview.Document) {
	w.ensure(8 + thumbSize + 2*lineH)
	w.tableHeader(doc.Columns)

	for _, r := range doc.Rows {
		w.font("", 9)
		texts := []string{r.Index, r.Name, r.Description, r.Quantity, r.UnitPrice, r.Total}
		cols := make([][]cellItem, len(texts))
		for i, t := range texts {
			for _, ln := range w.split(t, tableWidths[i]-2) {
				cols[i] = append(cols[i], cellItem{text: ln})
			}
		}
		if r.Image != nil {
			cols[1] = append(cols[1], cellItem{img: r.Image})
		}
		w.row(cols, doc.Columns)
	}
	w.pdf.Ln(4)
}

func (w *writer) tablePage(columns []string) {
	w.pdf.AddPage()
	w.tableHeader(columns)
	w.font("", 9)
}

// row draws one table row. Rows taller than a page continue on the next
// page chunk by chunk, each chunk with its own cell borders.
func (w *writer) row(cols [][]cellItem, columns []string) {
	_, pageH := w.pdf.GetPageSize()
	bottom := pageH - breakMargin

	need := 0
	for _, c := range cols {
		n := 0
		for _, it := range c {
			n += it.slots()
		}
		if n > need {
			need = n
		}
	}
	h := float64(need)*lineH + 2
	if y := w.pdf.GetY(); y+h > bottom {
		fresh := bottom - margin - 8
		if h <= fresh || y+2+imageSlots*lineH > bottom {
			w.tablePage(columns)
		}
	}

	next := make([]int, len(cols))
	for {
		y := w.pdf.GetY()
		capacity := int((bottom - y - 2) / lineH)
		used, done := 0, true

		x := margin
		for i, c := range cols {
			slot := 0
			for next[i] < len(c) {
				it := c[next[i]]
				if slot+it.slots() > capacity {
					break
				}
				top := y + 1 + float64(slot)*lineH
				if it.img != nil {
					w.image(it.img, x+1, top+1, thumbSize, thumbSize)
				} else {
					w.pdf.SetXY(x+1, top)
					w.pdf.CellFormat(tableWidths[i]-2, lineH, it.text, "", 0, tableAligns[i], false, 0, "")
				}
				slot += it.slots()
				next[i]++
			}
			if slot > used {
				used = slot
			}
			if next[i] < len(c) {
				done = false
			}
			x += tableWidths[i]
		}

		rowH := float64(used)*lineH + 2
		if !done {
			rowH = bottom - y
		}
		x = margin
		for i := range cols {
			w.pdf.Rect(x, y, tableWidths[i], rowH, "D")
			x += tableWidths[i]
		}
		w.pdf.SetXY(margin, y+rowH)
		if done {
			return
		}
		w.tablePage(columns)
	}
}

func (w *writer) summary(doc preview.Document) {
	const labelW, amountW = 40.0, 45.0
	w.ensure(float64(len(doc.Summary))*7 + 4)

	x := margin + w.contentWidth() - labelW - amountW
	for _, l := range doc.Summary {
		w.pdf.SetX(x)
		if l.Total {
			y := w.pdf.GetY()
			w.pdf.SetDrawColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
			w.pdf.Line(x, y, x+labelW+amountW, y)
			w.pdf.SetDrawColor(0, 0, 0)
			w.font("B", 11)
			w.color(colorPrimary)
		} else {
			w.font("", 10)
			w.color(colorMuted)
		}
		w.cell(labelW, 7, l.Label, "L", 0)
		w.color(colorText)
		w.cell(amountW, 7, l.Amount, "R", 1)
	}
	w.pdf.Ln(6)
}

func (w *writer) valueProposition(s preview.Section) {
	w.ensure(40)
	w.heading(s.Heading)
	w.font("", 9)
	w.paragraph(s.Body)
	w.pdf.Ln(2)
	for _, p := range s.Points {
		y := w.pdf.GetY()
		w.pdf.SetFillColor(colorAccent[0], colorAccent[1], colorAccent[2])
		w.pdf.Circle(margin+2, y+lineH/2, 0.9, "F")
		w.pdf.SetX(margin + 5)
		w.paragraph(p)
	}
	w.pdf.Ln(5)
}

func (w *writer) payment(p preview.Payment) {
	rows := len(p.MobileMoney.Fields)
	if len(p.Bank.Fields) > rows {
		rows = len(p.Bank.Fields)
	}
	w.ensure(float64(rows)*lineH + 22)
	w.heading(p.Heading)

	top := w.pdf.GetY()
	half := w.contentWidth() / 2
	w.font("B", 10)
	w.cell(half, 6, p.MobileMoney.Heading, "L", 1)
	w.fields(p.MobileMoney.Fields, margin, 32, half)
	leftBottom := w.pdf.GetY()

	w.pdf.SetXY(margin+half, top)
	w.font("B", 10)
	w.cell(half, 6, p.Bank.Heading, "L", 1)
	w.fields(p.Bank.Fields, margin+half, 30, half)

	if leftBottom > w.pdf.GetY() {
		w.pdf.SetY(leftBottom)
	}
	w.pdf.Ln(6)
}

func (w *writer) preparedBy(doc preview.Document) {
	w.ensure(float64(len(doc.PreparedBy.Fields))*lineH + 40)
	w.heading(doc.PreparedBy.Heading)
	w.fields(doc.PreparedBy.Fields, margin, 22, w.contentWidth())
	w.pdf.Ln(3)

	w.font("", 9)
	w.color(colorMuted)
	w.cell(0, lineH, "Authorized Signature:", "L", 1)
	y := w.pdf.GetY()
	if doc.Signature != nil {
		w.image(doc.Signature, margin, y+1, 60, 16)
	} else {
		w.pdf.Line(margin, y+16, margin+60, y+16)
	}
	w.pdf.SetY(y + 18)
	w.font("", 8)
	w.cell(0, lineH, "Date: "+doc.SignedOn, "L", 1)
	w.color(colorText)
	w.pdf.Ln(6)
}

func (w *writer) footer(lines []string) {
	w.ensure(float64(len(lines))*lineH + 4)
	y := w.pdf.GetY()
	w.pdf.SetDrawColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	w.pdf.Line(margin, y, margin+w.contentWidth(), y)
	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.Ln(2)
	for i, l := range lines {
		if i == 0 {
			w.font("B", 9)
			w.color(colorPrimary)
		} else {
			w.font("", 8)
			w.color(colorMuted)
		}
		w.cell(0, lineH, l, "C", 1)
	}
	w.color(colorText)
}

func (w *writer) pageFooter() {
	w.pdf.SetY(-12)
	w.font("", 8)
	w.color(colorMuted)
	w.pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", w.pdf.PageNo()), "", 0, "C", false, 0, "")
}

// image places img inside a maxW x maxH box keeping its aspect ratio. Each
// image is registered with the document once.
func (w *writer) image(img *quote.Image, x, y, maxW, maxH float64) {
	opts := gofpdf.ImageOptions{ImageType: img.PDFType()}
	name, ok := w.images[img]
	if !ok {
		name = fmt.Sprintf("img%d", len(w.images)+1)
		w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
		w.images[img] = name
	}
	iw, ih := fit(float64(img.Width), float64(img.Height), maxW, maxH)
	w.pdf.ImageOptions(name, x, y, iw, ih, false, opts, 0, "")
}

func fit(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	return w * scale, h * scale
}
