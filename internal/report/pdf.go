package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry in inches.
const (
	pageMargin   = 0.75
	footerHeight = 0.9
	labelWidth   = 1.7
	bulletIndent = 0.25
	lineHeight   = 0.2
)

// painter draws document blocks onto an fpdf page.
type painter struct {
	pdf          *fpdf.Fpdf
	tr           func(string) string
	contentWidth float64
}

func newPainter(compress bool, created time.Time) *painter {
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, footerHeight)
	pdf.SetCompression(compress)
	pdf.SetCreationDate(created)
	pdf.SetCreator("service-docs", false)

	pageWidth, _ := pdf.GetPageSize()
	return &painter{
		pdf:          pdf,
		tr:           pdf.UnicodeTranslatorFromDescriptor(""),
		contentWidth: pageWidth - 2*pageMargin,
	}
}

// render draws the whole document and returns the encoded PDF.
func (p *painter) render(doc *Document) ([]byte, error) {
	p.pdf.SetTitle(p.tr(doc.Header.Title+" - "+doc.Header.WorkOrder), false)
	p.pdf.SetFooterFunc(func() { p.footer(doc.Footer) })
	p.pdf.AddPage()

	p.header(doc.Header)
	for _, block := range doc.Blocks {
		block.draw(p)
	}

	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *painter) header(h Header) {
	pdf := p.pdf
	pdf.SetTextColor(34, 34, 34)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(p.contentWidth, 0.35, p.tr(h.Company), "", "L", false)

	half := p.contentWidth / 2
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(half, 0.3, p.tr(h.Title), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(half, 0.3, p.tr(h.workOrderLine()), "", 1, "R", false, 0, "")

	p.rule()
}

func (p *painter) rule() {
	pdf := p.pdf
	y := pdf.GetY() + 0.05
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.01)
	pdf.Line(pageMargin, y, pageMargin+p.contentWidth, y)
	pdf.SetY(y + 0.1)
}

func (p *painter) footer(lines []string) {
	pdf := p.pdf
	pdf.SetY(-(footerHeight - 0.15))
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "I", 9)
	for _, line := range lines {
		pdf.CellFormat(0, 0.18, p.tr(line), "", 1, "C", false, 0, "")
	}
	pdf.SetTextColor(51, 51, 51)
}

func (h Heading) draw(p *painter) {
	pdf := p.pdf
	pdf.SetTextColor(34, 34, 34)
	if h.Level <= 2 {
		pdf.Ln(0.12)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 0.28, p.tr(h.Text), "", 1, "L", false, 0, "")
		p.rule()
		return
	}
	pdf.Ln(0.05)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 0.24, p.tr(h.Text), "", 1, "L", false, 0, "")
}

func (t FieldTable) draw(p *painter) {
	pdf := p.pdf
	pdf.SetTextColor(51, 51, 51)
	for _, f := range t.Fields {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, p.tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(p.contentWidth-labelWidth, lineHeight, p.tr(f.Value), "", "L", false)
	}
}

func (para Paragraph) draw(p *painter) {
	p.pdf.SetTextColor(51, 51, 51)
	p.pdf.SetFont("Helvetica", "", 10)
	p.pdf.MultiCell(p.contentWidth, lineHeight, p.tr(para.Text), "", "L", false)
}

func (l BulletList) draw(p *painter) {
	pdf := p.pdf
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range l.Items {
		pdf.CellFormat(bulletIndent, lineHeight, "-", "", 0, "L", false, 0, "")
		pdf.MultiCell(p.contentWidth-bulletIndent, lineHeight, p.tr(item), "", "L", false)
	}
}

func (SignatureLine) draw(p *painter) {
	pdf := p.pdf
	pdf.Ln(0.3)
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, lineHeight, p.tr(signatureText()), "", 1, "L", false, 0, "")
}
