package report

import (
	"strings"

	"github.com/ukydev/service-docs/internal/models"
)

const (
	reportTitle      = "SERVICE REPORT"
	noPartsLine      = "No parts replaced"
	dateLayout       = "01/02/2006"
	signatureBlank   = "_______________________________"
	signatureDateBlk = "_______________"
)

// footerLines is the contact boilerplate printed at the bottom of every page.
var footerLines = []string{
	"24/7 Service | (555) 123-4567",
	"www.foodservicetech.com | service@foodservicetech.com",
}

// Header is the top of the report: provider, title, work order and date.
type Header struct {
	Company   string
	Title     string
	WorkOrder string
	Date      string
}

// Field is one labelled value. Values may span several lines.
type Field struct {
	Label string
	Value string
}

// Block is one element of the report body, drawn in order.
type Block interface {
	writeText(b *strings.Builder)
	draw(p *painter)
}

// Heading titles a section of the report.
type Heading struct {
	Text  string
	Level int
}

// FieldTable lists label/value pairs.
type FieldTable struct {
	Fields []Field
}

// Paragraph is free text wrapped to the page width.
type Paragraph struct {
	Text string
}

// BulletList is a list with one entry per line item.
type BulletList struct {
	Items []string
}

// SignatureLine leaves blanks for a handwritten signature and date.
type SignatureLine struct{}

// Document is the composed content of one service report.
type Document struct {
	Header Header
	Blocks []Block
	Footer []string
}

// Compose lays out a service record as a report. The result depends only on
// the record.
func Compose(rec models.ServiceRecord) *Document {
	d := &Document{Footer: footerLines}
	d.header(rec)
	d.client(rec)
	d.equipment(rec)
	d.serviceDetails(rec)
	d.partsUsed(rec)
	d.technician(rec)
	d.signature()
	return d
}

func (d *Document) header(rec models.ServiceRecord) {
	d.Header = Header{
		Company:   rec.Company,
		Title:     reportTitle,
		WorkOrder: rec.WorkOrder,
		Date:      rec.ServiceDate.Format(dateLayout),
	}
}

func (d *Document) client(rec models.ServiceRecord) {
	d.Blocks = append(d.Blocks,
		Heading{Text: "Client Information", Level: 2},
		FieldTable{Fields: []Field{
			{Label: "Client", Value: rec.ClientName},
			{Label: "Address", Value: rec.ClientAddress},
			{Label: "Phone", Value: rec.ClientPhone},
		}},
	)
}

func (d *Document) equipment(rec models.ServiceRecord) {
	d.Blocks = append(d.Blocks,
		Heading{Text: "Equipment Information", Level: 2},
		FieldTable{Fields: []Field{
			{Label: "Machine Type", Value: rec.MachineType},
			{Label: "Model", Value: rec.MachineModel},
			{Label: "Serial Number", Value: rec.SerialNumber},
		}},
	)
}

func (d *Document) serviceDetails(rec models.ServiceRecord) {
	d.Blocks = append(d.Blocks,
		Heading{Text: "Service Details", Level: 2},
		Heading{Text: "Problem Description", Level: 3},
		Paragraph{Text: rec.ProblemDescription},
		Heading{Text: "Solution Applied", Level: 3},
		Paragraph{Text: rec.SolutionApplied},
	)
}

func (d *Document) partsUsed(rec models.ServiceRecord) {
	items := rec.Parts()
	if len(items) == 0 {
		items = []string{noPartsLine}
	}
	d.Blocks = append(d.Blocks,
		Heading{Text: "Parts Used", Level: 2},
		BulletList{Items: items},
	)
}

func (d *Document) technician(rec models.ServiceRecord) {
	d.Blocks = append(d.Blocks,
		Heading{Text: "Technician Information", Level: 2},
		FieldTable{Fields: []Field{
			{Label: "Technician Name", Value: rec.Technician.Name},
			{Label: "Technician ID", Value: rec.Technician.ID},
			{Label: "Certification", Value: rec.Technician.Cert},
			{Label: "Arrival Time", Value: rec.ArrivalTime},
			{Label: "Labor Hours", Value: rec.LaborHours.StringFixed(2)},
		}},
	)
}

func (d *Document) signature() {
	d.Blocks = append(d.Blocks, SignatureLine{})
}

// Text returns the human-visible text of the report in drawing order.
func (d *Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Header.Company + "\n")
	b.WriteString(d.Header.Title + "\n")
	b.WriteString(d.Header.workOrderLine() + "\n")
	for _, block := range d.Blocks {
		block.writeText(&b)
	}
	for _, line := range d.Footer {
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (h Header) workOrderLine() string {
	return "Work Order: " + h.WorkOrder + " | Date: " + h.Date
}

func (h Heading) writeText(b *strings.Builder) {
	b.WriteString(h.Text + "\n")
}

func (t FieldTable) writeText(b *strings.Builder) {
	for _, f := range t.Fields {
		b.WriteString(f.Label + ": " + f.Value + "\n")
	}
}

func (p Paragraph) writeText(b *strings.Builder) {
	b.WriteString(p.Text + "\n")
}

func (l BulletList) writeText(b *strings.Builder) {
	for _, item := range l.Items {
		b.WriteString("- " + item + "\n")
	}
}

func (SignatureLine) writeText(b *strings.Builder) {
	b.WriteString(signatureText() + "\n")
}

func signatureText() string {
	return "Technician Signature: " + signatureBlank + "   Date: " + signatureDateBlk
}
