package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/service-docs/internal/models"
)

const longCompany = "Consolidated Commercial Kitchen Equipment Maintenance and Refrigeration " +
	"Services of Greater Springfield LLC"

const longProblem = "The walk-in is warm. It's supposed to be 38 but it says 52 and we had to throw out a " +
	"bunch of dairy. The fan is running but it just isn't cold, and the compressor outside keeps " +
	"short cycling every couple of minutes which we can hear from the back door all day long."

const longSolution = "Evaporator coil was iced over due to a failed defrost heater and the defrost " +
	"termination thermostat was stuck open. Replaced the defrost heater and the termination thermostat, " +
	"cleared the coil with a controlled manual defrost and verified box temperature at 37F after two hours."

func sampleRecord() models.ServiceRecord {
	return models.ServiceRecord{
		MachineType:        "Ovens",
		MachineModel:       "ConvectionPro 5000",
		ProblemDescription: "Oven won't heat.",
		SolutionApplied:    "Replaced heating element.",
		PartsUsed:          models.JoinParts([]string{"Heating Element 5000W"}),
		ClientName:         "Blue Plate Diner",
		ClientAddress:      "4410 Harbor View Rd\nSuite 200\nSpringfield, IL 62701",
		ClientPhone:        "(217) 555-0199",
		ServiceDate:        time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		SerialNumber:       "SN12345678",
		WorkOrder:          "WO-123456",
		Technician:         models.Technician{Name: "Dana Ruiz", ID: "TECH-0142", Cert: "CFESA Certified"},
		Company:            "FoodService Tech Solutions",
		ArrivalTime:        "09:30",
		DurationMinutes:    95,
		LaborHours:         models.LaborHoursFor(95),
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 14, 30, 5, 123456000, time.UTC)
}

func TestCompose_SectionOrder(t *testing.T) {
	text := Compose(sampleRecord()).Text()

	order := []string{
		"FoodService Tech Solutions",
		"SERVICE REPORT",
		"Work Order: WO-123456 | Date: 03/04/2025",
		"Client Information",
		"Client: Blue Plate Diner",
		"Phone: (217) 555-0199",
		"Equipment Information",
		"Machine Type: Ovens",
		"Model: ConvectionPro 5000",
		"Serial Number: SN12345678",
		"Problem Description",
		"Oven won't heat.",
		"Solution Applied",
		"Replaced heating element.",
		"Parts Used",
		"- Heating Element 5000W",
		"Technician Information",
		"Technician Name: Dana Ruiz",
		"Technician ID: TECH-0142",
		"Certification: CFESA Certified",
		"Arrival Time: 09:30",
		"Labor Hours: 1.58",
		"Technician Signature:",
		"24/7 Service | (555) 123-4567",
		"www.foodservicetech.com | service@foodservicetech.com",
	}

	pos := 0
	for _, want := range order {
		i := strings.Index(text[pos:], want)
		require.GreaterOrEqual(t, i, 0, "%q missing or out of order", want)
		pos += i + len(want)
	}
}

func TestCompose_LongTextAndAddress(t *testing.T) {
	rec := sampleRecord()
	rec.ProblemDescription = longProblem
	rec.SolutionApplied = longSolution
	require.Greater(t, len(longProblem), 200)

	text := Compose(rec).Text()
	assert.Contains(t, text, longProblem)
	assert.Contains(t, text, longSolution)
	for _, line := range strings.Split(rec.ClientAddress, "\n") {
		assert.Contains(t, text, line)
	}
}

func TestCompose_PartsList(t *testing.T) {
	rec := sampleRecord()
	rec.PartsUsed = models.JoinParts([]string{
		"SKU-HE-001902 - Bake Element 5500W 208V",
		"SKU-TB-000731 - High-Temp Terminal Block 3-pole ceramic",
	})
	text := Compose(rec).Text()
	assert.Contains(t, text, "- SKU-HE-001902 - Bake Element 5500W 208V\n")
	assert.Contains(t, text, "- SKU-TB-000731 - High-Temp Terminal Block 3-pole ceramic\n")
	assert.NotContains(t, text, noPartsLine)

	rec.PartsUsed = nil
	text = Compose(rec).Text()
	assert.Contains(t, text, "Parts Used\n- No parts replaced\n")
}

func TestCompose_Deterministic(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, Compose(rec).Text(), Compose(rec).Text())
}

func TestGeneratePDF(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, WithCompression(false), WithClock(fixedClock))

	path, err := r.GeneratePDF(sampleRecord(), "service_doc_0001.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "service_doc_0001.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "Oven won't heat.")
	assert.Contains(t, string(data), "Replaced heating element.")
	assert.Contains(t, string(data), "SERVICE REPORT")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the document should remain in the output directory")
}

// renderedText generates rec without compression and returns the file contents.
func renderedText(t *testing.T, rec models.ServiceRecord) string {
	t.Helper()
	r := NewRenderer(t.TempDir(), WithCompression(false), WithClock(fixedClock))
	path, err := r.GeneratePDF(rec, "doc.pdf")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGeneratePDF_LongTextAndAddress(t *testing.T) {
	rec := sampleRecord()
	rec.ProblemDescription = longProblem
	rec.SolutionApplied = longSolution

	data := renderedText(t, rec)

	// Wrapped lines are separate text objects, so words are checked one by one
	for _, word := range strings.Fields(longProblem + " " + longSolution) {
		assert.Contains(t, data, word)
	}
	for _, line := range strings.Split(rec.ClientAddress, "\n") {
		assert.Contains(t, data, line)
	}
}

func TestGeneratePDF_LongCompanyName(t *testing.T) {
	rec := sampleRecord()
	rec.Company = longCompany

	data := renderedText(t, rec)
	for _, word := range strings.Fields(longCompany) {
		assert.Contains(t, data, word)
	}
}

func TestPainter_HeaderWrapsCompany(t *testing.T) {
	headerHeight := func(company string) float64 {
		p := newPainter(false, fixedClock())
		p.pdf.AddPage()
		p.pdf.SetFont("Helvetica", "B", 18)
		require.Greater(t, p.pdf.GetStringWidth(longCompany), p.contentWidth)

		top := p.pdf.GetY()
		p.header(Header{Company: company, Title: reportTitle, WorkOrder: "WO-123456"})
		require.NoError(t, p.pdf.Error())
		return p.pdf.GetY() - top
	}

	assert.Greater(t, headerHeight(longCompany), headerHeight("FoodService Tech Solutions"))
}

func TestGeneratePDF_UnprintableText(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	rec := sampleRecord()
	rec.ProblemDescription = "Temp reads ≥ 400°F on the Ω sensor"
	_, err := r.GeneratePDF(rec, "doc.pdf")
	assert.ErrorIs(t, err, models.ErrInvalidRecord)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	rec.ProblemDescription = "Temp reads 400°F at the sensor."
	data := renderedText(t, rec)
	assert.Contains(t, data, "Temp reads 400\xb0F at the sensor.")
}

func TestGeneratePDF_Overwrite(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, WithCompression(false))

	_, err := r.GeneratePDF(sampleRecord(), "doc.pdf")
	require.NoError(t, err)

	rec := sampleRecord()
	rec.WorkOrder = "WO-654321"
	path, err := r.GeneratePDF(rec, "doc.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WO-654321")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGeneratePDF_NoParts(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, WithCompression(false))

	rec := sampleRecord()
	rec.PartsUsed = nil
	path, err := r.GeneratePDF(rec, "no_parts.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), noPartsLine)
}

func TestGeneratePDF_DefaultFilename(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, WithClock(fixedClock))

	path, err := r.GeneratePDF(sampleRecord(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "service_doc_20250615_143005_123456.pdf"), path)
	assert.FileExists(t, path)
}

func TestGeneratePDF_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	r := NewRenderer(dir)

	_, err := r.GeneratePDF(sampleRecord(), "doc.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoDirExists(t, dir)
}

func TestGeneratePDF_InvalidRecord(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	rec := sampleRecord()
	rec.SolutionApplied = ""
	_, err := r.GeneratePDF(rec, "doc.pdf")
	assert.ErrorIs(t, err, models.ErrInvalidRecord)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGeneratePDF_InvalidFilename(t *testing.T) {
	r := NewRenderer(t.TempDir())

	for _, name := range []string{"../escape.pdf", "nested/doc.pdf", ".."} {
		_, err := r.GeneratePDF(sampleRecord(), name)
		assert.ErrorIs(t, err, ErrInvalidFilename, name)
	}
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "service_doc_20250615_143005_123456.pdf", DefaultFilename(fixedClock()))
}
