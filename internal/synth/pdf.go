package synth

import (
	"fmt"
	"math/rand"

	"github.com/jung-kurt/gofpdf"

	"go-docgen/internal/model"
	"go-docgen/internal/textsource"
)

// PDF synthesizes PDF documents with gofpdf.
type PDF struct {
	text *textsource.Source
	rng  *rand.Rand
}

func NewPDF(text *textsource.Source, rng *rand.Rand) *PDF {
	return &PDF{text: text, rng: rng}
}

func (p *PDF) Synthesize(path string, tpl model.Template) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	switch tpl {
	case model.TemplateMemo:
		p.writeMemo(pdf)
	case model.TemplateReport:
		p.writeReport(pdf)
	default:
		p.writeGeneric(pdf, tpl)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &model.SynthesisError{Type: model.TypePDF, Path: path, Err: err}
	}
	return nil
}

// writeMemo emits the fixed memo header followed by four paragraphs.
func (p *PDF) writeMemo(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "MEMORANDUM", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	fields := memoFields(p.rng)
	for _, field := range fields {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(30, 10, field.Label, "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(160, 10, field.Value, "", 1, "", false, 0, "")
	}
	pdf.Ln(10)

	for _, para := range p.text.Paragraphs(p.rng, 4, 5) {
		pdf.MultiCell(0, 10, para, "", "", false)
		pdf.Ln(5)
	}
}

// writeReport emits a title and the fixed five-section report layout, each
// section holding one to three paragraphs.
func (p *PDF) writeReport(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "REPORT: "+randomInitials(p.rng, 3), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	sections := []string{"Executive Summary", "Introduction", "Methodology", "Findings", "Conclusion"}
	for _, section := range sections {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, section, "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for _, para := range p.text.Paragraphs(p.rng, p.rng.Intn(3)+1, 5) {
			pdf.MultiCell(0, 10, para, "", "", false)
			pdf.Ln(5)
		}
	}
}

// writeGeneric is the fallback shape: a title plus one paragraph.
func (p *PDF) writeGeneric(pdf *gofpdf.Fpdf, tpl model.Template) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s", capitalize(string(tpl)), randomInitials(p.rng, 3)), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	for _, para := range p.text.Paragraphs(p.rng, 1, 5) {
		pdf.MultiCell(0, 10, para, "", "", false)
	}
}

// memoField is one TO/FROM/DATE/SUBJECT header line.
type memoField struct {
	Label string
	Value string
}

// memoFields returns the memo header in its fixed order with randomly
// chosen values. Shared by the PDF and plain-text synthesizers.
func memoFields(rng *rand.Rand) []memoField {
	return []memoField{
		{"TO:", "All " + memoRecipients[rng.Intn(len(memoRecipients))]},
		{"FROM:", randomName(rng)},
		{"DATE:", randomDate(rng)},
		{"SUBJECT:", memoSubjects[rng.Intn(len(memoSubjects))]},
	}
}
