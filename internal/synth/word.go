package synth

import (
	"fmt"
	"math/rand"

	"go-docgen/internal/model"
	"go-docgen/internal/textsource"
)

// Word synthesizes word-processor documents. Each worker owns its own Word
// with a private rand.Rand; the text source is shared and safe for that.
type Word struct {
	text *textsource.Source
	rng  *rand.Rand
}

func NewWord(text *textsource.Source, rng *rand.Rand) *Word {
	return &Word{text: text, rng: rng}
}

func (w *Word) Synthesize(path string, tpl model.Template) error {
	doc := wordDoc{
		Title: fmt.Sprintf("%s - %s", capitalize(string(tpl)), randomInitials(w.rng, 3)),
	}

	switch tpl {
	case model.TemplateReport:
		doc.Blocks = w.reportBlocks()
	case model.TemplateLetter:
		doc.Blocks = w.letterBlocks()
	default:
		doc.Blocks = w.genericBlocks()
	}

	if err := writeDocx(path, doc); err != nil {
		return &model.SynthesisError{Type: model.TypeWord, Path: path, Err: err}
	}
	return nil
}

// reportBlocks builds the fixed report section sequence, each section
// carrying one to three generated paragraphs.
func (w *Word) reportBlocks() []block {
	sections := []struct {
		name  string
		paras int
	}{
		{"Executive Summary", 1},
		{"Introduction", 2},
		{"Findings", 3},
		{"Conclusion", 1},
	}

	var blocks []block
	for _, sec := range sections {
		blocks = append(blocks, block{Heading: true, Text: sec.name})
		for _, p := range w.text.Paragraphs(w.rng, sec.paras, 5) {
			blocks = append(blocks, block{Text: p})
		}
	}
	return blocks
}

// letterBlocks builds a dated business letter: date line, salutation,
// three body paragraphs, and a signature block.
func (w *Word) letterBlocks() []block {
	blocks := []block{
		{Text: randomDate(w.rng)},
		{Text: ""},
		{Text: fmt.Sprintf("Dear Mr./Ms. %c.,", 'A'+rune(w.rng.Intn(26)))},
	}
	for _, p := range w.text.Paragraphs(w.rng, 3, 5) {
		blocks = append(blocks, block{Text: p})
	}
	return append(blocks,
		block{Text: "Sincerely,"},
		block{Text: randomName(w.rng)},
	)
}

// genericBlocks is the fallback shape for templates this format does not
// explicitly model.
func (w *Word) genericBlocks() []block {
	var blocks []block
	for _, p := range w.text.Paragraphs(w.rng, 1, 5) {
		blocks = append(blocks, block{Text: p})
	}
	return blocks
}
