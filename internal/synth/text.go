package synth

import (
	"math/rand"
	"os"
	"strings"

	"go-docgen/internal/model"
	"go-docgen/internal/textsource"
)

// Text synthesizes plain-text documents.
type Text struct {
	text *textsource.Source
	rng  *rand.Rand
}

func NewText(text *textsource.Source, rng *rand.Rand) *Text {
	return &Text{text: text, rng: rng}
}

func (t *Text) Synthesize(path string, tpl model.Template) error {
	var body string
	switch tpl {
	case model.TemplateMemo:
		body = t.memoBody()
	default:
		body = t.genericBody()
	}

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return &model.SynthesisError{Type: model.TypeText, Path: path, Err: err}
	}
	return nil
}

// memoBody mirrors the PDF memo header shape in unformatted text, followed
// by four paragraphs.
func (t *Text) memoBody() string {
	var b strings.Builder
	b.WriteString("MEMORANDUM\n\n")
	for _, field := range memoFields(t.rng) {
		b.WriteString(field.Label)
		b.WriteString(" ")
		b.WriteString(field.Value)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, para := range t.text.Paragraphs(t.rng, 4, 5) {
		b.WriteString(para)
		b.WriteString("\n\n")
	}
	return b.String()
}

// genericBody is the fallback shape: a title line plus five to ten
// paragraphs.
func (t *Text) genericBody() string {
	var b strings.Builder
	b.WriteString("DOCUMENT: ")
	b.WriteString(randomInitials(t.rng, 3))
	b.WriteString("\n\n")
	for _, para := range t.text.Paragraphs(t.rng, t.rng.Intn(6)+5, 5) {
		b.WriteString(para)
		b.WriteString("\n\n")
	}
	return b.String()
}
