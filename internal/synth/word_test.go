package synth

import (
	"archive/zip"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-docgen/internal/model"
	"go-docgen/internal/textsource"
)

func offlineSource(t *testing.T) *textsource.Source {
	t.Helper()
	return textsource.New(filepath.Join(t.TempDir(), "no-corpus.txt"))
}

func TestWordLetterBlocks(t *testing.T) {
	w := NewWord(offlineSource(t), rand.New(rand.NewSource(1)))

	blocks := w.letterBlocks()
	require.Len(t, blocks, 8)

	assert.True(t, strings.HasPrefix(blocks[0].Text, "May "))
	assert.Empty(t, blocks[1].Text)
	assert.True(t, strings.HasPrefix(blocks[2].Text, "Dear Mr./Ms. "))
	for i := 3; i < 6; i++ {
		assert.NotEmpty(t, blocks[i].Text)
		assert.False(t, blocks[i].Heading)
	}
	assert.Equal(t, "Sincerely,", blocks[6].Text)
	assert.NotEmpty(t, blocks[7].Text)
}

func TestWordReportBlocks(t *testing.T) {
	w := NewWord(offlineSource(t), rand.New(rand.NewSource(2)))

	blocks := w.reportBlocks()

	var headings []string
	paras := 0
	for _, b := range blocks {
		if b.Heading {
			headings = append(headings, b.Text)
		} else {
			assert.NotEmpty(t, b.Text)
			paras++
		}
	}
	assert.Equal(t, []string{"Executive Summary", "Introduction", "Findings", "Conclusion"}, headings)
	assert.Equal(t, 7, paras)
}

func TestWordSynthesizeWritesReadableDocx(t *testing.T) {
	w := NewWord(offlineSource(t), rand.New(rand.NewSource(3)))
	path := filepath.Join(t.TempDir(), "out.docx")

	require.NoError(t, w.Synthesize(path, model.TemplateLetter))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	require.True(t, names["word/document.xml"])

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Contains(t, string(body), "<w:document")
		assert.Contains(t, string(body), "Dear Mr./Ms. ")
		assert.Contains(t, string(body), "Sincerely,")
	}
}

func TestDocumentXMLEscapesContent(t *testing.T) {
	doc := wordDoc{
		Title:  "A & B",
		Blocks: []block{{Text: "x < y"}},
	}
	out := documentXML(doc)
	assert.Contains(t, out, "A &amp; B")
	assert.Contains(t, out, "x &lt; y")
	assert.NotContains(t, out, "x < y")
}

func TestWordUnknownTemplateFallsBack(t *testing.T) {
	w := NewWord(offlineSource(t), rand.New(rand.NewSource(4)))
	path := filepath.Join(t.TempDir(), "memo.docx")

	require.NoError(t, w.Synthesize(path, model.TemplateMemo))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	zr.Close()
}

func TestWordSynthesizeErrorType(t *testing.T) {
	w := NewWord(offlineSource(t), rand.New(rand.NewSource(5)))
	path := filepath.Join(t.TempDir(), "missing", "deep", "out.docx")

	err := w.Synthesize(path, model.TemplateReport)
	require.Error(t, err)

	var synthErr *model.SynthesisError
	require.ErrorAs(t, err, &synthErr)
	assert.Equal(t, model.TypeWord, synthErr.Type)
	assert.Equal(t, path, synthErr.Path)
}
