package generator

import (
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-docgen/internal/model"
	"go-docgen/internal/policy"
	"go-docgen/internal/textsource"
)

var filenameRe = regexp.MustCompile(`^doc_\d{7}_[a-z_]+_[a-z0-9]{8}\.(docx|pdf|xlsx|txt)$`)

func textOnlyGenerator(t *testing.T, outputDir string, seed int64) *Generator {
	t.Helper()
	picker, err := policy.New(
		map[model.DocType]float64{model.TypeText: 1.0},
		map[model.Template]float64{model.TemplateMemo: 0.5, model.TemplateReport: 0.5},
	)
	require.NoError(t, err)
	text := textsource.New(filepath.Join(t.TempDir(), "no-corpus.txt"))
	return New(outputDir, picker, text, rand.New(rand.NewSource(seed)))
}

func TestGenerateProducesUniqueWellFormedPaths(t *testing.T) {
	dir := t.TempDir()
	g := textOnlyGenerator(t, dir, 1)

	seen := make(map[string]bool)
	for i := 1; i <= 500; i++ {
		res := g.Generate(i)
		require.Equal(t, model.StatusSuccess, res.Status, res.Error)

		name := filepath.Base(res.Filename)
		assert.Regexp(t, filenameRe, name)
		assert.False(t, seen[res.Filename], "duplicate path %s", res.Filename)
		seen[res.Filename] = true

		_, err := os.Stat(res.Filename)
		assert.NoError(t, err)
	}
}

func TestGenerateResultCarriesDrawnCategories(t *testing.T) {
	g := textOnlyGenerator(t, t.TempDir(), 2)

	res := g.Generate(1)
	require.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, model.TypeText, res.Type)
	assert.Contains(t, []model.Template{model.TemplateMemo, model.TemplateReport}, res.Template)
}

func TestGenerateIsolatesSynthesizerFailure(t *testing.T) {
	// nonexistent nested directory makes every write fail
	dir := filepath.Join(t.TempDir(), "missing", "deep")
	g := textOnlyGenerator(t, dir, 3)

	res := g.Generate(1)
	assert.True(t, res.Failed())
	assert.Equal(t, 1, res.Index)
	assert.NotEmpty(t, res.Error)

	// the generator stays usable after a failure
	res = g.Generate(2)
	assert.True(t, res.Failed())
	assert.Equal(t, 2, res.Index)
}

func TestGenerateAllFormats(t *testing.T) {
	dir := t.TempDir()
	picker, err := policy.New(model.DefaultTypeWeights(), model.DefaultTemplateWeights())
	require.NoError(t, err)
	text := textsource.New(filepath.Join(t.TempDir(), "no-corpus.txt"))
	g := New(dir, picker, text, rand.New(rand.NewSource(4)))

	types := make(map[model.DocType]int)
	for i := 1; i <= 60; i++ {
		res := g.Generate(i)
		require.Equal(t, model.StatusSuccess, res.Status, res.Error)
		types[res.Type]++
	}
	// with 60 weighted draws every format should appear
	for _, dt := range model.AllDocTypes {
		assert.Greater(t, types[dt], 0, "type %s never generated", dt)
	}
}
