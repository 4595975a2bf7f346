package synth

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-docgen/internal/model"
)

func TestTextSynthesizeMemo(t *testing.T) {
	tx := NewText(offlineSource(t), rand.New(rand.NewSource(1)))
	path := filepath.Join(t.TempDir(), "memo.txt")

	require.NoError(t, tx.Synthesize(path, model.TemplateMemo))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)

	lines := strings.Split(body, "\n")
	require.Greater(t, len(lines), 6)
	assert.Equal(t, "MEMORANDUM", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "TO: "))
	assert.True(t, strings.HasPrefix(lines[3], "FROM: "))
	assert.True(t, strings.HasPrefix(lines[4], "DATE: "))
	assert.True(t, strings.HasPrefix(lines[5], "SUBJECT: "))
}

func TestTextSynthesizeGeneric(t *testing.T) {
	tx := NewText(offlineSource(t), rand.New(rand.NewSource(2)))
	path := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, tx.Synthesize(path, model.TemplateReport))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)

	assert.True(t, strings.HasPrefix(body, "DOCUMENT: "))

	paras := 0
	for _, chunk := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(chunk) != "" && !strings.HasPrefix(chunk, "DOCUMENT: ") {
			paras++
		}
	}
	assert.GreaterOrEqual(t, paras, 5)
	assert.LessOrEqual(t, paras, 10)
}

func TestTextSynthesizeErrorType(t *testing.T) {
	tx := NewText(offlineSource(t), rand.New(rand.NewSource(3)))
	path := filepath.Join(t.TempDir(), "missing", "deep", "out.txt")

	err := tx.Synthesize(path, model.TemplateMemo)
	require.Error(t, err)

	var synthErr *model.SynthesisError
	require.ErrorAs(t, err, &synthErr)
	assert.Equal(t, model.TypeText, synthErr.Type)
	assert.Equal(t, path, synthErr.Path)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.0, roundCents(0.999))
	assert.Equal(t, 0.99, roundCents(0.994))
	assert.Equal(t, 123.46, roundCents(123.456))
	assert.Equal(t, 0.0, roundCents(0))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Report", capitalize("report"))
	assert.Equal(t, "Data_analysis", capitalize("data_analysis"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "X", capitalize("x"))
}

func TestRandomInitials(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	got := randomInitials(rng, 3)
	parts := strings.Split(got, " ")
	require.Len(t, parts, 3)
	seen := make(map[string]bool)
	for _, p := range parts {
		assert.Len(t, p, 1)
		assert.False(t, seen[p], "initials must be distinct")
		seen[p] = true
	}
}
