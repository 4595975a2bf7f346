package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s", 0))
	assert.Equal(t, 2*time.Minute, ParseDuration("2m", time.Second))
	assert.Equal(t, time.Second, ParseDuration("", time.Second))
	assert.Equal(t, time.Second, ParseDuration("not-a-duration", time.Second))
	assert.Equal(t, time.Duration(0), ParseDuration("", 0))
}

func TestRunDirCreatesDirectory(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	dir, err := om.RunDir("run-123")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "run-123", filepath.Base(dir))
}

func TestFilePathCleansFileName(t *testing.T) {
	om := NewOutputManager("outputs")

	assert.Equal(t, filepath.Join("outputs", "run", "doc.txt"), om.FilePath("run", "doc.txt"))
	// path traversal in the filename is stripped
	assert.Equal(t, filepath.Join("outputs", "run", "secret.txt"), om.FilePath("run", "../../secret.txt"))
}

func TestDownloadURL(t *testing.T) {
	om := NewOutputManager("outputs")
	assert.Equal(t, "/api/v1/download/run-1/doc.pdf", om.DownloadURL("run-1", "doc.pdf"))
}
