package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager organizes per-run output directories under a common base.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates an output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// RunDir creates (if needed) and returns the output directory for a run.
func (om *OutputManager) RunDir(runID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return dir, nil
}

// FilePath returns the full path of a named file inside a run's directory.
// The filename is cleaned so it cannot escape the run directory.
func (om *OutputManager) FilePath(runID, fileName string) string {
	return filepath.Join(om.BaseOutputDir, runID, filepath.Base(fileName))
}

// DownloadURL returns the API download URL for a run's output file.
func (om *OutputManager) DownloadURL(runID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", runID, filepath.Base(fileName))
}
