package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateGenerationRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing total", `{"outputDir":"out"}`},
		{"negative total", `{"totalDocuments":-1}`},
		{"bad weights", `{"totalDocuments":10,"typeWeights":{"txt":0.5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			CreateGeneration(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDownloadFileRejectsShortPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/download/only-run-id", nil)
	rec := httptest.NewRecorder()

	DownloadFile(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadFileMissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/download/no-such-run/no-such-file.txt", nil)
	rec := httptest.NewRecorder()

	DownloadFile(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
