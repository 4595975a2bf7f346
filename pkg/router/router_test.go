package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/generations", "/api/v1/generations", true},
		{"/api/v1/generations/abc", "/api/v1/generations/*", true},
		{"/api/v1/generations/abc/progress", "/api/v1/generations/*/progress", true},
		{"/api/v1/generations/abc/report", "/api/v1/generations/*/progress", false},
		{"/api/v1/generations/abc/extra", "/api/v1/generations/*", true},
		{"/api/v1/download/run/file.txt", "/api/v1/download/*", true},
		{"/api/v1/other", "/api/v1/generations", false},
		{"/api/v1", "/api/v1/generations/*", false},
	}

	for _, tt := range tests {
		got := matchPattern(tt.path, tt.pattern)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.path, tt.pattern)
	}
}

func TestDispatchExactAndWildcard(t *testing.T) {
	r := New()

	r.GET("/api/v1/things", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("list"))
	})
	r.GET("/api/v1/things/*/detail", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("detail"))
	})
	r.GET("/api/v1/things/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("single"))
	})

	tests := []struct {
		path string
		body string
	}{
		{"/api/v1/things", "list"},
		{"/api/v1/things/42/detail", "detail"},
		{"/api/v1/things/42", "single"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		r.mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.Equal(t, tt.body, rec.Body.String(), tt.path)
	}
}

func TestDispatchNotFound(t *testing.T) {
	r := New()
	r.GET("/api/v1/things", func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	r.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDispatchMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/things", func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/things", nil)
	r.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRegistrationOrderDecidesOverlap(t *testing.T) {
	r := New()
	r.GET("/api/v1/things/*/progress", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("progress"))
	})
	r.GET("/api/v1/things/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("generic"))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/things/42/progress", nil)
	r.mux.ServeHTTP(rec, req)
	assert.Equal(t, "progress", rec.Body.String())
}
