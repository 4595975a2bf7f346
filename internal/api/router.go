package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"go-docgen/internal/api/handler"
	"go-docgen/pkg/router"

	_ "go-docgen/docs"
)

// NewRouter builds the API router with all generation routes registered.
func NewRouter() *router.Router {
	r := router.New()

	r.POST("/api/v1/generations", handler.CreateGeneration)
	r.GET("/api/v1/generations", handler.ListGenerations)
	// More specific routes first
	r.GET("/api/v1/generations/*/progress", handler.GetGenerationProgress)
	r.GET("/api/v1/generations/*/report", handler.GetGenerationReport)
	r.GET("/api/v1/generations/*/errors", handler.GetGenerationErrors)
	r.PATCH("/api/v1/generations/*/cancel", handler.CancelGeneration)
	// Generic run route last
	r.GET("/api/v1/generations/*", handler.GetGeneration)
	r.GET("/api/v1/download/*", handler.DownloadFile)

	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		httpSwagger.WrapHandler(w, req)
	})

	return r
}
