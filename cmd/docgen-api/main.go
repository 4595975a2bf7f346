package main

import (
	"go-docgen/internal/api"
	"go-docgen/internal/store"
)

// @title Synthetic Document Generator API
// @version 1.0
// @description API for creating and monitoring synthetic office-document generation runs
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Init DB
	if err := store.InitDB("docgen.db"); err != nil {
		panic(err)
	}

	r := api.NewRouter()

	// Start server
	r.Start(":8080")
}
