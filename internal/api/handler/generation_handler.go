package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-docgen/internal/model"
	"go-docgen/internal/scheduler"
	"go-docgen/internal/store"
	"go-docgen/pkg/utils"
)

var outputs = utils.NewOutputManager("outputs")

// running tracks the cancel function of every in-flight run.
var running sync.Map // runID -> context.CancelFunc

// CreateGeneration creates a new document generation run
// @Summary Create a new generation run
// @Description Create and start a new synthetic document generation run with the provided configuration
// @Tags generations
// @Accept json
// @Produce json
// @Param generation body model.GenerationJobSpec true "Generation configuration"
// @Success 200 {object} map[string]interface{} "Generation run created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /generations [post]
func CreateGeneration(w http.ResponseWriter, r *http.Request) {
	var spec model.GenerationJobSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// 1. Validate payload
	if spec.TotalDocuments <= 0 {
		http.Error(w, "totalDocuments must be positive", http.StatusBadRequest)
		return
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 2. Generate run ID and per-run output directory
	runID := uuid.New().String()
	dir, err := outputs.RunDir(runID)
	if err != nil {
		http.Error(w, "Failed to create output directory", http.StatusInternalServerError)
		return
	}
	spec.OutputDir = dir

	// 3. Save run to DB
	if err := store.SaveRun(runID, spec); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	// 4. Start generation asynchronously
	ctx, cancel := context.WithCancel(context.Background())
	running.Store(runID, cancel)

	go func() {
		defer cancel()
		defer running.Delete(runID)
		if _, err := scheduler.Run(ctx, runID, spec); err != nil {
			store.SaveRunError(runID, err)
			if ctx.Err() != nil {
				store.UpdateRunStatus(runID, "cancelled")
			} else {
				store.UpdateRunStatus(runID, "failed")
			}
			return
		}
		store.UpdateRunStatus(runID, "completed")
	}()

	// 5. Return response
	resp := map[string]interface{}{
		"message":   "Generation run created successfully!",
		"runID":     runID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListGenerations retrieves all generation runs
// @Summary List all generation runs
// @Description Get a list of all generation runs with their current status
// @Tags generations
// @Accept json
// @Produce json
// @Success 200 {array} map[string]interface{} "List of generation runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /generations [get]
func ListGenerations(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch generation runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetGeneration retrieves a specific generation run
// @Summary Get generation run
// @Description Retrieve details of a specific generation run
// @Tags generations
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Generation run details"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Generation run not found"
// @Router /generations/{id} [get]
func GetGeneration(w http.ResponseWriter, r *http.Request) {
	// Extract run ID from URL path
	path := r.URL.Path
	prefix := "/api/v1/generations/"

	if !strings.HasPrefix(path, prefix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	runID := path[len(prefix):]
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetGenerationProgress retrieves checkpoints recorded for a run
// @Summary Get generation progress
// @Description Retrieve all progress checkpoints recorded during a generation run
// @Tags generations
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Generation progress"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /generations/{id}/progress [get]
func GetGenerationProgress(w http.ResponseWriter, r *http.Request) {
	// Extract run ID from URL path
	path := r.URL.Path
	prefix := "/api/v1/generations/"
	suffix := "/progress"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	checkpoints, err := store.GetCheckpoints(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id":      runID,
		"checkpoints": checkpoints,
		"count":       len(checkpoints),
	})
}

// GetGenerationReport retrieves the final report for a run
// @Summary Get generation report
// @Description Retrieve the final aggregated report of a completed generation run
// @Tags generations
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.FinalReport "Final report"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /generations/{id}/report [get]
func GetGenerationReport(w http.ResponseWriter, r *http.Request) {
	// Extract run ID from URL path
	path := r.URL.Path
	prefix := "/api/v1/generations/"
	suffix := "/report"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	rep, err := store.GetReport(runID)
	if err != nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// GetGenerationErrors retrieves errors for a generation run
// @Summary Get generation errors
// @Description Retrieve all errors that occurred during a generation run
// @Tags generations
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Generation errors"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /generations/{id}/errors [get]
func GetGenerationErrors(w http.ResponseWriter, r *http.Request) {
	// Extract run ID from URL path
	path := r.URL.Path
	prefix := "/api/v1/generations/"
	suffix := "/errors"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	errors, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"errors": errors,
		"count":  len(errors),
	})
}

// CancelGeneration cancels a running generation run
// @Summary Cancel generation run
// @Description Cancel a running generation run
// @Tags generations
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Generation run cancelled"
// @Failure 400 {object} map[string]interface{} "Invalid run ID or status"
// @Failure 404 {object} map[string]interface{} "Generation run not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /generations/{id}/cancel [patch]
func CancelGeneration(w http.ResponseWriter, r *http.Request) {
	// Extract run ID from URL path
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 4 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	runID := pathParts[3]

	// Check if run exists
	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	// Check if run is in a cancellable state
	status, ok := run["status"].(string)
	if !ok {
		http.Error(w, "Invalid run status", http.StatusInternalServerError)
		return
	}

	if status == "completed" || status == "failed" || status == "cancelled" {
		http.Error(w, fmt.Sprintf("Run is already %s and cannot be cancelled", status), http.StatusBadRequest)
		return
	}

	// Signal the scheduler to stop between batches
	if cancel, ok := running.Load(runID); ok {
		cancel.(context.CancelFunc)()
	}

	if err := store.UpdateRunStatus(runID, "cancelled"); err != nil {
		http.Error(w, "Failed to cancel run", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"message": "Generation run cancelled successfully",
		"run_id":  runID,
		"status":  "cancelled",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DownloadFile serves a generated document for download
// @Summary Download file
// @Description Download a specific generated document from a run
// @Tags files
// @Accept json
// @Produce application/octet-stream
// @Param runID path string true "Run ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 400 {object} map[string]interface{} "Invalid URL format"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{runID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// Extract run ID and filename from URL path
	// URL format: /api/v1/download/runID/filename
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 5 {
		http.Error(w, fmt.Sprintf("Invalid URL format. Expected 5 parts, got %d: %v", len(pathParts), pathParts), http.StatusBadRequest)
		return
	}
	runID := pathParts[3]
	fileName := pathParts[4]

	filePath := outputs.FilePath(runID, fileName)

	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	// Set appropriate headers for file download
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")

	http.ServeFile(w, r, filePath)
}
