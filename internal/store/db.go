// Package store persists generation runs, checkpoints, errors, and final
// reports in SQLite. The store backs the HTTP API; library callers that
// never call InitDB get no-op writes and explicit errors on reads.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-docgen/internal/model"
)

var db *sql.DB

// ErrNotInitialized is returned by read operations before InitDB.
var ErrNotInitialized = errors.New("store: database not initialized")

// InitDB opens the SQLite database and creates the schema.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			spec TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS checkpoints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			completed_batches INTEGER,
			total_batches INTEGER,
			documents_generated INTEGER,
			success_count INTEGER,
			failed_count INTEGER,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS reports (
			run_id TEXT PRIMARY KEY,
			report TEXT,
			created_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a new generation run in pending state.
func SaveRun(runID string, spec model.GenerationJobSpec) error {
	if db == nil {
		return nil
	}
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, specJSON, "pending", now, now)
	return err
}

// UpdateRunStatus transitions a run's status.
func UpdateRunStatus(runID, status string) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), runID)
	return err
}

// SaveRunError records an error for a run.
func SaveRunError(runID string, runErr error) error {
	if db == nil || runErr == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), time.Now().UTC())
	return err
}

// GetRun fetches a run's spec and status.
func GetRun(runID string) (map[string]interface{}, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	var specJSON, status string
	var createdAt, updatedAt time.Time
	err := db.QueryRow(`SELECT spec, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.GenerationJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":        runID,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// ListRuns returns all runs with basic info, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRunErrors returns the recorded error messages for a run.
func GetRunErrors(runID string) ([]string, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := db.Query(`SELECT error_message FROM run_errors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// SaveCheckpoint inserts a progress checkpoint row for the run.
func SaveCheckpoint(runID string, cp model.ProgressCheckpoint) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO checkpoints
		(run_id, completed_batches, total_batches, documents_generated, success_count, failed_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, cp.CompletedBatches, cp.TotalBatches, cp.DocumentsGenerated,
		cp.SuccessCount, cp.FailedCount, time.Now().UTC())
	return err
}

// GetCheckpoints returns every checkpoint recorded for a run, oldest first.
func GetCheckpoints(runID string) ([]model.ProgressCheckpoint, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := db.Query(`SELECT completed_batches, total_batches, documents_generated, success_count, failed_count
		FROM checkpoints WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkpoints []model.ProgressCheckpoint
	for rows.Next() {
		var cp model.ProgressCheckpoint
		if err := rows.Scan(&cp.CompletedBatches, &cp.TotalBatches, &cp.DocumentsGenerated,
			&cp.SuccessCount, &cp.FailedCount); err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, rows.Err()
}

// SaveReport stores the final report, replacing any previous one.
func SaveReport(runID string, rep *model.FinalReport) error {
	if db == nil {
		return nil
	}
	repJSON, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO reports (run_id, report, created_at) VALUES (?, ?, ?)`,
		runID, repJSON, time.Now().UTC())
	return err
}

// GetReport fetches the final report for a run.
func GetReport(runID string) (*model.FinalReport, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	var repJSON string
	if err := db.QueryRow(`SELECT report FROM reports WHERE run_id = ?`, runID).Scan(&repJSON); err != nil {
		return nil, err
	}
	var rep model.FinalReport
	if err := json.Unmarshal([]byte(repJSON), &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
