// Package report accumulates per-unit results into summary statistics and
// persists progress checkpoints and the final run report as JSON files in
// the output directory.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-docgen/internal/model"
)

// FinalReportFile is the fixed name of the terminal report file.
const FinalReportFile = "generation_report_final.json"

// Finalize computes the summary statistics over all collected results.
// Distributions cover successful results only; every configured category
// appears, zero-valued when it never occurred. Division guards keep the
// report well-defined for empty and instantaneous runs.
func Finalize(results []model.GenerationResult, elapsed time.Duration) *model.FinalReport {
	rep := &model.FinalReport{
		TotalDocuments:       len(results),
		ElapsedSeconds:       elapsed.Seconds(),
		TypeDistribution:     make(map[model.DocType]float64, len(model.AllDocTypes)),
		TemplateDistribution: make(map[model.Template]float64, len(model.AllTemplates)),
	}

	typeCounts := make(map[model.DocType]int)
	tplCounts := make(map[model.Template]int)
	for _, res := range results {
		if res.Failed() {
			rep.FailedCount++
			continue
		}
		rep.SuccessCount++
		typeCounts[res.Type]++
		tplCounts[res.Template]++
	}

	for _, t := range model.AllDocTypes {
		rep.TypeDistribution[t] = fraction(typeCounts[t], rep.SuccessCount)
	}
	for _, tpl := range model.AllTemplates {
		rep.TemplateDistribution[tpl] = fraction(tplCounts[tpl], rep.SuccessCount)
	}

	if rep.ElapsedSeconds > 0 {
		rep.DocumentsPerSecond = float64(rep.SuccessCount) / rep.ElapsedSeconds
	}
	return rep
}

func fraction(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// Write persists the final report to its fixed filename in dir. This is
// the terminal operation of a run; a failure here makes the run incomplete.
func Write(dir string, rep *model.FinalReport) error {
	if err := writeJSON(filepath.Join(dir, FinalReportFile), rep); err != nil {
		return fmt.Errorf("write final report: %w", err)
	}
	return nil
}

// WriteCheckpoint persists a progress snapshot, one file per checkpoint
// event named by the completed-batch count.
func WriteCheckpoint(dir string, cp model.ProgressCheckpoint) error {
	name := fmt.Sprintf("generation_checkpoint_%d.json", cp.CompletedBatches)
	if err := writeJSON(filepath.Join(dir, name), cp); err != nil {
		return fmt.Errorf("write checkpoint %d: %w", cp.CompletedBatches, err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
