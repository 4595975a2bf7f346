package model

import "fmt"

// DocType is the output document format for a generated unit.
type DocType string

const (
	TypeWord        DocType = "docx"
	TypePDF         DocType = "pdf"
	TypeSpreadsheet DocType = "xlsx"
	TypeText        DocType = "txt"
)

// AllDocTypes lists every supported format in a fixed order, used for
// deterministic iteration over weight tables and distributions.
var AllDocTypes = []DocType{TypeWord, TypePDF, TypeSpreadsheet, TypeText}

// Ext returns the file extension for the type, without a leading dot.
func (t DocType) Ext() string {
	return string(t)
}

// Valid reports whether t is one of the supported document types.
func (t DocType) Valid() bool {
	switch t {
	case TypeWord, TypePDF, TypeSpreadsheet, TypeText:
		return true
	}
	return false
}

// Template is the content shape applied within a document type.
type Template string

const (
	TemplateReport       Template = "report"
	TemplateLetter       Template = "letter"
	TemplateMemo         Template = "memo"
	TemplateInvoice      Template = "invoice"
	TemplateDataAnalysis Template = "data_analysis"
)

// AllTemplates lists every content template in a fixed order.
var AllTemplates = []Template{
	TemplateReport,
	TemplateLetter,
	TemplateMemo,
	TemplateInvoice,
	TemplateDataAnalysis,
}

// Valid reports whether tpl is one of the supported templates.
func (tpl Template) Valid() bool {
	switch tpl {
	case TemplateReport, TemplateLetter, TemplateMemo, TemplateInvoice, TemplateDataAnalysis:
		return true
	}
	return false
}

// Status is the terminal outcome of a single generation unit.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// GenerationRequest describes one document to produce. It is constructed
// once by the unit generator and never mutated afterwards.
type GenerationRequest struct {
	Index      int      `json:"index"`
	Type       DocType  `json:"type"`
	Template   Template `json:"template"`
	TargetPath string   `json:"target_path"`
}

// GenerationResult is produced exactly once per request by the worker that
// executed it and is consumed by the scheduler and report aggregator.
type GenerationResult struct {
	Index    int      `json:"index"`
	Status   Status   `json:"status"`
	Type     DocType  `json:"type,omitempty"`
	Template Template `json:"template,omitempty"`
	Filename string   `json:"filename,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Failed reports whether the unit ended in failure.
func (r GenerationResult) Failed() bool {
	return r.Status == StatusFailed
}

// ProgressCheckpoint is a durable snapshot of run progress, persisted after
// every K-th batch and after the final batch.
type ProgressCheckpoint struct {
	CompletedBatches   int `json:"completed_batches"`
	TotalBatches       int `json:"total_batches"`
	DocumentsGenerated int `json:"documents_generated"`
	SuccessCount       int `json:"success_count"`
	FailedCount        int `json:"failed_count"`
}

// FinalReport holds the summary statistics for a completed run. It is
// computed once, after all batches resolve, and written once.
type FinalReport struct {
	TotalDocuments       int                  `json:"total_documents"`
	SuccessCount         int                  `json:"success_count"`
	FailedCount          int                  `json:"failed_count"`
	ElapsedSeconds       float64              `json:"time_taken_seconds"`
	DocumentsPerSecond   float64              `json:"documents_per_second"`
	TypeDistribution     map[DocType]float64  `json:"document_type_distribution"`
	TemplateDistribution map[Template]float64 `json:"template_type_distribution"`
}

// SynthesisError wraps a failure inside one synthesizer. It is recovered at
// the unit generator boundary and never propagates past a single unit.
type SynthesisError struct {
	Type DocType
	Path string
	Err  error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesize %s to %s: %v", e.Type, e.Path, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
