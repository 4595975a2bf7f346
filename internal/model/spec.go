package model

import (
	"fmt"
	"math"
)

// Default values matching the reference corpus shape.
const (
	DefaultBatchSize       = 10000
	DefaultCheckpointEvery = 10
)

// DefaultTypeWeights is the categorical distribution over document formats.
func DefaultTypeWeights() map[DocType]float64 {
	return map[DocType]float64{
		TypeWord:        0.4,
		TypePDF:         0.3,
		TypeSpreadsheet: 0.2,
		TypeText:        0.1,
	}
}

// DefaultTemplateWeights is the categorical distribution over content templates.
func DefaultTemplateWeights() map[Template]float64 {
	return map[Template]float64{
		TemplateReport:       0.3,
		TemplateLetter:       0.2,
		TemplateMemo:         0.15,
		TemplateInvoice:      0.15,
		TemplateDataAnalysis: 0.2,
	}
}

// GenerationJobSpec is the full configuration for one generation run.
// It is the payload of POST /api/v1/generations and of the CLI config file.
type GenerationJobSpec struct {
	TotalDocuments  int                  `json:"totalDocuments" yaml:"totalDocuments"`
	OutputDir       string               `json:"outputDir" yaml:"outputDir"`
	TypeWeights     map[DocType]float64  `json:"typeWeights,omitempty" yaml:"typeWeights"`
	TemplateWeights map[Template]float64 `json:"templateWeights,omitempty" yaml:"templateWeights"`
	BatchSize       int                  `json:"batchSize" yaml:"batchSize"`
	CheckpointEvery int                  `json:"checkpointEvery" yaml:"checkpointEvery"`
	Workers         int                  `json:"workers" yaml:"workers"`
	Seed            int64                `json:"seed" yaml:"seed"`
	UnitTimeout     string               `json:"unitTimeout,omitempty" yaml:"unitTimeout"`
	CorpusSources   []string             `json:"corpusSources,omitempty" yaml:"corpusSources"`
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
// Workers defaults to 0 here; the scheduler resolves 0 to runtime.NumCPU().
func (s *GenerationJobSpec) ApplyDefaults() {
	if s.OutputDir == "" {
		s.OutputDir = "synthetic_docs"
	}
	if s.BatchSize <= 0 {
		s.BatchSize = DefaultBatchSize
	}
	if s.CheckpointEvery <= 0 {
		s.CheckpointEvery = DefaultCheckpointEvery
	}
	if len(s.TypeWeights) == 0 {
		s.TypeWeights = DefaultTypeWeights()
	}
	if len(s.TemplateWeights) == 0 {
		s.TemplateWeights = DefaultTemplateWeights()
	}
}

// Validate checks the spec after defaults are applied. Weight tables must
// contain only known categories, carry no negative weights, and sum to 1.0
// within floating tolerance.
func (s *GenerationJobSpec) Validate() error {
	if s.TotalDocuments <= 0 {
		return fmt.Errorf("totalDocuments must be positive, got %d", s.TotalDocuments)
	}
	sum, err := sumTypeWeights(s.TypeWeights)
	if err != nil {
		return err
	}
	if err := validateWeightSum("typeWeights", sum); err != nil {
		return err
	}
	sum, err = sumTemplateWeights(s.TemplateWeights)
	if err != nil {
		return err
	}
	return validateWeightSum("templateWeights", sum)
}

func sumTypeWeights(w map[DocType]float64) (float64, error) {
	sum := 0.0
	for t, weight := range w {
		if !t.Valid() {
			return 0, fmt.Errorf("unknown document type %q", t)
		}
		if weight < 0 {
			return 0, fmt.Errorf("negative weight %v for type %q", weight, t)
		}
		sum += weight
	}
	return sum, nil
}

func sumTemplateWeights(w map[Template]float64) (float64, error) {
	sum := 0.0
	for tpl, weight := range w {
		if !tpl.Valid() {
			return 0, fmt.Errorf("unknown template %q", tpl)
		}
		if weight < 0 {
			return 0, fmt.Errorf("negative weight %v for template %q", weight, tpl)
		}
		sum += weight
	}
	return sum, nil
}

func validateWeightSum(name string, sum float64) error {
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%s must sum to 1.0, got %v", name, sum)
	}
	return nil
}
