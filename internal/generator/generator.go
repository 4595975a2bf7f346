// Package generator orchestrates one document unit end-to-end: draw a type
// and template, build a unique target path, and dispatch to the matching
// synthesizer. A unit is the boundary of failure isolation; no synthesizer
// error or panic propagates to the scheduler.
package generator

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"go-docgen/internal/model"
	"go-docgen/internal/policy"
	"go-docgen/internal/synth"
	"go-docgen/internal/textsource"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// suffixLen gives 36^8 ≈ 2.8e12 possibilities; combined with the unique
// zero-padded index prefix, collisions within a run are impossible and
// collisions across runs into the same directory are negligible.
const suffixLen = 8

// Generator produces documents for one worker. It owns a private rand.Rand
// and a synthesizer per format, so workers share no mutable state.
type Generator struct {
	outputDir string
	picker    *policy.Picker
	rng       *rand.Rand
	synths    map[model.DocType]synth.Synthesizer
}

// New builds a worker-local Generator. The picker and text source are
// shared and immutable; rng must be exclusive to this Generator.
func New(outputDir string, picker *policy.Picker, text *textsource.Source, rng *rand.Rand) *Generator {
	return &Generator{
		outputDir: outputDir,
		picker:    picker,
		rng:       rng,
		synths: map[model.DocType]synth.Synthesizer{
			model.TypeWord:        synth.NewWord(text, rng),
			model.TypeSpreadsheet: synth.NewSheet(rng),
			model.TypePDF:         synth.NewPDF(text, rng),
			model.TypeText:        synth.NewText(text, rng),
		},
	}
}

// Generate produces the document for one unit index and reports the
// outcome. Synthesizer errors and panics become failed results; Generate
// itself never fails.
func (g *Generator) Generate(index int) (res model.GenerationResult) {
	req := g.buildRequest(index)

	defer func() {
		if r := recover(); r != nil {
			res = model.GenerationResult{
				Index:  index,
				Status: model.StatusFailed,
				Error:  fmt.Sprintf("synthesizer panic: %v", r),
			}
		}
	}()

	s, ok := g.synths[req.Type]
	if !ok {
		return model.GenerationResult{
			Index:  index,
			Status: model.StatusFailed,
			Error:  fmt.Sprintf("no synthesizer for type %q", req.Type),
		}
	}

	if err := s.Synthesize(req.TargetPath, req.Template); err != nil {
		return model.GenerationResult{
			Index:  index,
			Status: model.StatusFailed,
			Error:  err.Error(),
		}
	}

	return model.GenerationResult{
		Index:    index,
		Status:   model.StatusSuccess,
		Type:     req.Type,
		Template: req.Template,
		Filename: req.TargetPath,
	}
}

// buildRequest draws the unit's type and template and constructs its
// target path: doc_<7-digit index>_<template>_<8-char suffix>.<ext>.
func (g *Generator) buildRequest(index int) model.GenerationRequest {
	docType := g.picker.PickType(g.rng)
	tpl := g.picker.PickTemplate(g.rng)

	name := fmt.Sprintf("doc_%07d_%s_%s.%s", index, tpl, randSuffix(g.rng, suffixLen), docType.Ext())
	return model.GenerationRequest{
		Index:      index,
		Type:       docType,
		Template:   tpl,
		TargetPath: filepath.Join(g.outputDir, name),
	}
}

func randSuffix(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rng.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
