// Package policy implements weighted-random selection of document types
// and content templates. Each draw is independent; over many draws the
// empirical frequency of every category converges to its configured weight.
package policy

import (
	"fmt"
	"math/rand"

	"go-docgen/internal/model"
)

// Picker draws document types and templates from two fixed categorical
// distributions. A Picker is immutable after construction and safe to share
// across workers; the rand.Rand is supplied per call.
type Picker struct {
	types    []model.DocType
	typeCum  []float64
	tpls     []model.Template
	tplCum   []float64
	typeSum  float64
	tplSum   float64
}

// New builds a Picker from the given weight tables. Categories with zero
// weight are excluded from draws. Cumulative weights are laid out in the
// fixed model ordering so identical seeds reproduce identical sequences.
func New(typeWeights map[model.DocType]float64, tplWeights map[model.Template]float64) (*Picker, error) {
	p := &Picker{}

	for _, t := range model.AllDocTypes {
		w := typeWeights[t]
		if w < 0 {
			return nil, fmt.Errorf("negative weight %v for type %q", w, t)
		}
		if w == 0 {
			continue
		}
		p.typeSum += w
		p.types = append(p.types, t)
		p.typeCum = append(p.typeCum, p.typeSum)
	}
	if len(p.types) == 0 {
		return nil, fmt.Errorf("type weights select no categories")
	}

	for _, tpl := range model.AllTemplates {
		w := tplWeights[tpl]
		if w < 0 {
			return nil, fmt.Errorf("negative weight %v for template %q", w, tpl)
		}
		if w == 0 {
			continue
		}
		p.tplSum += w
		p.tpls = append(p.tpls, tpl)
		p.tplCum = append(p.tplCum, p.tplSum)
	}
	if len(p.tpls) == 0 {
		return nil, fmt.Errorf("template weights select no categories")
	}

	return p, nil
}

// PickType draws a document format.
func (p *Picker) PickType(rng *rand.Rand) model.DocType {
	return p.types[pickIndex(rng, p.typeCum, p.typeSum)]
}

// PickTemplate draws a content template.
func (p *Picker) PickTemplate(rng *rand.Rand) model.Template {
	return p.tpls[pickIndex(rng, p.tplCum, p.tplSum)]
}

// pickIndex locates the category whose cumulative weight bucket contains a
// uniform draw in [0, sum).
func pickIndex(rng *rand.Rand, cum []float64, sum float64) int {
	r := rng.Float64() * sum
	for i, c := range cum {
		if r < c {
			return i
		}
	}
	return len(cum) - 1
}
