// Package synth contains the per-format document synthesizers. Each
// synthesizer turns a template selection into a complete document on disk.
// A template a format does not explicitly model falls back to a generic
// content shape rather than failing; type/template pairs are deliberately
// not validated for domain coherence.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"go-docgen/internal/model"
)

// Synthesizer writes one complete document to path, shaped by tpl.
// Implementations return *model.SynthesisError on content-construction or
// I/O failure and must not partially succeed silently.
type Synthesizer interface {
	Synthesize(path string, tpl model.Template) error
}

var (
	firstNames     = []string{"John", "Jane", "Alex", "Sam"}
	memoRecipients = []string{"Employees", "Managers", "Department Heads", "Team Members"}
	memoSubjects   = []string{"Policy Update", "Upcoming Event", "Quarterly Results", "New Initiative"}
)

// randomInitials returns n distinct uppercase letters joined by spaces,
// e.g. "Q C F", used for synthetic titles.
func randomInitials(rng *rand.Rand, n int) string {
	perm := rng.Perm(26)
	out := make([]byte, 0, n*2)
	for i := 0; i < n && i < 26; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, byte('A'+perm[i]))
	}
	return string(out)
}

// randomName returns a first name plus a single-letter surname initial.
func randomName(rng *rand.Rand) string {
	return fmt.Sprintf("%s %c.", firstNames[rng.Intn(len(firstNames))], 'A'+rune(rng.Intn(26)))
}

// randomDate returns a synthetic date line like "May 14, 2025".
func randomDate(rng *rand.Rand) string {
	return fmt.Sprintf("May %d, 2025", rng.Intn(31)+1)
}

// roundCents rounds a monetary value to two decimal places. Line amounts
// are rounded before they are summed into totals; totals are exact sums of
// the already-rounded amounts and are never re-rounded.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// capitalize upper-cases the first ASCII letter of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
