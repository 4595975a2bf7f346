// Package textsource supplies short natural-language passages for document
// content. The primary strategy samples sentences from a multi-document
// corpus fetched over HTTP or read from disk; when the corpus cannot be
// loaded the package falls back to a fixed built-in sentence pool. The
// switch is transparent to callers and never raises.
package textsource

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"unicode"
)

// defaultSources are public-domain books used to seed the sentence pool
// when the caller configures no corpus of its own.
var defaultSources = []string{
	"https://www.gutenberg.org/cache/epub/161/pg161.txt",
	"https://www.gutenberg.org/cache/epub/158/pg158.txt",
	"https://www.gutenberg.org/cache/epub/105/pg105.txt",
	"https://www.gutenberg.org/cache/epub/11/pg11.txt",
}

var fallbackSentences = []string{
	"This is a sample paragraph for testing purposes.",
	"The quick brown fox jumps over the lazy dog.",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Data analysis plays a crucial role in modern decision-making processes.",
	"The importance of clear communication cannot be overstated in professional settings.",
	"Data-driven insights have become essential for business operations and strategic planning.",
	"Effective communication is the cornerstone of successful project management.",
	"Innovation and adaptability are key factors in maintaining competitive advantage.",
	"Quality assurance processes ensure consistent delivery of products and services.",
	"Strategic planning and execution are vital for achieving long-term organizational goals.",
	"The integration of machine learning is reshaping established business processes.",
	"Sustainable practices are increasingly important in corporate strategy.",
	"Customer satisfaction remains a top priority in service-oriented industries.",
	"Digital transformation initiatives require careful stakeholder engagement.",
	"Risk management frameworks are essential for organizational resilience.",
}

// Source maintains a lazily-built in-memory pool of corpus sentences.
// The pool is immutable once built, so sampling is safe from multiple
// workers as long as each passes its own rand.Rand.
type Source struct {
	sources []string
	once    sync.Once
	pool    []string
}

// New returns a Source backed by the given corpus locations (HTTP URLs or
// local file paths). With no arguments the default public corpus is used.
func New(sources ...string) *Source {
	if len(sources) == 0 {
		sources = defaultSources
	}
	return &Source{sources: sources}
}

// Paragraphs returns exactly count generated paragraphs, each joining
// sentencesPer sentences sampled from the pool. Corpus load failures are
// logged inside load and answered from the built-in fallback pool.
func (s *Source) Paragraphs(rng *rand.Rand, count, sentencesPer int) []string {
	s.once.Do(s.load)

	pool := s.pool
	if len(pool) == 0 {
		pool = fallbackSentences
	}

	paragraphs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		paragraphs = append(paragraphs, joinSample(rng, pool, sentencesPer))
	}
	return paragraphs
}

// load builds the sentence pool from every reachable source. A source that
// cannot be read is skipped; if none yields text the pool stays empty and
// callers get fallback sentences.
func (s *Source) load() {
	for _, src := range s.sources {
		text, err := readSource(src)
		if err != nil {
			fmt.Printf("⚠️  Corpus source %s unavailable: %v\n", src, err)
			continue
		}
		s.pool = append(s.pool, splitSentences(text)...)
	}
	if len(s.pool) == 0 {
		fmt.Println("⚠️  No corpus text loaded, using built-in fallback sentences")
		return
	}
	fmt.Printf("📚 Text pool ready: %d sentences from %d sources\n", len(s.pool), len(s.sources))
}

// readSource fetches a corpus document from an HTTP URL or a local path.
func readSource(src string) (string, error) {
	if strings.HasPrefix(src, "http") {
		resp, err := http.Get(src)
		if err != nil {
			return "", fmt.Errorf("failed to GET corpus: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("corpus fetch returned status %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus body: %w", err)
		}
		return string(body), nil
	}

	body, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read corpus file: %w", err)
	}
	return string(body), nil
}

// splitSentences tokenizes raw corpus text into trimmed sentences, keeping
// only those long enough to read as prose.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		sentence := normalizeSpace(b.String())
		b.Reset()
		if len(sentence) >= 20 {
			sentences = append(sentences, sentence)
		}
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return sentences
}

// normalizeSpace collapses runs of whitespace (including newlines inside
// wrapped corpus lines) into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// joinSample joins n sentences drawn from pool. Sampling is without
// replacement while the pool allows it; repetition only occurs when the
// request exceeds the pool size.
func joinSample(rng *rand.Rand, pool []string, n int) string {
	if n <= 0 {
		n = 1
	}
	picked := make([]string, 0, n)
	if n <= len(pool) {
		for _, idx := range rng.Perm(len(pool))[:n] {
			picked = append(picked, pool[idx])
		}
	} else {
		for i := 0; i < n; i++ {
			picked = append(picked, pool[rng.Intn(len(pool))])
		}
	}
	return strings.Join(picked, " ")
}
