// Package scheduler drives a generation run: it partitions the unit count
// into fixed-size batches, executes each batch across a bounded worker
// pool, and persists progress checkpoints on the configured cadence.
// Batches run strictly sequentially; units within a batch complete in any
// order. No single unit failure aborts a batch or the run.
package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go-docgen/internal/generator"
	"go-docgen/internal/model"
	"go-docgen/internal/policy"
	"go-docgen/internal/report"
	"go-docgen/internal/store"
	"go-docgen/internal/textsource"
	"go-docgen/pkg/utils"
)

// seedStride separates per-worker random streams derived from one seed.
const seedStride int64 = 0x9E3779B9

type runState struct {
	runID   string
	spec    model.GenerationJobSpec
	timeout time.Duration
	picker  *policy.Picker
	text    *textsource.Source
	seed    int64
	seedSeq atomic.Int64
}

// newGenerator builds a worker-local generator with the next random stream
// in the run's seed sequence. Also used to replace a generator abandoned
// to a timed-out unit, so a stuck synthesizer never shares its rand.Rand.
func (rs *runState) newGenerator() *generator.Generator {
	n := rs.seedSeq.Add(1)
	rng := rand.New(rand.NewSource(rs.seed + n*seedStride))
	return generator.New(rs.spec.OutputDir, rs.picker, rs.text, rng)
}

// Run executes one generation run to completion and returns its final
// report. The report file is the terminal artifact; failing to write it
// makes the whole run fail, while intermediate checkpoint write failures
// are logged and recorded but never abort the run.
func Run(ctx context.Context, runID string, spec model.GenerationJobSpec) (*model.FinalReport, error) {
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Workers <= 0 {
		spec.Workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(spec.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	picker, err := policy.New(spec.TypeWeights, spec.TemplateWeights)
	if err != nil {
		return nil, err
	}

	seed := spec.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rs := &runState{
		runID:   runID,
		spec:    spec,
		timeout: utils.ParseDuration(spec.UnitTimeout, 0),
		picker:  picker,
		text:    textsource.New(spec.CorpusSources...),
		seed:    seed,
	}

	totalBatches := (spec.TotalDocuments + spec.BatchSize - 1) / spec.BatchSize
	fmt.Printf("🚀 Run %s: generating %d documents in %d batches (%d workers)\n",
		runID, spec.TotalDocuments, totalBatches, spec.Workers)
	store.UpdateRunStatus(runID, "running")

	start := time.Now()
	allResults := make([]model.GenerationResult, 0, spec.TotalDocuments)

	for b := 0; b < totalBatches; b++ {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run cancelled after %d batches: %w", b, ctx.Err())
		}

		first := b*spec.BatchSize + 1
		last := (b + 1) * spec.BatchSize
		if last > spec.TotalDocuments {
			last = spec.TotalDocuments
		}

		allResults = append(allResults, rs.runBatch(ctx, first, last)...)

		cp := checkpoint(allResults, b+1, totalBatches)
		fmt.Printf("📦 Batch %d/%d complete: %d generated, %d failed\n",
			b+1, totalBatches, cp.DocumentsGenerated, cp.FailedCount)

		if (b+1)%spec.CheckpointEvery == 0 || b == totalBatches-1 {
			if err := report.WriteCheckpoint(spec.OutputDir, cp); err != nil {
				fmt.Printf("⚠️  Checkpoint write failed: %v\n", err)
				store.SaveRunError(runID, err)
			}
			if err := store.SaveCheckpoint(runID, cp); err != nil {
				fmt.Printf("⚠️  Checkpoint record failed: %v\n", err)
			}
		}
	}

	elapsed := time.Since(start)
	rep := report.Finalize(allResults, elapsed)
	if err := report.Write(spec.OutputDir, rep); err != nil {
		store.SaveRunError(runID, err)
		return nil, err
	}
	store.SaveReport(runID, rep)

	fmt.Printf("🏁 Run %s complete: %d generated, %d failed in %.2fs (%.2f docs/sec)\n",
		runID, rep.SuccessCount, rep.FailedCount, rep.ElapsedSeconds, rep.DocumentsPerSecond)
	return rep, nil
}

// runBatch dispatches unit indices [first, last] across the worker pool
// and blocks until every fed unit has resolved. Cancellation stops feeding
// new units; in-flight units still report.
func (rs *runState) runBatch(ctx context.Context, first, last int) []model.GenerationResult {
	indexCh := make(chan int)
	resultCh := make(chan model.GenerationResult, last-first+1)

	var wg sync.WaitGroup
	for w := 0; w < rs.spec.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := rs.newGenerator()
			for idx := range indexCh {
				res, abandoned := rs.runUnit(ctx, gen, idx)
				resultCh <- res
				if abandoned {
					// the stuck goroutine still owns gen's rand.Rand
					gen = rs.newGenerator()
				}
			}
		}()
	}

feed:
	for idx := first; idx <= last; idx++ {
		select {
		case <-ctx.Done():
			break feed
		case indexCh <- idx:
		}
	}
	close(indexCh)
	wg.Wait()
	close(resultCh)

	results := make([]model.GenerationResult, 0, last-first+1)
	for res := range resultCh {
		results = append(results, res)
	}
	return results
}

// runUnit executes one unit, optionally bounded by the per-unit timeout.
// A timed-out or cancelled unit resolves as failed without aborting the
// batch; abandoned reports whether the generator was left to a still
// running goroutine and must be replaced.
func (rs *runState) runUnit(ctx context.Context, gen *generator.Generator, idx int) (res model.GenerationResult, abandoned bool) {
	if rs.timeout <= 0 {
		return gen.Generate(idx), false
	}

	done := make(chan model.GenerationResult, 1)
	go func() {
		done <- gen.Generate(idx)
	}()

	timer := time.NewTimer(rs.timeout)
	defer timer.Stop()

	select {
	case res = <-done:
		return res, false
	case <-timer.C:
		return model.GenerationResult{
			Index:  idx,
			Status: model.StatusFailed,
			Error:  fmt.Sprintf("unit timed out after %s", rs.timeout),
		}, true
	case <-ctx.Done():
		return model.GenerationResult{
			Index:  idx,
			Status: model.StatusFailed,
			Error:  "unit cancelled",
		}, true
	}
}

// checkpoint summarizes progress so far.
func checkpoint(results []model.GenerationResult, completed, total int) model.ProgressCheckpoint {
	cp := model.ProgressCheckpoint{
		CompletedBatches:   completed,
		TotalBatches:       total,
		DocumentsGenerated: len(results),
	}
	for _, res := range results {
		if res.Failed() {
			cp.FailedCount++
		} else {
			cp.SuccessCount++
		}
	}
	return cp
}
