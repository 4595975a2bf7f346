package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-docgen/internal/model"
)

func TestWritesAreNoOpsBeforeInit(t *testing.T) {
	require.Nil(t, db, "test must run before InitDB")

	assert.NoError(t, SaveRun("r", model.GenerationJobSpec{}))
	assert.NoError(t, UpdateRunStatus("r", "running"))
	assert.NoError(t, SaveRunError("r", errors.New("boom")))
	assert.NoError(t, SaveCheckpoint("r", model.ProgressCheckpoint{}))
	assert.NoError(t, SaveReport("r", &model.FinalReport{}))

	_, err := GetRun("r")
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = ListRuns()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = GetCheckpoints("r")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestRunLifecycleRoundtrip(t *testing.T) {
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))

	spec := model.GenerationJobSpec{
		TotalDocuments: 100,
		OutputDir:      "out",
		BatchSize:      10,
		Seed:           42,
	}
	runID := "run-" + time.Now().Format("150405.000000")

	require.NoError(t, SaveRun(runID, spec))

	run, err := GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, run["id"])
	assert.Equal(t, "pending", run["status"])
	assert.Equal(t, spec, run["spec"])

	require.NoError(t, UpdateRunStatus(runID, "running"))
	run, err = GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "running", run["status"])

	runs, err := ListRuns()
	require.NoError(t, err)
	require.NotEmpty(t, runs)

	found := false
	for _, r := range runs {
		if r["id"] == runID {
			found = true
		}
	}
	assert.True(t, found)

	// errors
	require.NoError(t, SaveRunError(runID, errors.New("first failure")))
	require.NoError(t, SaveRunError(runID, errors.New("second failure")))
	msgs, err := GetRunErrors(runID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first failure", "second failure"}, msgs)

	// checkpoints
	cps := []model.ProgressCheckpoint{
		{CompletedBatches: 1, TotalBatches: 10, DocumentsGenerated: 10, SuccessCount: 9, FailedCount: 1},
		{CompletedBatches: 2, TotalBatches: 10, DocumentsGenerated: 20, SuccessCount: 19, FailedCount: 1},
	}
	for _, cp := range cps {
		require.NoError(t, SaveCheckpoint(runID, cp))
	}
	got, err := GetCheckpoints(runID)
	require.NoError(t, err)
	assert.Equal(t, cps, got)

	// report
	rep := &model.FinalReport{
		TotalDocuments: 100,
		SuccessCount:   99,
		FailedCount:    1,
		ElapsedSeconds: 1.5,
		TypeDistribution: map[model.DocType]float64{
			model.TypeText: 1.0,
		},
		TemplateDistribution: map[model.Template]float64{
			model.TemplateMemo: 1.0,
		},
	}
	require.NoError(t, SaveReport(runID, rep))

	gotRep, err := GetReport(runID)
	require.NoError(t, err)
	assert.Equal(t, rep, gotRep)

	// replacing the report keeps one row
	rep.FailedCount = 2
	require.NoError(t, SaveReport(runID, rep))
	gotRep, err = GetReport(runID)
	require.NoError(t, err)
	assert.Equal(t, 2, gotRep.FailedCount)
}

func TestGetRunUnknownID(t *testing.T) {
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))

	_, err := GetRun("no-such-run")
	assert.Error(t, err)
}
