// Package runner drives a single comparison run from listing to report.
package runner

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tkunarajah/dircomp/pkg/compare"
	"github.com/tkunarajah/dircomp/pkg/listing"
	"github.com/tkunarajah/dircomp/pkg/logging"
	"github.com/tkunarajah/dircomp/pkg/models"
	"github.com/tkunarajah/dircomp/pkg/report"
)

// Runner executes comparison runs. Each run is fully self-contained; the
// runner holds no state between runs and may be shared by concurrent runs
// as long as each one targets a distinct output path.
type Runner struct {
	logger    logging.Logger
	reportDir string
}

// New creates a runner. reportDir is where default-named reports land when
// the caller supplies no output path; empty means the current directory.
func New(logger logging.Logger, reportDir string) *Runner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{
		logger:    logger,
		reportDir: reportDir,
	}
}

// Run compares the immediate entries of two directories and writes the
// report. Every failure is captured in the returned RunReport rather than
// raised: a listing error on either side still produces a report file as a
// diagnostic artifact, and only the overall status marks the run as failed.
func (r *Runner) Run(ctx context.Context, cr *models.CompareRun) *models.RunReport {
	// The clock is read once so the header timestamp and the default
	// filename agree within one run.
	start := time.Now()

	id := cr.ID
	if id == "" {
		id = uuid.New().String()
	}

	firstPath := cr.FirstPath
	secondPath := cr.SecondPath

	run := &models.RunReport{
		RunID:      id,
		FirstPath:  firstPath,
		SecondPath: secondPath,
		StartTime:  start,
	}

	outputPath := cr.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(r.reportDir, report.DefaultFilename(start))
	}
	run.OutputPath = outputPath

	r.logger.Info(ctx, "comparison run started", logging.Fields{
		"run_id": run.RunID,
		"first":  firstPath,
		"second": secondPath,
		"output": outputPath,
	})

	// Both sides are always listed so the report can surface both errors
	// when both paths are bad.
	first := listing.ListDirectory(firstPath)
	second := listing.ListDirectory(secondPath)
	run.FirstError = first.Err
	run.SecondError = second.Err

	if first.Err != nil {
		r.logger.Error(ctx, "failed to list first directory", first.Err, logging.Fields{
			"run_id": run.RunID,
			"path":   firstPath,
		})
	}
	if second.Err != nil {
		r.logger.Error(ctx, "failed to list second directory", second.Err, logging.Fields{
			"run_id": run.RunID,
			"path":   secondPath,
		})
	}

	if first.Err == nil && second.Err == nil {
		run.Result = compare.Compare(first.Entries, second.Entries)
		r.logger.Info(ctx, "listings compared", logging.Fields{
			"run_id":    run.RunID,
			"total_1":   run.Result.TotalFirst,
			"total_2":   run.Result.TotalSecond,
			"common":    run.Result.Common.Len(),
			"different": run.Result.TotalDifferent(),
		})
	}

	lines := report.Render(firstPath, secondPath, first.Err, second.Err, run.Result, start)
	run.WriteErr = report.Write(lines, outputPath)

	run.EndTime = time.Now()
	run.Duration = run.EndTime.Sub(run.StartTime)
	run.Status = status(run)

	if run.WriteErr != nil {
		r.logger.Error(ctx, "failed to write report", run.WriteErr, logging.Fields{
			"run_id": run.RunID,
			"output": outputPath,
		})
	} else {
		r.logger.Info(ctx, "report written", logging.Fields{
			"run_id":   run.RunID,
			"output":   outputPath,
			"status":   string(run.Status),
			"duration": run.Duration.String(),
		})
	}

	return run
}

// status derives the overall run status: success requires both listings and
// the report write to have succeeded
func status(run *models.RunReport) models.RunStatus {
	switch {
	case run.WriteErr != nil:
		return models.StatusWriteFailed
	case run.FirstError != nil || run.SecondError != nil:
		return models.StatusListFailed
	default:
		return models.StatusSuccess
	}
}
