package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/tkunarajah/dircomp/pkg/config"
	"github.com/tkunarajah/dircomp/pkg/models"
)

// TestPrintResult tests the terminal summary for each run outcome
func TestPrintResult(t *testing.T) {
	color.NoColor = true
	cfg := config.Default()

	t.Run("Success", func(t *testing.T) {
		var out, errOut bytes.Buffer
		run := &models.RunReport{
			OutputPath: "/tmp/report.txt",
			Status:     models.StatusSuccess,
			Result: &models.ComparisonResult{
				OnlyInFirst:  models.NewNameSet("x"),
				OnlyInSecond: models.NewNameSet("w"),
				Common:       models.NewNameSet("y", "z"),
				TotalFirst:   3,
				TotalSecond:  3,
			},
		}

		printResult(&out, &errOut, run, cfg)

		if !strings.Contains(out.String(), "Comparison report successfully written to: /tmp/report.txt") {
			t.Errorf("stdout = %q", out.String())
		}
		if !strings.Contains(out.String(), "Summary: 3 items in dir1, 3 items in dir2, 2 common, 2 different") {
			t.Errorf("stdout = %q", out.String())
		}
		if errOut.Len() != 0 {
			t.Errorf("stderr should be empty on success, got %q", errOut.String())
		}
	})

	t.Run("SuccessQuiet", func(t *testing.T) {
		quiet := config.Default()
		quiet.Output.Quiet = true

		var out, errOut bytes.Buffer
		run := &models.RunReport{
			Status: models.StatusSuccess,
			Result: &models.ComparisonResult{},
		}

		printResult(&out, &errOut, run, quiet)

		if out.Len() != 0 {
			t.Errorf("quiet mode should suppress stdout, got %q", out.String())
		}
	})

	t.Run("ListFailed", func(t *testing.T) {
		var out, errOut bytes.Buffer
		run := &models.RunReport{
			OutputPath: "/tmp/report.txt",
			Status:     models.StatusListFailed,
			FirstError: &models.ListError{Kind: models.KindNotFound, Path: "/gone"},
		}

		printResult(&out, &errOut, run, cfg)

		if !strings.Contains(errOut.String(), "ERROR: Directory does not exist: /gone") {
			t.Errorf("stderr = %q", errOut.String())
		}
		if !strings.Contains(out.String(), "Error report written to: /tmp/report.txt") {
			t.Errorf("stdout = %q", out.String())
		}
	})

	t.Run("WriteFailedAfterListFailure", func(t *testing.T) {
		var out, errOut bytes.Buffer
		run := &models.RunReport{
			OutputPath:  "/blocked/report.txt",
			Status:      models.StatusWriteFailed,
			FirstError:  &models.ListError{Kind: models.KindNotFound, Path: "/gone1"},
			SecondError: &models.ListError{Kind: models.KindNotADirectory, Path: "/file"},
			WriteErr:    &models.WriteError{Path: "/blocked/report.txt", Err: errors.New("permission denied")},
		}

		printResult(&out, &errOut, run, cfg)

		// With no report file on disk, stderr is the only place the
		// listing errors can surface
		stderr := errOut.String()
		if !strings.Contains(stderr, "ERROR: Directory does not exist: /gone1") {
			t.Errorf("stderr should carry the first listing error, got %q", stderr)
		}
		if !strings.Contains(stderr, "ERROR: Path is not a directory: /file") {
			t.Errorf("stderr should carry the second listing error, got %q", stderr)
		}
		if !strings.Contains(stderr, "Error writing to output file: permission denied") {
			t.Errorf("stderr should carry the write error, got %q", stderr)
		}
	})

	t.Run("WriteFailedCleanListings", func(t *testing.T) {
		var out, errOut bytes.Buffer
		run := &models.RunReport{
			OutputPath: "/blocked/report.txt",
			Status:     models.StatusWriteFailed,
			Result:     &models.ComparisonResult{},
			WriteErr:   &models.WriteError{Path: "/blocked/report.txt", Err: errors.New("disk full")},
		}

		printResult(&out, &errOut, run, cfg)

		if strings.Contains(errOut.String(), "ERROR:") {
			t.Errorf("no listing errors should be printed, got %q", errOut.String())
		}
		if !strings.Contains(errOut.String(), "Error writing to output file: disk full") {
			t.Errorf("stderr = %q", errOut.String())
		}
	})
}
