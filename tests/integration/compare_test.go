package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tkunarajah/dircomp/pkg/logging"
	"github.com/tkunarajah/dircomp/pkg/models"
	"github.com/tkunarajah/dircomp/pkg/runner"
)

// TestHelper provides utilities for integration tests
type TestHelper struct {
	t         *testing.T
	tempDir   string
	firstDir  string
	secondDir string
}

// NewTestHelper creates a new integration test helper
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	tempDir := t.TempDir()
	firstDir := filepath.Join(tempDir, "first")
	secondDir := filepath.Join(tempDir, "second")

	if err := os.MkdirAll(firstDir, 0755); err != nil {
		t.Fatalf("failed to create first dir: %v", err)
	}
	if err := os.MkdirAll(secondDir, 0755); err != nil {
		t.Fatalf("failed to create second dir: %v", err)
	}

	return &TestHelper{
		t:         t,
		tempDir:   tempDir,
		firstDir:  firstDir,
		secondDir: secondDir,
	}
}

// CreateFirst creates an entry in the first directory
func (h *TestHelper) CreateFirst(name string) {
	h.t.Helper()
	if err := os.WriteFile(filepath.Join(h.firstDir, name), []byte(name), 0644); err != nil {
		h.t.Fatalf("failed to create %s: %v", name, err)
	}
}

// CreateSecond creates an entry in the second directory
func (h *TestHelper) CreateSecond(name string) {
	h.t.Helper()
	if err := os.WriteFile(filepath.Join(h.secondDir, name), []byte(name), 0644); err != nil {
		h.t.Fatalf("failed to create %s: %v", name, err)
	}
}

// Run executes a comparison run against the two directories
func (h *TestHelper) Run(logger logging.Logger, outputPath string) *models.RunReport {
	h.t.Helper()
	return runner.New(logger, h.tempDir).Run(context.Background(), &models.CompareRun{
		FirstPath:  h.firstDir,
		SecondPath: h.secondDir,
		OutputPath: outputPath,
	})
}

// ReadReport reads the persisted report of a run
func (h *TestHelper) ReadReport(run *models.RunReport) string {
	h.t.Helper()
	data, err := os.ReadFile(run.OutputPath)
	if err != nil {
		h.t.Fatalf("failed to read report %s: %v", run.OutputPath, err)
	}
	return string(data)
}

// TestCompareEndToEnd tests the full pipeline against real directories
func TestCompareEndToEnd(t *testing.T) {
	h := NewTestHelper(t)

	h.CreateFirst("alpha.txt")
	h.CreateFirst("shared.txt")
	h.CreateFirst("zeta.log")
	h.CreateSecond("shared.txt")
	h.CreateSecond("beta.txt")

	run := h.Run(nil, filepath.Join(h.tempDir, "out", "report.txt"))

	if !run.Succeeded() {
		t.Fatalf("Status = %s, want success", run.Status)
	}

	content := h.ReadReport(run)

	wantLines := []string{
		strings.Repeat("=", 60),
		"DIRECTORY COMPARISON REPORT",
		"Directory 1: " + h.firstDir,
		"Directory 2: " + h.secondDir,
		"Total items in Directory 1: 3",
		"Total items in Directory 2: 2",
		"Common items (in both): 1",
		"Unique to Directory 1: 2",
		"Unique to Directory 2: 1",
		"  • alpha.txt",
		"  • zeta.log",
		"  • beta.txt",
		"  • shared.txt",
	}
	for _, want := range wantLines {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, content)
		}
	}

	// Unique-to-first section lists names sorted
	alphaIdx := strings.Index(content, "  • alpha.txt")
	zetaIdx := strings.Index(content, "  • zeta.log")
	if alphaIdx > zetaIdx {
		t.Error("section items must be sorted ascending")
	}
}

// TestCompareEndToEndWithLogging tests that run lifecycle events are logged
func TestCompareEndToEndWithLogging(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFirst("a.txt")
	h.CreateSecond("b.txt")

	logPath := filepath.Join(h.tempDir, "dircomp.log")
	logger, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   logPath,
		Format: logging.FormatText,
		Level:  logging.InfoLevel,
	})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	run := h.Run(logger, filepath.Join(h.tempDir, "report.txt"))
	logger.Close()

	if !run.Succeeded() {
		t.Fatalf("Status = %s, want success", run.Status)
	}

	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	logContent := string(logData)

	if !strings.Contains(logContent, "comparison run started") {
		t.Error("log should record the run start")
	}
	if !strings.Contains(logContent, "report written") {
		t.Error("log should record the report write")
	}
	if !strings.Contains(logContent, run.RunID) {
		t.Error("log entries should carry the run id")
	}
}

// TestCompareEndToEndErrorReport tests the diagnostic report on failure
func TestCompareEndToEndErrorReport(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateSecond("present.txt")

	missing := filepath.Join(h.tempDir, "missing")
	run := runner.New(nil, h.tempDir).Run(context.Background(), &models.CompareRun{
		FirstPath:  missing,
		SecondPath: h.secondDir,
		OutputPath: filepath.Join(h.tempDir, "report.txt"),
	})

	if run.Succeeded() {
		t.Fatal("run must fail when the first path is missing")
	}
	if run.Status.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", run.Status.ExitCode())
	}

	content := h.ReadReport(run)
	if !strings.Contains(content, "ERROR: Directory does not exist: "+missing) {
		t.Errorf("report missing the error line:\n%s", content)
	}
	if strings.Contains(content, "SUMMARY STATISTICS") {
		t.Error("error report must omit the summary block")
	}
}

// TestCompareEndToEndDefaultOutput tests default report naming
func TestCompareEndToEndDefaultOutput(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFirst("only.txt")

	run := h.Run(nil, "")

	if !run.Succeeded() {
		t.Fatalf("Status = %s, want success", run.Status)
	}

	base := filepath.Base(run.OutputPath)
	if !strings.HasPrefix(base, "directory_comparison_") {
		t.Errorf("default report name = %s", base)
	}
	if _, err := os.Stat(run.OutputPath); err != nil {
		t.Errorf("default-named report should exist: %v", err)
	}
}
