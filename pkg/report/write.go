package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tkunarajah/dircomp/pkg/models"
)

// DefaultFilename returns the timestamped report name used when the caller
// supplies no output path. Two runs started within the same second produce
// the same name; that collision window is accepted, not worked around.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("directory_comparison_%s.txt", t.Format("20060102_150405"))
}

// Write persists the rendered report to path as UTF-8 text, creating any
// missing parent directories first. Lines are joined with a newline and
// written in a single operation.
func Write(lines []string, path string) *models.WriteError {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &models.WriteError{Path: path, Err: err}
	}

	data := []byte(strings.Join(lines, "\n"))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &models.WriteError{Path: path, Err: err}
	}

	return nil
}
