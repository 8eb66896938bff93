// Package report renders and persists the directory comparison report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tkunarajah/dircomp/pkg/models"
)

const (
	titleRule   = 60
	summaryRule = 30
	sectionRule = 40
	commonRule  = 45

	timestampLayout = "2006-01-02 15:04:05"
)

// Render builds the ordered lines of the comparison report.
//
// When either listing failed, the report carries only the banner, the
// generation timestamp, both paths, and one ERROR line per failing side;
// the summary and item sections are omitted entirely. Otherwise the summary
// counts and the three alphabetically sorted sections follow.
func Render(firstPath, secondPath string, firstErr, secondErr *models.ListError, result *models.ComparisonResult, generatedAt time.Time) []string {
	var lines []string

	lines = append(lines, strings.Repeat("=", titleRule))
	lines = append(lines, "DIRECTORY COMPARISON REPORT")
	lines = append(lines, strings.Repeat("=", titleRule))
	lines = append(lines, fmt.Sprintf("Generated on: %s", generatedAt.Format(timestampLayout)))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Directory 1: %s", firstPath))
	lines = append(lines, fmt.Sprintf("Directory 2: %s", secondPath))
	lines = append(lines, "")

	if firstErr != nil {
		lines = append(lines, fmt.Sprintf("ERROR: %s", firstErr.Error()))
		lines = append(lines, "")
	}
	if secondErr != nil {
		lines = append(lines, fmt.Sprintf("ERROR: %s", secondErr.Error()))
		lines = append(lines, "")
	}
	if firstErr != nil || secondErr != nil {
		return lines
	}

	lines = append(lines, "SUMMARY STATISTICS")
	lines = append(lines, strings.Repeat("-", summaryRule))
	lines = append(lines, fmt.Sprintf("Total items in Directory 1: %d", result.TotalFirst))
	lines = append(lines, fmt.Sprintf("Total items in Directory 2: %d", result.TotalSecond))
	lines = append(lines, fmt.Sprintf("Common items (in both): %d", result.Common.Len()))
	lines = append(lines, fmt.Sprintf("Unique to Directory 1: %d", result.OnlyInFirst.Len()))
	lines = append(lines, fmt.Sprintf("Unique to Directory 2: %d", result.OnlyInSecond.Len()))
	lines = append(lines, "")

	lines = append(lines, "ITEMS ONLY IN DIRECTORY 1")
	lines = append(lines, strings.Repeat("-", sectionRule))
	lines = append(lines, itemLines(result.OnlyInFirst, "(No unique items)")...)
	lines = append(lines, "")

	lines = append(lines, "ITEMS ONLY IN DIRECTORY 2")
	lines = append(lines, strings.Repeat("-", sectionRule))
	lines = append(lines, itemLines(result.OnlyInSecond, "(No unique items)")...)
	lines = append(lines, "")

	lines = append(lines, "COMMON ITEMS (IN BOTH DIRECTORIES)")
	lines = append(lines, strings.Repeat("-", commonRule))
	lines = append(lines, itemLines(result.Common, "(No common items)")...)
	lines = append(lines, "")

	return lines
}

// itemLines formats a section body: one bullet per name in sorted order,
// or the placeholder when the set is empty
func itemLines(names models.NameSet, placeholder string) []string {
	if names.Len() == 0 {
		return []string{fmt.Sprintf("  %s", placeholder)}
	}

	lines := make([]string, 0, names.Len())
	for _, name := range names.Sorted() {
		lines = append(lines, fmt.Sprintf("  • %s", name))
	}
	return lines
}
