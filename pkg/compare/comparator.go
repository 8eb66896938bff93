// Package compare computes set differences between two directory listings.
package compare

import (
	"github.com/tkunarajah/dircomp/pkg/models"
)

// Compare computes the names unique to each side and the names common to
// both. It is a pure function: no I/O, no failure mode, and it is total for
// any two finite name sets including empty ones.
func Compare(first, second models.NameSet) *models.ComparisonResult {
	result := &models.ComparisonResult{
		OnlyInFirst:  models.NewNameSet(),
		OnlyInSecond: models.NewNameSet(),
		Common:       models.NewNameSet(),
		TotalFirst:   first.Len(),
		TotalSecond:  second.Len(),
	}

	for name := range first {
		if second.Contains(name) {
			result.Common.Add(name)
		} else {
			result.OnlyInFirst.Add(name)
		}
	}

	for name := range second {
		if !first.Contains(name) {
			result.OnlyInSecond.Add(name)
		}
	}

	return result
}
