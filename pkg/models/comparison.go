package models

// ComparisonResult represents the outcome of comparing two directory listings
type ComparisonResult struct {
	// OnlyInFirst are names present in the first directory but not the second
	OnlyInFirst NameSet

	// OnlyInSecond are names present in the second directory but not the first
	OnlyInSecond NameSet

	// Common are names present in both directories
	Common NameSet

	// TotalFirst is the number of entries in the first directory
	TotalFirst int

	// TotalSecond is the number of entries in the second directory
	TotalSecond int
}

// TotalDifferent returns the number of entries unique to either side
func (r *ComparisonResult) TotalDifferent() int {
	return r.OnlyInFirst.Len() + r.OnlyInSecond.Len()
}
