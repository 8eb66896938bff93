package models

import "sort"

// NameSet is an unordered collection of directory entry names.
// Enumeration order is filesystem-dependent, so names are collected into a
// set and sorted only when rendered.
type NameSet map[string]struct{}

// NewNameSet creates a set containing the given names
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts a name into the set
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is in the set
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set
func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the names in case-sensitive lexicographic ascending order
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DirectoryListing holds the immediate entry names of one directory, or the
// error that prevented the listing. Exactly one of Entries and Err is set.
type DirectoryListing struct {
	// Path is the directory path as supplied by the caller
	Path string

	// Entries are the base names of every direct child
	Entries NameSet

	// Err describes why the listing could not be obtained
	Err *ListError
}
