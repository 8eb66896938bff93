// Package listing enumerates the immediate entries of a directory.
package listing

import (
	"errors"
	"io/fs"
	"os"

	"github.com/tkunarajah/dircomp/pkg/models"
)

// List returns the set of base names of every direct child of path.
// Files, subdirectories, and symlinks are all listed by their own name;
// symlinks are never resolved and there is no recursion.
func List(path string) (models.NameSet, *models.ListError) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}

	if !info.IsDir() {
		return nil, &models.ListError{Kind: models.KindNotADirectory, Path: path}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, classify(path, err)
	}

	names := make(models.NameSet, len(entries))
	for _, entry := range entries {
		names.Add(entry.Name())
	}

	return names, nil
}

// ListDirectory lists path and captures the outcome, success or failure,
// in a DirectoryListing.
func ListDirectory(path string) *models.DirectoryListing {
	names, err := List(path)
	return &models.DirectoryListing{
		Path:    path,
		Entries: names,
		Err:     err,
	}
}

// classify maps a filesystem error to a typed listing error
func classify(path string, err error) *models.ListError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &models.ListError{Kind: models.KindNotFound, Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &models.ListError{Kind: models.KindPermissionDenied, Path: path, Err: err}
	default:
		return &models.ListError{Kind: models.KindIOError, Path: path, Err: err}
	}
}
